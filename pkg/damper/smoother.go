package damper

import (
	"fmt"

	"github.com/Faultbox/learnedmm/pkg/math"
)

// Method selects the damping formula a Smoother uses.
type Method string

const (
	// MethodExact uses Exact (half-life parameterisation). Default.
	MethodExact Method = "exact"
	// MethodExponential uses Exponential (damping rate per FrameTime).
	MethodExponential Method = "exponential"
)

// ParseMethod converts a config string to a Method. Empty means MethodExact.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "", MethodExact:
		return MethodExact, nil
	case MethodExponential:
		return MethodExponential, nil
	default:
		return "", fmt.Errorf("unknown damping method %q", s)
	}
}

// Smoother bundles a damping method with its parameter so hosts can switch
// formulas from configuration.
type Smoother struct {
	Method   Method
	Halflife float32
	Damping  float32 // exponential only
}

// NewSmoother returns a Smoother for halflife. For MethodExponential the
// damping rate is derived so both methods close half the gap in halflife.
func NewSmoother(method Method, halflife float32) Smoother {
	return Smoother{
		Method:   method,
		Halflife: halflife,
		Damping:  HalflifeToExponentialDamping(halflife),
	}
}

// Factor returns the interpolation factor for one step of dt seconds.
func (s Smoother) Factor(dt float32) float32 {
	if s.Method == MethodExponential {
		return ExponentialFactor(s.Damping, dt)
	}
	return ExactFactor(s.Halflife, dt)
}

// Step damps a scalar.
func (s Smoother) Step(current, goal, dt float32) float32 {
	return Lerp(current, goal, s.Factor(dt))
}

// StepVec3 damps a vector.
func (s Smoother) StepVec3(current, goal math.Vec3, dt float32) math.Vec3 {
	return LerpVec3(current, goal, s.Factor(dt))
}

// StepQuat damps a rotation along the shorter arc.
func (s Smoother) StepQuat(current, goal math.Quat, dt float32) math.Quat {
	return current.Slerp(goal, s.Factor(dt))
}
