package damper

import (
	"github.com/Faultbox/learnedmm/pkg/math"
)

// Spring is a scalar damped quantity that tracks its own velocity.
type Spring struct {
	Value    float32
	Velocity float32
}

// QuatSpring is a rotation damped with an angular velocity (radians/s, world axis).
type QuatSpring struct {
	Rotation        math.Quat
	AngularVelocity math.Vec3
}

// HalflifeToDamping converts a half-life into the damping coefficient of a
// critically damped spring.
func HalflifeToDamping(halflife float32) float32 {
	return (4 * math.Ln2) / (clampHalflife(halflife) + Eps)
}

// DampingToHalflife is the inverse of HalflifeToDamping.
func DampingToHalflife(damping float32) float32 {
	return (4 * math.Ln2) / (damping + Eps)
}

// SpringDamperExact advances a critically damped spring toward goal by dt.
// With zero initial velocity it settles on goal without overshoot.
func SpringDamperExact(s Spring, goal, halflife, dt float32) Spring {
	dt = clampDelta(dt)
	y := HalflifeToDamping(halflife) / 2
	j0 := s.Value - goal
	j1 := s.Velocity + j0*y
	eydt := FastNegExp(y * dt)

	return Spring{
		Value:    eydt*(j0+j1*dt) + goal,
		Velocity: eydt * (s.Velocity - j1*y*dt),
	}
}

// DecaySpringDamperExact is SpringDamperExact with a goal of zero.
func DecaySpringDamperExact(s Spring, halflife, dt float32) Spring {
	return SpringDamperExact(s, 0, halflife, dt)
}

// QuatSpringDamperExact advances a critically damped rotational spring toward goal.
func QuatSpringDamperExact(s QuatSpring, goal math.Quat, halflife, dt float32) QuatSpring {
	dt = clampDelta(dt)
	y := HalflifeToDamping(halflife) / 2
	j0 := s.Rotation.Mul(goal.Inverse()).Abs().ToScaledAngleAxis()
	j1 := s.AngularVelocity.Add(j0.Scale(y))
	eydt := FastNegExp(y * dt)

	offset := j0.Add(j1.Scale(dt)).Scale(eydt)
	return QuatSpring{
		Rotation:        math.QuatFromScaledAngleAxis(offset).Mul(goal).Normalize(),
		AngularVelocity: s.AngularVelocity.Sub(j1.Scale(y * dt)).Scale(eydt),
	}
}
