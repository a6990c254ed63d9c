// Package damper moves values toward a goal at a rate that does not depend on
// the frame time.
//
// Every damper is parameterised by a half-life: the time it takes for the gap
// between the current value and the goal to halve. The interpolation factor is
// built from FastNegExp, so it stays in [0, 1) for any dt and the result never
// overshoots, however long the frame.
//
// Degenerate inputs are clamped, not reported: a negative dt counts as 0 (the
// value holds still) and a negative half-life counts as 0 (Eps turns it into
// an effectively instant snap).
package damper

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/learnedmm/pkg/math"
)

const (
	// Eps keeps a zero half-life away from a division by zero.
	Eps = 1e-5

	// FrameTime is the reference step of the exponential damper (60 Hz).
	FrameTime = float32(1.0 / 60.0)
)

// Lerp returns (1-t)*a + t*b.
func Lerp(a, b, t float32) float32 {
	return math.Lerp(a, b, t)
}

// LerpVec3 is Lerp applied componentwise.
func LerpVec3(a, b math.Vec3, t float32) math.Vec3 {
	return math.Vec3Lerp(a, b, t)
}

// FastNegExp approximates e^-x with the reciprocal of a cubic.
// Relative error stays under 0.5% on [0, 1] and absolute error under 0.02 on
// [0, 10]. Relative error grows with x, so it is well above 0.5% near 10;
// internal/approx measures the curve. Only x >= 0 is meaningful.
func FastNegExp(x float32) float32 {
	return 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
}

// ExactFactor returns the interpolation factor Exact uses for one step.
func ExactFactor(halflife, dt float32) float32 {
	return 1 - FastNegExp((math.Ln2*clampDelta(dt))/(clampHalflife(halflife)+Eps))
}

// Exact moves current toward goal so that the gap halves every halflife seconds.
func Exact(current, goal, halflife, dt float32) float32 {
	return Lerp(current, goal, ExactFactor(halflife, dt))
}

// ExactVec3 is Exact for vectors. It tracks no velocity: the result is a pure
// interpolation toward goal, not a spring.
func ExactVec3(current, goal math.Vec3, halflife, dt float32) math.Vec3 {
	return LerpVec3(current, goal, ExactFactor(halflife, dt))
}

// ExactQuat is Exact for rotations, interpolating along the shorter arc.
func ExactQuat(current, goal math.Quat, halflife, dt float32) math.Quat {
	return current.Slerp(goal, ExactFactor(halflife, dt))
}

// ExponentialFactor returns the interpolation factor Exponential uses for one
// step. The damping rate is per FrameTime: each reference frame keeps
// (1 - FrameTime*damping) of the gap.
func ExponentialFactor(damping, dt float32) float32 {
	dt = clampDelta(dt)
	if damping < 0 {
		damping = 0
	}
	keep := 1 - FrameTime*damping
	if keep <= 0 {
		return 1
	}
	return 1 - math32.Pow(1/keep, -dt/FrameTime)
}

// Exponential moves current toward goal using a raw damping rate referenced
// to FrameTime.
func Exponential(current, goal, damping, dt float32) float32 {
	return Lerp(current, goal, ExponentialFactor(damping, dt))
}

// ExponentialVec3 is Exponential for vectors.
func ExponentialVec3(current, goal math.Vec3, damping, dt float32) math.Vec3 {
	return LerpVec3(current, goal, ExponentialFactor(damping, dt))
}

// HalflifeToExponentialDamping returns the damping rate at which Exponential
// closes half the gap in halflife seconds.
func HalflifeToExponentialDamping(halflife float32) float32 {
	halflife = clampHalflife(halflife)
	return (1 - math32.Pow(0.5, FrameTime/(halflife+Eps))) / FrameTime
}

func clampDelta(dt float32) float32 {
	if dt < 0 || math32.IsNaN(dt) {
		return 0
	}
	return dt
}

func clampHalflife(halflife float32) float32 {
	if halflife < 0 || math32.IsNaN(halflife) {
		return 0
	}
	return halflife
}
