// Package camera provides the third-person camera boom that supplies the
// locomotion core with its azimuth.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/learnedmm/pkg/damper"
	"github.com/Faultbox/learnedmm/pkg/math"
)

// Boom follows a character from behind at a fixed arm length.
//
// The boom end looks at a damped point above the character rather than the
// character itself, so quick turns and stops do not jerk the view.
type Boom struct {
	// Orientation
	Yaw   float32 // azimuth about Up (radians); 0 looks along +Z
	Pitch float32 // elevation above the look target (radians)

	ArmLength float32

	// Constraints
	MinPitch float32
	MaxPitch float32

	// Sensitivity
	YawSensitivity   float32
	PitchSensitivity float32

	// Look target smoothing
	LookOffset   math.Vec3
	LookHalflife float32

	lookTarget math.Vec3
}

// NewBoom creates a boom with default settings.
func NewBoom() *Boom {
	return &Boom{
		Yaw:              0,
		Pitch:            0.35,
		ArmLength:        400,
		MinPitch:         -0.2,
		MaxPitch:         1.4,
		YawSensitivity:   1,
		PitchSensitivity: 1,
		LookOffset:       math.Vec3{X: 0, Y: 10, Z: 0},
		LookHalflife:     0.9,
	}
}

// HandleLook applies a look-stick or mouse delta. Yaw wraps, pitch clamps.
func (b *Boom) HandleLook(deltaX, deltaY float32) {
	b.Yaw = math.WrapAngle(b.Yaw + deltaX*b.YawSensitivity)
	if pitch := b.Pitch + deltaY*b.PitchSensitivity; !math32.IsNaN(pitch) {
		b.Pitch = math.Clamp(pitch, b.MinPitch, b.MaxPitch)
	}
}

// Azimuth returns the yaw the locomotion core rotates stick input by.
func (b *Boom) Azimuth() float32 {
	return b.Yaw
}

// Rotation returns the boom's yaw as a quaternion.
func (b *Boom) Rotation() math.Quat {
	return math.QuatFromYaw(b.Yaw)
}

// Forward returns the camera's forward direction on the XZ plane.
func (b *Boom) Forward() math.Vec3 {
	return b.Rotation().Rotate(math.Forward)
}

// Right returns the camera's right direction on the XZ plane.
func (b *Boom) Right() math.Vec3 {
	return b.Rotation().Rotate(math.Right)
}

// Reset snaps the look target onto target without damping.
func (b *Boom) Reset(target math.Vec3) {
	b.lookTarget = target.Add(b.LookOffset)
}

// Follow damps the look target toward target plus LookOffset.
func (b *Boom) Follow(target math.Vec3, dt float32) {
	b.lookTarget = damper.ExactVec3(b.lookTarget, target.Add(b.LookOffset), b.LookHalflife, dt)
}

// LookTarget returns the damped point the camera looks at.
func (b *Boom) LookTarget() math.Vec3 {
	return b.lookTarget
}

// Position returns the boom end: behind and above the look target.
func (b *Boom) Position() math.Vec3 {
	sinP, cosP := math32.Sincos(b.Pitch)
	back := b.Forward().Scale(-b.ArmLength * cosP)
	up := math.Up.Scale(b.ArmLength * sinP)
	return b.lookTarget.Add(back).Add(up)
}
