// Package locomotion turns raw stick input into per-frame motion targets: a
// desired world-space velocity and a desired facing.
//
// Conventions: Y is up, a stick's Y axis maps to +Z (Forward), and angles are
// radians of yaw about Up. The camera azimuth rotates stick input the same way
// a facing does, so an azimuth of 0 means "stick up moves along +Z".
package locomotion

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/learnedmm/pkg/math"
)

// DeadZone is the stick magnitude at or below which a stick counts as neutral.
const DeadZone = 0.01

// Speeds are the top speeds along the facing's local axes.
type Speeds struct {
	Forward float32 `yaml:"forward"`
	Side    float32 `yaml:"side"`
	Back    float32 `yaml:"back"`
}

// Input is one frame of player intent.
type Input struct {
	StickLeft     math.Vec2
	StickRight    math.Vec2
	CameraAzimuth float32
	Strafe        bool
}

// Intent is the pair of targets produced for one frame.
type Intent struct {
	Velocity math.Vec3
	Rotation math.Quat
}

// DesiredVelocity maps the left stick to a world-space velocity.
//
// The stick is taken into world space by the camera azimuth, then into the
// facing's local frame, where forward and backward motion get their own top
// speed. A zero stick yields exactly zero.
func DesiredVelocity(stickLeft math.Vec2, cameraAzimuth float32, facing math.Quat, speeds Speeds) math.Vec3 {
	global := math.QuatFromYaw(cameraAzimuth).Rotate(stickLeft.ToXZ())
	local := facing.InvRotate(global)

	scale := math.Vec3{X: speeds.Side, Y: 0, Z: speeds.Forward}
	if local.Z < 0 {
		scale.Z = speeds.Back
	}

	return facing.Rotate(local.Mul(scale))
}

// DesiredRotation picks the facing for this frame, by priority:
//
//  1. strafe: face the camera forward, or the right stick (camera-relative)
//     when it is outside the dead zone;
//  2. left stick outside the dead zone: face along desiredVelocity;
//  3. otherwise hold prev.
//
// Results of 1 and 2 are pure yaw.
func DesiredRotation(prev math.Quat, stickLeft, stickRight math.Vec2, cameraAzimuth float32, strafe bool, desiredVelocity math.Vec3) math.Quat {
	if strafe {
		camera := math.QuatFromYaw(cameraAzimuth)
		direction := camera.Rotate(math.Forward)
		if stickRight.Length() > DeadZone {
			direction = camera.Rotate(stickRight.Normalize().ToXZ())
		}
		return yawToward(direction)
	}

	if stickLeft.Length() > DeadZone {
		direction := desiredVelocity.Normalize()
		if direction.X == 0 && direction.Z == 0 {
			// Zero top speeds leave no direction to face
			return prev
		}
		return yawToward(direction)
	}

	return prev
}

// Update computes both targets in the order a host needs them: the rotation
// branch reads the velocity computed this frame.
func Update(prev math.Quat, facing math.Quat, in Input, speeds Speeds) Intent {
	velocity := DesiredVelocity(in.StickLeft, in.CameraAzimuth, facing, speeds)
	return Intent{
		Velocity: velocity,
		Rotation: DesiredRotation(prev, in.StickLeft, in.StickRight, in.CameraAzimuth, in.Strafe, velocity),
	}
}

func yawToward(direction math.Vec3) math.Quat {
	return math.QuatFromYaw(math32.Atan2(direction.X, direction.Z))
}
