package character

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/learnedmm/pkg/damper"
	"github.com/Faultbox/learnedmm/pkg/locomotion"
	"github.com/Faultbox/learnedmm/pkg/math"
)

// Controller holds the state one character carries between frames.
//
// The desired velocity and rotation come straight from the locomotion core;
// the simulated velocity and facing chase them through dampers so the
// character never snaps.
type Controller struct {
	Settings Settings
	Terrain  TerrainQuery // nil means unbounded flat ground at y=0

	Position        math.Vec3
	Velocity        math.Vec3 // simulated
	Facing          damper.QuatSpring
	DesiredVelocity math.Vec3
	DesiredRotation math.Quat
	Gait            damper.Spring // 0 walk, 1 run
	Blocked         bool          // last step was refused by the terrain

	log      *zap.Logger
	warnedDT bool
}

// NewController creates a controller at rest at the origin facing +Z.
// A nil logger discards.
func NewController(settings Settings, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{Settings: settings, log: log}
	c.Reset(math.Vec3{}, 0)
	return c
}

// Reset places the character at rest at position facing yaw.
func (c *Controller) Reset(position math.Vec3, yaw float32) {
	facing := math.QuatFromYaw(yaw)
	c.Position = position
	c.Velocity = math.Vec3{}
	c.Facing = damper.QuatSpring{Rotation: facing}
	c.DesiredVelocity = math.Vec3{}
	c.DesiredRotation = facing
	c.Gait = damper.Spring{}
	c.Blocked = false
}

// Update advances the character by one frame and returns this frame's targets.
func (c *Controller) Update(f Frame) locomotion.Intent {
	dt := f.DT
	if dt < 0 || math32.IsNaN(dt) || math32.IsInf(dt, 0) {
		if !c.warnedDT {
			c.log.Warn("invalid frame time, holding state", zap.Float32("dt", dt))
			c.warnedDT = true
		}
		dt = 0
	}

	in := locomotion.Input{
		StickLeft:     f.StickLeft.ClampLength(1),
		StickRight:    f.StickRight.ClampLength(1),
		CameraAzimuth: f.CameraAzimuth,
		Strafe:        f.Strafe || c.Settings.Strafe,
	}

	c.Gait = locomotion.DesiredGait(c.Gait, f.Run, c.Settings.GaitHalflife, dt)
	speeds := locomotion.BlendSpeeds(c.Settings.Walk, c.Settings.Run, c.Gait.Value)

	intent := locomotion.Update(c.DesiredRotation, c.Facing.Rotation, in, speeds)
	c.DesiredVelocity = intent.Velocity
	c.DesiredRotation = intent.Rotation

	c.Velocity = c.Settings.Velocity.StepVec3(c.Velocity, c.DesiredVelocity, dt)
	c.move(dt)

	c.Facing = damper.QuatSpringDamperExact(c.Facing, c.DesiredRotation, c.Settings.RotationHalflife, dt)

	return intent
}

// move integrates position, stopping at unwalkable ground.
func (c *Controller) move(dt float32) {
	next := c.Position.Add(c.Velocity.Scale(dt))
	if c.Terrain == nil {
		c.Blocked = false
		c.Position = next
		return
	}

	if !c.Terrain.IsWalkable(next.X, next.Z) {
		if !c.Blocked {
			c.log.Debug("blocked by terrain", zap.Float32("x", next.X), zap.Float32("z", next.Z))
		}
		c.Blocked = true
		c.Velocity = math.Vec3{}
		return
	}

	c.Blocked = false
	next.Y = c.Terrain.GetHeight(next.X, next.Z)
	c.Position = next
}

// Speed returns the simulated ground speed.
func (c *Controller) Speed() float32 {
	return c.Velocity.XZ().Length()
}

// FacingYaw returns the simulated facing as a yaw angle.
func (c *Controller) FacingYaw() float32 {
	return c.Facing.Rotation.Yaw()
}

// DesiredYaw returns the desired facing as a yaw angle.
func (c *Controller) DesiredYaw() float32 {
	return c.DesiredRotation.Yaw()
}

// YawError returns the unsigned angle between simulated and desired facing.
func (c *Controller) YawError() float32 {
	return math32.Abs(math.WrapAngle(c.DesiredYaw() - c.FacingYaw()))
}
