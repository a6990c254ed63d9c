package sim

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/Faultbox/learnedmm/internal/camera"
	"github.com/Faultbox/learnedmm/internal/character"
	"github.com/Faultbox/learnedmm/pkg/math"
)

// Trace is one character's state after one tick.
type Trace struct {
	Tick      int     `csv:"tick"`
	Time      float32 `csv:"time"`
	Entity    uint32  `csv:"entity"`
	Character int     `csv:"character"`

	PosX float32 `csv:"pos_x"`
	PosZ float32 `csv:"pos_z"`

	DesiredVelX  float32 `csv:"desired_vel_x"`
	DesiredVelZ  float32 `csv:"desired_vel_z"`
	DesiredSpeed float32 `csv:"desired_speed"`
	Speed        float32 `csv:"speed"`

	DesiredYaw float32 `csv:"desired_yaw"`
	FacingYaw  float32 `csv:"facing_yaw"`
	YawError   float32 `csv:"yaw_error"`
	Gait       float32 `csv:"gait"`
	Blocked    bool    `csv:"blocked"`

	CameraYaw float32 `csv:"camera_yaw"`
	LookX     float32 `csv:"look_x"`
	LookY     float32 `csv:"look_y"`
	LookZ     float32 `csv:"look_z"`
}

func newTrace(tick int, t float32, entity uint32, anchor *Anchor, ctl *character.Controller, look *camera.Boom, desired math.Vec3) Trace {
	target := look.LookTarget()
	return Trace{
		Tick:      tick,
		Time:      t,
		Entity:    entity,
		Character: anchor.Index,

		PosX: ctl.Position.X,
		PosZ: ctl.Position.Z,

		DesiredVelX:  desired.X,
		DesiredVelZ:  desired.Z,
		DesiredSpeed: desired.XZ().Length(),
		Speed:        ctl.Speed(),

		DesiredYaw: ctl.DesiredYaw(),
		FacingYaw:  ctl.FacingYaw(),
		YawError:   ctl.YawError(),
		Gait:       ctl.Gait.Value,
		Blocked:    ctl.Blocked,

		CameraYaw: look.Azimuth(),
		LookX:     target.X,
		LookY:     target.Y,
		LookZ:     target.Z,
	}
}

// Trace returns every row recorded so far, in tick then spawn order.
func (w *World) Trace() []Trace {
	return w.trace
}

// WriteTrace writes the recorded rows as CSV with a header.
func (w *World) WriteTrace(out io.Writer) error {
	if len(w.trace) == 0 {
		return fmt.Errorf("writing trace: no ticks recorded")
	}
	if err := gocsv.Marshal(w.trace, out); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}
