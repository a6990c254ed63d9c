package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/chewxy/math32"

	"github.com/Faultbox/learnedmm/internal/logger"
	"github.com/Faultbox/learnedmm/pkg/damper"
	"github.com/Faultbox/learnedmm/pkg/locomotion"
)

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// Validate checks every section and reports all problems at once.
// Each problem wraps ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field string, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...)))
	}

	checkSpeeds := func(field string, s locomotion.Speeds) {
		if s.Forward < 0 || s.Side < 0 || s.Back < 0 {
			bad(field, "speeds must be non-negative, got %+v", s)
		}
	}
	checkSpeeds("locomotion.walk", c.Locomotion.Walk)
	checkSpeeds("locomotion.run", c.Locomotion.Run)

	nonNegative := map[string]float32{
		"locomotion.gait_halflife":  c.Locomotion.GaitHalflife,
		"damping.velocity_halflife": c.Damping.VelocityHalflife,
		"damping.rotation_halflife": c.Damping.RotationHalflife,
		"damping.damping":           c.Damping.Damping,
		"camera.look_halflife":      c.Camera.LookHalflife,
		"simulation.arena_radius":   c.Simulation.ArenaRadius,
	}
	for _, field := range slices.Sorted(maps.Keys(nonNegative)) {
		if v := nonNegative[field]; v < 0 || v != v {
			bad(field, "must be non-negative, got %v", v)
		}
	}

	finite := map[string]float32{
		"camera.pitch":             c.Camera.Pitch,
		"camera.yaw_sensitivity":   c.Camera.YawSensitivity,
		"camera.pitch_sensitivity": c.Camera.PitchSensitivity,
		"camera.look_offset.x":     c.Camera.LookOffset.X,
		"camera.look_offset.y":     c.Camera.LookOffset.Y,
		"camera.look_offset.z":     c.Camera.LookOffset.Z,
	}
	for _, field := range slices.Sorted(maps.Keys(finite)) {
		if v := finite[field]; math32.IsNaN(v) || math32.IsInf(v, 0) {
			bad(field, "must be finite, got %v", v)
		}
	}

	if _, err := damper.ParseMethod(c.Damping.Method); err != nil {
		bad("damping.method", "%v", err)
	}
	if c.Camera.ArmLength <= 0 {
		bad("camera.arm_length", "must be positive, got %v", c.Camera.ArmLength)
	}
	if c.Simulation.TickRate <= 0 {
		bad("simulation.tick_rate", "must be positive, got %d", c.Simulation.TickRate)
	}
	if c.Simulation.Duration <= 0 {
		bad("simulation.duration", "must be positive, got %v", c.Simulation.Duration)
	}
	if c.Simulation.Characters < 1 {
		bad("simulation.characters", "need at least one, got %d", c.Simulation.Characters)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		bad("logging.level", "%v", err)
	}

	return errors.Join(errs...)
}
