// Package config handles simulation configuration loading and management.
package config

import (
	gomath "math"
	"time"

	"github.com/Faultbox/learnedmm/pkg/damper"
	"github.com/Faultbox/learnedmm/pkg/locomotion"
	"github.com/Faultbox/learnedmm/pkg/math"
)

// Config holds all harness settings.
type Config struct {
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Damping    DampingConfig    `yaml:"damping"`
	Camera     CameraConfig     `yaml:"camera"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LocomotionConfig holds top speeds and gait settings.
type LocomotionConfig struct {
	Walk         locomotion.Speeds `yaml:"walk"`
	Run          locomotion.Speeds `yaml:"run"`
	Strafe       bool              `yaml:"strafe"` // hold strafe for the whole run
	GaitHalflife float32           `yaml:"gait_halflife"`
}

// DampingConfig selects how simulated state follows the desired targets.
type DampingConfig struct {
	Method           string  `yaml:"method"` // exact or exponential
	VelocityHalflife float32 `yaml:"velocity_halflife"`
	RotationHalflife float32 `yaml:"rotation_halflife"`
	Damping          float32 `yaml:"damping"` // exponential rate; 0 derives it from velocity_halflife
}

// CameraConfig holds the third-person boom settings.
type CameraConfig struct {
	ArmLength        float32   `yaml:"arm_length"`
	Pitch            float32   `yaml:"pitch"`
	YawSensitivity   float32   `yaml:"yaw_sensitivity"`
	PitchSensitivity float32   `yaml:"pitch_sensitivity"`
	LookOffset       math.Vec3 `yaml:"look_offset"`
	LookHalflife     float32   `yaml:"look_halflife"`
}

// SimulationConfig holds the fixed-step run settings.
type SimulationConfig struct {
	TickRate    int           `yaml:"tick_rate"` // ticks per second
	Duration    time.Duration `yaml:"duration"`
	Characters  int           `yaml:"characters"`
	Scenario    string        `yaml:"scenario"`     // empty runs the built-in scenario
	Output      string        `yaml:"output"`       // CSV trace path; empty disables the trace
	ArenaRadius float32       `yaml:"arena_radius"` // walkable radius around the origin; 0 is unbounded
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Locomotion: LocomotionConfig{
			Walk:         locomotion.Speeds{Forward: 175, Side: 150, Back: 125},
			Run:          locomotion.Speeds{Forward: 500, Side: 400, Back: 300},
			Strafe:       false,
			GaitHalflife: locomotion.DefaultGaitHalflife,
		},
		Damping: DampingConfig{
			Method:           string(damper.MethodExact),
			VelocityHalflife: 0.27,
			RotationHalflife: 0.1,
			Damping:          0,
		},
		Camera: CameraConfig{
			ArmLength:        400,
			Pitch:            0.35,
			YawSensitivity:   1,
			PitchSensitivity: 1,
			LookOffset:       math.Vec3{X: 0, Y: 10, Z: 0},
			LookHalflife:     0.9,
		},
		Simulation: SimulationConfig{
			TickRate:    60,
			Duration:    10 * time.Second,
			Characters:  4,
			Scenario:    "",
			Output:      "trace.csv",
			ArenaRadius: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DT returns the fixed step length in seconds.
func (s SimulationConfig) DT() float32 {
	return 1 / float32(s.TickRate)
}

// Ticks returns how many fixed steps cover Duration, to the nearest step.
func (s SimulationConfig) Ticks() int {
	return int(gomath.Round(s.Duration.Seconds() * float64(s.TickRate)))
}

// Smoother builds the velocity smoother described by the damping section.
// Call Validate first; an unknown method falls back to exact.
func (d DampingConfig) Smoother() damper.Smoother {
	method, err := damper.ParseMethod(d.Method)
	if err != nil {
		method = damper.MethodExact
	}
	s := damper.NewSmoother(method, d.VelocityHalflife)
	if d.Damping > 0 {
		s.Damping = d.Damping
	}
	return s
}
