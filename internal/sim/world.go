// Package sim runs many scripted characters through the locomotion core on
// a fixed time step and records what they did.
package sim

import (
	"context"
	"fmt"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/Faultbox/learnedmm/internal/camera"
	"github.com/Faultbox/learnedmm/internal/character"
	"github.com/Faultbox/learnedmm/internal/config"
	"github.com/Faultbox/learnedmm/internal/logger"
	"github.com/Faultbox/learnedmm/internal/scenario"
	"github.com/Faultbox/learnedmm/pkg/math"
)

// SpawnSpacing is the distance between neighbouring spawn points along X.
const SpawnSpacing = 150

// World owns the ECS world and the recorded trace.
type World struct {
	cfg      *config.Config
	scenario *scenario.Scenario
	log      *zap.Logger

	world  *ecs.World
	mapper *ecs.Map3[Control, Look, Anchor]
	filter *ecs.Filter3[Control, Look, Anchor]

	tick    int
	elapsed float64 // seconds
	dt      float32
	trace   []Trace
}

// New builds a world with cfg.Simulation.Characters characters playing sc.
// A nil scenario plays scenario.Default.
func New(cfg *config.Config, sc *scenario.Scenario) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sc == nil {
		sc = scenario.Default()
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	world := ecs.NewWorld()
	w := &World{
		cfg:      cfg,
		scenario: sc,
		log:      logger.Named("sim"),
		world:    world,
		mapper:   ecs.NewMap3[Control, Look, Anchor](world),
		filter:   ecs.NewFilter3[Control, Look, Anchor](world),
		dt:       cfg.Simulation.DT(),
	}
	w.spawn()

	w.log.Info("world ready",
		zap.String("scenario", sc.Name),
		zap.Int("characters", cfg.Simulation.Characters),
		zap.Int("tick_rate", cfg.Simulation.TickRate),
		zap.String("method", cfg.Damping.Method))
	return w, nil
}

// spawn places characters in a row, each turned a further step around the
// circle so their traces differ.
func (w *World) spawn() {
	n := w.cfg.Simulation.Characters
	settings := character.SettingsFromConfig(w.cfg)
	terrain := character.Arena{Radius: w.cfg.Simulation.ArenaRadius}
	charLog := logger.Named("character")

	for i := 0; i < n; i++ {
		yaw := math.WrapAngle(2 * math.Pi * float32(i) / float32(n))
		spawn := math.Vec3{X: SpawnSpacing * (float32(i) - float32(n-1)/2), Y: 0, Z: 0}

		ctl := Control{Controller: *character.NewController(settings, charLog.With(zap.Int("character", i)))}
		ctl.Terrain = terrain
		ctl.Reset(spawn, yaw)

		look := Look{Boom: *newBoom(w.cfg.Camera)}
		look.Yaw = yaw
		look.Reset(spawn)

		anchor := Anchor{Index: i, Spawn: spawn, YawOffset: yaw}
		w.mapper.NewEntity(&ctl, &look, &anchor)
	}
}

func newBoom(cfg config.CameraConfig) *camera.Boom {
	b := camera.NewBoom()
	b.ArmLength = cfg.ArmLength
	b.Pitch = math.Clamp(cfg.Pitch, b.MinPitch, b.MaxPitch)
	b.YawSensitivity = cfg.YawSensitivity
	b.PitchSensitivity = cfg.PitchSensitivity
	b.LookOffset = cfg.LookOffset
	b.LookHalflife = cfg.LookHalflife
	return b
}

// Step advances every character by dt and appends one trace row each.
func (w *World) Step(dt float32) {
	t := w.Time()
	key := w.scenario.Sample(t)

	query := w.filter.Query()
	for query.Next() {
		ctl, look, anchor := query.Get()

		look.HandleLook(key.Look.X*dt, key.Look.Y*dt)
		intent := ctl.Update(character.Frame{
			StickLeft:     key.StickLeft,
			StickRight:    key.StickRight,
			CameraAzimuth: look.Azimuth(),
			Strafe:        key.Strafe,
			Run:           key.Run,
			DT:            dt,
		})
		look.Follow(ctl.Position, dt)

		w.trace = append(w.trace, newTrace(w.tick, t, uint32(query.Entity().ID()), anchor, &ctl.Controller, &look.Boom, intent.Velocity))
	}

	w.tick++
	w.elapsed += float64(dt)
	if w.tick%w.cfg.Simulation.TickRate == 0 {
		w.log.Debug("tick", zap.Int("tick", w.tick), zap.Float32("time", w.Time()))
	}
}

// Run steps the world ticks times at the configured rate, stopping early if
// ctx is cancelled.
func (w *World) Run(ctx context.Context, ticks int) error {
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			w.log.Warn("run cancelled", zap.Int("tick", w.tick), zap.Error(err))
			return err
		}
		w.Step(w.dt)
	}
	return nil
}

// Tick returns the number of steps taken.
func (w *World) Tick() int {
	return w.tick
}

// Time returns the simulated time in seconds.
func (w *World) Time() float32 {
	return float32(w.elapsed)
}

// Len returns the number of characters.
func (w *World) Len() int {
	return w.cfg.Simulation.Characters
}

// Each calls fn for every character in spawn order.
func (w *World) Each(fn func(anchor Anchor, ctl *character.Controller, look *camera.Boom)) {
	query := w.filter.Query()
	for query.Next() {
		ctl, look, anchor := query.Get()
		fn(*anchor, &ctl.Controller, &look.Boom)
	}
}
