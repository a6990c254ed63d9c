// Package character drives one simulated character from per-frame stick input.
package character

import (
	"github.com/Faultbox/learnedmm/internal/config"
	"github.com/Faultbox/learnedmm/pkg/damper"
	"github.com/Faultbox/learnedmm/pkg/locomotion"
	"github.com/Faultbox/learnedmm/pkg/math"
)

// Frame is one tick of player input as a controller sees it.
type Frame struct {
	StickLeft     math.Vec2
	StickRight    math.Vec2
	CameraAzimuth float32 // radians
	Strafe        bool
	Run           bool
	DT            float32 // seconds
}

// Settings are the tuning values a controller reads every frame.
type Settings struct {
	Walk             locomotion.Speeds
	Run              locomotion.Speeds
	Strafe           bool // strafe regardless of input
	GaitHalflife     float32
	RotationHalflife float32
	Velocity         damper.Smoother
}

// DefaultSettings returns the settings of config.Default.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}

// SettingsFromConfig extracts controller settings from a loaded config.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Walk:             cfg.Locomotion.Walk,
		Run:              cfg.Locomotion.Run,
		Strafe:           cfg.Locomotion.Strafe,
		GaitHalflife:     cfg.Locomotion.GaitHalflife,
		RotationHalflife: cfg.Damping.RotationHalflife,
		Velocity:         cfg.Damping.Smoother(),
	}
}

// TerrainQuery provides terrain information for character movement.
type TerrainQuery interface {
	// IsWalkable returns true if the given world position is walkable.
	IsWalkable(worldX, worldZ float32) bool
	// GetHeight returns the terrain height at the given world position.
	GetHeight(worldX, worldZ float32) float32
}

// Arena is flat ground bounded by a circle around the origin.
// A zero Radius leaves it unbounded.
type Arena struct {
	Radius float32
	Height float32
}

// IsWalkable reports whether (worldX, worldZ) lies inside the arena.
func (a Arena) IsWalkable(worldX, worldZ float32) bool {
	if a.Radius <= 0 {
		return true
	}
	return worldX*worldX+worldZ*worldZ <= a.Radius*a.Radius
}

// GetHeight returns the arena floor height.
func (a Arena) GetHeight(_, _ float32) float32 {
	return a.Height
}
