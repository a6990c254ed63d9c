package sim

import (
	"github.com/Faultbox/learnedmm/internal/camera"
	"github.com/Faultbox/learnedmm/internal/character"
	"github.com/Faultbox/learnedmm/pkg/math"
)

// Control is the character a scenario drives.
type Control struct {
	character.Controller
}

// Look is the camera boom following the character.
type Look struct {
	camera.Boom
}

// Anchor records where and how a character was spawned.
type Anchor struct {
	Index     int
	Spawn     math.Vec3
	YawOffset float32 // initial camera and facing yaw
}
