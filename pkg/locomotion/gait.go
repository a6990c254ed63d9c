package locomotion

import (
	"github.com/Faultbox/learnedmm/pkg/damper"
	"github.com/Faultbox/learnedmm/pkg/math"
)

// DefaultGaitHalflife is how quickly the walk/run blend follows the run button.
const DefaultGaitHalflife = 0.1

// DesiredGait springs the walk (0) / run (1) blend toward the run button.
func DesiredGait(gait damper.Spring, runHeld bool, halflife, dt float32) damper.Spring {
	goal := float32(0)
	if runHeld {
		goal = 1
	}
	return damper.SpringDamperExact(gait, goal, halflife, dt)
}

// BlendSpeeds interpolates walk and run top speeds by the gait value.
// The gait is clamped to [0, 1] so a spring's small undershoot never produces
// speeds outside the configured range.
func BlendSpeeds(walk, run Speeds, gait float32) Speeds {
	g := math.Clamp(gait, 0, 1)
	return Speeds{
		Forward: math.Lerp(walk.Forward, run.Forward, g),
		Side:    math.Lerp(walk.Side, run.Side, g),
		Back:    math.Lerp(walk.Back, run.Back, g),
	}
}
