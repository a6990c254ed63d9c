package scenario

import "github.com/Faultbox/learnedmm/pkg/math"

// Default returns the scenario locosim plays when none is configured:
// walk away from the camera, turn, run, strafe while looking around, stop.
func Default() *Scenario {
	forward := math.Vec2{X: 0, Y: 1}
	right := math.Vec2{X: 1, Y: 0}
	return &Scenario{
		Name: "tour",
		Keys: []Key{
			{At: 0},
			{At: 0.5, StickLeft: forward},
			{At: 2.5, StickLeft: right},
			{At: 4, StickLeft: right, Run: true},
			{At: 6, StickLeft: forward, Strafe: true, Look: math.Vec2{X: 0.8, Y: 0}},
			{At: 8, StickLeft: math.Vec2{X: -0.7, Y: -0.7}, StickRight: right, Strafe: true},
			{At: 9, StickLeft: math.Vec2{}},
		},
	}
}
