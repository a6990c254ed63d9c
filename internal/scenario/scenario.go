// Package scenario describes scripted controller input over time.
//
// A scenario is a list of keys. Each key holds its input from its At time
// until the next key, so a file reads like a list of button presses:
//
//	name: walk-then-run
//	keys:
//	  - at: 0
//	    stick_left: {x: 0, y: 1}
//	  - at: 2
//	    stick_left: {x: 0, y: 1}
//	    run: true
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/learnedmm/pkg/math"
)

// ErrInvalid marks a scenario that cannot be played back.
var ErrInvalid = errors.New("invalid scenario")

// Key is the input held from At (seconds) until the next key.
type Key struct {
	At         float32   `yaml:"at"`
	StickLeft  math.Vec2 `yaml:"stick_left"`
	StickRight math.Vec2 `yaml:"stick_right"`
	Look       math.Vec2 `yaml:"look"` // camera yaw/pitch rate, radians per second
	Strafe     bool      `yaml:"strafe"`
	Run        bool      `yaml:"run"`
}

// Scenario is a named input timeline.
type Scenario struct {
	Name string `yaml:"name"`
	Keys []Key  `yaml:"keys"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that keys are in time order and inputs are in range.
func (s *Scenario) Validate() error {
	if len(s.Keys) == 0 {
		return fmt.Errorf("%w: no keys", ErrInvalid)
	}

	prev := float32(0)
	for i, k := range s.Keys {
		if !finite(k.At) || k.At < 0 {
			return fmt.Errorf("%w: key %d: time %v must be a non-negative number", ErrInvalid, i, k.At)
		}
		if k.At < prev {
			return fmt.Errorf("%w: key %d: time %v is before previous key at %v", ErrInvalid, i, k.At, prev)
		}
		prev = k.At

		if !stickInRange(k.StickLeft) {
			return fmt.Errorf("%w: key %d: stick_left %v outside [-1, 1]", ErrInvalid, i, k.StickLeft)
		}
		if !stickInRange(k.StickRight) {
			return fmt.Errorf("%w: key %d: stick_right %v outside [-1, 1]", ErrInvalid, i, k.StickRight)
		}
		if !finite(k.Look.X) || !finite(k.Look.Y) {
			return fmt.Errorf("%w: key %d: look rate %v is not finite", ErrInvalid, i, k.Look)
		}
	}
	return nil
}

// Sample returns the key in effect at time t. Before the first key the input
// is neutral.
func (s *Scenario) Sample(t float32) Key {
	var current Key
	for _, k := range s.Keys {
		if k.At > t {
			break
		}
		current = k
	}
	current.At = t
	return current
}

// Duration returns the time of the last key.
func (s *Scenario) Duration() float32 {
	if len(s.Keys) == 0 {
		return 0
	}
	return s.Keys[len(s.Keys)-1].At
}

func finite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

func stickInRange(v math.Vec2) bool {
	return finite(v.X) && finite(v.Y) &&
		v.X >= -1 && v.X <= 1 && v.Y >= -1 && v.Y <= 1
}
