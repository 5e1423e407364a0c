// Package scenario loads and replays scripted button sessions.
//
// A scenario is a YAML file naming a platform, the initial button
// options and a list of timed steps:
//
//	platform:
//	  os: android
//	  apiLevel: 29
//	fab:
//	  buttonColor: "#2196f3"
//	steps:
//	  - at: 100ms
//	    visible: false
//	  - at: 400ms
//	    visible: true
//	    offset: 48
//	  - at: 800ms
//	    tap: true
//	duration: 1s
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/fab/pkg/fab"
	"github.com/go-drift/fab/pkg/platform"
)

// defaultTail is how long a scenario keeps running after its last step
// when no duration is given.
const defaultTail = 500 * time.Millisecond

// Scenario is a scripted session.
type Scenario struct {
	Platform *Platform   `yaml:"platform,omitempty"`
	Viewport Viewport    `yaml:"viewport,omitempty"`
	FAB      fab.Options `yaml:"fab,omitempty"`
	Steps    []Step      `yaml:"steps"`
	Duration Duration    `yaml:"duration,omitempty"`
}

// Platform is the simulated host.
type Platform struct {
	OS       string `yaml:"os"`
	APILevel int    `yaml:"apiLevel,omitempty"`
	Release  string `yaml:"release,omitempty"`
}

// Identity validates the platform and converts it.
func (p Platform) Identity() (platform.Identity, error) {
	values := map[string]string{
		platform.EnvOS:      p.OS,
		platform.EnvRelease: p.Release,
	}
	if p.APILevel != 0 {
		values[platform.EnvAPILevel] = strconv.Itoa(p.APILevel)
	}
	id, err := platform.FromEnv(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	})
	if err != nil {
		return platform.Identity{}, err
	}
	if id.OS == "" {
		return platform.Identity{}, errors.New("platform os is required")
	}
	return id, nil
}

// Viewport is the logical screen size. Zero fields use a phone-sized
// default.
type Viewport struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Step changes the button at a point in time. Several changes in one
// step apply together, before the frame at that time.
type Step struct {
	At      Duration `yaml:"at"`
	Visible *bool    `yaml:"visible,omitempty"`
	Offset  *float64 `yaml:"offset,omitempty"`
	Tap     bool     `yaml:"tap,omitempty"`
}

// String describes the step's changes.
func (s Step) String() string {
	var parts []string
	if s.Visible != nil {
		if *s.Visible {
			parts = append(parts, "show")
		} else {
			parts = append(parts, "hide")
		}
	}
	if s.Offset != nil {
		parts = append(parts, "offset="+strconv.FormatFloat(*s.Offset, 'f', -1, 64))
	}
	if s.Tap {
		parts = append(parts, "tap")
	}
	if len(parts) == 0 {
		return "noop"
	}
	return strings.Join(parts, " ")
}

// Duration is a time.Duration written as a Go duration string ("250ms").
type Duration time.Duration

// UnmarshalYAML parses a duration string. Bare integers are milliseconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	if ms, err := strconv.Atoi(node.Value); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", node.Line, node.Value)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the platform, the options and the step times.
func (s *Scenario) Validate() error {
	if s.Platform != nil {
		if _, err := s.Platform.Identity(); err != nil {
			return err
		}
	}
	if err := s.FAB.Validate(); err != nil {
		return err
	}
	if s.Viewport.Width < 0 || s.Viewport.Height < 0 {
		return errors.New("viewport size must not be negative")
	}
	for i, step := range s.Steps {
		if step.At < 0 {
			return fmt.Errorf("step %d: negative time %v", i+1, step.At.Std())
		}
		if i > 0 && step.At < s.Steps[i-1].At {
			return fmt.Errorf("step %d: steps must be in time order", i+1)
		}
	}
	if s.Duration < 0 {
		return errors.New("duration must not be negative")
	}
	return nil
}

// Length returns how long the scenario runs.
func (s *Scenario) Length() time.Duration {
	if s.Duration > 0 {
		return s.Duration.Std()
	}
	if len(s.Steps) == 0 {
		return defaultTail
	}
	return s.Steps[len(s.Steps)-1].At.Std() + defaultTail
}
