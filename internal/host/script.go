package host

import (
	"context"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flouhou/internal/core"
)

// Script is a recorded input sequence for headless runs.
//
//	ticks: 200
//	events:
//	  - tick: 0
//	    press: [shoot, up]
//	  - tick: 3
//	    release: [up]
type Script struct {
	Ticks int          `yaml:"ticks"`
	Steps []ScriptStep `yaml:"events"`
}

// ScriptStep lists the buttons pressed and released just before a tick.
type ScriptStep struct {
	Tick    int      `yaml:"tick"`
	Press   []string `yaml:"press"`
	Release []string `yaml:"release"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("host: read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("host: script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript parses and validates script YAML.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(s.Steps, func(i, j int) bool {
		return s.Steps[i].Tick < s.Steps[j].Tick
	})
	return &s, nil
}

// Validate checks tick bounds and button names.
func (s *Script) Validate() error {
	if s.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", s.Ticks)
	}
	for i, step := range s.Steps {
		if step.Tick < 0 || step.Tick >= s.Ticks {
			return fmt.Errorf("event %d: tick %d outside [0,%d)", i, step.Tick, s.Ticks)
		}
		for _, name := range append(append([]string{}, step.Press...), step.Release...) {
			if _, ok := core.ParseButton(name); !ok {
				return fmt.Errorf("event %d: unknown button %q", i, name)
			}
		}
	}
	return nil
}

// Events returns the serialized stream: for every tick, that tick's presses,
// then its releases, then the tick itself.
func (s *Script) Events() []Event {
	events := make([]Event, 0, s.Ticks)
	next := 0
	for t := range s.Ticks {
		for next < len(s.Steps) && s.Steps[next].Tick == t {
			step := s.Steps[next]
			for _, name := range step.Press {
				b, _ := core.ParseButton(name)
				events = append(events, Press(b))
			}
			for _, name := range step.Release {
				b, _ := core.ParseButton(name)
				events = append(events, Release(b))
			}
			next++
		}
		events = append(events, Tick())
	}
	return events
}

// Stream sends the script's events on a new channel and closes it when done
// or when ctx is cancelled.
func (s *Script) Stream(ctx context.Context) <-chan Event {
	out := make(chan Event)
	events := s.Events()
	go func() {
		defer close(out)
		for _, evt := range events {
			select {
			case out <- evt:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
