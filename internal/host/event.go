// Package host runs a flouhou game behind a single ordered event stream.
// Timers and input devices produce events concurrently; a Session applies
// them one at a time and records the frame drawn after every tick.
package host

import (
	"fmt"

	"github.com/vovakirdan/flouhou/internal/core"
)

// EventKind distinguishes tick events from input events.
type EventKind int

const (
	EventTick EventKind = iota
	EventInput
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventInput:
		return "input"
	default:
		return "unknown"
	}
}

// Event is one item of the serialized stream.
type Event struct {
	Kind    EventKind
	Button  core.Button // Input events only
	Pressed bool        // Input events only; false means released
}

// Tick returns a tick event.
func Tick() Event {
	return Event{Kind: EventTick}
}

// Press returns a press event for b.
func Press(b core.Button) Event {
	return Event{Kind: EventInput, Button: b, Pressed: true}
}

// Release returns a release event for b.
func Release(b core.Button) Event {
	return Event{Kind: EventInput, Button: b}
}

func (e Event) String() string {
	if e.Kind != EventInput {
		return e.Kind.String()
	}
	if e.Pressed {
		return fmt.Sprintf("press %s", e.Button)
	}
	return fmt.Sprintf("release %s", e.Button)
}
