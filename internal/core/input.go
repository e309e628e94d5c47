package core

import "strings"

// Button is one of the six logical buttons of the handheld.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonShoot
	ButtonBack

	buttonCount
)

// Buttons lists every logical button in declaration order.
var Buttons = [...]Button{ButtonUp, ButtonDown, ButtonLeft, ButtonRight, ButtonShoot, ButtonBack}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonShoot:
		return "Shoot"
	case ButtonBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// Valid reports whether b is one of the six known buttons.
func (b Button) Valid() bool {
	return b >= 0 && b < buttonCount
}

// ParseButton maps a button name ("up", "Shoot", ...) to a Button.
func ParseButton(name string) (Button, bool) {
	for _, b := range Buttons {
		if strings.EqualFold(name, b.String()) {
			return b, true
		}
	}
	return 0, false
}

// Snapshot is the held state of every button for a single frame.
type Snapshot struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Shoot bool
	Back  bool
}

// Has returns true if the button is held in this snapshot.
// Unknown buttons are never held.
func (s Snapshot) Has(b Button) bool {
	switch b {
	case ButtonUp:
		return s.Up
	case ButtonDown:
		return s.Down
	case ButtonLeft:
		return s.Left
	case ButtonRight:
		return s.Right
	case ButtonShoot:
		return s.Shoot
	case ButtonBack:
		return s.Back
	}
	return false
}

// Set updates the held state of a button. Unknown buttons are ignored.
func (s *Snapshot) Set(b Button, held bool) {
	switch b {
	case ButtonUp:
		s.Up = held
	case ButtonDown:
		s.Down = held
	case ButtonLeft:
		s.Left = held
	case ButtonRight:
		s.Right = held
	case ButtonShoot:
		s.Shoot = held
	case ButtonBack:
		s.Back = held
	}
}

// JustPressed reports a press-edge: held now but not in the previous frame.
func JustPressed(cur, prev Snapshot, b Button) bool {
	return cur.Has(b) && !prev.Has(b)
}

// EdgeTracker turns asynchronous press/release events into per-tick snapshots.
//
// A press is visible immediately. A release is deferred until the tick that
// follows it has been processed, so a press and release that both land
// between two ticks still count as held for one tick.
type EdgeTracker struct {
	current  Snapshot
	previous Snapshot
	released Snapshot
}

// Press marks the button as held in the current frame.
func (t *EdgeTracker) Press(b Button) {
	t.current.Set(b, true)
}

// Release schedules the button to be cleared after the next tick.
func (t *EdgeTracker) Release(b Button) {
	t.released.Set(b, true)
}

// Current returns the snapshot the next tick should observe.
func (t *EdgeTracker) Current() Snapshot {
	return t.current
}

// Previous returns the snapshot observed by the last tick.
func (t *EdgeTracker) Previous() Snapshot {
	return t.previous
}

// Advance must be called after every tick.
func (t *EdgeTracker) Advance() {
	t.previous = t.current
	for _, b := range Buttons {
		if t.released.Has(b) {
			t.current.Set(b, false)
		}
	}
	t.released = Snapshot{}
}
