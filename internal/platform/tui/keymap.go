package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flouhou/internal/config"
	"github.com/vovakirdan/flouhou/internal/core"
)

// KeyMap holds the key bindings for the game and menus.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Shoot      key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
	Help       key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Up:         newBinding(keys.Up, "up"),
		Down:       newBinding(keys.Down, "down"),
		Left:       newBinding(keys.Left, "left"),
		Right:      newBinding(keys.Right, "right"),
		Shoot:      newBinding(keys.Shoot, "shoot / resume"),
		Back:       newBinding(keys.Back, "pause / quit"),
		Screenshot: newBinding(keys.Screenshot, "screenshot"),
		Quit:       newBinding(keys.Quit, "exit"),
		Help:       newBinding([]string{"?"}, "more keys"),
	}
}

func newBinding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keyLabel(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// keyLabel returns a printable name for a key string.
func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shoot, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Shoot, k.Back},
		{k.Screenshot, k.Quit, k.Help},
	}
}

// Binding returns the binding for a game button.
func (k KeyMap) Binding(b core.Button) key.Binding {
	switch b {
	case core.ButtonUp:
		return k.Up
	case core.ButtonDown:
		return k.Down
	case core.ButtonLeft:
		return k.Left
	case core.ButtonRight:
		return k.Right
	case core.ButtonShoot:
		return k.Shoot
	case core.ButtonBack:
		return k.Back
	}
	return key.NewBinding(key.WithDisabled())
}

// Button translates a key message to a game button.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	for _, b := range core.Buttons {
		if key.Matches(msg, k.Binding(b)) {
			return b, true
		}
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MenuAction translates a key to a menu action.
func (k KeyMap) MenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	case key.Matches(msg, k.Shoot):
		return MenuActionSelect
	case key.Matches(msg, k.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
