package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flouhou/internal/config"
	"github.com/vovakirdan/flouhou/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapButton(t *testing.T) {
	keys := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Button
		wantOK bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ButtonUp, true},
		{"w", runeKey('w'), core.ButtonUp, true},
		{"j", runeKey('j'), core.ButtonDown, true},
		{"a", runeKey('a'), core.ButtonLeft, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ButtonRight, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ButtonShoot, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ButtonShoot, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ButtonBack, true},
		{"unbound", runeKey('q'), 0, false},
		{"quit is not a button", tea.KeyMsg{Type: tea.KeyCtrlC}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Button(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("Button(%q) ok = %v, want %v", tt.msg.String(), ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Button(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapMenuAction(t *testing.T) {
	keys := NewKeyMap(config.Default().Keys)

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('s'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runeKey('?'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := keys.MenuAction(tt.msg); got != tt.want {
				t.Errorf("MenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapCustomBindings(t *testing.T) {
	cfg := config.Default().Keys
	cfg.Shoot = []string{"f"}

	keys := NewKeyMap(cfg)
	if b, ok := keys.Button(runeKey('f')); !ok || b != core.ButtonShoot {
		t.Errorf("Button(f) = %v, %v; want shoot", b, ok)
	}
	if _, ok := keys.Button(tea.KeyMsg{Type: tea.KeyEnter}); ok {
		t.Error("enter should no longer be bound")
	}
}

func TestKeyMapHelpLabels(t *testing.T) {
	keys := NewKeyMap(config.Default().Keys)

	if got := keys.Shoot.Help().Key; got != "space/enter/z" {
		t.Errorf("shoot help key = %q, want %q", got, "space/enter/z")
	}
	if got := keys.Up.Help().Key; got != "↑/w/k" {
		t.Errorf("up help key = %q, want %q", got, "↑/w/k")
	}
	if len(keys.FullHelp()) != 3 {
		t.Errorf("FullHelp() groups = %d, want 3", len(keys.FullHelp()))
	}
}

func TestKeyMapEmptyBindingDisabled(t *testing.T) {
	cfg := config.Default().Keys
	cfg.Screenshot = nil

	keys := NewKeyMap(cfg)
	if keys.Screenshot.Enabled() {
		t.Error("binding without keys should be disabled")
	}
}
