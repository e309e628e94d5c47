package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func updateApp(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", next)
	}
	return am, cmd
}

func TestAppModelFlow(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	down := tea.KeyMsg{Type: tea.KeyDown}
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m := NewAppModel(testDeps(t))
	m, _ = updateApp(t, m, tea.WindowSizeMsg{Width: 200, Height: 60})

	t.Run("scores and back", func(t *testing.T) {
		m, _ := updateApp(t, m, down)
		m, _ = updateApp(t, m, enter)
		if m.screen != screenScores {
			t.Fatalf("screen = %v, want scores", m.screen)
		}
		m, _ = updateApp(t, m, esc)
		if m.screen != screenMenu {
			t.Fatalf("screen = %v, want menu", m.screen)
		}
	})

	t.Run("play and exit", func(t *testing.T) {
		m, cmd := updateApp(t, m, enter)
		if m.screen != screenGame {
			t.Fatalf("screen = %v, want game", m.screen)
		}
		if cmd == nil {
			t.Fatal("starting a game should start ticking")
		}
		if m.game.width != 200 {
			t.Errorf("game width = %d, want the known window width", m.game.width)
		}

		m, cmd = updateApp(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
		if !isQuit(cmd) {
			t.Error("quit key in game should quit the program")
		}
		if m.View() != "" {
			t.Error("quitting app should render nothing")
		}
	})

	t.Run("menu back quits", func(t *testing.T) {
		_, cmd := updateApp(t, m, esc)
		if !isQuit(cmd) {
			t.Error("back on the menu should quit")
		}
	})
}

func TestAppModelReturnsToMenuAfterGame(t *testing.T) {
	m := NewAppModel(testDeps(t))
	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	esc := tea.KeyMsg{Type: tea.KeyEsc}
	m, _ = updateApp(t, m, esc)
	m, _ = updateApp(t, m, TickMsg{Session: m.game.Session().ID()})
	m, _ = updateApp(t, m, TickMsg{Session: m.game.Session().ID()})
	m, _ = updateApp(t, m, esc)
	m, cmd := updateApp(t, m, TickMsg{Session: m.game.Session().ID()})

	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
	if isQuit(cmd) {
		t.Error("ending a game should not quit the program")
	}
}
