package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flouhou/internal/host"
)

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// AppModel manages the full flow: menu -> game or scoreboard -> menu.
// It is the top-level model for local and SSH sessions.
type AppModel struct {
	deps     Deps
	keys     KeyMap
	theme    Theme
	width    int
	height   int
	screen   appScreen
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewAppModel creates the application model, starting at the menu.
func NewAppModel(deps Deps) AppModel {
	deps = deps.withDefaults()
	m := AppModel{
		deps:  deps,
		keys:  NewKeyMap(deps.Config.Keys),
		theme: NewTheme(deps.Renderer, deps.Config.Display),
	}
	m.menu = NewMenuModel(m.keys, m.theme, m.bestHits())
	return m
}

// bestHits returns the player's best run, or -1 without run history.
func (m AppModel) bestHits() int {
	if m.deps.Store == nil {
		return -1
	}
	best, err := m.deps.Store.BestHits(m.deps.Player)
	if err != nil {
		m.deps.Logger.Warn("could not load best hits", "error", err)
		return -1
	}
	return best
}

// Init initializes the application.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		m.game = resized(NewGameModel(m.deps, false), m.width, m.height)
		m.screen = screenGame
		return m, m.game.Init()

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.deps.Store, m.keys, m.theme, m.width, m.height, false)
		m.screen = screenScores
		return m, m.scores.Init()

	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	if m.game.Exit() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.Done() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Stray ticks of a finished game
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m AppModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = resized(NewMenuModel(m.keys, m.theme, m.bestHits()), m.width, m.height)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// resized hands the known window size to a freshly created model.
func resized[M tea.Model](model M, width, height int) M {
	if width == 0 {
		return model
	}
	next, _ := model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	if m, ok := next.(M); ok {
		return m
	}
	return model
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunApp runs the menu-driven application in the current terminal.
// Games still open when the program ends are closed so their runs are recorded.
func RunApp(deps Deps) error {
	if deps.Sessions == nil {
		deps.Sessions = host.NewRegistry()
	}
	model := NewAppModel(deps)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	deps.Sessions.CloseAll()
	return err
}
