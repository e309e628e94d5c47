package tui

import (
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flouhou/internal/canvas"
	"github.com/vovakirdan/flouhou/internal/config"
	"github.com/vovakirdan/flouhou/internal/host"
	"github.com/vovakirdan/flouhou/internal/storage"
)

// Deps holds what the front end needs to host games.
type Deps struct {
	Config   config.Config
	Store    *storage.Store     // Optional; runs are not recorded when nil
	Logger   *log.Logger        // Defaults to a discarding logger
	Player   string             // Name recorded with each run
	Renderer *lipgloss.Renderer // Defaults to the stdout renderer
	Sessions *host.Registry     // Optional; live sessions are tracked here

	// ScreenshotDir defaults to the screenshots directory under config.Dir().
	ScreenshotDir string
	Now           func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Renderer == nil {
		d.Renderer = lipgloss.DefaultRenderer()
	}
	if d.ScreenshotDir == "" {
		d.ScreenshotDir = filepath.Join(config.Dir(), "screenshots")
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// saveRun records a finished run. Runs that never ticked are not recorded.
func (d Deps) saveRun(r host.RunResult) {
	if d.Store == nil || r.Ticks == 0 {
		return
	}
	if err := d.Store.SaveResult(r); err != nil {
		d.Logger.Error("could not save run", "run", r.RunID, "error", err)
	}
}

// GameModel is the Bubble Tea model for one game session.
type GameModel struct {
	deps       Deps
	session    *host.Session
	bitmap     *canvas.Bitmap
	keys       KeyMap
	help       help.Model
	theme      Theme
	width      int
	height     int
	notice     string
	standalone bool // Quit the program when the game ends
	done       bool // Game ended from the pause screen or the quit key
	exit       bool // Quit key pressed; leave the application
}

// NewGameModel creates a game model with a fresh session.
// A standalone model quits the program when the game ends; an embedded one
// only reports Done.
func NewGameModel(deps Deps, standalone bool) GameModel {
	deps = deps.withDefaults()

	session := host.NewSession(host.Options{
		Player:   deps.Player,
		Logger:   deps.Logger,
		OnRunEnd: deps.saveRun,
		Now:      deps.Now,
	})
	if deps.Sessions != nil {
		deps.Sessions.Register(session)
	}

	h := help.New()
	h.ShowAll = false

	return GameModel{
		deps:       deps,
		session:    session,
		bitmap:     canvas.NewBitmap(),
		keys:       NewKeyMap(deps.Config.Keys),
		help:       h,
		theme:      NewTheme(deps.Renderer, deps.Config.Display),
		standalone: standalone,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.session.ID(), m.deps.Config.Display.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.exit = true
		return m.finish()

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Terminals report no key releases, so every key message is a tap held
	// for exactly one tick. Auto-repeat keeps a held key pressed.
	if b, ok := m.keys.Button(msg); ok {
		m.session.Handle(host.Press(b))
		m.session.Handle(host.Release(b))
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// Ticks of an earlier session may still be in flight after a restart
	if m.done || msg.Session != m.session.ID() {
		return m, nil
	}

	if m.session.Handle(host.Tick()) {
		return m.finish()
	}
	return m, tickCmd(m.session.ID(), m.deps.Config.Display.TickRate)
}

// finish ends the session and records the current run.
func (m GameModel) finish() (tea.Model, tea.Cmd) {
	m.session.Close()
	if m.deps.Sessions != nil {
		m.deps.Sessions.Unregister(m.session.ID())
	}
	m.done = true
	if m.standalone {
		return m, tea.Quit
	}
	return m, nil
}

// saveScreenshot writes the current frame as a PNG.
func (m *GameModel) saveScreenshot() {
	m.drawFrame()
	path, err := SaveScreenshot(m.deps.ScreenshotDir, m.bitmap, m.deps.Now())
	if err != nil {
		m.deps.Logger.Warn("screenshot failed", "error", err)
		m.notice = "screenshot failed"
		return
	}
	m.deps.Logger.Info("screenshot saved", "path", path)
	m.notice = "saved " + filepath.Base(path)
}

// drawFrame replays the session's last frame onto the bitmap.
func (m GameModel) drawFrame() {
	m.bitmap.Reset()
	m.session.Frame(m.bitmap)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.done && m.standalone {
		return ""
	}
	if m.width > 0 && (m.width < MinWidth || m.height < MinHeight) {
		return renderTooSmall(m.width, m.height, m.theme)
	}

	m.drawFrame()
	screen := RenderBitmap(m.bitmap, m.theme.Screen)

	status := RenderStatus(m.session.Status(), m.theme)
	if m.notice != "" {
		status += m.theme.HUDSeparator.Render(" │ ") + m.theme.HUDLabel.Render(m.notice)
	}

	lines := []string{screen, status}
	if m.deps.Config.Display.ShowHelp {
		lines = append(lines, m.theme.Help.Render(m.help.View(m.keys)))
	}
	view := lipgloss.JoinVertical(lipgloss.Left, lines...)

	if m.width == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// Session returns the hosted session.
func (m GameModel) Session() *host.Session {
	return m.session
}

// Done reports whether the game has ended.
func (m GameModel) Done() bool {
	return m.done
}

// Exit reports whether the player asked to leave the application.
func (m GameModel) Exit() bool {
	return m.exit
}

// Run starts a standalone game program in the current terminal.
func Run(deps Deps) error {
	model := NewGameModel(deps, true)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
