package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flouhou/internal/storage"
)

// Scoreboard layout constants
const (
	maxRuns        = 100 // Max runs to load
	tableMinHeight = 5
)

// ScoreboardView selects which runs the scoreboard lists.
type ScoreboardView int

const (
	ViewTop    ScoreboardView = iota // Best runs by hits
	ViewRecent                       // Most recently finished runs
)

func (v ScoreboardView) String() string {
	if v == ViewRecent {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SwitchView},
		{k.Back, k.Quit},
	}
}

// NewScoreboardKeyMap derives scoreboard bindings from the game bindings.
func NewScoreboardKeyMap(keys KeyMap) ScoreboardKeyMap {
	up, down, back, quit := keys.Up, keys.Down, keys.Back, keys.Quit
	up.SetHelp(up.Help().Key, "scroll up")
	down.SetHelp(down.Help().Key, "scroll down")
	back.SetHelp(back.Help().Key, "back")
	quit.SetHelp(quit.Help().Key, "quit")

	return ScoreboardKeyMap{
		Up:   up,
		Down: down,
		SwitchView: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "top/recent"),
		),
		Back: back,
		Quit: quit,
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store      *storage.Store
	player     string // Filter for the top view; empty lists everyone
	view       ScoreboardView
	runs       []storage.RunRecord
	loadErr    error
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	theme      Theme
	width      int
	height     int
	standalone bool
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, keys KeyMap, theme Theme, width, height int, standalone bool) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:      store,
		keys:       NewScoreboardKeyMap(keys),
		theme:      theme,
		help:       h,
		width:      width,
		height:     height,
		standalone: standalone,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 14},
		{Title: "Hits", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "End", Width: 6},
		{Title: "Date", Width: 13},
	}

	height := m.height - 8 // Leave room for title, help and borders
	if height < tableMinHeight {
		height = tableMinHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the runs for the current view.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.loadErr = nil, nil
	if m.store != nil {
		switch m.view {
		case ViewRecent:
			m.runs, m.loadErr = m.store.RecentRuns(maxRuns)
		default:
			m.runs, m.loadErr = m.store.TopRuns(m.player, maxRuns)
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows.
func runRows(runs []storage.RunRecord) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", r.Hits),
			r.Duration().Round(time.Second).String(),
			r.EndReason,
			r.EndedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.quit()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.quit()

		case key.Matches(msg, m.keys.SwitchView):
			m.view = 1 - m.view
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Translate configured keys to the table's own bindings
			if key.Matches(msg, m.keys.Up) {
				m.table.MoveUp(1)
			} else {
				m.table.MoveDown(1)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(runRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) quit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.standalone && (m.quitting || m.goingBack) {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.MenuTitle.Render(m.view.String()))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Border.Padding(0, 1).Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	if m.width == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	switch {
	case m.store == nil:
		return m.theme.MenuHint.Padding(2, 4).Render("Run history is disabled.")
	case m.loadErr != nil:
		return m.theme.Warning.Padding(2, 4).Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return m.theme.MenuHint.Padding(2, 4).Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen on its own.
func RunScoreboard(deps Deps) error {
	deps = deps.withDefaults()
	model := NewScoreboardModel(
		deps.Store,
		NewKeyMap(deps.Config.Keys),
		NewTheme(deps.Renderer, deps.Config.Display),
		0, 0, true,
	)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
