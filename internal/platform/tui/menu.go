package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Choice MenuChoice
	Title  string
	Hint   string
}

var menuItems = []MenuItem{
	{ChoicePlay, "Play", "dodge the laughing face, shoot it down"},
	{ChoiceScores, "High scores", "best runs recorded on this machine"},
	{ChoiceQuit, "Quit", "leave flouhou"},
}

const menuTitle = "F L O U H O U"

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	keys     KeyMap
	theme    Theme
	selected MenuChoice
	best     int // Best hits of the current player, -1 when unknown
}

// NewMenuModel creates a new menu model.
func NewMenuModel(keys KeyMap, theme Theme, best int) MenuModel {
	return MenuModel{keys: keys, theme: theme, best: best}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.selected = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = menuItems[m.cursor].Choice
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.MenuTitle.Render(menuTitle))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(m.theme.MenuItemActive.Render("> " + item.Title + "  "))
		} else {
			b.WriteString(m.theme.MenuItemNormal.Render("  " + item.Title + "  "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.MenuHint.Render(menuItems[m.cursor].Hint))
	b.WriteString("\n")
	if m.best >= 0 {
		b.WriteString(m.theme.HUDLabel.Render("best: ") + m.theme.HUDValue.Render(strconv.Itoa(m.best)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.keys.Up.Help().Key + "/" + m.keys.Down.Help().Key +
		": navigate  " + m.keys.Shoot.Help().Key + ": select  " + m.keys.Back.Help().Key + ": quit"))

	if m.width == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the confirmed choice, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}
