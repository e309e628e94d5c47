package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flouhou/internal/config"
)

// Theme contains the visual styles of the front end.
type Theme struct {
	// Playfield: ink pixels on a lit background, like the handheld's LCD.
	Screen lipgloss.Style
	Border lipgloss.Style

	// HUD styles
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDPaused    lipgloss.Style

	Help    lipgloss.Style
	Warning lipgloss.Style

	// Menu styles
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuHint       lipgloss.Style
}

// NewTheme builds the theme for a renderer using the configured LCD colors.
// A nil renderer uses the default one.
func NewTheme(r *lipgloss.Renderer, display config.DisplayConfig) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	ink := lipgloss.Color(display.Ink)
	backlight := lipgloss.Color(display.Backlight)

	return Theme{
		Screen: r.NewStyle().Foreground(ink).Background(backlight),
		Border: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),

		HUDLabel:     r.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		HUDSeparator: r.NewStyle().Foreground(lipgloss.Color("240")),
		HUDPaused:    r.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		Help:    r.NewStyle().Foreground(lipgloss.Color("241")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),

		MenuTitle:      r.NewStyle().Foreground(backlight).Bold(true),
		MenuItemNormal: r.NewStyle().Foreground(lipgloss.Color("250")),
		MenuItemActive: r.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		MenuHint:       r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
