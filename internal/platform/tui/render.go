package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flouhou/internal/canvas"
	"github.com/vovakirdan/flouhou/internal/host"
)

// Minimum terminal size for the playfield: two pixel rows per line plus the
// HUD and help lines.
const (
	MinWidth  = canvas.Width
	MinHeight = canvas.Height/2 + 2
)

// RenderBitmap converts a bitmap to styled half-block lines.
// Each row is styled as a whole to keep the number of escape sequences low.
func RenderBitmap(b *canvas.Bitmap, style lipgloss.Style) string {
	rows := b.Rows()
	var sb strings.Builder
	sb.Grow(len(rows) * (canvas.Width*3 + 32))
	for i, row := range rows {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(style.Render(row))
	}
	return sb.String()
}

// RenderStatus formats the HUD line shown under the playfield.
func RenderStatus(st host.Status, theme Theme) string {
	sep := theme.HUDSeparator.Render(" │ ")

	hearts := strings.Repeat("♥", st.Lives)
	if st.Lives == 0 {
		hearts = "✕"
	}

	parts := []string{
		theme.HUDLabel.Render("lives ") + theme.HUDValue.Render(hearts),
		theme.HUDLabel.Render("hits ") + theme.HUDValue.Render(fmt.Sprintf("%d", st.Hits)),
		theme.HUDLabel.Render("tick ") + theme.HUDValue.Render(fmt.Sprintf("%d", st.Ticks)),
	}
	if st.Paused {
		parts = append(parts, theme.HUDPaused.Render("PAUSED"))
	}
	return strings.Join(parts, sep)
}

// renderTooSmall returns the message shown when the terminal cannot fit the
// playfield.
func renderTooSmall(width, height int, theme Theme) string {
	msg := fmt.Sprintf("Terminal too small: %dx%d\nneed at least %dx%d",
		width, height, MinWidth, MinHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Warning.Render(msg))
}
