package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sadopc/keepsake/internal/engine"
)

const pointerGlyph = "♡"

// overlay draws live entities and the pointer on top of a rendered frame.
// Entities move linearly from their spawn point by their displacement over
// their lifetime.
func overlay(frame string, entities []engine.Entity, pointer engine.Point, now time.Time, width, height int) string {
	if width <= 0 || height <= 0 {
		return frame
	}
	lines := strings.Split(frame, "\n")

	for _, e := range entities {
		age := e.Age(now)
		at := engine.Point{
			X: e.Payload.X + e.Payload.DX*age,
			Y: e.Payload.Y + e.Payload.DY*age,
		}
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Payload.Color)).Render(e.Payload.Glyph)
		lines = place(lines, at, glyph, width, height)
	}

	if pointer.X >= 0 && pointer.Y >= 0 {
		lines = place(lines, pointer, accentStyle.Render(pointerGlyph), width, height)
	}
	return strings.Join(lines, "\n")
}

func place(lines []string, at engine.Point, glyph string, width, height int) []string {
	col, row := cell(at, width, height)
	gw := ansi.StringWidth(glyph)
	if row < 0 || row >= height || col < 0 || col+gw > width {
		return lines
	}
	for len(lines) <= row {
		lines = append(lines, "")
	}
	lines[row] = splice(lines[row], col, glyph, gw)
	return lines
}

// splice replaces the cells [col, col+gw) of line with glyph.
func splice(line string, col int, glyph string, gw int) string {
	if w := ansi.StringWidth(line); w < col {
		line += strings.Repeat(" ", col-w)
	}
	left := ansi.Truncate(line, col, "")
	right := ansi.TruncateLeft(line, col+gw, "")
	return left + glyph + right
}
