package tui

import (
	"github.com/charmbracelet/lipgloss"
)

type finaleModel struct {
	width  int
	height int
}

func (f *finaleModel) setSize(w, h int) {
	f.width = w
	f.height = h
}

func (f finaleModel) view() string {
	w := min(72, max(30, f.width-8))
	body := lipgloss.NewStyle().Width(w - 8)

	rows := []string{
		lipgloss.PlaceHorizontal(w-8, lipgloss.Center, "❤️"),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(colorError).Render(letterGreeting),
		"",
	}
	for i, p := range letterParagraphs {
		if i == 0 {
			rows = append(rows, body.Bold(true).Render(p), "")
			continue
		}
		rows = append(rows, body.Render(p), "")
	}
	rows = append(rows,
		lipgloss.PlaceHorizontal(w-8, lipgloss.Right, lipgloss.NewStyle().Bold(true).Render(letterSignoff)),
	)

	letter := letterStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, letter)
}
