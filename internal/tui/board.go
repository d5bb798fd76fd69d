package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sadopc/keepsake/internal/engine"
	"github.com/sadopc/keepsake/internal/store"
)

// boardModel is a grid of reveal widgets of one kind.
type boardModel struct {
	kind    engine.RevealKind
	items   []*engine.Reveal
	zones   *zone.Manager
	journal *journal
	width   int
	height  int

	cursor int
}

func newBoardModel(kind engine.RevealKind, board *engine.RevealBoard, zones *zone.Manager, j *journal) boardModel {
	return boardModel{
		kind:    kind,
		items:   board.Of(kind),
		zones:   zones,
		journal: j,
	}
}

func (b *boardModel) setSize(w, h int) {
	b.width = w
	b.height = h
}

// columns is how many cells fit across the panel.
func (b boardModel) columns() int {
	cw := lipgloss.Width(cellStyle.Render(""))
	n := (b.width - 8) / cw
	return max(1, n)
}

func (b boardModel) update(msg tea.Msg, origin func(x, y int) engine.Point) (boardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cols := b.columns()
		switch {
		case key.Matches(msg, keys.Left):
			if b.cursor > 0 {
				b.cursor--
			}
		case key.Matches(msg, keys.Right):
			if b.cursor < len(b.items)-1 {
				b.cursor++
			}
		case key.Matches(msg, keys.Up):
			if b.cursor-cols >= 0 {
				b.cursor -= cols
			}
		case key.Matches(msg, keys.Down):
			if b.cursor+cols < len(b.items) {
				b.cursor += cols
			}
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Tap):
			return b.activate(b.cursor, b.cellOrigin(b.cursor, origin))
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return b, nil
		}
		for i, r := range b.items {
			if z := b.zones.Get(r.ID); z != nil && z.InBounds(msg) {
				b.cursor = i
				return b.activate(i, origin(msg.X, msg.Y))
			}
		}
	}
	return b, nil
}

// cellOrigin is the centre of a cell on screen, or the default burst
// origin before the first render.
func (b boardModel) cellOrigin(i int, origin func(x, y int) engine.Point) engine.Point {
	if i < 0 || i >= len(b.items) {
		return engine.DefaultOrigin
	}
	z := b.zones.Get(b.items[i].ID)
	if z == nil || z.IsZero() {
		return engine.DefaultOrigin
	}
	return origin((z.StartX+z.EndX)/2, (z.StartY+z.EndY)/2)
}

func (b boardModel) activate(i int, at engine.Point) (boardModel, tea.Cmd) {
	if i < 0 || i >= len(b.items) {
		return b, nil
	}
	r := b.items[i]
	if err := r.Activate(at); err != nil {
		if errors.Is(err, engine.ErrAlreadyRevealed) {
			return b, nil
		}
		b.journal.logger.Error().Err(err).Str("reveal", r.ID).Msg("activate")
		return b, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Reveal error: %v", err), isError: true}
		}
	}
	b.journal.record(store.KindReveal, r.ID)
	id := r.ID
	return b, func() tea.Msg { return revealedMsg{id: id} }
}

func (b boardModel) view() string {
	w := b.width - 4

	title, hint := bubblesTitle, bubblesHint
	titleColor := colorPrimary
	if b.kind == engine.RevealFlower {
		title, hint = gardenTitle, gardenHint
		titleColor = colorSecondary
	}

	cols := b.columns()
	var rows []string
	var row []string
	for i, r := range b.items {
		row = append(row, b.zones.Mark(r.ID, b.renderCell(r, i == b.cursor)))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	header := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(titleColor).Render(title),
		subtitleStyle.Render(hint),
	)
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	progress := mutedStyle.Render(formatRevealed(b.revealed(), len(b.items)))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center,
		header, "", grid, "", progress,
	))
}

func (b boardModel) renderCell(r *engine.Reveal, focused bool) string {
	style := cellStyle
	if focused {
		style = focusedCellStyle
	}
	if !r.Revealed() {
		return style.Render(r.Placeholder())
	}

	color := lipgloss.Color(r.Color)
	if r.Kind == engine.RevealFlower {
		return style.Render(lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(color).Render("🌹"),
			lipgloss.NewStyle().Foreground(colorFg).Render(r.Content),
		))
	}
	content := r.Content
	if r.Rotate != 0 {
		content = "↻ " + content
	}
	return style.Render(lipgloss.NewStyle().Foreground(color).Render(content))
}

func (b boardModel) revealed() int {
	n := 0
	for _, r := range b.items {
		if r.Revealed() {
			n++
		}
	}
	return n
}

func formatRevealed(n, total int) string {
	if n == total {
		return "All revealed 💖"
	}
	return fmt.Sprintf("%d of %d revealed", n, total)
}
