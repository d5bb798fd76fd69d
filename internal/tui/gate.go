package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/keepsake/internal/engine"
	"github.com/sadopc/keepsake/internal/store"
)

// gateModel asks for the secret date until it is given.
type gateModel struct {
	phases  *engine.PhaseController
	journal *journal
	width   int
	height  int

	form *huh.Form
	// Form value as a pointer (survives value copies)
	code *string
}

func newGateModel(phases *engine.PhaseController, j *journal) gateModel {
	code := ""
	g := gateModel{phases: phases, journal: j, code: &code}
	g.form = g.newForm()
	return g
}

func (g *gateModel) setSize(w, h int) {
	g.width = w
	g.height = h
}

func (g gateModel) newForm() *huh.Form {
	*g.code = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(gatePrompt).
				Placeholder(gatePlaceholder).
				CharLimit(8).
				Value(g.code),
		),
	).WithShowHelp(false).WithShowErrors(false)
}

func (g gateModel) Init() tea.Cmd {
	return g.form.Init()
}

func (g gateModel) update(msg tea.Msg) (gateModel, tea.Cmd) {
	form, cmd := g.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		g.form = f
	}

	if g.form.State == huh.StateCompleted {
		return g.submit(*g.code)
	}
	return g, cmd
}

// submit checks a candidate and resets the form for the next try.
func (g gateModel) submit(candidate string) (gateModel, tea.Cmd) {
	err := g.phases.SubmitCode(candidate)
	switch {
	case err == nil:
		g.journal.record(store.KindCode, "ok")
		return g, nil
	case errors.Is(err, engine.ErrWrongCode):
		g.journal.record(store.KindCode, "wrong")
	default:
		g.journal.logger.Error().Err(err).Msg("submit code")
	}

	g.form = g.newForm()
	return g, g.form.Init()
}

func (g gateModel) view(frame int) string {
	style := gateStyle
	offset := 0
	if g.phases.Shaking() {
		style = gateErrorStyle
		// Alternate left and right every frame.
		offset = 2 * (frame % 2)
	}

	card := style.Render(lipgloss.JoinVertical(lipgloss.Center,
		"🐰",
		"",
		g.form.View(),
		"",
		accentStyle.Render(gateButton)+mutedStyle.Render("  (enter)"),
	))
	card = lipgloss.NewStyle().PaddingLeft(offset).Render(card)

	return lipgloss.Place(g.width, g.height, lipgloss.Center, lipgloss.Center, card)
}
