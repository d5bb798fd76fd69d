package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sadopc/keepsake/internal/engine"
	"github.com/sadopc/keepsake/internal/store"
)

const nukeZone = "nuke"

var heartShape = []string{
	" ▄███▄   ▄███▄ ",
	"███████ ███████",
	"███████████████",
	" █████████████ ",
	"   █████████   ",
	"     █████     ",
	"       █       ",
}

type gameModel struct {
	game    *engine.Game
	zones   *zone.Manager
	journal *journal
	width   int
	height  int

	bar   progress.Model
	rate  []int
	chart barchart.Model
}

func newGameModel(game *engine.Game, zones *zone.Manager, j *journal) gameModel {
	return gameModel{
		game:    game,
		zones:   zones,
		journal: j,
		bar: progress.New(
			progress.WithGradient(string(colorPrimary), string(colorAccent)),
			progress.WithoutPercentage(),
		),
		chart: barchart.New(40, 8),
	}
}

func (g *gameModel) setSize(w, h int) {
	g.width = w
	g.height = h
	g.bar.Width = max(10, min(60, w-12))
	g.buildChart()
}

func (g gameModel) update(msg tea.Msg) (gameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case journalMsg:
		g.rate = msg.rate
		g.buildChart()
		return g, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Tap) || key.Matches(msg, keys.Enter) {
			return g.tap()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return g, nil
		}
		if z := g.zones.Get(nukeZone); z != nil && z.InBounds(msg) {
			return g.tap()
		}
	}
	return g, nil
}

func (g gameModel) tap() (gameModel, tea.Cmd) {
	if g.game.Progress() >= engine.GameMax {
		return g, nil
	}
	ev := g.game.Register()
	g.journal.record(store.KindTap, fmt.Sprint(ev.Progress))
	return g, tea.Batch(
		func() tea.Msg { return tapMsg{event: ev} },
		g.journal.load(),
	)
}

func (g *gameModel) buildChart() {
	chartWidth := max(20, min(60, g.width-12))
	g.chart = barchart.New(chartWidth, 8)

	bars := make([]barchart.BarData, len(g.rate))
	style := lipgloss.NewStyle().Foreground(colorAccent)
	for i, n := range g.rate {
		bars[i] = barchart.BarData{
			Label: fmt.Sprintf("-%ds", len(g.rate)-1-i),
			Values: []barchart.BarValue{{
				Name:  "taps",
				Value: float64(n),
				Style: style,
			}},
		}
	}
	g.chart.PushAll(bars)
	g.chart.Draw()
}

func (g gameModel) view(frame int) string {
	w := g.width - 4
	ev := g.game.Last()

	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(gameTitle)

	heart := renderHeart(ev.Progress)
	bar := g.bar.ViewAs(float64(ev.Progress) / float64(engine.GameMax))
	pct := highlightStyle.Render(fmt.Sprintf("%3d%%", ev.Progress))

	// The button grows with the fill.
	button := nukeButtonStyle.
		Padding(1, 4+ev.Progress/25).
		Render(ev.Feedback())
	button = g.zones.Mark(nukeZone, button)

	var chart string
	if len(g.rate) > 0 {
		chart = lipgloss.JoinVertical(lipgloss.Left,
			mutedStyle.Render("taps per second"),
			g.chart.View(),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		heart,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, bar, " ", pct),
		"",
		button,
		subtitleStyle.Render(gameHint),
		"",
		chart,
	)

	if g.game.Shaking() {
		content = lipgloss.NewStyle().PaddingLeft(frame % 2).Render(content)
	}
	return activePanelStyle.Width(w).Render(content)
}

// renderHeart draws the heart outline filled from the bottom up to
// progress percent.
func renderHeart(progressPct int) string {
	filled := len(heartShape) * progressPct / engine.GameMax
	fill := lipgloss.NewStyle().Foreground(colorAccent)
	empty := lipgloss.NewStyle().Foreground(colorSubtle)

	rows := make([]string, len(heartShape))
	for i, line := range heartShape {
		fromBottom := len(heartShape) - i
		if fromBottom <= filled {
			rows[i] = fill.Render(line)
		} else {
			rows[i] = empty.Render(strings.ReplaceAll(line, "█", "░"))
		}
	}
	return strings.Join(rows, "\n")
}
