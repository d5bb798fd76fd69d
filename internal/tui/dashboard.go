package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/keepsake/internal/engine"
	"github.com/sadopc/keepsake/internal/store"
)

type dashboardModel struct {
	ticker *engine.Ticker
	board  *engine.RevealBoard
	width  int
	height int

	summary store.Summary
	recent  []store.Event
}

func newDashboardModel(ticker *engine.Ticker, board *engine.RevealBoard) dashboardModel {
	return dashboardModel{ticker: ticker, board: board}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d dashboardModel) update(msg journalMsg) dashboardModel {
	d.summary = msg.summary
	d.recent = msg.recent
	return d
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	return lipgloss.JoinVertical(lipgloss.Left,
		d.renderCounterPanel(contentWidth),
		d.renderSummaryPanel(contentWidth),
		d.renderRecentPanel(contentWidth),
	)
}

func (d dashboardModel) renderCounterPanel(w int) string {
	years, clock := formatSnapshot(d.ticker.Current())

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Width(w-6).Align(lipgloss.Center).Render(dashboardTitle),
		"",
		highlightStyle.Render(counterTitle),
		counterStyle.Width(w-6).Render(years),
		counterStyle.Width(w-6).Render(clock),
	)
	return activePanelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderSummaryPanel(w int) string {
	title := titleStyle.Render("Our Session")

	bubbles := len(d.board.Of(engine.RevealBubble))
	flowers := len(d.board.Of(engine.RevealFlower))

	unlocked := mutedStyle.Render("not yet")
	if d.summary.UnlockedAt != nil {
		unlocked = highlightStyle.Render(d.summary.UnlockedAt.Format("15:04:05"))
	}

	rows := []string{
		title,
		fmt.Sprintf("  %-18s %s", "Gate opened", unlocked),
		fmt.Sprintf("  %-18s %d (%d wrong)", "Guesses", d.summary.Attempts, d.summary.WrongAttempts),
		fmt.Sprintf("  %-18s %d/%d", "Bubbles popped", d.board.Revealed(engine.RevealBubble), bubbles),
		fmt.Sprintf("  %-18s %d/%d", "Flowers bloomed", d.board.Revealed(engine.RevealFlower), flowers),
		fmt.Sprintf("  %-18s %d", "Heart taps", d.summary.Taps),
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderRecentPanel(w int) string {
	title := titleStyle.Render("Recent Moments")
	if len(d.recent) == 0 {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("Nothing yet"),
		))
	}

	rows := []string{title}
	for _, e := range d.recent {
		rows = append(rows, fmt.Sprintf("  %s  %-7s %s",
			e.At.Local().Format("15:04:05"), e.Kind, describeEvent(e)))
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func describeEvent(e store.Event) string {
	switch e.Kind {
	case store.KindCode:
		if e.Detail == "ok" {
			return successStyle.Render("the gate opened")
		}
		return errorStyle.Render("wrong date")
	case store.KindPhase:
		return "now " + strings.ToLower(e.Detail)
	case store.KindReveal:
		return "revealed " + e.Detail
	case store.KindTap:
		return "heart at " + e.Detail + "%"
	case store.KindAudio:
		return "music " + e.Detail
	}
	return e.Detail
}
