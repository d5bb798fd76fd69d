package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"
	"github.com/sadopc/keepsake/internal/audio"
	"github.com/sadopc/keepsake/internal/engine"
	"github.com/sadopc/keepsake/internal/store"
)

// Music is the music control shown in the header.
type Music interface {
	Toggle() audio.State
	State() audio.State
	Pending() bool
}

// App is the root Bubble Tea model.
type App struct {
	session *engine.Session
	music   Music
	journal *journal
	zones   *zone.Manager
	width   int
	height  int

	activeView viewState
	phase      engine.Phase
	frame      int
	showHelp   bool

	gate      gateModel
	dashboard dashboardModel
	bubbles   boardModel
	garden    boardModel
	game      gameModel
	finale    finaleModel

	help      help.Model
	status    string
	statusErr bool
}

// NewApp builds the UI for a session. music and st may be nil.
func NewApp(s *engine.Session, music Music, st *store.Store, logger zerolog.Logger) App {
	j := &journal{store: st, clock: s.Clock, logger: logger}
	zones := zone.New()

	s.Phases.OnTransition(func(_, to engine.Phase) {
		j.record(store.KindPhase, to.String())
		switch to {
		case engine.PhaseUnlocked:
			j.mark(store.MarkUnlocked)
		case engine.PhaseEnding:
			j.mark(store.MarkFinale)
		}
	})

	h := help.New()
	h.ShowAll = false

	return App{
		session:    s,
		music:      music,
		journal:    j,
		zones:      zones,
		activeView: viewGate,
		phase:      s.Phases.Phase(),
		gate:       newGateModel(s.Phases, j),
		dashboard:  newDashboardModel(s.Ticker, s.Board),
		bubbles:    newBoardModel(engine.RevealBubble, s.Board, zones, j),
		garden:     newBoardModel(engine.RevealFlower, s.Board, zones, j),
		game:       newGameModel(s.Game, zones, j),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.gate.Init(),
		a.journal.load(),
		tickCmd(),
		frameCmd(),
	)
}

// Close releases the mouse zone tracker.
func (a App) Close() {
	a.zones.Close()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.gate.setSize(a.width, contentHeight)
		a.dashboard.setSize(a.width, contentHeight)
		a.bubbles.setSize(a.width, contentHeight)
		a.garden.setSize(a.width, contentHeight)
		a.game.setSize(a.width, contentHeight)
		a.finale.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// The music key is a manual choice, not an interaction that may
		// start the autoplay retry.
		if a.activeView != viewGate && key.Matches(msg, keys.Music) {
			a.toggleMusic()
			return a, nil
		}
		a.session.Hub.Publish()

		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// The gate form captures every other key.
		if a.activeView == viewGate {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		}

		if a.activeView == viewFinale {
			return a, nil
		}

		switch {
		case key.Matches(msg, keys.Back):
			if a.activeView == viewDashboard {
				return a, nil
			}
			a.activeView = viewDashboard
			return a, a.journal.load()
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, a.journal.load()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewBubbles
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewGarden
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewGame
			return a, a.journal.load()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % tabCount
			return a, a.journal.load()
		}

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionMotion:
			a.session.Trail.Move(a.origin(msg.X, msg.Y))
			return a, nil
		case tea.MouseActionPress:
			a.session.Hub.Publish()
		}

	case frameMsg:
		a.frame++
		return a, tea.Batch(frameCmd(), a.syncPhase())

	case tickMsg:
		return a, tea.Batch(tickCmd(), a.journal.load())

	case journalMsg:
		a.dashboard = a.dashboard.update(msg)
		a.game, _ = a.game.update(msg)
		return a, nil

	case revealedMsg:
		a.status, a.statusErr = "Revealed "+msg.id, false
		return a, a.journal.load()

	case tapMsg:
		if msg.event.Completed {
			a.status = msg.event.Feedback()
		}
		return a, nil

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewGate:
		// Form completion arrives as a message after the key press.
		a.gate, cmd = a.gate.update(msg)
		return a, tea.Batch(cmd, a.syncPhase())
	case viewBubbles:
		a.bubbles, cmd = a.bubbles.update(msg, a.origin)
	case viewGarden:
		a.garden, cmd = a.garden.update(msg, a.origin)
	case viewGame:
		a.game, cmd = a.game.update(msg)
	}
	return a, cmd
}

// syncPhase follows phase changes made elsewhere, such as the delayed
// switch to the finale.
func (a *App) syncPhase() tea.Cmd {
	p := a.session.Phases.Phase()
	if p == a.phase {
		return nil
	}
	a.phase = p
	a.statusErr = false
	switch p {
	case engine.PhaseUnlocked:
		a.activeView = viewDashboard
		a.status = "Welcome in 💖"
	case engine.PhaseEnding:
		a.activeView = viewFinale
		a.status = ""
	}
	return a.journal.load()
}

func (a *App) toggleMusic() {
	a.statusErr = false
	if a.music == nil {
		a.status = "No music"
		return
	}
	state := a.music.Toggle()
	a.journal.record(store.KindAudio, state.String())
	a.status = "Music " + state.String()
}

// origin maps a terminal cell to viewport coordinates.
func (a App) origin(x, y int) engine.Point {
	return normalize(x, y, a.width, a.height)
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewGate:
		content = a.gate.view(a.frame)
	case viewDashboard:
		content = a.dashboard.view()
	case viewBubbles:
		content = a.bubbles.view()
	case viewGarden:
		content = a.garden.view()
	case viewGame:
		content = a.game.view(a.frame)
	case viewFinale:
		content = a.finale.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(1, a.height-headerHeight-footerHeight)

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	out := lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
	out = a.zones.Scan(out)
	return overlay(out, a.session.Registry.List(), a.session.Trail.Pointer(), a.session.Clock.Now(), a.width, a.height)
}

func (a App) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("keepsake 💝")

	var tabRow string
	if a.activeView < tabCount {
		var tabs []string
		for i, name := range viewNames {
			if viewState(i) == a.activeView {
				tabs = append(tabs, activeTabStyle.Render(name))
			} else {
				tabs = append(tabs, inactiveTabStyle.Render(name))
			}
		}
		tabRow = lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
	}

	music := a.renderMusic()

	gap := max(1, a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-lipgloss.Width(music)-4)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow, music),
	)
}

func (a App) renderMusic() string {
	if a.music == nil {
		return ""
	}
	if a.music.State() == audio.Playing {
		return successStyle.Render(" 💿 ♪")
	}
	if a.music.Pending() {
		// Autoplay was blocked; the next interaction retries.
		return warningStyle.Render(" 💿 …")
	}
	return mutedStyle.Render(" 💿 ‖")
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.statusErr {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)

	gap := max(1, a.width-lipgloss.Width(left)-lipgloss.Width(status)-2)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}
