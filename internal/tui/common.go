package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/keepsake/internal/engine"
	"github.com/sadopc/keepsake/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewBubbles
	viewGarden
	viewGame
	viewGate
	viewFinale
)

// viewNames are the tabs reachable once the gate is open.
var viewNames = []string{"Dashboard", "Bubbles", "Garden", "Overload"}

const tabCount = 4

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// tickMsg refreshes journal-backed panels once a second.
type tickMsg time.Time

// frameMsg redraws particles and shake offsets.
type frameMsg time.Time

type revealedMsg struct {
	id string
}

type tapMsg struct {
	event engine.Event
}

type journalMsg struct {
	summary store.Summary
	recent  []store.Event
	rate    []int
}

// --- Helpers ---

func formatSnapshot(s engine.Snapshot) (string, string) {
	return fmt.Sprintf("%d Years", s.Years),
		fmt.Sprintf("%dd : %dh : %dm : %ds", s.Days, s.Hours, s.Minutes, s.Seconds)
}

// normalize maps a terminal cell to viewport coordinates in [0,1).
func normalize(x, y, width, height int) engine.Point {
	if width <= 0 || height <= 0 {
		return engine.DefaultOrigin
	}
	return engine.Point{
		X: float64(x) / float64(width),
		Y: float64(y) / float64(height),
	}
}

// cell maps a viewport point back to a terminal cell.
func cell(p engine.Point, width, height int) (int, int) {
	return int(p.X * float64(width)), int(p.Y * float64(height))
}
