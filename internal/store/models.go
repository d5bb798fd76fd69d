package store

import "time"

// Kind classifies a journal event.
type Kind string

const (
	KindCode   Kind = "code"   // detail: "ok" or "wrong"
	KindPhase  Kind = "phase"  // detail: new phase name
	KindReveal Kind = "reveal" // detail: widget id
	KindTap    Kind = "tap"    // detail: progress after the tap
	KindAudio  Kind = "audio"  // detail: player state
)

type Event struct {
	ID     int64
	Kind   Kind
	Detail string
	At     time.Time
}

// Summary aggregates a session for the dashboard.
type Summary struct {
	Attempts      int
	WrongAttempts int
	Reveals       int
	Taps          int
	UnlockedAt    *time.Time
}
