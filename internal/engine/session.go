package engine

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/sadopc/keepsake/internal/clock"
)

const defaultSecret = "10"

// Options configures a Session.
type Options struct {
	Secret           string
	Epoch            time.Time
	// TrailProbability is nil for the default; zero or less turns the trail off.
	TrailProbability *float64
	MaxEntities      int
	Seed             uint64
	Sounds           SoundPlayer
	Reveals          []RevealSpec
	Logger           zerolog.Logger
}

// Session wires the core components for one run of the experience. It is
// the only owner of the phase, the entity registry and the pending tasks.
type Session struct {
	Clock    clock.Clock
	Tasks    *Tasks
	Registry *Registry
	Confetti *Confetti
	Phases   *PhaseController
	Game     *Game
	Board    *RevealBoard
	Ticker   *Ticker
	Trail    *TrailSampler
	Hub      *Hub
}

func NewSession(c clock.Clock, opts Options) *Session {
	if opts.Secret == "" {
		opts.Secret = defaultSecret
	}
	probability := DefaultTrailProbability
	if opts.TrailProbability != nil {
		probability = *opts.TrailProbability
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(c.Now().UnixNano())
	}
	logger := opts.Logger

	tasks := NewTasks(c)
	registry := NewRegistry(c, opts.MaxEntities, logger)
	confetti := NewConfetti(registry, rand.New(rand.NewPCG(opts.Seed, 1)))
	effects := Split{Sounds: opts.Sounds, Bursts: confetti}
	phases := NewPhaseController(opts.Secret, effects, tasks, logger)

	return &Session{
		Clock:    c,
		Tasks:    tasks,
		Registry: registry,
		Confetti: confetti,
		Phases:   phases,
		Game:     NewGame(registry, effects, phases, tasks, rand.New(rand.NewPCG(opts.Seed, 2)), logger),
		Board:    NewRevealBoard(effects, logger, opts.Reveals...),
		Ticker:   NewTicker(c, opts.Epoch, time.Second),
		Trail:    NewTrailSampler(registry, probability, rand.New(rand.NewPCG(opts.Seed, 3))),
		Hub:      NewHub(),
	}
}

// Start begins the session's periodic work.
func (s *Session) Start() {
	s.Ticker.Start()
}

// Close stops the ticker, cancels every cancelable task and clears the
// registry. The pending finale transition, if any, still fires.
func (s *Session) Close() {
	s.Ticker.Stop()
	s.Tasks.CancelAll()
	s.Registry.Close()
}
