package engine

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	GameStep = 4
	GameMax  = 100

	heartTTL            = time.Second
	screenShakeDuration = 100 * time.Millisecond
	// EndingDelay leaves the final burst time to play before the finale.
	EndingDelay = 1500 * time.Millisecond
)

// IdleFeedback is the prompt shown before the first tap.
const IdleFeedback = "OVERLOAD MY HEART!"

// Tier is the feedback band for a progress value.
type Tier int

const (
	TierEncourage Tier = iota
	TierIntensify
	TierImminent
	TierComplete
)

var tierText = map[Tier]string{
	TierEncourage: "Faster! ❤️",
	TierIntensify: "MORE! ❤️‍🔥",
	TierImminent:  "MAXIMUM LOVE IMMINENT! 🚨",
	TierComplete:  "EXPLOSION! 💥",
}

func (t Tier) String() string {
	return tierText[t]
}

// TierFor maps progress onto its feedback band.
func TierFor(progress int) Tier {
	switch {
	case progress >= GameMax:
		return TierComplete
	case progress >= 70:
		return TierImminent
	case progress >= 30:
		return TierIntensify
	}
	return TierEncourage
}

// Event is the outcome of one tap.
type Event struct {
	Progress  int
	Tier      Tier
	Completed bool
}

// Feedback returns the text to show for the event.
func (e Event) Feedback() string {
	if e.Progress == 0 {
		return IdleFeedback
	}
	return e.Tier.String()
}

var finaleBurst = Burst{
	Particles: 500,
	Origin:    DefaultOrigin,
	Duration:  3 * time.Second,
}

// Game is the tap-to-fill mini-game that leads to the finale.
type Game struct {
	registry *Registry
	effects  Effects
	phases   *PhaseController
	tasks    *Tasks
	shake    *Flag
	logger   zerolog.Logger

	mu       sync.Mutex
	rng      *rand.Rand
	progress int
	last     Event
	taps     int
}

func NewGame(registry *Registry, effects Effects, phases *PhaseController, tasks *Tasks, rng *rand.Rand, logger zerolog.Logger) *Game {
	return &Game{
		registry: registry,
		effects:  Guard(effects, logger),
		phases:   phases,
		tasks:    tasks,
		shake:    NewFlag(tasks),
		logger:   logger,
		rng:      rng,
		last:     Event{Tier: TierEncourage},
	}
}

// Register counts one tap. Once the game is won further taps return the
// winning event and do nothing else.
func (g *Game) Register() Event {
	g.mu.Lock()
	if g.progress >= GameMax {
		ev := g.last
		g.mu.Unlock()
		return ev
	}
	g.progress = min(g.progress+GameStep, GameMax)
	g.taps++
	ev := Event{
		Progress:  g.progress,
		Tier:      TierFor(g.progress),
		Completed: g.progress >= GameMax,
	}
	g.last = ev
	column := g.rng.Float64()
	g.mu.Unlock()

	g.registry.Spawn(KindHeart, Payload{X: column, Y: 1, DY: -1, Color: "#ff4d6d", Glyph: "♥"}, heartTTL)
	g.effects.PlaySound(SoundShake)
	g.shake.Pulse(screenShakeDuration)

	if ev.Completed {
		g.logger.Info().Int("taps", g.Taps()).Msg("game complete")
		g.effects.Burst(finaleBurst)
		g.tasks.Detach(EndingDelay, func() {
			if err := g.phases.RequestEnding(); err != nil {
				g.logger.Error().Err(err).Msg("request ending")
			}
		})
	}
	return ev
}

func (g *Game) Progress() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.progress
}

// Last returns the most recent event.
func (g *Game) Last() Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

// Taps counts accepted taps.
func (g *Game) Taps() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.taps
}

// Shaking reports whether the screen shake from the last tap is active.
func (g *Game) Shaking() bool {
	return g.shake.On()
}
