package engine

import (
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// DefaultTrailProbability is the chance that one pointer movement
	// leaves a sparkle behind. It bounds spawn rate under fast movement.
	DefaultTrailProbability = 0.3
	DefaultSparkleTTL       = 800 * time.Millisecond
)

// DefaultPalette holds the sparkle colours.
var DefaultPalette = []string{"#ffd700", "#ffc2d1", "#c2f2ff", "#ffffff"}

var sparkleGlyphs = []string{"✦", "✧", "·", "*"}

// TrailSampler turns pointer movement into sparkles, sampling each event
// with a fixed probability.
type TrailSampler struct {
	registry    *Registry
	probability float64
	ttl         time.Duration
	palette     []string

	mu  sync.Mutex
	rng *rand.Rand
	at  Point
}

func NewTrailSampler(registry *Registry, probability float64, rng *rand.Rand) *TrailSampler {
	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}
	return &TrailSampler{
		registry:    registry,
		probability: probability,
		ttl:         DefaultSparkleTTL,
		palette:     DefaultPalette,
		rng:         rng,
		at:          Point{X: -1, Y: -1},
	}
}

// Move records the pointer position and possibly spawns a sparkle there.
func (s *TrailSampler) Move(p Point) (EntityID, bool) {
	s.mu.Lock()
	s.at = p
	if s.rng.Float64() >= s.probability {
		s.mu.Unlock()
		return 0, false
	}
	payload := Payload{
		X:     p.X,
		Y:     p.Y,
		DY:    -0.02,
		Color: s.palette[s.rng.IntN(len(s.palette))],
		Glyph: sparkleGlyphs[s.rng.IntN(len(sparkleGlyphs))],
	}
	s.mu.Unlock()

	return s.registry.Spawn(KindSparkle, payload, s.ttl), true
}

// Pointer returns the last reported position; it is negative until the
// first movement.
func (s *TrailSampler) Pointer() Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.at
}

func (s *TrailSampler) Probability() float64 {
	return s.probability
}
