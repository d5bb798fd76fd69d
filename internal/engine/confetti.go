package engine

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	maxConfetti         = 80
	minConfetti         = 4
	confettiPerParticle = 5
	defaultBurstTTL     = 1200 * time.Millisecond
	defaultSpread       = 45
)

var confettiGlyphs = []string{"•", "▪", "✶", "♥", "◆"}

var defaultConfettiColors = []string{"#ff4d6d", "#ffd700", "#ffc2d1", "#c2f2ff", "#ffffff", "#ea80fc"}

// Confetti renders bursts as confetti entities in a registry. Particle
// counts are scaled down to what a terminal can show.
type Confetti struct {
	registry *Registry

	mu  sync.Mutex
	rng *rand.Rand
}

func NewConfetti(registry *Registry, rng *rand.Rand) *Confetti {
	return &Confetti{registry: registry, rng: rng}
}

func (c *Confetti) Burst(b Burst) {
	n := b.Particles / confettiPerParticle
	if n < minConfetti {
		n = minConfetti
	}
	if n > maxConfetti {
		n = maxConfetti
	}
	spread := b.Spread
	if spread <= 0 {
		spread = defaultSpread
	}
	ttl := b.Duration
	if ttl <= 0 {
		ttl = defaultBurstTTL
	}
	colors := b.Colors
	if len(colors) == 0 {
		colors = defaultConfettiColors
	}

	payloads := make([]Payload, n)
	c.mu.Lock()
	for i := range payloads {
		angle := (90 + (c.rng.Float64()-0.5)*spread) * math.Pi / 180
		speed := 0.2 + c.rng.Float64()*0.3
		payloads[i] = Payload{
			X:     b.Origin.X,
			Y:     b.Origin.Y,
			DX:    math.Cos(angle) * speed,
			DY:    -math.Sin(angle) * speed,
			Color: colors[c.rng.IntN(len(colors))],
			Glyph: confettiGlyphs[c.rng.IntN(len(confettiGlyphs))],
		}
	}
	c.mu.Unlock()

	for _, p := range payloads {
		c.registry.Spawn(KindConfetti, p, ttl)
	}
}
