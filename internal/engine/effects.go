package engine

import (
	"time"

	"github.com/rs/zerolog"
)

// Sound is one of the fixed sound-effect tags.
type Sound string

const (
	SoundPop     Sound = "pop"
	SoundSparkle Sound = "sparkle"
	SoundSuccess Sound = "success"
	SoundBloom   Sound = "bloom"
	SoundShake   Sound = "shake"
)

// Sounds lists every tag in a stable order.
var Sounds = []Sound{SoundPop, SoundSparkle, SoundSuccess, SoundBloom, SoundShake}

// Point is a viewport-normalized coordinate in [0,1]x[0,1].
type Point struct {
	X, Y float64
}

// DefaultOrigin is where a burst starts when the caller has no anchor.
var DefaultOrigin = Point{X: 0.5, Y: 0.6}

// Burst describes a celebratory particle burst.
type Burst struct {
	Particles int
	Spread    float64 // degrees
	Origin    Point
	Colors    []string
	Duration  time.Duration
}

// Effects receives fire-and-forget presentation requests.
type Effects interface {
	PlaySound(Sound)
	Burst(Burst)
}

// SoundPlayer plays sound-effect tags.
type SoundPlayer interface {
	PlaySound(Sound)
}

// Burster renders bursts.
type Burster interface {
	Burst(Burst)
}

// Split routes sounds and bursts to separate collaborators. Either side may
// be nil.
type Split struct {
	Sounds SoundPlayer
	Bursts Burster
}

func (s Split) PlaySound(tag Sound) {
	if s.Sounds != nil {
		s.Sounds.PlaySound(tag)
	}
}

func (s Split) Burst(b Burst) {
	if s.Bursts != nil {
		s.Bursts.Burst(b)
	}
}

// Guard wraps e so that a panicking collaborator is logged and ignored.
func Guard(e Effects, logger zerolog.Logger) Effects {
	if e == nil {
		e = Split{}
	}
	return guarded{inner: e, logger: logger}
}

type guarded struct {
	inner  Effects
	logger zerolog.Logger
}

func (g guarded) PlaySound(tag Sound) {
	defer g.recover("sound " + string(tag))
	g.inner.PlaySound(tag)
}

func (g guarded) Burst(b Burst) {
	defer g.recover("burst")
	g.inner.Burst(b)
}

func (g guarded) recover(what string) {
	if r := recover(); r != nil {
		g.logger.Error().Str("effect", what).Interface("panic", r).Msg("effect failed")
	}
}
