package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/rs/zerolog"

	"github.com/sadopc/keepsake/internal/engine"
)

type note struct {
	freq float64
	dur  time.Duration
}

var soundNotes = map[engine.Sound][]note{
	engine.SoundPop:     {{880, 60 * time.Millisecond}},
	engine.SoundSparkle: {{1318.51, 40 * time.Millisecond}, {1760, 40 * time.Millisecond}},
	engine.SoundSuccess: {{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {783.99, 200 * time.Millisecond}},
	engine.SoundBloom:   {{392, 150 * time.Millisecond}, {523.25, 150 * time.Millisecond}},
	engine.SoundShake:   {{110, 80 * time.Millisecond}},
}

// ErrUnknownSound is returned by Tone for a tag with no notes.
var ErrUnknownSound = errors.New("unknown sound")

// Tone builds the short stream for a sound tag.
func Tone(tag engine.Sound, sr beep.SampleRate, vol float64) (beep.Streamer, error) {
	notes, ok := soundNotes[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, tag)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sr.N(n.dur), sine))
	}
	return withVolume(beep.Seq(parts...), vol), nil
}

// Mixer is where one-shot sounds are sent.
type Mixer interface {
	Mix(s beep.Streamer) bool
}

// Effects plays sound tags through a Mixer. Failures are logged and
// dropped.
type Effects struct {
	mixer  Mixer
	volume float64
	logger zerolog.Logger
}

func NewEffects(mixer Mixer, volume float64, logger zerolog.Logger) *Effects {
	return &Effects{mixer: mixer, volume: volume, logger: logger}
}

func (e *Effects) PlaySound(tag engine.Sound) {
	s, err := Tone(tag, SampleRate, e.volume)
	if err != nil {
		e.logger.Error().Err(err).Str("sound", string(tag)).Msg("build tone")
		return
	}
	e.mixer.Mix(s)
}
