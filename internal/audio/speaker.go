package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// Source builds the music stream at the given sample rate.
type Source func(sr beep.SampleRate) (beep.Streamer, error)

// SpeakerPlayer plays looping music through the system speaker. The
// speaker is opened on the first Play; if that fails the error wraps
// ErrBlocked and the next Play tries again.
type SpeakerPlayer struct {
	source Source
	volume float64

	initSpeaker func(sr beep.SampleRate, bufferSize int) error

	mu    sync.Mutex
	ready bool
	mixer *beep.Mixer
	music *beep.Ctrl
}

// NewSpeakerPlayer creates a player for source at volume in [0,1].
func NewSpeakerPlayer(source Source, volume float64) *SpeakerPlayer {
	return &SpeakerPlayer{
		source:      source,
		volume:      volume,
		initSpeaker: speaker.Init,
		mixer:       &beep.Mixer{},
	}
}

func (p *SpeakerPlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		if err := p.initSpeaker(SampleRate, SampleRate.N(bufferSize)); err != nil {
			return fmt.Errorf("%w: %v", ErrBlocked, err)
		}
		speaker.Play(p.mixer)
		p.ready = true
	}

	if p.music == nil {
		s, err := p.source(SampleRate)
		if err != nil {
			return fmt.Errorf("load music: %w", err)
		}
		p.music = &beep.Ctrl{Streamer: withVolume(s, p.volume)}
		speaker.Lock()
		p.mixer.Add(p.music)
		speaker.Unlock()
		return nil
	}

	speaker.Lock()
	p.music.Paused = false
	speaker.Unlock()
	return nil
}

func (p *SpeakerPlayer) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// Ready reports whether the speaker has been opened.
func (p *SpeakerPlayer) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Mix adds a one-shot stream alongside the music. It reports false when
// the speaker is not open yet.
func (p *SpeakerPlayer) Mix(s beep.Streamer) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return false
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Close silences everything mixed so far.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	if vol > 1 {
		vol = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
