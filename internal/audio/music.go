package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Lullaby is the built-in music: a slow arpeggio that loops forever.
func Lullaby(sr beep.SampleRate) (beep.Streamer, error) {
	return &lullaby{sr: sr, noteLen: sr.N(beatLength)}, nil
}

const beatLength = 400 * time.Millisecond

var lullabyNotes = []float64{
	523.25, 659.25, 783.99, 659.25, // C E G E
	587.33, 698.46, 880.00, 698.46, // D F A F
	493.88, 587.33, 783.99, 587.33, // B D G D
	523.25, 659.25, 783.99, 1046.50, // C E G C
}

type lullaby struct {
	sr      beep.SampleRate
	noteLen int
	pos     int
}

func (l *lullaby) Stream(samples [][2]float64) (n int, ok bool) {
	total := l.noteLen * len(lullabyNotes)
	for i := range samples {
		p := l.pos % total
		note := lullabyNotes[p/l.noteLen]
		inNote := float64(p%l.noteLen) / float64(l.noteLen)
		t := float64(l.pos) / float64(l.sr)

		// Soft attack, long release.
		env := math.Min(inNote*20, 1) * math.Exp(-inNote*3)
		v := 0.2 * env * (math.Sin(2*math.Pi*note*t) + 0.3*math.Sin(2*math.Pi*note*2*t))

		samples[i][0] = v
		samples[i][1] = v
		l.pos++
	}
	return len(samples), true
}

func (l *lullaby) Err() error { return nil }

// WAVFile returns a Source that decodes path once, resamples it to the
// output rate and loops it forever.
func WAVFile(path string) Source {
	return func(sr beep.SampleRate) (beep.Streamer, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open music: %w", err)
		}
		defer f.Close()

		s, format, err := wav.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode wav: %w", err)
		}
		defer s.Close()

		buf := beep.NewBuffer(format)
		buf.Append(s)
		if buf.Len() == 0 {
			return nil, fmt.Errorf("decode wav: %s has no samples", path)
		}

		var out beep.Streamer = &bufferLoop{buf: buf}
		if format.SampleRate != sr {
			out = beep.Resample(4, format.SampleRate, sr, out)
		}
		return out, nil
	}
}

// bufferLoop replays a buffer from the start each time it runs out.
type bufferLoop struct {
	buf *beep.Buffer
	cur beep.StreamSeeker
}

func (l *bufferLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if l.cur == nil {
			l.cur = l.buf.Streamer(0, l.buf.Len())
		}
		m, more := l.cur.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			l.cur = nil
		}
	}
	return n, true
}

func (l *bufferLoop) Err() error { return nil }
