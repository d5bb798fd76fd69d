package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/sadopc/keepsake/internal/clock"
)

const daysPerYear = 365

// Snapshot is an elapsed duration broken down for display. Years are a
// flat 365 days; leap years are deliberately ignored.
type Snapshot struct {
	Years   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%d Years  %dd : %dh : %dm : %ds", s.Years, s.Days, s.Hours, s.Minutes, s.Seconds)
}

// Elapsed breaks now-epoch into a Snapshot. Instants before the epoch
// yield the zero Snapshot.
func Elapsed(epoch, now time.Time) Snapshot {
	diff := now.Sub(epoch)
	if diff <= 0 {
		return Snapshot{}
	}
	total := int64(diff / time.Second)
	days := total / 86400
	return Snapshot{
		Years:   int(days / daysPerYear),
		Days:    int(days % daysPerYear),
		Hours:   int(total / 3600 % 24),
		Minutes: int(total / 60 % 60),
		Seconds: int(total % 60),
	}
}

// Ticker recomputes the Snapshot since a fixed epoch on a steady schedule.
type Ticker struct {
	clock    clock.Clock
	epoch    time.Time
	interval time.Duration

	mu      sync.Mutex
	current Snapshot
	timer   clock.Timer
	running bool
	gen     int
	onTick  func(Snapshot)
}

func NewTicker(c clock.Clock, epoch time.Time, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{
		clock:    c,
		epoch:    epoch,
		interval: interval,
		current:  Elapsed(epoch, c.Now()),
	}
}

// OnTick sets a callback run after every recomputation.
func (t *Ticker) OnTick(fn func(Snapshot)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onTick = fn
}

// Start computes a snapshot now and then once per interval until Stop.
// Starting a running ticker does nothing.
func (t *Ticker) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.gen++
	gen := t.gen
	t.mu.Unlock()

	t.tick(gen)
}

func (t *Ticker) tick(gen int) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.current = Elapsed(t.epoch, t.clock.Now())
	snap := t.current
	fn := t.onTick
	t.timer = t.clock.AfterFunc(t.interval, func() { t.tick(gen) })
	t.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// Stop cancels the schedule. It is safe to call more than once.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.running = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Ticker) Current() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *Ticker) Epoch() time.Time {
	return t.epoch
}
