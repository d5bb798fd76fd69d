package engine

import (
	"sync"
	"time"

	"github.com/sadopc/keepsake/internal/clock"
)

// Tasks is the set of delayed callbacks owned by one component. Everything
// scheduled through Schedule is stopped by CancelAll; Detach is reserved for
// work that must run even after the owner is torn down.
type Tasks struct {
	clock clock.Clock

	mu     sync.Mutex
	next   int
	live   map[int]clock.Timer
	closed bool
}

func NewTasks(c clock.Clock) *Tasks {
	return &Tasks{
		clock: c,
		live:  make(map[int]clock.Timer),
	}
}

// Schedule runs f once after d unless the returned cancel func, or
// CancelAll, runs first.
func (t *Tasks) Schedule(d time.Duration, f func()) (cancel func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return func() {}
	}

	t.next++
	id := t.next
	t.live[id] = t.clock.AfterFunc(d, func() {
		t.mu.Lock()
		_, ok := t.live[id]
		delete(t.live, id)
		t.mu.Unlock()
		if ok {
			f()
		}
	})

	return func() {
		t.mu.Lock()
		timer, ok := t.live[id]
		delete(t.live, id)
		t.mu.Unlock()
		if ok {
			timer.Stop()
		}
	}
}

// Detach runs f once after d. It is not tracked and cannot be canceled.
func (t *Tasks) Detach(d time.Duration, f func()) {
	t.clock.AfterFunc(d, f)
}

// CancelAll stops every pending scheduled task. Later calls to Schedule
// are ignored.
func (t *Tasks) CancelAll() {
	t.mu.Lock()
	timers := make([]clock.Timer, 0, len(t.live))
	for id, timer := range t.live {
		timers = append(timers, timer)
		delete(t.live, id)
	}
	t.closed = true
	t.mu.Unlock()

	for _, timer := range timers {
		timer.Stop()
	}
}

// Len reports the number of pending cancelable tasks.
func (t *Tasks) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Flag is a boolean that switches itself off a fixed time after it was
// last pulsed.
type Flag struct {
	tasks *Tasks

	mu     sync.Mutex
	on     bool
	gen    int
	cancel func()
}

func NewFlag(tasks *Tasks) *Flag {
	return &Flag{tasks: tasks}
}

// Pulse raises the flag and (re)starts its clear timer.
func (f *Flag) Pulse(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
	}
	f.on = true
	f.gen++
	gen := f.gen
	f.cancel = f.tasks.Schedule(d, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen == gen {
			f.on = false
			f.cancel = nil
		}
	})
}

func (f *Flag) On() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}
