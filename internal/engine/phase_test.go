package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestPhases(t *testing.T) (*PhaseController, *recorder, *Tasks) {
	t.Helper()
	c := newFakeClock()
	tasks := NewTasks(c)
	rec := &recorder{}
	return NewPhaseController("10", rec, tasks, zerolog.Nop()), rec, tasks
}

func TestPhaseNames(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseLocked, "LOCKED"},
		{PhaseUnlocked, "UNLOCKED"},
		{PhaseEnding, "ENDING"},
		{Phase(9), "Phase(9)"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(tt.phase), got, tt.want)
		}
	}
}

func TestSubmitCodeCorrect(t *testing.T) {
	pc, rec, _ := newTestPhases(t)

	if pc.Phase() != PhaseLocked {
		t.Fatal("should start locked")
	}
	if err := pc.SubmitCode("10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pc.Phase() != PhaseUnlocked {
		t.Fatalf("expected UNLOCKED, got %s", pc.Phase())
	}
	if len(rec.bursts) != 1 {
		t.Fatalf("expected one celebration burst, got %d", len(rec.bursts))
	}
	if len(rec.sounds) != 1 || rec.sounds[0] != SoundSuccess {
		t.Fatalf("expected success sound, got %v", rec.sounds)
	}
	if pc.Shaking() {
		t.Fatal("correct code should not shake")
	}
}

func TestSubmitCodeWrong(t *testing.T) {
	c := newFakeClock()
	rec := &recorder{}
	pc := NewPhaseController("10", rec, NewTasks(c), zerolog.Nop())

	err := pc.SubmitCode("anything-else")
	if !errors.Is(err, ErrWrongCode) {
		t.Fatalf("expected ErrWrongCode, got %v", err)
	}
	if pc.Phase() != PhaseLocked {
		t.Fatal("wrong code must not change phase")
	}
	if n, b := rec.counts(); n != 0 || b != 0 {
		t.Fatalf("wrong code emitted %d sounds %d bursts", n, b)
	}
	if !pc.Shaking() {
		t.Fatal("wrong code should shake")
	}
	c.Advance(gateShakeDuration)
	if pc.Shaking() {
		t.Fatal("shake should clear after its window")
	}
}

func TestSubmitCodeIsExact(t *testing.T) {
	pc, _, _ := newTestPhases(t)
	for _, code := range []string{"", " 10", "10 ", "010", "1O"} {
		if err := pc.SubmitCode(code); !errors.Is(err, ErrWrongCode) {
			t.Fatalf("code %q: expected ErrWrongCode, got %v", code, err)
		}
	}
}

func TestSubmitCodeTwice(t *testing.T) {
	pc, rec, _ := newTestPhases(t)
	pc.SubmitCode("10")

	err := pc.SubmitCode("10")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(rec.bursts) != 1 {
		t.Fatal("second unlock must not celebrate again")
	}
}

func TestRequestEnding(t *testing.T) {
	pc, _, _ := newTestPhases(t)

	if err := pc.RequestEnding(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("ending from LOCKED: expected ErrInvalidTransition, got %v", err)
	}
	if pc.Phase() != PhaseLocked {
		t.Fatal("failed transition changed phase")
	}

	pc.SubmitCode("10")
	if err := pc.RequestEnding(); err != nil {
		t.Fatalf("ending from UNLOCKED: %v", err)
	}
	if pc.Phase() != PhaseEnding {
		t.Fatalf("expected ENDING, got %s", pc.Phase())
	}

	if err := pc.RequestEnding(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("ending from ENDING: expected ErrInvalidTransition, got %v", err)
	}
	if err := pc.SubmitCode("10"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("unlock from ENDING: expected ErrInvalidTransition, got %v", err)
	}
	if pc.Phase() != PhaseEnding {
		t.Fatal("ENDING is terminal")
	}
}

func TestPhaseObservers(t *testing.T) {
	pc, _, _ := newTestPhases(t)

	type change struct{ from, to Phase }
	var seen []change
	pc.OnTransition(func(from, to Phase) { seen = append(seen, change{from, to}) })

	pc.SubmitCode("nope")
	pc.SubmitCode("10")
	pc.RequestEnding()

	if len(seen) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(seen))
	}
	if seen[0] != (change{PhaseLocked, PhaseUnlocked}) || seen[1] != (change{PhaseUnlocked, PhaseEnding}) {
		t.Fatalf("unexpected transitions %v", seen)
	}
}

func TestWrongCodeShakeRestarts(t *testing.T) {
	c := newFakeClock()
	pc := NewPhaseController("10", nil, NewTasks(c), zerolog.Nop())

	pc.SubmitCode("1")
	c.Advance(400 * time.Millisecond)
	pc.SubmitCode("2")
	c.Advance(400 * time.Millisecond)
	if !pc.Shaking() {
		t.Fatal("second wrong code should restart the shake window")
	}
	c.Advance(100 * time.Millisecond)
	if pc.Shaking() {
		t.Fatal("shake should clear")
	}
}
