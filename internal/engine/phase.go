package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Phase is the top-level stage of the experience.
type Phase int

const (
	PhaseLocked Phase = iota
	PhaseUnlocked
	PhaseEnding
)

var phaseNames = map[Phase]string{
	PhaseLocked:   "LOCKED",
	PhaseUnlocked: "UNLOCKED",
	PhaseEnding:   "ENDING",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Gate errors.
var (
	ErrWrongCode         = errors.New("wrong code")
	ErrInvalidTransition = errors.New("invalid phase transition")
)

const gateShakeDuration = 500 * time.Millisecond

// Gate celebration burst.
var unlockBurst = Burst{
	Particles: 200,
	Spread:    120,
	Origin:    DefaultOrigin,
	Colors:    []string{"#ffd700", "#ffc2d1", "#ffffff"},
}

// PhaseController owns the session phase. The only ways to move it are
// SubmitCode and RequestEnding.
type PhaseController struct {
	secret  string
	effects Effects
	shake   *Flag
	logger  zerolog.Logger

	mu        sync.Mutex
	phase     Phase
	observers []func(from, to Phase)
}

func NewPhaseController(secret string, effects Effects, tasks *Tasks, logger zerolog.Logger) *PhaseController {
	return &PhaseController{
		secret:  secret,
		effects: Guard(effects, logger),
		shake:   NewFlag(tasks),
		logger:  logger,
		phase:   PhaseLocked,
	}
}

// OnTransition registers fn to be called after every phase change.
func (c *PhaseController) OnTransition(fn func(from, to Phase)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// SubmitCode checks candidate against the secret. A match unlocks the
// session and celebrates; a mismatch shakes the gate and leaves the phase
// alone.
func (c *PhaseController) SubmitCode(candidate string) error {
	if candidate != c.secret {
		c.shake.Pulse(gateShakeDuration)
		return ErrWrongCode
	}

	if err := c.transition(PhaseLocked, PhaseUnlocked); err != nil {
		return err
	}

	c.effects.PlaySound(SoundSuccess)
	c.effects.Burst(unlockBurst)
	return nil
}

// RequestEnding moves an unlocked session to its terminal phase.
func (c *PhaseController) RequestEnding() error {
	return c.transition(PhaseUnlocked, PhaseEnding)
}

func (c *PhaseController) transition(from, to Phase) error {
	c.mu.Lock()
	if c.phase != from {
		current := c.phase
		c.mu.Unlock()
		c.logger.Warn().Stringer("from", from).Stringer("to", to).Stringer("current", current).Msg("phase transition refused")
		return fmt.Errorf("%w: %s -> %s while %s", ErrInvalidTransition, from, to, current)
	}
	c.phase = to
	observers := append([]func(from, to Phase){}, c.observers...)
	c.mu.Unlock()

	c.logger.Info().Stringer("from", from).Stringer("to", to).Msg("phase changed")
	for _, fn := range observers {
		fn(from, to)
	}
	return nil
}

func (c *PhaseController) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Shaking reports whether the gate is showing wrong-code feedback.
func (c *PhaseController) Shaking() bool {
	return c.shake.On()
}
