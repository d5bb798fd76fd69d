package audio

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sadopc/keepsake/internal/engine"
)

// ErrBlocked means the host refused to start playback. It is expected and
// recoverable: the coordinator retries on the next user interaction.
var ErrBlocked = errors.New("playback blocked")

// State is the music state shown to the user.
type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Player is the single looping music resource.
type Player interface {
	Play() error
	Pause()
}

// Interactions delivers "the user did something" notifications.
type Interactions interface {
	Subscribe(fn func()) *engine.Subscription
}

// Coordinator owns the music player. It tries to start playback right away
// and, if the host blocks it, retries once on the next interaction. Manual
// toggling is never overridden by the retry.
type Coordinator struct {
	player       Player
	interactions Interactions
	logger       zerolog.Logger

	mu       sync.Mutex
	state    State
	pending  *engine.Subscription
	attempts int
	closed   bool
}

func NewCoordinator(player Player, interactions Interactions, logger zerolog.Logger) *Coordinator {
	return &Coordinator{
		player:       player,
		interactions: interactions,
		logger:       logger,
	}
}

// Start attempts playback. Calling it while already playing only clears a
// leftover fallback.
func (c *Coordinator) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
}

func (c *Coordinator) startLocked() {
	if c.closed {
		return
	}
	if c.state == Playing {
		c.cancelPendingLocked()
		return
	}

	c.attempts++
	if err := c.player.Play(); err != nil {
		c.logger.Warn().Err(err).Msg("autoplay blocked, waiting for interaction")
		if c.pending == nil {
			c.pending = c.interactions.Subscribe(c.onInteraction)
		}
		return
	}
	c.state = Playing
	c.cancelPendingLocked()
}

// onInteraction is the fallback listener. Only the first interaction after
// a blocked attempt retries; later ones find no pending fallback.
func (c *Coordinator) onInteraction() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return
	}
	c.cancelPendingLocked()
	c.startLocked()
}

func (c *Coordinator) cancelPendingLocked() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
}

// Toggle pauses when playing and tries to play when paused. It returns
// the resulting state, which stays Paused if playback still fails. Any
// pending fallback is dropped first, so a later interaction never changes
// what the user chose.
func (c *Coordinator) Toggle() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.state
	}
	c.cancelPendingLocked()
	switch c.state {
	case Playing:
		c.player.Pause()
		c.state = Paused
	case Paused:
		c.attempts++
		if err := c.player.Play(); err != nil {
			c.logger.Error().Err(err).Msg("manual play failed")
			break
		}
		c.state = Playing
	}
	return c.state
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pending reports whether a fallback listener is registered.
func (c *Coordinator) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// Attempts counts calls made to the player's Play.
func (c *Coordinator) Attempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempts
}

// Close pauses the music and drops any pending fallback listener.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancelPendingLocked()
	c.player.Pause()
	c.state = Paused
}
