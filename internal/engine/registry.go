package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sadopc/keepsake/internal/clock"
)

// EntityID identifies a spawned entity for the lifetime of its registry.
type EntityID uint64

// Kind tags what an entity is drawn as.
type Kind string

const (
	KindSparkle  Kind = "cursor-sparkle"
	KindHeart    Kind = "rising-heart"
	KindConfetti Kind = "confetti"
)

// Payload is the render data carried by an entity. X and Y are
// viewport-normalized; DX and DY are the displacement over the whole
// lifetime.
type Payload struct {
	X, Y   float64
	DX, DY float64
	Color  string
	Glyph  string
}

// Entity is a short-lived decorative token.
type Entity struct {
	ID        EntityID
	Kind      Kind
	SpawnedAt time.Time
	TTL       time.Duration
	Payload   Payload
}

// ExpiresAt is the first instant at which the entity is no longer live.
func (e Entity) ExpiresAt() time.Time {
	return e.SpawnedAt.Add(e.TTL)
}

func (e Entity) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt())
}

// Age returns how far through its lifetime the entity is, in [0,1].
func (e Entity) Age(now time.Time) float64 {
	if e.TTL <= 0 {
		return 1
	}
	a := float64(now.Sub(e.SpawnedAt)) / float64(e.TTL)
	switch {
	case a < 0:
		return 0
	case a > 1:
		return 1
	}
	return a
}

// Registry stores live entities in creation order and removes each one
// exactly once: at expiry, on eviction past the live limit, or on Close.
type Registry struct {
	clock  clock.Clock
	limit  int
	logger zerolog.Logger

	mu       sync.Mutex
	next     EntityID
	live     []Entity
	removed  uint64
	sweep    clock.Timer
	sweepAt  time.Time
	sweepGen int
	closed   bool
}

// NewRegistry creates a registry. A limit of zero means unbounded.
func NewRegistry(c clock.Clock, limit int, logger zerolog.Logger) *Registry {
	return &Registry{
		clock:  c,
		limit:  limit,
		logger: logger,
	}
}

// Spawn adds an entity and returns its id. Ids start at 1; after Close
// nothing is added and Spawn returns 0. When the live limit is exceeded
// the oldest entity is evicted.
func (r *Registry) Spawn(kind Kind, payload Payload, ttl time.Duration) EntityID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		r.logger.Debug().Str("kind", string(kind)).Msg("spawn after close ignored")
		return 0
	}
	r.next++
	id := r.next

	r.live = append(r.live, Entity{
		ID:        id,
		Kind:      kind,
		SpawnedAt: r.clock.Now(),
		TTL:       ttl,
		Payload:   payload,
	})
	if r.limit > 0 && len(r.live) > r.limit {
		over := len(r.live) - r.limit
		r.live = append([]Entity(nil), r.live[over:]...)
		r.removed += uint64(over)
	}
	r.armLocked()
	return id
}

// Prune removes every entity expired at now and returns their ids ordered
// by expiry, ties broken by spawn order.
func (r *Registry) Prune(now time.Time) []EntityID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pruneLocked(now)
}

func (r *Registry) pruneLocked(now time.Time) []EntityID {
	var expired []Entity
	kept := r.live[:0]
	for _, e := range r.live {
		if e.Expired(now) {
			expired = append(expired, e)
		} else {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(r.live); i++ {
		r.live[i] = Entity{}
	}
	r.live = kept

	sort.SliceStable(expired, func(i, j int) bool {
		return expired[i].ExpiresAt().Before(expired[j].ExpiresAt())
	})
	ids := make([]EntityID, len(expired))
	for i, e := range expired {
		ids[i] = e.ID
	}
	r.removed += uint64(len(ids))
	r.armLocked()
	return ids
}

// armLocked keeps one sweep timer pointed at the earliest expiry.
func (r *Registry) armLocked() {
	if r.closed || len(r.live) == 0 {
		r.stopSweepLocked()
		return
	}

	earliest := r.live[0].ExpiresAt()
	for _, e := range r.live[1:] {
		if at := e.ExpiresAt(); at.Before(earliest) {
			earliest = at
		}
	}
	if r.sweep != nil && r.sweepAt.Equal(earliest) {
		return
	}
	r.stopSweepLocked()

	r.sweepAt = earliest
	gen := r.sweepGen
	r.sweep = r.clock.AfterFunc(earliest.Sub(r.clock.Now()), func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if gen != r.sweepGen {
			return
		}
		r.sweep = nil
		r.pruneLocked(r.clock.Now())
	})
}

func (r *Registry) stopSweepLocked() {
	r.sweepGen++
	if r.sweep != nil {
		r.sweep.Stop()
		r.sweep = nil
	}
}

// List returns the live entities in creation order. Expired entities are
// pruned first.
func (r *Registry) List() []Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked(r.clock.Now())
	return append([]Entity(nil), r.live...)
}

// Len reports the number of live entities without pruning.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Removed reports how many entities have left the registry so far.
func (r *Registry) Removed() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removed
}

// Close removes every remaining entity and stops the sweep timer.
func (r *Registry) Close() []EntityID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]EntityID, len(r.live))
	for i, e := range r.live {
		ids[i] = e.ID
	}
	r.removed += uint64(len(ids))
	r.live = nil
	r.closed = true
	r.stopSweepLocked()
	return ids
}
