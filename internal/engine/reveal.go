package engine

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

var ErrAlreadyRevealed = errors.New("already revealed")

// RevealKind selects the widget variant.
type RevealKind int

const (
	RevealBubble RevealKind = iota
	RevealFlower
)

func (k RevealKind) String() string {
	if k == RevealFlower {
		return "flower"
	}
	return "bubble"
}

var bubbleBurstColors = []string{"#c2f2ff", "#ffffff"}

// Reveal is a widget that swaps its placeholder for its content the first
// time it is activated, and never swaps back.
type Reveal struct {
	ID      string
	Kind    RevealKind
	Content string
	Color   string
	Rotate  int

	effects Effects

	mu       sync.Mutex
	revealed bool
}

// Activate reveals the widget. at is where the activation happened; bubbles
// burst from there.
func (r *Reveal) Activate(at Point) error {
	r.mu.Lock()
	if r.revealed {
		r.mu.Unlock()
		return ErrAlreadyRevealed
	}
	r.revealed = true
	r.mu.Unlock()

	switch r.Kind {
	case RevealBubble:
		r.effects.PlaySound(SoundPop)
		r.effects.Burst(Burst{
			Particles: 20,
			Spread:    40,
			Origin:    at,
			Colors:    bubbleBurstColors,
		})
	case RevealFlower:
		r.effects.PlaySound(SoundBloom)
	}
	return nil
}

func (r *Reveal) Revealed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed
}

// Placeholder is what the widget shows before it is revealed.
func (r *Reveal) Placeholder() string {
	if r.Kind == RevealFlower {
		return "🌱"
	}
	return "🎁"
}

// Label is the widget's current face.
func (r *Reveal) Label() string {
	if r.Revealed() {
		return r.Content
	}
	return r.Placeholder()
}

// RevealSpec describes one widget on a board.
type RevealSpec struct {
	ID      string
	Kind    RevealKind
	Content string
	Color   string
	Rotate  int
}

// RevealBoard holds widgets by stable id so redrawing never resets them.
type RevealBoard struct {
	order []string
	items map[string]*Reveal
}

func NewRevealBoard(effects Effects, logger zerolog.Logger, specs ...RevealSpec) *RevealBoard {
	effects = Guard(effects, logger)
	b := &RevealBoard{items: make(map[string]*Reveal, len(specs))}
	for _, s := range specs {
		if _, dup := b.items[s.ID]; dup {
			continue
		}
		b.order = append(b.order, s.ID)
		b.items[s.ID] = &Reveal{
			ID:      s.ID,
			Kind:    s.Kind,
			Content: s.Content,
			Color:   s.Color,
			Rotate:  s.Rotate,
			effects: effects,
		}
	}
	return b
}

func (b *RevealBoard) Get(id string) (*Reveal, bool) {
	r, ok := b.items[id]
	return r, ok
}

// All returns every widget in board order.
func (b *RevealBoard) All() []*Reveal {
	out := make([]*Reveal, len(b.order))
	for i, id := range b.order {
		out[i] = b.items[id]
	}
	return out
}

// Of returns the widgets of one kind in board order.
func (b *RevealBoard) Of(kind RevealKind) []*Reveal {
	var out []*Reveal
	for _, id := range b.order {
		if r := b.items[id]; r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// Revealed counts revealed widgets of one kind.
func (b *RevealBoard) Revealed(kind RevealKind) int {
	n := 0
	for _, r := range b.Of(kind) {
		if r.Revealed() {
			n++
		}
	}
	return n
}
