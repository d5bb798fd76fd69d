package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRegistrySpawnList(t *testing.T) {
	c := newFakeClock()
	r := NewRegistry(c, 0, zerolog.Nop())

	a := r.Spawn(KindSparkle, Payload{X: 0.1}, time.Second)
	b := r.Spawn(KindHeart, Payload{X: 0.2}, time.Second)
	if a == b {
		t.Fatal("ids must be unique")
	}

	list := r.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(list))
	}
	if list[0].ID != a || list[1].ID != b {
		t.Fatal("list must keep creation order")
	}
	if list[0].Kind != KindSparkle || list[0].Payload.X != 0.1 {
		t.Fatal("entity fields not preserved")
	}
}

func TestRegistryPruneBoundary(t *testing.T) {
	c := newFakeClock()
	r := NewRegistry(c, 0, zerolog.Nop())
	start := c.Now()
	id := r.Spawn(KindSparkle, Payload{}, 800*time.Millisecond)

	if got := r.Prune(start.Add(800*time.Millisecond - time.Nanosecond)); len(got) != 0 {
		t.Fatalf("pruned before expiry: %v", got)
	}
	got := r.Prune(start.Add(800 * time.Millisecond))
	if len(got) != 1 || got[0] != id {
		t.Fatalf("expected %d pruned at expiry, got %v", id, got)
	}
	if got := r.Prune(start.Add(time.Hour)); len(got) != 0 {
		t.Fatalf("entity pruned twice: %v", got)
	}
	if r.Removed() != 1 {
		t.Fatalf("expected 1 removal, got %d", r.Removed())
	}
}

func TestRegistryPruneOrder(t *testing.T) {
	c := newFakeClock()
	r := NewRegistry(c, 0, zerolog.Nop())
	start := c.Now()

	a := r.Spawn(KindSparkle, Payload{}, time.Second)
	b := r.Spawn(KindSparkle, Payload{}, time.Second)
	long := r.Spawn(KindSparkle, Payload{}, 3*time.Second)
	short := r.Spawn(KindSparkle, Payload{}, 500*time.Millisecond)

	got := r.Prune(start.Add(5 * time.Second))
	want := []EntityID{short, a, b, long}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRegistrySelfExpiry(t *testing.T) {
	c := newFakeClock()
	r := NewRegistry(c, 0, zerolog.Nop())

	r.Spawn(KindHeart, Payload{}, time.Second)
	c.Advance(500 * time.Millisecond)
	keep := r.Spawn(KindHeart, Payload{}, time.Second)

	c.Advance(500 * time.Millisecond)
	if r.Len() != 1 {
		t.Fatalf("sweep should have removed the first heart, live=%d", r.Len())
	}
	list := r.List()
	if len(list) != 1 || list[0].ID != keep {
		t.Fatalf("unexpected survivors %v", list)
	}

	c.Advance(500 * time.Millisecond)
	if r.Len() != 0 {
		t.Fatal("second heart should have expired")
	}
	if c.Pending() != 0 {
		t.Fatalf("empty registry should hold no timer, got %d", c.Pending())
	}
}

func TestRegistryListNeverReturnsExpired(t *testing.T) {
	c := newFakeClock()
	r := NewRegistry(c, 0, zerolog.Nop())
	id := r.Spawn(KindSparkle, Payload{}, time.Second)

	r.Prune(c.Now().Add(time.Second))
	for _, e := range r.List() {
		if e.ID == id {
			t.Fatal("pruned entity reappeared")
		}
	}
}

func TestRegistryLimitEvictsOldest(t *testing.T) {
	c := newFakeClock()
	r := NewRegistry(c, 2, zerolog.Nop())

	r.Spawn(KindSparkle, Payload{}, time.Second)
	b := r.Spawn(KindSparkle, Payload{}, time.Second)
	d := r.Spawn(KindSparkle, Payload{}, time.Second)

	list := r.List()
	if len(list) != 2 || list[0].ID != b || list[1].ID != d {
		t.Fatalf("expected [%d %d], got %v", b, d, list)
	}
	if r.Removed() != 1 {
		t.Fatalf("eviction should count as removal, got %d", r.Removed())
	}
}

func TestRegistryClose(t *testing.T) {
	c := newFakeClock()
	r := NewRegistry(c, 0, zerolog.Nop())
	a := r.Spawn(KindSparkle, Payload{}, time.Second)
	b := r.Spawn(KindSparkle, Payload{}, time.Second)

	got := r.Close()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("close should remove all live entities, got %v", got)
	}
	if c.Pending() != 0 {
		t.Fatal("close should stop the sweep timer")
	}
	if id := r.Spawn(KindSparkle, Payload{}, time.Second); id != 0 {
		t.Fatalf("spawn after close should return no id, got %d", id)
	}
	if r.Len() != 0 {
		t.Fatal("spawn after close should be ignored")
	}
	if r.Removed() != 2 {
		t.Fatalf("expected 2 removals, got %d", r.Removed())
	}
}

func TestEntityAge(t *testing.T) {
	start := testEpoch
	e := Entity{SpawnedAt: start, TTL: time.Second}

	tests := []struct {
		at   time.Duration
		want float64
	}{
		{-time.Second, 0},
		{0, 0},
		{500 * time.Millisecond, 0.5},
		{2 * time.Second, 1},
	}
	for _, tt := range tests {
		if got := e.Age(start.Add(tt.at)); got != tt.want {
			t.Errorf("Age(+%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
	if !e.Expired(start.Add(time.Second)) || e.Expired(start.Add(999*time.Millisecond)) {
		t.Fatal("Expired boundary wrong")
	}
}
