package snake

import (
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// FoodPolicy decides what a spawn attempt does while food is still alive.
type FoodPolicy int

const (
	// FoodSingle skips spawning while a live item exists.
	FoodSingle FoodPolicy = iota
	// FoodStack spawns on every attempt, so several items may coexist.
	FoodStack
)

func (p FoodPolicy) String() string {
	if p == FoodStack {
		return "stack"
	}
	return "single"
}

// Food is one edible item.
type Food struct {
	Pos       core.Position
	CreatedAt time.Duration // clock time at spawn
}

// Age returns the item's age in whole seconds at now.
func (f Food) Age(now time.Duration) time.Duration {
	return (now - f.CreatedAt).Truncate(time.Second)
}

// Expired reports whether the item has lived for at least ttl at now.
// An item created after now (a clock that stepped back) counts as expired,
// otherwise it would never age out.
func (f Food) Expired(now, ttl time.Duration) bool {
	if now < f.CreatedAt {
		return true
	}
	return f.Age(now) >= ttl
}

// FoodState tracks live food items and places new ones.
type FoodState struct {
	items   []Food
	rng     Rand
	retries int
	policy  FoodPolicy
}

// NewFoodState creates an empty food tracker. retries bounds the redraws
// made when a drawn cell is occupied.
func NewFoodState(rng Rand, retries int, policy FoodPolicy) *FoodState {
	return &FoodState{
		rng:     rng,
		retries: core.Max(retries, 0),
		policy:  policy,
	}
}

// Items returns a copy of the live items.
func (fs *FoodState) Items() []Food {
	return append([]Food(nil), fs.items...)
}

// Len returns the number of live items.
func (fs *FoodState) Len() int {
	return len(fs.items)
}

// Clear removes every item.
func (fs *FoodState) Clear() {
	fs.items = fs.items[:0]
}

// TrySpawn places a new item at a random board cell. If the cell is
// occupied it redraws up to the retry limit, then keeps the last draw even
// if it still collides. Under FoodSingle nothing is spawned while an item
// is alive.
func (fs *FoodState) TrySpawn(b Board, occupied []core.Position, now time.Duration) (Food, bool) {
	if fs.policy == FoodSingle && len(fs.items) > 0 {
		return Food{}, false
	}
	if b.Area() == 0 {
		return Food{}, false
	}

	taken := make(map[core.Position]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	pos := b.RandomCell(fs.rng)
	for i := 0; i < fs.retries; i++ {
		if _, hit := taken[pos]; !hit {
			break
		}
		pos = b.RandomCell(fs.rng)
	}

	f := Food{Pos: pos, CreatedAt: now}
	fs.items = append(fs.items, f)
	return f, true
}

// CheckEaten reports whether a live item sits on head.
func (fs *FoodState) CheckEaten(head core.Position) bool {
	for _, f := range fs.items {
		if f.Pos == head {
			return true
		}
	}
	return false
}

// Consume removes every item on head and returns how many were removed.
func (fs *FoodState) Consume(head core.Position) int {
	return fs.removeIf(func(f Food) bool { return f.Pos == head })
}

// CheckExpired reports whether any live item has reached ttl at now.
// It does not modify state.
func (fs *FoodState) CheckExpired(now, ttl time.Duration) bool {
	for _, f := range fs.items {
		if f.Expired(now, ttl) {
			return true
		}
	}
	return false
}

// Expire removes items that reached ttl at now and returns how many.
func (fs *FoodState) Expire(now, ttl time.Duration) int {
	return fs.removeIf(func(f Food) bool { return f.Expired(now, ttl) })
}

func (fs *FoodState) removeIf(drop func(Food) bool) int {
	kept := fs.items[:0]
	removed := 0
	for _, f := range fs.items {
		if drop(f) {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	fs.items = kept
	return removed
}
