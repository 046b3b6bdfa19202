package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// pauser is implemented by clocks that can stop game time.
type pauser interface {
	Pause()
	Resume()
}

// Round owns the whole simulation state and runs the tick sequence:
// input latch, movement tick, food tick and game-over reset.
// A Round is not safe for concurrent use.
type Round struct {
	rules  Rules
	snake  *Snake
	food   *FoodState
	clock  core.Clock
	rng    Rand
	logger *log.Logger

	latched  Direction
	hasLatch bool
	events   eventList

	nextMove time.Duration
	nextFood time.Duration
	paused   bool

	tick       uint64 // movement ticks in the current round
	score      int    // food eaten in the current round
	roundNo    int
	lastLength int // final length of the previous round
}

// Option configures a Round.
type Option func(*Round)

// WithClock sets the time source. The default is a PausableClock.
func WithClock(c core.Clock) Option {
	return func(r *Round) { r.clock = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(r *Round) { r.logger = l }
}

// WithRand replaces the seeded RNG used for food placement.
func WithRand(rng Rand) Option {
	return func(r *Round) { r.rng = rng }
}

// NewRound creates a simulation and starts the first round.
func NewRound(rules Rules, seed int64, opts ...Option) *Round {
	r := &Round{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.clock == nil {
		r.clock = core.NewPausableClock()
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}

	r.snake = NewSnake(rules.Start)
	r.food = NewFoodState(r.rng, rules.SpawnRetries, rules.Food)
	r.roundNo = 1

	now := r.clock.Now()
	r.nextMove = now + rules.MoveInterval
	r.nextFood = now + rules.FoodInterval
	return r
}

// Rules returns the rules the round was created with.
func (r *Round) Rules() Rules {
	return r.rules
}

// Snake exposes the chain for inspection.
func (r *Round) Snake() *Snake {
	return r.snake
}

// Food exposes the food tracker for inspection.
func (r *Round) Food() *FoodState {
	return r.food
}

// Latch records the frame's directional intent for the next movement tick.
// Only the most recent intent survives; frames without one keep the latch.
func (r *Round) Latch(in core.InputFrame) {
	if d, ok := DirectionFromInput(in); ok {
		r.latched = d
		r.hasLatch = true
	}
}

// Step samples one frame of input and runs whichever cadences are due.
func (r *Round) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		r.SetPaused(!r.paused)
	}
	if r.paused {
		return core.StepResult{State: r.State()}
	}

	r.Latch(in)

	var out []core.Event
	now := r.clock.Now()
	if now >= r.nextMove {
		for _, e := range r.MoveTick() {
			out = append(out, e)
		}
		r.nextMove = nextDue(r.nextMove, now, r.rules.MoveInterval)
	}
	if now >= r.nextFood {
		r.FoodTick()
		r.nextFood = nextDue(r.nextFood, now, r.rules.FoodInterval)
	}

	return core.StepResult{State: r.State(), Events: out}
}

// nextDue schedules the following tick. A host that fell behind by more
// than one interval resynchronizes instead of bursting.
func nextDue(due, now, interval time.Duration) time.Duration {
	due += interval
	if due <= now {
		due = now + interval
	}
	return due
}

// MoveTick runs one movement tick in fixed order:
// advance, wall/self check, eat check, growth, game-over reset.
// It returns the events raised during the tick.
func (r *Round) MoveTick() []Event {
	if r.hasLatch {
		r.snake.SetDirection(r.latched)
		r.hasLatch = false
	}

	move, err := r.snake.Advance()
	if err != nil {
		r.logger.Error("segment chain corrupted, resetting round", "err", err, "round", r.roundNo)
		r.events.raise(Event{Kind: EventGameOver, Cause: CauseCorruptChain, Round: r.roundNo})
		r.gameOver(CauseCorruptChain)
		return r.events.drain()
	}
	r.tick++

	switch {
	case r.rules.Board.IsOutOfBounds(move.Head):
		r.raiseGameOver(CauseWall, move.Head)
	case r.snake.IsSelfCollision(move.Head, r.rules.Tail):
		r.raiseGameOver(CauseSelf, move.Head)
	}

	if r.food.CheckEaten(move.Head) {
		r.score += r.food.Consume(move.Head)
		r.events.raise(Event{Kind: EventGrowth, At: move.Head, Round: r.roundNo})

		// The regrown tail would land on the head.
		if r.rules.Tail == TailVacates && move.Head == move.LastTail {
			if _, over := r.events.first(EventGameOver); !over {
				r.raiseGameOver(CauseSelf, move.Head)
			}
		}
	}

	over, isOver := r.events.first(EventGameOver)
	if _, grew := r.events.first(EventGrowth); grew && !isOver {
		r.snake.Grow(move.LastTail)
	}
	if isOver {
		r.gameOver(over.Cause)
	}

	return r.events.drain()
}

func (r *Round) raiseGameOver(cause Cause, at core.Position) {
	r.events.raise(Event{Kind: EventGameOver, Cause: cause, At: at, Round: r.roundNo})
}

// gameOver destroys all food and segments and starts a fresh round.
// Nothing from the finished round survives except the counters kept for
// display.
func (r *Round) gameOver(cause Cause) {
	r.logger.Debug("round over",
		"round", r.roundNo,
		"cause", cause,
		"length", r.snake.Len(),
		"score", r.score,
		"ticks", r.tick,
	)

	r.lastLength = r.snake.Len()
	r.food.Clear()
	r.snake.Reset(r.rules.Start)
	r.hasLatch = false
	r.score = 0
	r.tick = 0
	r.roundNo++
}

// FoodTick runs the food cadence: expire old items, then try to spawn.
func (r *Round) FoodTick() {
	now := r.clock.Now()

	if n := r.food.Expire(now, r.rules.FoodTTL); n > 0 {
		r.logger.Debug("food expired", "count", n, "round", r.roundNo)
	}

	if f, ok := r.food.TrySpawn(r.rules.Board, r.snake.Positions(), now); ok {
		if r.snake.Occupies(f.Pos) {
			r.logger.Debug("food placed on snake after retries", "x", f.Pos.X, "y", f.Pos.Y)
		} else {
			r.logger.Debug("food spawned", "x", f.Pos.X, "y", f.Pos.Y)
		}
	}
}

// SetPaused pauses or resumes the simulation. A pausable clock is stopped
// too, so food does not age while paused.
func (r *Round) SetPaused(paused bool) {
	if paused == r.paused {
		return
	}
	r.paused = paused

	p, canPause := r.clock.(pauser)
	if paused {
		if canPause {
			p.Pause()
		}
		return
	}
	if canPause {
		p.Resume()
	}

	now := r.clock.Now()
	if r.nextMove < now {
		r.nextMove = now + r.rules.MoveInterval
	}
	if r.nextFood < now {
		r.nextFood = now + r.rules.FoodInterval
	}
}

// Paused reports whether the simulation is paused.
func (r *Round) Paused() bool {
	return r.paused
}

// State returns the host-facing summary.
func (r *Round) State() core.GameState {
	return core.GameState{
		Score:  r.score,
		Length: r.snake.Len(),
		Round:  r.roundNo,
		Paused: r.paused,
	}
}
