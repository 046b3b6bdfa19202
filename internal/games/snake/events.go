package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// EventKind identifies what happened during a movement tick.
type EventKind int

const (
	EventGrowth EventKind = iota + 1
	EventGameOver
)

// Cause explains a game over.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseCorruptChain
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseCorruptChain:
		return "corrupt_chain"
	default:
		return "none"
	}
}

// Event is raised by a movement tick and drained once at its end.
type Event struct {
	Kind  EventKind
	Cause Cause         // set for EventGameOver
	At    core.Position // head position when raised
	Round int           // round in which the event was raised
}

func (e Event) String() string {
	switch e.Kind {
	case EventGrowth:
		return fmt.Sprintf("growth at (%d, %d)", e.At.X, e.At.Y)
	case EventGameOver:
		return fmt.Sprintf("game over (%s) at (%d, %d)", e.Cause, e.At.X, e.At.Y)
	default:
		return "unknown event"
	}
}

// eventList is the in-tick event buffer. There is one producer and one
// consumer per kind, so a plain slice drained in order is enough.
type eventList struct {
	events []Event
}

func (l *eventList) raise(e Event) {
	l.events = append(l.events, e)
}

// first returns the first raised event of the given kind.
func (l *eventList) first(kind EventKind) (Event, bool) {
	for _, e := range l.events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func (l *eventList) drain() []Event {
	out := l.events
	l.events = nil
	return out
}
