// Package event carries fire-once notifications from the simulation core to
// the audio/fx collaborator.
//
// Events are pushed during a tick and drained by the consumer between ticks.
// The queue is single-threaded: the simulation owns it for the duration of a
// tick, the front-end drains it afterwards.
package event

import "github.com/younwookim/unfair/internal/domain/geom"

// Kind represents the type of game event
type Kind int

const (
	// Jump fires on a successful ground jump, wall jump or launch pad kick
	Jump Kind = iota
	// Death fires once per life when the actor dies
	Death
	// Checkpoint fires when a checkpoint is activated for the first time
	Checkpoint
	// Explosion fires when something is blown up (fake save, destroyed enemy, title decoy)
	Explosion
	// Win fires when the real goal is reached
	Win
	// Buzzer fires on a wrong guess (fake goal, trust block vanishing, trap trigger)
	Buzzer
	// GravityFlip fires when a gravity switch inverts gravity
	GravityFlip
	// PowerUp fires when a power star is collected
	PowerUp
	// Glitch fires when a glitch trigger is crossed (screen effect only)
	Glitch
)

// String returns the string representation of the event kind
func (k Kind) String() string {
	switch k {
	case Jump:
		return "jump"
	case Death:
		return "death"
	case Checkpoint:
		return "checkpoint"
	case Explosion:
		return "explosion"
	case Win:
		return "win"
	case Buzzer:
		return "buzzer"
	case GravityFlip:
		return "gravity_flip"
	case PowerUp:
		return "power_up"
	case Glitch:
		return "glitch"
	default:
		return "unknown"
	}
}

// Event is a single notification
type Event struct {
	Kind Kind
	At   geom.Vec // World position where it happened
	Tick uint64
}

// Queue is a FIFO of pending events
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends an event
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all pending events in push order and empties the queue
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}

// Count returns how many pending events are of kind k
func (q *Queue) Count(k Kind) int {
	n := 0
	for _, e := range q.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
