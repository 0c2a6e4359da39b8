// Package input is the boundary to the platform's input events. Backends
// translate native events into the small set the game understands.
package input

import "fmt"

// EventType identifies what happened.
type EventType int

const (
	Quit EventType = iota
	KeyDown
	KeyUp
)

func (t EventType) String() string {
	switch t {
	case Quit:
		return "quit"
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Key identifies a key the game reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyEnter
	KeyEscape
	KeySpace
	KeyF1
)

func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "up"
	case KeyArrowDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeySpace:
		return "space"
	case KeyF1:
		return "f1"
	}
	return "unknown"
}

// Event is one discrete input event.
type Event struct {
	Type EventType
	Key  Key
}

func (e Event) String() string {
	if e.Type == Quit {
		return "quit"
	}
	return e.Type.String() + " " + e.Key.String()
}

// Source produces the events that arrived since the previous call. Each
// call returns a new, finite slice.
type Source interface {
	Events() []Event
}

// Queue is a Source fed by hand. Headless runs and tests use it.
type Queue struct {
	pending []Event
}

// Push appends events for the next call to Events.
func (q *Queue) Push(events ...Event) {
	q.pending = append(q.pending, events...)
}

// Events implements Source.
func (q *Queue) Events() []Event {
	events := q.pending
	q.pending = nil
	return events
}
