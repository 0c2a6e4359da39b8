package terminal

import (
	"context"
	"maps"
	"slices"

	"github.com/gdamore/tcell/v2"

	"ebiten-pong/input"
)

// DefaultHold is how many polls a key counts as held after its last press.
// Terminals only report presses and auto-repeat, never releases.
const DefaultHold = 8

// Pump reads events from screen on its own goroutine until the screen is
// finalized or ctx is done. The returned channel is closed when it stops.
func Pump(ctx context.Context, screen tcell.Screen) <-chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		defer close(ch)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Source turns terminal events into input events. A key stays down until
// Hold polls pass without it repeating, or another direction is pressed.
type Source struct {
	events <-chan tcell.Event
	held   map[input.Key]int
	closed bool

	Hold int
}

// NewSource creates a source draining events.
func NewSource(events <-chan tcell.Event) *Source {
	return &Source{
		events: events,
		held:   make(map[input.Key]int),
		Hold:   DefaultHold,
	}
}

// Events implements input.Source. It never blocks.
func (s *Source) Events() []input.Event {
	if s.closed {
		return []input.Event{{Type: input.Quit}}
	}

	var out []input.Event
	pressed := make(map[input.Key]bool)
drain:
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.closed = true
				return append(out, input.Event{Type: input.Quit})
			}
			key, quit := translate(ev)
			if quit {
				return append(out, input.Event{Type: input.Quit})
			}
			if key == input.KeyUnknown {
				continue
			}
			out = s.press(out, key)
			pressed[key] = true
		default:
			break drain
		}
	}

	for _, key := range slices.Sorted(maps.Keys(s.held)) {
		left := s.held[key]
		if pressed[key] {
			continue
		}
		if left <= 1 {
			delete(s.held, key)
			out = append(out, input.Event{Type: input.KeyUp, Key: key})
			continue
		}
		s.held[key] = left - 1
	}
	return out
}

func (s *Source) press(out []input.Event, key input.Key) []input.Event {
	if _, down := s.held[key]; !down {
		if opposite, ok := opposites[key]; ok {
			if _, down := s.held[opposite]; down {
				delete(s.held, opposite)
				out = append(out, input.Event{Type: input.KeyUp, Key: opposite})
			}
		}
		out = append(out, input.Event{Type: input.KeyDown, Key: key})
	}
	s.held[key] = s.Hold
	return out
}

var opposites = map[input.Key]input.Key{
	input.KeyArrowUp:   input.KeyArrowDown,
	input.KeyArrowDown: input.KeyArrowUp,
}

// translate maps a terminal event to a key, or reports a request to quit.
func translate(ev tcell.Event) (input.Key, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return input.KeyUnknown, false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyUnknown, true
	case tcell.KeyUp:
		return input.KeyArrowUp, false
	case tcell.KeyDown:
		return input.KeyArrowDown, false
	case tcell.KeyEnter:
		return input.KeyEnter, false
	case tcell.KeyF1:
		return input.KeyF1, false
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return input.KeyUnknown, true
		case 'w':
			return input.KeyArrowUp, false
		case 's':
			return input.KeyArrowDown, false
		case ' ':
			return input.KeySpace, false
		}
	}
	return input.KeyUnknown, false
}
