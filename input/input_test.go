package input

import (
	"testing"

	"ebiten-pong/components"
)

func TestPaddleController(t *testing.T) {
	v := components.NewVelocityComponent(0, 0)
	c := NewPaddleController(v, 3)

	steps := []struct {
		events []Event
		wantVy float64
		quit   bool
	}{
		{[]Event{{Type: KeyDown, Key: KeyArrowUp}}, -3, false},
		{[]Event{{Type: KeyDown, Key: KeyArrowDown}}, 3, false},
		{[]Event{{Type: KeyDown, Key: KeySpace}}, 3, false},
		{[]Event{{Type: KeyUp, Key: KeyArrowDown}}, -3, false},
		{[]Event{{Type: KeyDown, Key: KeyArrowUp}, {Type: KeyUp, Key: KeyArrowUp}}, 0, false},
		{[]Event{{Type: Quit}, {Type: KeyDown, Key: KeyArrowDown}}, 0, true},
		{nil, 0, false},
	}
	for i, step := range steps {
		if quit := c.Apply(step.events); quit != step.quit {
			t.Errorf("step %d: quit = %v, want %v", i, quit, step.quit)
		}
		if v.Vy != step.wantVy {
			t.Errorf("step %d: Vy = %v, want %v", i, v.Vy, step.wantVy)
		}
	}
}

func TestPaddleControllerOverlappingKeys(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		wantVy float64
	}{
		{"release the older key", []Event{
			{Type: KeyDown, Key: KeyArrowUp},
			{Type: KeyDown, Key: KeyArrowDown},
			{Type: KeyUp, Key: KeyArrowUp},
		}, 3},
		{"release the newer key", []Event{
			{Type: KeyDown, Key: KeyArrowUp},
			{Type: KeyDown, Key: KeyArrowDown},
			{Type: KeyUp, Key: KeyArrowDown},
		}, -3},
		{"release both", []Event{
			{Type: KeyDown, Key: KeyArrowDown},
			{Type: KeyDown, Key: KeyArrowUp},
			{Type: KeyUp, Key: KeyArrowUp},
			{Type: KeyUp, Key: KeyArrowDown},
		}, 0},
		{"stray release", []Event{
			{Type: KeyDown, Key: KeyArrowDown},
			{Type: KeyUp, Key: KeyArrowUp},
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := components.NewVelocityComponent(0, 0)
			c := NewPaddleController(v, 3)
			c.Apply(tt.events)
			if v.Vy != tt.wantVy {
				t.Errorf("Vy = %v, want %v", v.Vy, tt.wantVy)
			}
		})
	}
}

func TestPaddleControllerRelease(t *testing.T) {
	v := components.NewVelocityComponent(0, 0)
	c := NewPaddleController(v, 3)
	c.Apply([]Event{{Type: KeyDown, Key: KeyArrowUp}, {Type: KeyDown, Key: KeyArrowDown}})
	c.Release()
	if v.Vy != 0 {
		t.Fatalf("Vy = %v after Release, want 0", v.Vy)
	}
	// Releasing a key forgotten by Release must not restart the paddle.
	c.Apply([]Event{{Type: KeyUp, Key: KeyArrowDown}})
	if v.Vy != 0 {
		t.Errorf("Vy = %v after a stale release, want 0", v.Vy)
	}
}

func TestQueue(t *testing.T) {
	var q Queue
	q.Push(Event{Type: KeyDown, Key: KeyArrowUp}, Event{Type: Quit})
	if got := q.Events(); len(got) != 2 {
		t.Fatalf("Events() returned %d events, want 2", len(got))
	}
	if got := q.Events(); len(got) != 0 {
		t.Errorf("second Events() returned %v, want none", got)
	}
}

func TestEventString(t *testing.T) {
	if got := (Event{Type: KeyDown, Key: KeyArrowUp}).String(); got != "keydown up" {
		t.Errorf("String() = %q", got)
	}
	if got := (Event{Type: Quit}).String(); got != "quit" {
		t.Errorf("String() = %q", got)
	}
}
