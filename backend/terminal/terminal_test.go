package terminal

import (
	"context"
	"image"
	"image/color"
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-pong/input"
	"ebiten-pong/render"
)

func newScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTargetScalesSprites(t *testing.T) {
	target := NewTarget(newScreen(t), 800, 600, 10, 20)
	red := tcell.NewRGBColor(255, 0, 0)
	black := tcell.NewRGBColor(0, 0, 0)

	target.Fill(color.Black, nil)
	target.Blit(&Sprite{Color: red, Width: 20, Height: 200}, image.Pt(10, 200))

	if cols, rows := target.Grid(); cols != 80 || rows != 30 {
		t.Fatalf("grid %dx%d, want 80x30", cols, rows)
	}
	tests := []struct {
		x, y int
		want tcell.Color
	}{
		{0, 10, black},
		{1, 10, red},
		{2, 19, red},
		{3, 10, black},
		{1, 9, black},
		{1, 20, black},
	}
	for _, tt := range tests {
		if got := target.Cell(tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTargetClipsToCourt(t *testing.T) {
	target := NewTarget(newScreen(t), 800, 600, 10, 20)
	target.Fill(color.Black, nil)

	target.Blit(&render.Solid{Color: color.White, Width: 50, Height: 50}, image.Pt(780, 580))
	target.Blit(&render.Solid{Color: color.White, Width: 50, Height: 50}, image.Pt(-100, -100))

	white := tcell.NewRGBColor(255, 255, 255)
	if got := target.Cell(79, 29); got != white {
		t.Errorf("corner cell = %v, want white", got)
	}
	if got := target.Cell(0, 0); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("off-court blit painted cell (0,0) %v", got)
	}
}

func TestTargetFillAreas(t *testing.T) {
	target := NewTarget(newScreen(t), 800, 600, 10, 20)
	target.Fill(color.Black, nil)
	target.Fill(color.White, []image.Rectangle{image.Rect(395, 0, 405, 600)})

	white := tcell.NewRGBColor(255, 255, 255)
	for y := range 30 {
		if target.Cell(39, y) != white || target.Cell(40, y) != white {
			t.Fatalf("net missing on row %d", y)
		}
	}
	if target.Cell(38, 0) == white {
		t.Error("net too wide")
	}
}

func TestTargetPresent(t *testing.T) {
	target := NewTarget(newScreen(t), 800, 600, 10, 20)
	target.Status = func() string { return "1 - 0" }
	target.Fill(color.Black, nil)

	if err := target.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
}

func TestFactory(t *testing.T) {
	d, err := Factory{}.FromColor(color.RGBA{0, 255, 0, 255}, 20, 20)
	if err != nil {
		t.Fatalf("FromColor: %v", err)
	}
	s := d.(*Sprite)
	if s.Color != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("colour = %v", s.Color)
	}
	if w, h := s.Size(); w != 20 || h != 20 {
		t.Errorf("size %dx%d", w, h)
	}
	if _, err := (Factory{}).FromColor(color.White, 0, 1); err == nil {
		t.Error("expected error for empty sprite")
	}
}

func key(k tcell.Key) tcell.Event {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSourceSynthesizesRelease(t *testing.T) {
	ch := make(chan tcell.Event, 8)
	src := NewSource(ch)
	src.Hold = 2

	ch <- key(tcell.KeyUp)
	if got := src.Events(); !slices.Equal(got, []input.Event{{Type: input.KeyDown, Key: input.KeyArrowUp}}) {
		t.Fatalf("first poll = %v", got)
	}
	// Auto-repeat keeps the key down without a second KeyDown.
	ch <- key(tcell.KeyUp)
	if got := src.Events(); len(got) != 0 {
		t.Fatalf("repeat poll = %v, want none", got)
	}
	if got := src.Events(); len(got) != 0 {
		t.Fatalf("held poll = %v, want none", got)
	}
	if got := src.Events(); !slices.Equal(got, []input.Event{{Type: input.KeyUp, Key: input.KeyArrowUp}}) {
		t.Fatalf("release poll = %v", got)
	}
	if got := src.Events(); len(got) != 0 {
		t.Fatalf("idle poll = %v, want none", got)
	}
}

func TestSourceReleasesOppositeDirection(t *testing.T) {
	ch := make(chan tcell.Event, 8)
	src := NewSource(ch)

	ch <- runeKey('w')
	src.Events()
	ch <- key(tcell.KeyDown)

	want := []input.Event{
		{Type: input.KeyUp, Key: input.KeyArrowUp},
		{Type: input.KeyDown, Key: input.KeyArrowDown},
	}
	if got := src.Events(); !slices.Equal(got, want) {
		t.Errorf("Events = %v, want %v", got, want)
	}
}

func TestSourceReleasesInKeyOrder(t *testing.T) {
	want := []input.Event{
		{Type: input.KeyUp, Key: input.KeyArrowUp},
		{Type: input.KeyUp, Key: input.KeyEnter},
		{Type: input.KeyUp, Key: input.KeySpace},
		{Type: input.KeyUp, Key: input.KeyF1},
	}
	for range 20 {
		ch := make(chan tcell.Event, 8)
		src := NewSource(ch)
		src.Hold = 1

		ch <- key(tcell.KeyF1)
		ch <- runeKey(' ')
		ch <- key(tcell.KeyEnter)
		ch <- key(tcell.KeyUp)
		src.Events()

		if got := src.Events(); !slices.Equal(got, want) {
			t.Fatalf("Events = %v, want %v", got, want)
		}
	}
}

func TestSourceQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
	}{
		{"escape", key(tcell.KeyEscape)},
		{"ctrl-c", key(tcell.KeyCtrlC)},
		{"q", runeKey('q')},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := make(chan tcell.Event, 1)
			ch <- tt.ev
			got := NewSource(ch).Events()
			if len(got) != 1 || got[0].Type != input.Quit {
				t.Errorf("Events = %v, want quit", got)
			}
		})
	}
}

func TestSourceClosedChannelQuits(t *testing.T) {
	ch := make(chan tcell.Event)
	close(ch)
	src := NewSource(ch)

	for range 2 {
		got := src.Events()
		if len(got) != 1 || got[0].Type != input.Quit {
			t.Fatalf("Events = %v, want quit", got)
		}
	}
}

func TestSourceIgnoresOtherEvents(t *testing.T) {
	ch := make(chan tcell.Event, 2)
	ch <- tcell.NewEventResize(100, 40)
	ch <- runeKey('x')

	if got := NewSource(ch).Events(); len(got) != 0 {
		t.Errorf("Events = %v, want none", got)
	}
}

func TestPump(t *testing.T) {
	screen := newScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := Pump(ctx, screen)

	if err := screen.PostEvent(key(tcell.KeyF1)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}

	timeout := time.After(time.Second)
	for {
		select {
		case ev := <-events:
			if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyF1 {
				return
			}
		case <-timeout:
			t.Fatal("posted event never arrived")
		}
	}
}
