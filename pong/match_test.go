package pong_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log"
	"strings"
	"testing"
	"time"

	"ebiten-pong/config"
	"ebiten-pong/cop"
	"ebiten-pong/input"
	"ebiten-pong/pong"
	"ebiten-pong/render"
	"ebiten-pong/systems"
)

func newMatch(t *testing.T, cfg config.Config, target render.Target, opts ...pong.Option) *pong.Match {
	t.Helper()
	m, err := pong.NewMatch(cfg, render.SolidFactory{}, target, opts...)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	return m
}

func tick(t *testing.T, m *pong.Match, events ...input.Event) bool {
	t.Helper()
	running, err := m.Tick(events)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	return running
}

func TestNewMatchLayout(t *testing.T) {
	m := newMatch(t, config.Default(), render.NewRecorder())

	left, right := m.Paddles()
	if got := left.Sprite.Point(); got != image.Pt(10, 200) {
		t.Errorf("left paddle at %v, want (10,200)", got)
	}
	if got := right.Sprite.Point(); got != image.Pt(770, 200) {
		t.Errorf("right paddle at %v, want (770,200)", got)
	}
	if left.Player.AI || !right.Player.AI {
		t.Error("expected human left and computer right")
	}
	if got := m.Ball().Sprite.Point(); got != image.Pt(390, 290) {
		t.Errorf("ball at %v, want (390,290)", got)
	}
	if n := len(m.World().GetAllEntities()); n != 3 {
		t.Errorf("%d entities, want 3", n)
	}
}

func TestSystemOrder(t *testing.T) {
	m := newMatch(t, config.Default(), render.NewRecorder())

	got := m.World().Systems()
	if len(got) != 5 {
		t.Fatalf("%d systems, want 5", len(got))
	}
	checks := []func(cop.System) bool{
		func(s cop.System) bool { _, ok := s.(*systems.TrackingAISystem); return ok },
		func(s cop.System) bool { _, ok := s.(*systems.MovementSystem); return ok },
		func(s cop.System) bool { _, ok := s.(*systems.ScoringSystem); return ok },
		func(s cop.System) bool { _, ok := s.(*systems.CollisionSystem); return ok },
		func(s cop.System) bool { _, ok := s.(*systems.SpriteRenderer); return ok },
	}
	for i, check := range checks {
		if !check(got[i]) {
			t.Errorf("system %d is %s", i, cop.SystemName(got[i]))
		}
	}

	rows := m.World().Schedule().Rows()
	want := []int{2, 3, 2, 3, 3}
	for i, row := range rows {
		if row.Len() != want[i] {
			t.Errorf("%s handles %d entities, want %d", cop.SystemName(row.System()), row.Len(), want[i])
		}
	}
}

func TestTickDrawsMovedBall(t *testing.T) {
	target := render.NewRecorder()
	m := newMatch(t, config.Default(), target)

	if !tick(t, m) {
		t.Fatal("match stopped after one frame")
	}

	if target.Frames() != 1 {
		t.Errorf("presented %d frames, want 1", target.Frames())
	}
	ops := target.Presented()
	if len(ops) == 0 || !ops[0].Fill || ops[0].Areas != nil {
		t.Fatalf("frame does not start by clearing the court: %+v", ops)
	}
	if len(ops) < 2 || !ops[1].Fill || len(ops[1].Areas) != 15 {
		t.Errorf("net not drawn after clearing: %+v", ops)
	}
	blits := target.Blits()
	if len(blits) != 3 {
		t.Fatalf("%d blits, want 3", len(blits))
	}
	// The ball is drawn last and after movement.
	if got := blits[2].At; got != image.Pt(387, 290) {
		t.Errorf("ball drawn at %v, want (387,290)", got)
	}
}

func TestInputMovesLeftPaddle(t *testing.T) {
	m := newMatch(t, config.Default(), render.NewRecorder())
	left, _ := m.Paddles()

	tick(t, m, input.Event{Type: input.KeyDown, Key: input.KeyArrowUp})
	if got := left.Sprite.Point(); got != image.Pt(10, 197) {
		t.Errorf("paddle at %v after up, want (10,197)", got)
	}

	tick(t, m, input.Event{Type: input.KeyUp, Key: input.KeyArrowUp})
	if got := left.Sprite.Point(); got != image.Pt(10, 197) {
		t.Errorf("paddle at %v after release, want (10,197)", got)
	}

	tick(t, m, input.Event{Type: input.KeyDown, Key: input.KeyArrowDown})
	tick(t, m)
	if got := left.Sprite.Point(); got != image.Pt(10, 203) {
		t.Errorf("paddle at %v after two frames down, want (10,203)", got)
	}
}

func TestReleaseKeysStopsPaddle(t *testing.T) {
	m := newMatch(t, config.Default(), render.NewRecorder())
	left, _ := m.Paddles()

	tick(t, m, input.Event{Type: input.KeyDown, Key: input.KeyArrowDown})
	m.ReleaseKeys()
	tick(t, m)
	if got := left.Sprite.Point(); got != image.Pt(10, 203) {
		t.Errorf("paddle at %v, want it stopped at (10,203)", got)
	}
	if left.Velocity.Vy != 0 {
		t.Errorf("Vy = %v after ReleaseKeys, want 0", left.Velocity.Vy)
	}
}

func TestQuitStopsMatch(t *testing.T) {
	target := render.NewRecorder()
	m := newMatch(t, config.Default(), target)

	if tick(t, m, input.Event{Type: input.Quit}) {
		t.Error("match still running after quit")
	}
	if target.Frames() != 0 {
		t.Errorf("presented %d frames after quit, want 0", target.Frames())
	}
}

func TestMatchOver(t *testing.T) {
	cfg := config.Default()
	cfg.WinScore = 1
	var buf bytes.Buffer
	m := newMatch(t, cfg, render.NewRecorder(), pong.WithLogger(log.New(&buf, "", 0)))

	m.Ball().Sprite.MoveTo(0, 290)
	if tick(t, m) {
		t.Error("match still running after the winning point")
	}

	side, over := m.Over()
	if !over || side != systems.SideRight {
		t.Errorf("Over() = %v, %v, want right, true", side, over)
	}
	if left, right := m.Score(); left != 0 || right != 1 {
		t.Errorf("score %d-%d, want 0-1", left, right)
	}
	if msgs := m.Messages().RecentMessages(1); len(msgs) != 1 || !strings.Contains(msgs[0].Text, "Computer wins") {
		t.Errorf("last message = %v", msgs)
	}
	if !strings.Contains(buf.String(), "match over, Computer wins") {
		t.Errorf("log = %q", buf.String())
	}
	if tick(t, m) {
		t.Error("finished match started running again")
	}
}

type brokenTarget struct {
	*render.Recorder
	err error
}

func (b brokenTarget) Present() error { return b.err }

func TestTickPresentError(t *testing.T) {
	errGone := errors.New("surface lost")
	m := newMatch(t, config.Default(), brokenTarget{Recorder: render.NewRecorder(), err: errGone})

	running, err := m.Tick(nil)
	if running || !errors.Is(err, errGone) {
		t.Errorf("Tick = %v, %v, want false, surface lost", running, err)
	}
}

func TestNewMatchRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.BallSpeed = 0
	if _, err := pong.NewMatch(cfg, render.SolidFactory{}, render.NewRecorder()); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewMatch error = %v, want ErrInvalid", err)
	}
}

func TestBallStaysInCourt(t *testing.T) {
	cfg := config.Default()
	cfg.WinScore = 0
	m := newMatch(t, cfg, render.NewRecorder())
	court := image.Rect(0, 0, config.CourtWidth, config.CourtHeight)

	for i := range 3000 {
		tick(t, m)
		if r := m.Ball().Sprite.Rect(); !r.In(court) {
			t.Fatalf("frame %d: ball at %v left the court", i, r)
		}
	}
}

func TestRunFrameLimit(t *testing.T) {
	m := newMatch(t, config.Default(), render.NewRecorder())

	frames, err := pong.Run(context.Background(), m, &input.Queue{}, 0, 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frames != 10 {
		t.Errorf("ran %d frames, want 10", frames)
	}
	if got := m.Ball().Sprite.Point(); got != image.Pt(360, 290) {
		t.Errorf("ball at %v, want (360,290)", got)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	m := newMatch(t, config.Default(), render.NewRecorder())
	q := &input.Queue{}
	q.Push(input.Event{Type: input.Quit})

	frames, err := pong.Run(context.Background(), m, q, time.Millisecond, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frames != 1 {
		t.Errorf("ran %d frames, want 1", frames)
	}
}

func TestRunCancelled(t *testing.T) {
	m := newMatch(t, config.Default(), render.NewRecorder())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames, err := pong.Run(ctx, m, &input.Queue{}, 0, 0)
	if !errors.Is(err, context.Canceled) || frames != 0 {
		t.Errorf("Run = %d, %v, want 0, context.Canceled", frames, err)
	}
}
