package systems

import (
	"errors"
	"fmt"
	"math"

	"ebiten-pong/components"
	"ebiten-pong/cop"
)

// ErrNoBall is returned when the tracked ball lacks a sprite or velocity.
var ErrNoBall = errors.New("ball has no sprite or velocity")

// deflection scales how far from a paddle's centre the ball hit into the
// new vertical speed.
const deflection = 0.7

// CollisionSystem bounces the ball off paddles and court walls.
type CollisionSystem struct {
	MinX, MinY, MaxX, MaxY int
	ball                   *cop.Entity
}

// NewCollisionSystem creates a collision system for the inclusive court
// minX..maxX, minY..maxY.
func NewCollisionSystem(minX, minY, maxX, maxY int) *CollisionSystem {
	return &CollisionSystem{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// SetBall sets the entity whose bounces are resolved.
func (s *CollisionSystem) SetBall(ball *cop.Entity) {
	s.ball = ball
}

// CanProcess accepts anything with a sprite and a velocity.
func (s *CollisionSystem) CanProcess(e *cop.Entity) bool {
	return cop.Contains[*components.SpriteComponent](e) && cop.Contains[*components.VelocityComponent](e)
}

// Process resolves the ball against every other sprite, then against the walls.
func (s *CollisionSystem) Process(w *cop.World, entities []*cop.Entity) error {
	if s.ball == nil {
		return nil
	}
	ball, ok := cop.Get[*components.SpriteComponent](s.ball)
	if !ok {
		return fmt.Errorf("collision: %w", ErrNoBall)
	}
	velocity, ok := cop.Get[*components.VelocityComponent](s.ball)
	if !ok {
		return fmt.Errorf("collision: %w", ErrNoBall)
	}

	for _, e := range entities {
		if e == s.ball {
			continue
		}
		paddle, ok := cop.Get[*components.SpriteComponent](e)
		if !ok || paddle == ball || !ball.Overlaps(paddle) {
			continue
		}
		if s.deflect(ball, velocity, paddle) {
			w.EmitEvent(PaddleHitEvent{Paddle: e.ID, Vx: velocity.Vx, Vy: velocity.Vy})
		}
		break
	}

	s.bounceWalls(w, ball, velocity)
	return nil
}

// deflect sends the ball back towards the centre of the court. The further
// from the paddle's centre it hit, the steeper it leaves. It reports whether
// the ball changed horizontal direction.
func (s *CollisionSystem) deflect(ball *components.SpriteComponent, v *components.VelocityComponent, paddle *components.SpriteComponent) bool {
	before := v.Vx
	speed := math.Abs(v.Vx)
	if ball.HorizontalCenter() > s.MinX+(s.MaxX-s.MinX)/2 {
		v.Vx = -speed
	} else {
		v.Vx = speed
	}

	ballY, paddleY := ball.VerticalCenter(), paddle.VerticalCenter()
	step := paddle.Height / 2 / 10
	if step == 0 {
		step = 1
	}
	switch {
	case ballY < paddleY:
		v.Vy = -math.Round(float64(paddleY-ballY) / float64(step) * deflection)
	case ballY > paddleY:
		v.Vy = math.Round(float64(ballY-paddleY) / float64(step) * deflection)
	default:
		v.Vy = -v.Vy
	}
	return math.Signbit(before) != math.Signbit(v.Vx)
}

// bounceWalls reverses the ball when it touches an edge it is moving towards.
func (s *CollisionSystem) bounceWalls(w *cop.World, ball *components.SpriteComponent, v *components.VelocityComponent) {
	switch {
	case ball.Top() <= s.MinY && v.Vy < 0:
		v.Vy = -v.Vy
		w.EmitEvent(WallBounceEvent{Wall: WallTop})
	case ball.Bottom() >= s.MaxY && v.Vy > 0:
		v.Vy = -v.Vy
		w.EmitEvent(WallBounceEvent{Wall: WallBottom})
	}
	switch {
	case ball.Left() <= s.MinX && v.Vx < 0:
		v.Vx = -v.Vx
		w.EmitEvent(WallBounceEvent{Wall: WallLeft})
	case ball.Right() >= s.MaxX && v.Vx > 0:
		v.Vx = -v.Vx
		w.EmitEvent(WallBounceEvent{Wall: WallRight})
	}
}

func (s *CollisionSystem) String() string {
	return "collision"
}
