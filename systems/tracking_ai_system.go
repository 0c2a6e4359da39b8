package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/cop"
)

// TrackingAISystem steers computer controlled paddles. While the ball comes
// towards a paddle, the paddle follows it; otherwise it returns to the middle.
type TrackingAISystem struct {
	MinY, MaxY  int
	PaddleSpeed float64
	ball        *cop.Entity
}

// NewTrackingAISystem creates an AI for a court spanning minY..maxY.
func NewTrackingAISystem(minY, maxY int, paddleSpeed float64) *TrackingAISystem {
	return &TrackingAISystem{MinY: minY, MaxY: maxY, PaddleSpeed: paddleSpeed}
}

// SetBall sets the entity the paddles track.
func (s *TrackingAISystem) SetBall(ball *cop.Entity) {
	s.ball = ball
}

// CanProcess accepts players with a sprite and a velocity.
func (s *TrackingAISystem) CanProcess(e *cop.Entity) bool {
	return cop.Contains[*components.PlayerDataComponent](e) &&
		cop.Contains[*components.SpriteComponent](e) &&
		cop.Contains[*components.VelocityComponent](e)
}

// Process sets the vertical speed of every AI paddle.
func (s *TrackingAISystem) Process(_ *cop.World, entities []*cop.Entity) error {
	if s.ball == nil {
		return nil
	}
	ball, ok := cop.Get[*components.SpriteComponent](s.ball)
	if !ok {
		return ErrNoBall
	}
	ballVelocity, ok := cop.Get[*components.VelocityComponent](s.ball)
	if !ok {
		return ErrNoBall
	}

	for _, e := range entities {
		player, ok := cop.Get[*components.PlayerDataComponent](e)
		if !ok || !player.AI {
			continue
		}
		sprite, ok := cop.Get[*components.SpriteComponent](e)
		if !ok {
			continue
		}
		velocity, ok := cop.Get[*components.VelocityComponent](e)
		if !ok {
			continue
		}

		target := s.MinY + (s.MaxY-s.MinY)/2
		slack := int(s.PaddleSpeed)
		if approaching(ball, ballVelocity, sprite) {
			target = ball.VerticalCenter()
			slack = 0
		}

		centre := sprite.VerticalCenter()
		switch {
		case centre < target-slack:
			velocity.Vy = s.PaddleSpeed
		case centre > target+slack:
			velocity.Vy = -s.PaddleSpeed
		default:
			velocity.Vy = 0
		}
	}
	return nil
}

// approaching reports whether the ball moves horizontally towards the paddle.
func approaching(ball *components.SpriteComponent, v *components.VelocityComponent, paddle *components.SpriteComponent) bool {
	if paddle.HorizontalCenter() >= ball.HorizontalCenter() {
		return v.Vx > 0
	}
	return v.Vx < 0
}

func (s *TrackingAISystem) String() string {
	return "tracking ai"
}
