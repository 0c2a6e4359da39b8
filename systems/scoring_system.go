package systems

import (
	"fmt"
	"math"

	"ebiten-pong/components"
	"ebiten-pong/cop"
)

// ScoringSystem awards a point when the ball reaches the edge behind a
// paddle, then serves the ball again from the centre towards the player who
// conceded. The first player to reach WinScore ends the match; a WinScore of
// zero keeps the match running forever.
type ScoringSystem struct {
	MinX, MaxX int
	MinY, MaxY int
	WinScore   int

	// ServeVy picks the vertical speed of each serve; nil serves flat.
	ServeVy func() float64

	ball *cop.Entity
	over bool
}

// NewScoringSystem creates a scoring system for the inclusive court
// minX..maxX, minY..maxY.
func NewScoringSystem(minX, minY, maxX, maxY, winScore int) *ScoringSystem {
	return &ScoringSystem{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, WinScore: winScore}
}

// SetBall sets the entity whose position is scored.
func (s *ScoringSystem) SetBall(ball *cop.Entity) {
	s.ball = ball
}

// Over reports whether a player has won.
func (s *ScoringSystem) Over() bool {
	return s.over
}

// CanProcess accepts players with a sprite.
func (s *ScoringSystem) CanProcess(e *cop.Entity) bool {
	return cop.Contains[*components.PlayerDataComponent](e) && cop.Contains[*components.SpriteComponent](e)
}

// Process checks whether the ball is out and scores it.
func (s *ScoringSystem) Process(w *cop.World, entities []*cop.Entity) error {
	if s.ball == nil || s.over {
		return nil
	}
	ball, ok := cop.Get[*components.SpriteComponent](s.ball)
	if !ok {
		return fmt.Errorf("scoring: %w", ErrNoBall)
	}
	velocity, ok := cop.Get[*components.VelocityComponent](s.ball)
	if !ok {
		return fmt.Errorf("scoring: %w", ErrNoBall)
	}

	var scorer Side
	switch {
	case ball.Left() <= s.MinX:
		scorer = SideRight
	case ball.Right() >= s.MaxX:
		scorer = SideLeft
	default:
		return nil
	}

	entity, player := s.playerOn(scorer, entities)
	if player == nil {
		return nil
	}
	player.Points++
	w.EmitEvent(PointScoredEvent{Scorer: entity.ID, Side: scorer, Points: player.Points})

	s.serve(ball, velocity, scorer)

	if s.WinScore > 0 && player.Points >= s.WinScore {
		s.over = true
		w.EmitEvent(MatchOverEvent{Winner: entity.ID, Side: scorer, Points: player.Points})
	}
	return nil
}

// playerOn finds the player whose paddle sits on side of the court.
func (s *ScoringSystem) playerOn(side Side, entities []*cop.Entity) (*cop.Entity, *components.PlayerDataComponent) {
	middle := s.MinX + (s.MaxX-s.MinX)/2
	for _, e := range entities {
		sprite, ok := cop.Get[*components.SpriteComponent](e)
		if !ok {
			continue
		}
		player, ok := cop.Get[*components.PlayerDataComponent](e)
		if !ok {
			continue
		}
		if left := sprite.HorizontalCenter() < middle; left == (side == SideLeft) {
			return e, player
		}
	}
	return nil, nil
}

// serve puts the ball back in the middle, heading away from scorer.
func (s *ScoringSystem) serve(ball *components.SpriteComponent, v *components.VelocityComponent, scorer Side) {
	ball.MoveTo(
		s.MinX+(s.MaxX-s.MinX+1-ball.Width)/2,
		s.MinY+(s.MaxY-s.MinY+1-ball.Height)/2,
	)
	speed := math.Abs(v.Vx)
	if scorer == SideLeft {
		v.Vx = speed
	} else {
		v.Vx = -speed
	}
	v.Vy = 0
	if s.ServeVy != nil {
		v.Vy = s.ServeVy()
	}
}

func (s *ScoringSystem) String() string {
	return "scoring"
}
