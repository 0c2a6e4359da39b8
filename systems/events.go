package systems

import (
	"ebiten-pong/cop"
)

// Event type constants
const (
	EventPaddleHit   cop.EventType = "paddle_hit"
	EventWallBounce  cop.EventType = "wall_bounce"
	EventPointScored cop.EventType = "point_scored"
	EventMatchOver   cop.EventType = "match_over"
)

// Side of the court.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Wall identifies which court edge the ball bounced off.
type Wall int

const (
	WallTop Wall = iota
	WallBottom
	WallLeft
	WallRight
)

func (w Wall) String() string {
	switch w {
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	case WallLeft:
		return "left"
	}
	return "right"
}

// PaddleHitEvent is emitted when the ball is returned by a paddle
type PaddleHitEvent struct {
	Paddle cop.EntityID // Entity owning the paddle sprite, 0 if unknown
	Vx, Vy float64      // Ball velocity after the hit
}

// Type returns the event type
func (e PaddleHitEvent) Type() cop.EventType {
	return EventPaddleHit
}

// WallBounceEvent is emitted when the ball bounces off a court edge
type WallBounceEvent struct {
	Wall Wall
}

// Type returns the event type
func (e WallBounceEvent) Type() cop.EventType {
	return EventWallBounce
}

// PointScoredEvent is emitted when the ball leaves the court past a paddle
type PointScoredEvent struct {
	Scorer cop.EntityID // Player entity that scored
	Side   Side         // Side of the scoring player
	Points int          // Scorer's points after this one
}

// Type returns the event type
func (e PointScoredEvent) Type() cop.EventType {
	return EventPointScored
}

// MatchOverEvent is emitted once, when a player reaches the winning score
type MatchOverEvent struct {
	Winner cop.EntityID
	Side   Side
	Points int
}

// Type returns the event type
func (e MatchOverEvent) Type() cop.EventType {
	return EventMatchOver
}
