package systems

import (
	"fmt"
	"image"

	"ebiten-pong/components"
	"ebiten-pong/cop"
)

// MovementSystem moves every bounded entity by its velocity, keeping it
// inside the court.
type MovementSystem struct {
	bounds image.Rectangle
}

// NewMovementSystem creates a movement system for the inclusive pixel range
// minX..maxX, minY..maxY.
func NewMovementSystem(minX, minY, maxX, maxY int) *MovementSystem {
	return &MovementSystem{bounds: image.Rect(minX, minY, maxX+1, maxY+1)}
}

// Bounds returns the area entities are kept in.
func (s *MovementSystem) Bounds() image.Rectangle {
	return s.bounds
}

// CanProcess accepts entities with an area and a velocity.
func (s *MovementSystem) CanProcess(e *cop.Entity) bool {
	return cop.Contains[components.Bounded](e) && cop.Contains[*components.VelocityComponent](e)
}

// Process moves each entity one step.
func (s *MovementSystem) Process(_ *cop.World, entities []*cop.Entity) error {
	for _, e := range entities {
		area, ok := cop.Get[components.Bounded](e)
		if !ok {
			continue
		}
		velocity, ok := cop.Get[*components.VelocityComponent](e)
		if !ok {
			continue
		}
		area.Bounds().MoveWithinBounds(velocity.IntVx(), velocity.IntVy(), s.bounds)
	}
	return nil
}

func (s *MovementSystem) String() string {
	return fmt.Sprintf("movement %v", s.bounds)
}
