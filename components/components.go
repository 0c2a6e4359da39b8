package components

import "image"

// Positioned is implemented by every component that carries a position,
// so systems can ask for "anything with a position".
type Positioned interface {
	Pos() *PositionComponent
}

// Bounded is implemented by every component that covers an area.
type Bounded interface {
	Positioned
	Bounds() *AreaComponent
}

// PositionComponent stores entity position in pixels
type PositionComponent struct {
	X, Y int
}

// NewPositionComponent creates a position component
func NewPositionComponent(x, y int) *PositionComponent {
	return &PositionComponent{X: x, Y: y}
}

// Pos implements Positioned.
func (p *PositionComponent) Pos() *PositionComponent {
	return p
}

// Point returns the position as an image.Point.
func (p *PositionComponent) Point() image.Point {
	return image.Pt(p.X, p.Y)
}

// Move shifts the position by dx, dy.
func (p *PositionComponent) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// MoveBy shifts the position by one step of v, truncated to whole pixels.
func (p *PositionComponent) MoveBy(v *VelocityComponent) {
	p.Move(v.IntVx(), v.IntVy())
}

// MoveTo places the position at x, y.
func (p *PositionComponent) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

func (p *PositionComponent) IsAbove(other *PositionComponent) bool   { return p.Y < other.Y }
func (p *PositionComponent) IsBelow(other *PositionComponent) bool   { return p.Y > other.Y }
func (p *PositionComponent) IsLeftOf(other *PositionComponent) bool  { return p.X < other.X }
func (p *PositionComponent) IsRightOf(other *PositionComponent) bool { return p.X > other.X }

// VelocityComponent stores movement per frame in pixels
type VelocityComponent struct {
	Vx, Vy float64
}

// NewVelocityComponent creates a velocity component
func NewVelocityComponent(vx, vy float64) *VelocityComponent {
	return &VelocityComponent{Vx: vx, Vy: vy}
}

// IntVx returns the horizontal speed truncated to whole pixels.
func (v *VelocityComponent) IntVx() int { return int(v.Vx) }

// IntVy returns the vertical speed truncated to whole pixels.
func (v *VelocityComponent) IntVy() int { return int(v.Vy) }

// PlayerDataComponent holds what the game knows about a player
type PlayerDataComponent struct {
	AI     bool
	Points int
}
