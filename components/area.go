package components

import "image"

// AreaComponent is a position with a size. Edges are inclusive pixel
// coordinates: a 20 pixel wide area at X=0 has Left 0 and Right 19.
type AreaComponent struct {
	PositionComponent
	Width, Height int
}

// NewAreaComponent creates an area component
func NewAreaComponent(x, y, width, height int) *AreaComponent {
	return &AreaComponent{
		PositionComponent: PositionComponent{X: x, Y: y},
		Width:             width,
		Height:            height,
	}
}

// Bounds implements Bounded.
func (a *AreaComponent) Bounds() *AreaComponent {
	return a
}

func (a *AreaComponent) Top() int              { return a.Y }
func (a *AreaComponent) Left() int             { return a.X }
func (a *AreaComponent) Bottom() int           { return a.Y + a.Height - 1 }
func (a *AreaComponent) Right() int            { return a.X + a.Width - 1 }
func (a *AreaComponent) VerticalCenter() int   { return a.Y + a.Height/2 }
func (a *AreaComponent) HorizontalCenter() int { return a.X + a.Width/2 }

// Rect returns the area as a half-open image.Rectangle.
func (a *AreaComponent) Rect() image.Rectangle {
	return image.Rect(a.X, a.Y, a.X+a.Width, a.Y+a.Height)
}

// MoveWithinBounds moves by dx, dy but keeps the whole area inside bounds.
func (a *AreaComponent) MoveWithinBounds(dx, dy int, bounds image.Rectangle) {
	x := min(max(a.X+dx, bounds.Min.X), bounds.Max.X-a.Width)
	y := min(max(a.Y+dy, bounds.Min.Y), bounds.Max.Y-a.Height)
	a.MoveTo(x, y)
}

// Overlaps reports whether the two areas share at least one pixel.
func (a *AreaComponent) Overlaps(other *AreaComponent) bool {
	return a.Left() <= other.Right() && a.Right() >= other.Left() &&
		a.Top() <= other.Bottom() && a.Bottom() >= other.Top()
}

// IsAbove reports whether the area ends above other starts.
func (a *AreaComponent) IsAbove(other *AreaComponent) bool { return a.Bottom() < other.Top() }

// IsBelow reports whether the area starts below other ends.
func (a *AreaComponent) IsBelow(other *AreaComponent) bool { return a.Top() > other.Bottom() }

// IsLeftOf reports whether the area ends left of where other starts.
func (a *AreaComponent) IsLeftOf(other *AreaComponent) bool { return a.Right() < other.Left() }

// IsRightOf reports whether the area starts right of where other ends.
func (a *AreaComponent) IsRightOf(other *AreaComponent) bool { return a.Left() > other.Right() }
