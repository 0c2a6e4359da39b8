// Package render is the boundary to the drawing backends. Systems draw
// through a Target; backends in backend/ implement it.
package render

import (
	"image"
	"image/color"
)

// Drawable is anything a Target can blit.
type Drawable interface {
	Size() (width, height int)
}

// Target is a drawing surface.
type Target interface {
	// Blit draws d with its top-left corner at the given point.
	Blit(d Drawable, at image.Point)
	// Fill paints areas with c. A nil slice fills the whole surface.
	Fill(c color.Color, areas []image.Rectangle)
	// Present makes everything drawn since the last Present visible.
	Present() error
}

// SpriteFactory creates drawables for one backend. It is passed to whoever
// builds sprites, so the backend choice is never global state.
type SpriteFactory interface {
	FromColor(c color.Color, width, height int) (Drawable, error)
}
