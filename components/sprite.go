package components

import "ebiten-pong/render"

// SpriteComponent is an area drawn with an image. Its size always follows
// the image.
type SpriteComponent struct {
	AreaComponent
	Image render.Drawable
	// Depth orders drawing; lower depths are drawn first.
	Depth float64
}

// NewSpriteComponent creates a sprite at x, y sized to img.
func NewSpriteComponent(img render.Drawable, x, y int) *SpriteComponent {
	w, h := img.Size()
	return &SpriteComponent{
		AreaComponent: *NewAreaComponent(x, y, w, h),
		Image:         img,
	}
}

// Overlaps reports whether two sprites share a pixel.
func (s *SpriteComponent) Overlaps(other *SpriteComponent) bool {
	return s.AreaComponent.Overlaps(&other.AreaComponent)
}
