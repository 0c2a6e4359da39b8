package systems

import (
	"cmp"
	"slices"

	"ebiten-pong/components"
	"ebiten-pong/cop"
	"ebiten-pong/render"
)

// ByDepth orders sprites back to front.
func ByDepth(a, b *components.SpriteComponent) int {
	return cmp.Compare(a.Depth, b.Depth)
}

// SpriteRenderer draws every sprite onto a target
type SpriteRenderer struct {
	target render.Target

	// Order sorts sprites before drawing. Sprites that compare equal keep
	// the order they were found in.
	Order func(a, b *components.SpriteComponent) int
}

// NewSpriteRenderer creates a renderer drawing to target in depth order
func NewSpriteRenderer(target render.Target) *SpriteRenderer {
	return &SpriteRenderer{
		target: target,
		Order:  ByDepth,
	}
}

// CanProcess accepts entities with a sprite.
func (s *SpriteRenderer) CanProcess(e *cop.Entity) bool {
	return cop.Contains[*components.SpriteComponent](e)
}

// Process blits the sprites of all entities.
func (s *SpriteRenderer) Process(_ *cop.World, entities []*cop.Entity) error {
	sprites := cop.AllOf[*components.SpriteComponent](entities)
	if s.Order != nil {
		slices.SortStableFunc(sprites, s.Order)
	}
	for _, sprite := range sprites {
		if sprite.Image == nil {
			continue
		}
		s.target.Blit(sprite.Image, sprite.Point())
	}
	return nil
}

func (s *SpriteRenderer) String() string {
	return "sprite renderer"
}
