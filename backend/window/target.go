// Package window draws a match with ebiten and reads its keyboard.
//
// ebiten only lets games draw inside Draw, while a match draws inside its
// Tick, which the game runs from Update. Target therefore records the calls
// of a frame as a display list and replays the last presented list in Draw.
package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-pong/render"
)

// Sprite is a drawable backed by an ebiten image.
type Sprite struct {
	Image *ebiten.Image
}

// Size implements render.Drawable.
func (s *Sprite) Size() (int, int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Factory makes Sprites.
type Factory struct{}

// FromColor implements render.SpriteFactory.
func (Factory) FromColor(c color.Color, width, height int) (render.Drawable, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("window: invalid sprite size %dx%d", width, height)
	}
	img := ebiten.NewImage(width, height)
	img.Fill(c)
	return &Sprite{Image: img}, nil
}

type op struct {
	fill     bool
	color    color.Color
	areas    []image.Rectangle
	drawable render.Drawable
	at       image.Point
}

// Target is a render.Target replayed onto the ebiten screen.
type Target struct {
	pending []op
	ready   []op
}

// NewTarget creates an empty target.
func NewTarget() *Target {
	return &Target{}
}

// Blit implements render.Target.
func (t *Target) Blit(d render.Drawable, at image.Point) {
	t.pending = append(t.pending, op{drawable: d, at: at})
}

// Fill implements render.Target.
func (t *Target) Fill(c color.Color, areas []image.Rectangle) {
	t.pending = append(t.pending, op{fill: true, color: c, areas: areas})
}

// Present implements render.Target.
func (t *Target) Present() error {
	t.ready, t.pending = t.pending, t.ready[:0]
	return nil
}

// Draw replays the last presented frame onto screen.
func (t *Target) Draw(screen *ebiten.Image) {
	for _, o := range t.ready {
		if o.fill {
			fill(screen, o.color, o.areas)
			continue
		}
		blit(screen, o.drawable, o.at)
	}
}

func fill(screen *ebiten.Image, c color.Color, areas []image.Rectangle) {
	if areas == nil {
		screen.Fill(c)
		return
	}
	for _, r := range areas {
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	}
}

func blit(screen *ebiten.Image, d render.Drawable, at image.Point) {
	switch s := d.(type) {
	case *Sprite:
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(at.X), float64(at.Y))
		screen.DrawImage(s.Image, op)
	case *render.Solid:
		vector.DrawFilledRect(screen, float32(at.X), float32(at.Y), float32(s.Width), float32(s.Height), s.Color, false)
	default:
		w, h := d.Size()
		vector.StrokeRect(screen, float32(at.X), float32(at.Y), float32(w), float32(h), 1, color.White, false)
	}
}
