// Package terminal draws a match into a tcell screen and reads keys from it.
// Court pixels are scaled down to cells; every cell shows one colour.
package terminal

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"ebiten-pong/render"
)

// Sprite is a drawable filled with one terminal colour.
type Sprite struct {
	Color  tcell.Color
	Width  int
	Height int
}

// Size implements render.Drawable.
func (s *Sprite) Size() (int, int) {
	return s.Width, s.Height
}

// Factory makes Sprites.
type Factory struct{}

// FromColor implements render.SpriteFactory.
func (Factory) FromColor(c color.Color, width, height int) (render.Drawable, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("terminal: invalid sprite size %dx%d", width, height)
	}
	return &Sprite{Color: toColor(c), Width: width, Height: height}, nil
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Target is a render.Target drawing into a tcell screen. Drawing goes to a
// back buffer; Present copies it to the screen.
type Target struct {
	screen       tcell.Screen
	cellW, cellH int
	cols, rows   int
	cells        []tcell.Color

	// Status, when set, is printed on the top row at every Present.
	Status func() string
}

// NewTarget creates a target for a court of width x height pixels, each
// cell covering cellW x cellH pixels.
func NewTarget(screen tcell.Screen, width, height, cellW, cellH int) *Target {
	cols, rows := width/cellW, height/cellH
	return &Target{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		cols:   cols,
		rows:   rows,
		cells:  make([]tcell.Color, cols*rows),
	}
}

// Blit implements render.Target.
func (t *Target) Blit(d render.Drawable, at image.Point) {
	w, h := d.Size()
	var c tcell.Color
	switch s := d.(type) {
	case *Sprite:
		c = s.Color
	case *render.Solid:
		c = toColor(s.Color)
	default:
		c = tcell.ColorWhite
	}
	t.paint(c, image.Rect(at.X, at.Y, at.X+w, at.Y+h))
}

// Fill implements render.Target.
func (t *Target) Fill(c color.Color, areas []image.Rectangle) {
	col := toColor(c)
	if areas == nil {
		for i := range t.cells {
			t.cells[i] = col
		}
		return
	}
	for _, r := range areas {
		t.paint(col, r)
	}
}

// paint colours every cell that r touches.
func (t *Target) paint(c tcell.Color, r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, t.cols*t.cellW, t.rows*t.cellH))
	if r.Empty() {
		return
	}
	for y := r.Min.Y / t.cellH; y <= (r.Max.Y-1)/t.cellH; y++ {
		for x := r.Min.X / t.cellW; x <= (r.Max.X-1)/t.cellW; x++ {
			t.cells[y*t.cols+x] = c
		}
	}
}

// Present implements render.Target.
func (t *Target) Present() error {
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(t.cells[y*t.cols+x]))
		}
	}
	if t.Status != nil {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		for i, r := range t.Status() {
			if i >= t.cols {
				break
			}
			t.screen.SetContent(i, 0, r, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Cell returns the colour of the buffered cell at x, y.
func (t *Target) Cell(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= t.cols || y >= t.rows {
		return tcell.ColorDefault
	}
	return t.cells[y*t.cols+x]
}

// Grid returns the size of the target in cells.
func (t *Target) Grid() (cols, rows int) {
	return t.cols, t.rows
}
