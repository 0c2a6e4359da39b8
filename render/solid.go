package render

import (
	"fmt"
	"image"
	"image/color"
)

// Solid is a backend-neutral drawable: a filled rectangle of one colour.
type Solid struct {
	Color  color.Color
	Width  int
	Height int
}

// Size implements Drawable.
func (s *Solid) Size() (int, int) {
	return s.Width, s.Height
}

// SolidFactory makes Solid drawables.
type SolidFactory struct{}

// FromColor implements SpriteFactory.
func (SolidFactory) FromColor(c color.Color, width, height int) (Drawable, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid sprite size %dx%d", width, height)
	}
	return &Solid{Color: c, Width: width, Height: height}, nil
}

// Op is one recorded drawing call.
type Op struct {
	Fill     bool
	Color    color.Color
	Areas    []image.Rectangle
	Drawable Drawable
	At       image.Point
}

// Recorder is a Target that keeps the drawing calls of the current frame
// and the last presented frame. It backs headless runs and tests.
type Recorder struct {
	pending   []Op
	presented []Op
	frames    int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Blit implements Target.
func (r *Recorder) Blit(d Drawable, at image.Point) {
	r.pending = append(r.pending, Op{Drawable: d, At: at})
}

// Fill implements Target.
func (r *Recorder) Fill(c color.Color, areas []image.Rectangle) {
	r.pending = append(r.pending, Op{Fill: true, Color: c, Areas: areas})
}

// Present implements Target.
func (r *Recorder) Present() error {
	r.presented, r.pending = r.pending, nil
	r.frames++
	return nil
}

// Pending returns the calls made since the last Present.
func (r *Recorder) Pending() []Op {
	return r.pending
}

// Presented returns the calls of the last presented frame.
func (r *Recorder) Presented() []Op {
	return r.presented
}

// Frames returns how many frames were presented.
func (r *Recorder) Frames() int {
	return r.frames
}

// Blits returns the blit calls of the last presented frame.
func (r *Recorder) Blits() []Op {
	var blits []Op
	for _, op := range r.presented {
		if !op.Fill {
			blits = append(blits, op)
		}
	}
	return blits
}
