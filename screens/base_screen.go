package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-pong/config"
)

// Approximate size of a debug font glyph
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct {
	// Window dimensions
	width  int
	height int
}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {
	// Base screen does nothing by default
}

// Layout implements the Screen interface. Screens always draw at court
// resolution and let ebiten scale to the window.
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width = outsideWidth
	s.height = outsideHeight
	return config.GetScreenDimensions()
}

// GetWidth returns the window width
func (s *BaseScreen) GetWidth() int {
	return s.width
}

// GetHeight returns the window height
func (s *BaseScreen) GetHeight() int {
	return s.height
}

// drawText prints text in colour c with its top-left corner at x, y
func drawText(dst *ebiten.Image, text string, x, y int, c color.Color) {
	w := len(text)*glyphWidth + 1
	if w <= 1 {
		return
	}
	line := ebiten.NewImage(w, glyphHeight)
	ebitenutil.DebugPrintAt(line, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(c)
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(line, op)
	line.Deallocate()
}

// drawCentred prints text horizontally centred on dst
func drawCentred(dst *ebiten.Image, text string, y int, c color.Color) {
	drawText(dst, text, (dst.Bounds().Dx()-len(text)*glyphWidth)/2, y, c)
}
