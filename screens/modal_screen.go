package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	content    string
	width      int
	height     int
	background color.Color
	textColor  color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		textColor:  color.White,
	}
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2

	// Draw semi-transparent background
	modal := ebiten.NewImage(s.width, s.height)
	defer modal.Deallocate()
	modal.Fill(s.background)

	// Draw border
	vector.StrokeRect(modal, 1, 1, float32(s.width-2), float32(s.height-2), 2, s.textColor, false)

	// Draw title
	drawCentred(modal, s.title, 10, s.textColor)

	// Draw content
	drawCentred(modal, s.content, 30, s.textColor)

	// Draw the modal to the screen
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
}
