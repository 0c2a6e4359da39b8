package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StartScreen handles the game's start menu
type StartScreen struct {
	*BaseScreen
	selectedOption int
	options        []string
	transitions    []error
	titleColor     color.Color
	optionColor    color.Color
	selectedColor  color.Color
}

// NewStartScreen creates a new start screen
func NewStartScreen() *StartScreen {
	return &StartScreen{
		BaseScreen:     NewBaseScreen(),
		selectedOption: 0,
		options: []string{
			"Play",
			"Endless Rally",
			"Quit",
		},
		transitions:   []error{ErrNewGame, ErrEndless, ErrQuit},
		titleColor:    color.RGBA{255, 230, 150, 255}, // Gold
		optionColor:   color.RGBA{200, 200, 200, 255}, // Light Gray
		selectedColor: color.RGBA{255, 255, 255, 255}, // White
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	// Handle arrow key navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}

	// Handle selection
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return s.transitions[s.selectedOption]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screenHeight := screen.Bounds().Dy()
	centerY := screenHeight / 2

	drawCentred(screen, "P O N G", centerY-120, s.titleColor)

	// Draw options
	optionSpacing := 30
	startY := centerY - (len(s.options)*optionSpacing)/2

	for i, option := range s.options {
		// Choose color based on selection
		textColor := s.optionColor
		if i == s.selectedOption {
			textColor = s.selectedColor
			option = "> " + option + " <"
		}
		drawCentred(screen, option, startY+i*optionSpacing, textColor)
	}

	drawCentred(screen, "Up/Down or W/S move the left paddle", screenHeight-60, s.optionColor)
	drawCentred(screen, "Space pauses, F1 shows the debug view", screenHeight-40, s.optionColor)
}
