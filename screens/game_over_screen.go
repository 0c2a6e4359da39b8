package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-pong/pong"
	"ebiten-pong/systems"
)

// GameOverScreen displays the result over the final court
type GameOverScreen struct {
	*BaseScreen
	match  *pong.Match
	target Replayer
}

// NewGameOverScreen creates a new game over screen
func NewGameOverScreen(match *pong.Match, target Replayer) *GameOverScreen {
	return &GameOverScreen{
		BaseScreen: NewBaseScreen(),
		match:      match,
		target:     target,
	}
}

// Update handles input for the game over screen
func (s *GameOverScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrNewGame
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrMainMenu
	}
	return nil
}

// Draw draws the game over screen
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	s.target.Draw(screen)
	drawScore(screen, s.match)

	text := "Game Over!"
	if side, over := s.match.Over(); over {
		if side == systems.SideLeft {
			text = "You win!"
		} else {
			text = "The computer wins!"
		}
	}
	left, right := s.match.Score()
	screenHeight := screen.Bounds().Dy()
	drawCentred(screen, text, screenHeight/2-40, color.White)
	drawCentred(screen, fmt.Sprintf("%d - %d", left, right), screenHeight/2-16, color.White)
	drawCentred(screen, "Press Enter to play again, Escape for the menu", screenHeight/2+16, color.White)
}
