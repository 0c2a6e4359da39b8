package screens

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/config"
	"ebiten-pong/input"
	"ebiten-pong/pong"
)

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	match       *pong.Match
	target      Replayer
	keyboard    input.Source
	screenStack *ScreenStack
}

// Replayer is a render target that can draw its last frame onto the screen
type Replayer interface {
	Draw(screen *ebiten.Image)
}

// NewGameScreen creates a new game screen
func NewGameScreen(match *pong.Match, target Replayer, keyboard input.Source) *GameScreen {
	return &GameScreen{
		BaseScreen:  NewBaseScreen(),
		match:       match,
		target:      target,
		keyboard:    keyboard,
		screenStack: NewScreenStack(),
	}
}

// Match returns the match being played
func (s *GameScreen) Match() *pong.Match {
	return s.match
}

// Update handles game updates
func (s *GameScreen) Update() error {
	events := s.keyboard.Events()
	for _, ev := range events {
		if ev.Type != input.KeyDown {
			continue
		}
		switch ev.Key {
		case input.KeyF1:
			// Toggle debug window with F1 key
			s.toggle(func(top Screen) bool { _, ok := top.(*DebugScreen); return ok }, func() Screen {
				return NewDebugScreen(s.match.World(), s.match.Messages())
			})
		case input.KeySpace:
			s.toggle(func(top Screen) bool { _, ok := top.(*ModalScreen); return ok }, func() Screen {
				return NewModalScreen("PAUSED", "Press Space to continue", 240, 60)
			})
		case input.KeyEscape:
			return ErrMainMenu
		}
	}

	// Update the screen stack first to handle modal input
	if err := s.screenStack.Update(); err != nil {
		if !errors.Is(err, ErrCloseScreen) {
			return err
		}
		s.screenStack.Pop()
	}

	// Only update the game world if no modal is open
	if s.screenStack.Peek() != nil {
		for _, ev := range events {
			if ev.Type == input.Quit {
				return ErrQuit
			}
		}
		return nil
	}

	running, err := s.match.Tick(events)
	if err != nil {
		return err
	}
	if !running {
		if _, over := s.match.Over(); over {
			return ErrMatchOver
		}
		return ErrQuit
	}
	return nil
}

// toggle closes the top overlay if it is the given kind, otherwise opens a
// new one. The paddle stops so keys released while paused do not stick.
func (s *GameScreen) toggle(is func(Screen) bool, open func() Screen) {
	if top := s.screenStack.Peek(); top != nil && is(top) {
		s.screenStack.Pop()
		return
	}
	s.screenStack.Push(open())
	s.match.ReleaseKeys()
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	// Draw the court as of the last tick
	s.target.Draw(screen)
	drawScore(screen, s.match)

	// If there's a screen on the stack, draw it
	if s.screenStack.Peek() != nil {
		s.screenStack.Draw(screen)
	}
}

func drawScore(screen *ebiten.Image, m *pong.Match) {
	left, right := m.Score()
	text := fmt.Sprintf("%d", left)
	drawText(screen, text, config.CourtWidth/2-40-len(text)*glyphWidth, 16, color.White)
	drawText(screen, fmt.Sprintf("%d", right), config.CourtWidth/2+40, 16, color.White)
}
