package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/backend/window"
	"ebiten-pong/config"
	"ebiten-pong/pong"
	"ebiten-pong/screens"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg      config.Config
	logger   *log.Logger
	screens  *screens.ScreenStack
	keyboard *window.Keyboard
	target   *window.Target
}

// NewGame creates a new game instance showing the start menu
func NewGame(cfg config.Config, logger *log.Logger) *Game {
	g := &Game{
		cfg:      cfg,
		logger:   logger,
		screens:  screens.NewScreenStack(),
		keyboard: window.NewKeyboard(),
	}
	g.screens.Push(screens.NewStartScreen())
	return g
}

// Update updates the game state and follows screen transitions
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	err := g.screens.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrNewGame):
		return g.startMatch(g.cfg)
	case errors.Is(err, screens.ErrEndless):
		cfg := g.cfg
		cfg.WinScore = 0
		return g.startMatch(cfg)
	case errors.Is(err, screens.ErrMatchOver):
		if game, ok := g.screens.Peek().(*screens.GameScreen); ok {
			left, right := game.Match().Score()
			g.logger.Printf("match finished %d-%d", left, right)
			g.screens.Replace(screens.NewGameOverScreen(game.Match(), g.target))
		}
		return nil
	case errors.Is(err, screens.ErrMainMenu):
		g.screens.Reset(screens.NewStartScreen())
		return nil
	case errors.Is(err, screens.ErrQuit):
		return ebiten.Termination
	}
	return err
}

// startMatch replaces the current screen with a fresh match
func (g *Game) startMatch(cfg config.Config) error {
	g.target = window.NewTarget()
	match, err := pong.NewMatch(cfg, window.Factory{}, g.target, pong.WithLogger(g.logger))
	if err != nil {
		return fmt.Errorf("start match: %w", err)
	}
	g.logger.Printf("match started, first to %d", cfg.WinScore)
	g.screens.Replace(screens.NewGameScreen(match, g.target, g.keyboard))
	return nil
}

// Draw draws the current screens
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)
}

// Layout takes the outside size and returns the court size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screens.Layout(outsideWidth, outsideHeight)
}
