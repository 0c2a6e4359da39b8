package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
)

// Renderers that can drive a match.
const (
	RendererWindow   = "window"
	RendererTerminal = "terminal"
	RendererHeadless = "headless"
)

// HeadlessFrames limits a headless run when no frame limit is set.
const HeadlessFrames = 3600

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings of a run.
type Config struct {
	Renderer    string        `env:"PONG_RENDERER"     envDefault:"window"`
	BallSpeed   float64       `env:"PONG_BALL_SPEED"   envDefault:"3"`
	PaddleSpeed float64       `env:"PONG_PADDLE_SPEED" envDefault:"3"`
	WinScore    int           `env:"PONG_WIN_SCORE"    envDefault:"5"`
	Tick        time.Duration `env:"PONG_TICK"         envDefault:"16ms"`
	Fullscreen  bool          `env:"PONG_FULLSCREEN"   envDefault:"false"`
	Frames      int           `env:"PONG_FRAMES"       envDefault:"0"`
	Seed        uint64        `env:"PONG_SEED"         envDefault:"1"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Renderer:    RendererWindow,
		BallSpeed:   BallSpeed,
		PaddleSpeed: PaddleSpeed,
		WinScore:    5,
		Tick:        16 * time.Millisecond,
		Seed:        1,
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can run a match.
func (c Config) Validate() error {
	renderers := []string{RendererWindow, RendererTerminal, RendererHeadless}
	switch {
	case !slices.Contains(renderers, c.Renderer):
		return fmt.Errorf("%w: renderer %q, want one of %v", ErrInvalid, c.Renderer, renderers)
	case c.BallSpeed <= 0:
		return fmt.Errorf("%w: ball speed %v must be positive", ErrInvalid, c.BallSpeed)
	case c.BallSpeed >= BallSize:
		return fmt.Errorf("%w: ball speed %v would skip past paddles", ErrInvalid, c.BallSpeed)
	case c.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle speed %v must be positive", ErrInvalid, c.PaddleSpeed)
	case c.WinScore < 0:
		return fmt.Errorf("%w: win score %d is negative", ErrInvalid, c.WinScore)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick %v must be positive", ErrInvalid, c.Tick)
	case c.Frames < 0:
		return fmt.Errorf("%w: frame limit %d is negative", ErrInvalid, c.Frames)
	}
	return nil
}
