package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults %+v, got %+v", Default(), cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PONG_RENDERER", "terminal")
	t.Setenv("PONG_BALL_SPEED", "4.5")
	t.Setenv("PONG_WIN_SCORE", "0")
	t.Setenv("PONG_TICK", "25ms")
	t.Setenv("PONG_FULLSCREEN", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Renderer != RendererTerminal || cfg.BallSpeed != 4.5 || cfg.WinScore != 0 ||
		cfg.Tick != 25*time.Millisecond || !cfg.Fullscreen {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("PONG_WIN_SCORE", "lots")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadValidates(t *testing.T) {
	t.Setenv("PONG_RENDERER", "vr")

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"headless with score", func(c *Config) { c.Renderer = RendererHeadless }, true},
		{"headless endless", func(c *Config) { c.Renderer = RendererHeadless; c.WinScore = 0 }, true},
		{"headless frame limit", func(c *Config) { c.Renderer = RendererHeadless; c.WinScore = 0; c.Frames = 100 }, true},
		{"unknown renderer", func(c *Config) { c.Renderer = "" }, false},
		{"still ball", func(c *Config) { c.BallSpeed = 0 }, false},
		{"tunnelling ball", func(c *Config) { c.BallSpeed = BallSize }, false},
		{"still paddle", func(c *Config) { c.PaddleSpeed = -1 }, false},
		{"negative score", func(c *Config) { c.WinScore = -1 }, false},
		{"zero tick", func(c *Config) { c.Tick = 0 }, false},
		{"negative frames", func(c *Config) { c.Frames = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestTerminalSize(t *testing.T) {
	cols, rows := GetTerminalSize()
	if cols*CellWidth != CourtWidth || rows*CellHeight != CourtHeight {
		t.Fatalf("terminal %dx%d does not cover the court", cols, rows)
	}
}
