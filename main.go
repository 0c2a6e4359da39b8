package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"ebiten-pong/backend/terminal"
	"ebiten-pong/config"
	"ebiten-pong/input"
	"ebiten-pong/pong"
	"ebiten-pong/render"
)

func main() {
	renderer := flag.String("renderer", "", "window, terminal or headless (overrides PONG_RENDERER)")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	if err := run(*renderer, *profileMode); err != nil {
		log.Fatal(err)
	}
}

func run(renderer, profileMode string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if renderer != "" {
		cfg.Renderer = renderer
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q, want cpu or mem", profileMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Renderer {
	case config.RendererTerminal:
		return runTerminal(ctx, cfg)
	case config.RendererHeadless:
		return runHeadless(ctx, cfg)
	}
	return runWindow(cfg)
}

func runWindow(cfg config.Config) error {
	game := NewGame(cfg, log.New(os.Stderr, "pong: ", log.LstdFlags))

	// Get window size from config
	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetWindowTitle("Pong")

	return ebiten.RunGame(game)
}

func runTerminal(ctx context.Context, cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	target := terminal.NewTarget(screen, config.CourtWidth, config.CourtHeight, config.CellWidth, config.CellHeight)
	// The screen owns the terminal, so the match logs nowhere.
	match, err := pong.NewMatch(cfg, terminal.Factory{}, target, pong.WithLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		screen.Fini()
		return err
	}
	target.Status = func() string {
		left, right := match.Score()
		return fmt.Sprintf(" %d - %d   arrows/ws move, q quits ", left, right)
	}

	ctx, cancel := context.WithCancel(ctx)
	source := terminal.NewSource(terminal.Pump(ctx, screen))
	frames, err := pong.Run(ctx, match, source, cfg.Tick, cfg.Frames)
	cancel()
	screen.Fini()

	report(match, frames)
	return ignoreCancel(err)
}

func runHeadless(ctx context.Context, cfg config.Config) error {
	limit := cfg.Frames
	if limit == 0 {
		limit = config.HeadlessFrames
	}
	recorder := render.NewRecorder()
	match, err := pong.NewMatch(cfg, render.SolidFactory{}, recorder, pong.WithLogger(log.New(os.Stderr, "pong: ", log.LstdFlags)))
	if err != nil {
		return err
	}

	frames, err := pong.Run(ctx, match, &input.Queue{}, 0, limit)
	report(match, frames)
	return ignoreCancel(err)
}

func report(match *pong.Match, frames int) {
	left, right := match.Score()
	if side, over := match.Over(); over {
		log.Printf("%s won %d-%d after %d frames", side, left, right, frames)
		return
	}
	log.Printf("stopped at %d-%d after %d frames", left, right, frames)
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
