// Package pong assembles a match: the world, its systems and entities, and
// the per-frame loop body that backends drive.
package pong

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/cop"
	"ebiten-pong/input"
	"ebiten-pong/render"
	"ebiten-pong/spawners"
	"ebiten-pong/systems"
)

// Court colours.
var (
	Background = color.RGBA{0, 0, 0, 255}
	NetColor   = color.RGBA{90, 90, 90, 255}
)

// Net dash sizes in pixels.
const (
	netWidth = 4
	netDash  = 20
	netGap   = 20
)

// Match is one game of Pong between a human on the left and the computer on
// the right. It is not safe for concurrent use.
type Match struct {
	cfg      config.Config
	world    *cop.World
	target   render.Target
	logger   *log.Logger
	messages *systems.MessageLog

	controller *input.PaddleController
	scoring    *systems.ScoringSystem

	ball        *spawners.Ball
	left, right *spawners.Paddle
	net         []image.Rectangle

	over   bool
	winner systems.Side
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger used for the match and its world.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMatch builds a match drawing with factory onto target.
func NewMatch(cfg config.Config, factory render.SpriteFactory, target render.Target, opts ...Option) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		cfg:      cfg,
		target:   target,
		logger:   log.New(io.Discard, "", 0),
		messages: systems.NewMessageLog(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.world = cop.NewWorld(cop.WithLogger(m.logger))

	minX, minY := 0, 0
	maxX, maxY := config.CourtWidth-1, config.CourtHeight-1

	ai := systems.NewTrackingAISystem(minY, maxY, cfg.PaddleSpeed)
	movement := systems.NewMovementSystem(minX, minY, maxX, maxY)
	m.scoring = systems.NewScoringSystem(minX, minY, maxX, maxY, cfg.WinScore)
	m.scoring.ServeVy = spawners.NewServeTable(spawners.DefaultServes, cfg.Seed).Roll
	collision := systems.NewCollisionSystem(minX, minY, maxX, maxY)
	renderer := systems.NewSpriteRenderer(target)

	for _, s := range []cop.System{ai, movement, m.scoring, collision, renderer} {
		if err := m.world.AddSystem(s); err != nil {
			return nil, fmt.Errorf("add system %s: %w", cop.SystemName(s), err)
		}
	}

	spawner := spawners.NewEntitySpawner(m.world, factory, func(msg string) { m.logger.Print(msg) })
	paddleY := (config.CourtHeight - config.PaddleHeight) / 2

	var err error
	if _, m.left, err = spawner.CreatePlayer("Player", config.PaddleMargin, paddleY, false); err != nil {
		return nil, fmt.Errorf("left player: %w", err)
	}
	if _, m.right, err = spawner.CreatePlayer("Computer", config.CourtWidth-config.PaddleMargin-config.PaddleWidth, paddleY, true); err != nil {
		return nil, fmt.Errorf("right player: %w", err)
	}
	ball, shape, err := spawner.CreateBall(
		(config.CourtWidth-config.BallSize)/2,
		(config.CourtHeight-config.BallSize)/2,
		-cfg.BallSpeed, 0,
	)
	if err != nil {
		return nil, err
	}
	m.ball = shape
	ai.SetBall(ball)
	m.scoring.SetBall(ball)
	collision.SetBall(ball)

	m.controller = input.NewPaddleController(m.left.Velocity, cfg.PaddleSpeed)
	m.net = netDashes(config.CourtWidth, config.CourtHeight)
	m.subscribe()
	return m, nil
}

// netDashes returns the dashes of the centre line.
func netDashes(width, height int) []image.Rectangle {
	var dashes []image.Rectangle
	x := (width - netWidth) / 2
	for y := netGap / 2; y < height; y += netDash + netGap {
		dashes = append(dashes, image.Rect(x, y, x+netWidth, min(y+netDash, height)))
	}
	return dashes
}

func (m *Match) subscribe() {
	events := m.world.GetEventManager()
	events.Subscribe(systems.EventPointScored, func(ev cop.Event) {
		scored := ev.(systems.PointScoredEvent)
		left, right := m.Score()
		name := m.nameOf(scored.Scorer, scored.Side)
		m.messages.AddColored(fmt.Sprintf("%s scores: %d - %d", name, left, right), systems.MessageTypeScore)
		m.logger.Printf("point to %s, score %d-%d", name, left, right)
	})
	events.Subscribe(systems.EventMatchOver, func(ev cop.Event) {
		done := ev.(systems.MatchOverEvent)
		m.over = true
		m.winner = done.Side
		name := m.nameOf(done.Winner, done.Side)
		m.messages.AddColored(fmt.Sprintf("%s wins with %d points", name, done.Points), systems.MessageTypeAlert)
		m.logger.Printf("match over, %s wins", name)
	})
}

// nameOf returns the name of a player entity, or its side when it has none.
func (m *Match) nameOf(id cop.EntityID, side systems.Side) string {
	if e, ok := m.world.GetEntity(id); ok {
		if name, ok := cop.Get[*components.NameComponent](e); ok {
			return name.Name
		}
	}
	return side.String()
}

// Tick runs one frame: input, clear, every system, present. It reports
// whether the match should keep running; an error from a system or the
// target ends the match.
func (m *Match) Tick(events []input.Event) (running bool, err error) {
	if m.controller.Apply(events) {
		m.logger.Print("quit requested")
		return false, nil
	}
	if m.over {
		return false, nil
	}

	m.target.Fill(Background, nil)
	m.target.Fill(NetColor, m.net)
	if err := m.world.Process(); err != nil {
		return false, err
	}
	if err := m.target.Present(); err != nil {
		return false, fmt.Errorf("present: %w", err)
	}
	return !m.over, nil
}

// ReleaseKeys stops the human paddle and forgets held keys, for when key
// events stop reaching Tick.
func (m *Match) ReleaseKeys() {
	m.controller.Release()
}

// World returns the match's world.
func (m *Match) World() *cop.World {
	return m.world
}

// Config returns the settings the match was built with.
func (m *Match) Config() config.Config {
	return m.cfg
}

// Messages returns the in-game message log.
func (m *Match) Messages() *systems.MessageLog {
	return m.messages
}

// Score returns the points of the left and right players.
func (m *Match) Score() (left, right int) {
	return m.left.Player.Points, m.right.Player.Points
}

// Over reports whether a player has won, and which.
func (m *Match) Over() (systems.Side, bool) {
	return m.winner, m.over
}

// Ball returns the ball's components.
func (m *Match) Ball() *spawners.Ball {
	return m.ball
}

// Paddles returns the left and right players' components.
func (m *Match) Paddles() (left, right *spawners.Paddle) {
	return m.left, m.right
}
