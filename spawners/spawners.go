package spawners

import (
	"fmt"
	"image/color"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/cop"
	"ebiten-pong/render"
)

// Ball is the shape of the ball entity.
type Ball struct {
	cop.Set
	Sprite   *components.SpriteComponent
	Velocity *components.VelocityComponent
}

// Paddle is the shape of a player entity.
type Paddle struct {
	cop.Set
	Sprite   *components.SpriteComponent
	Velocity *components.VelocityComponent
	Player   *components.PlayerDataComponent
	Name     *components.NameComponent
}

// Colours used for the court.
var (
	BallColor   = color.RGBA{255, 255, 255, 255}
	PaddleColor = color.RGBA{255, 255, 255, 255}
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world      *cop.World
	factory    render.SpriteFactory
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *cop.World, factory render.SpriteFactory, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		factory:    factory,
		logMessage: logFunc,
	}
}

// CreateBall creates the ball at the given position
func (s *EntitySpawner) CreateBall(x, y int, vx, vy float64) (*cop.Entity, *Ball, error) {
	img, err := s.factory.FromColor(BallColor, config.BallSize, config.BallSize)
	if err != nil {
		return nil, nil, fmt.Errorf("ball sprite: %w", err)
	}

	ball := &Ball{
		Sprite:   components.NewSpriteComponent(img, x, y),
		Velocity: components.NewVelocityComponent(vx, vy),
	}
	ball.Sprite.Depth = 1

	entity, err := cop.NewEntity(s.world, ball)
	if err != nil {
		return nil, nil, fmt.Errorf("ball entity: %w", err)
	}
	entity.AddTag("ball")

	s.log(fmt.Sprintf("Ball created at %d,%d", x, y))
	return entity, ball, nil
}

// CreatePlayer creates a named paddle at the given position. AI players are
// steered by the tracking AI instead of input.
func (s *EntitySpawner) CreatePlayer(name string, x, y int, ai bool) (*cop.Entity, *Paddle, error) {
	img, err := s.factory.FromColor(PaddleColor, config.PaddleWidth, config.PaddleHeight)
	if err != nil {
		return nil, nil, fmt.Errorf("paddle sprite: %w", err)
	}

	paddle := &Paddle{
		Sprite:   components.NewSpriteComponent(img, x, y),
		Velocity: components.NewVelocityComponent(0, 0),
		Player:   &components.PlayerDataComponent{AI: ai},
		Name:     components.NewNameComponent(name),
	}

	entity, err := cop.NewEntity(s.world, paddle)
	if err != nil {
		return nil, nil, fmt.Errorf("paddle entity: %w", err)
	}
	entity.AddTag("player")
	if ai {
		entity.AddTag("ai")
	}

	s.log(fmt.Sprintf("%s created at %d,%d (ai=%t)", name, x, y, ai))
	return entity, paddle, nil
}

func (s *EntitySpawner) log(msg string) {
	if s.logMessage != nil {
		s.logMessage(msg)
	}
}
