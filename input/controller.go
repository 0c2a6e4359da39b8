package input

import "ebiten-pong/components"

// PaddleController turns Up/Down key events into paddle velocity.
type PaddleController struct {
	Velocity *components.VelocityComponent
	Speed    float64

	// Directions currently held; the most recent press wins while both are.
	up, down bool
	last     Key
}

// NewPaddleController creates a controller moving v at speed pixels a frame.
func NewPaddleController(v *components.VelocityComponent, speed float64) *PaddleController {
	return &PaddleController{Velocity: v, Speed: speed}
}

// Apply updates the velocity from events and reports whether a Quit event
// was seen. Events after a Quit are ignored.
func (c *PaddleController) Apply(events []Event) (quit bool) {
	for _, ev := range events {
		switch ev.Type {
		case Quit:
			return true
		case KeyDown:
			c.set(ev.Key, true)
		case KeyUp:
			c.set(ev.Key, false)
		}
	}
	return false
}

// Release forgets every held direction and stops the paddle.
func (c *PaddleController) Release() {
	c.up, c.down = false, false
	c.last = KeyUnknown
	c.Velocity.Vy = 0
}

func (c *PaddleController) set(key Key, held bool) {
	switch key {
	case KeyArrowUp:
		c.up = held
	case KeyArrowDown:
		c.down = held
	default:
		return
	}
	if held {
		c.last = key
	}

	switch {
	case c.up && (c.last == KeyArrowUp || !c.down):
		c.Velocity.Vy = -c.Speed
	case c.down:
		c.Velocity.Vy = c.Speed
	default:
		c.Velocity.Vy = 0
	}
}
