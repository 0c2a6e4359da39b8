package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-pong/input"
)

var keys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:   input.KeyArrowUp,
	ebiten.KeyW:         input.KeyArrowUp,
	ebiten.KeyArrowDown: input.KeyArrowDown,
	ebiten.KeyS:         input.KeyArrowDown,
	ebiten.KeyEnter:     input.KeyEnter,
	ebiten.KeyEscape:    input.KeyEscape,
	ebiten.KeySpace:     input.KeySpace,
	ebiten.KeyF1:        input.KeyF1,
}

// Keyboard is an input.Source reading ebiten's keyboard state. Call Events
// once per Update.
type Keyboard struct {
	buf []ebiten.Key
}

// NewKeyboard creates a keyboard source. It asks ebiten to report window
// close requests instead of closing the window itself.
func NewKeyboard() *Keyboard {
	ebiten.SetWindowClosingHandled(true)
	return &Keyboard{}
}

// Events implements input.Source.
func (k *Keyboard) Events() []input.Event {
	var out []input.Event
	if ebiten.IsWindowBeingClosed() {
		out = append(out, input.Event{Type: input.Quit})
	}

	k.buf = inpututil.AppendJustReleasedKeys(k.buf[:0])
	for _, key := range k.buf {
		if mapped, ok := keys[key]; ok {
			out = append(out, input.Event{Type: input.KeyUp, Key: mapped})
		}
	}
	k.buf = inpututil.AppendJustPressedKeys(k.buf[:0])
	for _, key := range k.buf {
		if mapped, ok := keys[key]; ok {
			out = append(out, input.Event{Type: input.KeyDown, Key: mapped})
		}
	}
	return out
}
