package pong

import (
	"context"
	"time"

	"ebiten-pong/input"
)

// Run drives m from src until the match ends, ctx is cancelled, or limit
// frames have run. A zero interval runs frames back to back; a zero limit
// means no limit. It returns the number of frames run.
func Run(ctx context.Context, m *Match, src input.Source, interval time.Duration, limit int) (int, error) {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	frames := 0
	for limit == 0 || frames < limit {
		if tick != nil {
			select {
			case <-ctx.Done():
				return frames, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return frames, err
		}

		running, err := m.Tick(src.Events())
		if err != nil {
			return frames, err
		}
		frames++
		if !running {
			break
		}
	}
	return frames, nil
}
