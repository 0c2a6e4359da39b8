package config

// Court layout configuration
const (
	// Court dimensions in pixels
	CourtWidth  = 800
	CourtHeight = 600

	// Paddle and ball sizes in pixels
	PaddleWidth  = 20
	PaddleHeight = 200
	BallSize     = 20

	// Distance between a paddle and its side of the court
	PaddleMargin = 10

	// Pixels covered by one terminal cell
	CellWidth  = 10
	CellHeight = 20

	// Default speeds in pixels per frame
	BallSpeed   = 3
	PaddleSpeed = 3
)

// GetScreenDimensions returns the court dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return CourtWidth, CourtHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return CourtWidth, CourtHeight
}

// GetTerminalSize returns how many terminal cells the court covers
func GetTerminalSize() (cols, rows int) {
	return CourtWidth / CellWidth, CourtHeight / CellHeight
}
