package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-pong/components"
	"ebiten-pong/cop"
	"ebiten-pong/systems"
)

// DebugScreen shows the world's schedule and the match messages in a modal
// window
type DebugScreen struct {
	*BaseScreen
	world        *cop.World
	messages     *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewDebugScreen creates a new debug screen
func NewDebugScreen(world *cop.World, messages *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		BaseScreen:   NewBaseScreen(),
		world:        world,
		messages:     messages,
		scrollOffset: 0,
		width:        600,
		height:       400,
		background:   color.RGBA{0, 0, 0, 230},
		textColor:    color.White,
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	// Handle scrolling through debug lines with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}
	return nil
}

// scrollUp moves the view up by one line
func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *DebugScreen) scrollDown() {
	if s.scrollOffset < len(DebugLines(s.world, s.messages))-1 {
		s.scrollOffset++
	}
}

// DebugLines describes the world: frame count, one line per system with the
// entities it handles, each entity's components, then the match messages,
// newest first.
func DebugLines(world *cop.World, messages *systems.MessageLog) []systems.ColoredMessage {
	line := func(msgType systems.MessageType, format string, args ...any) systems.ColoredMessage {
		return systems.ColoredMessage{Text: fmt.Sprintf(format, args...), Type: msgType}
	}

	entities := world.GetAllEntities()
	lines := []systems.ColoredMessage{
		line(systems.MessageTypeSystem, "frame %d, %d entities", world.Frame(), len(entities)),
		{},
	}
	for i, row := range world.Schedule().Rows() {
		lines = append(lines, line(systems.MessageTypeSystem, "%d. %-32s %d", i+1, cop.SystemName(row.System()), row.Len()))
	}
	lines = append(lines, systems.ColoredMessage{})
	for _, e := range entities {
		lines = append(lines, line(systems.MessageTypeNormal, "%s %v", e, e.Tags))
		for _, comp := range cop.All[any](e) {
			lines = append(lines, line(systems.MessageTypeNormal, "  %T %s", comp, components.Describe(comp)))
		}
	}
	if messages != nil && len(messages.Messages) > 0 {
		lines = append(lines, systems.ColoredMessage{})
		lines = append(lines, messages.RecentMessages(len(messages.Messages))...)
	}
	return lines
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2

	modal := ebiten.NewImage(s.width, s.height)
	defer modal.Deallocate()
	modal.Fill(s.background)

	// Draw frame
	vector.StrokeRect(modal, 1, 1, float32(s.width-2), float32(s.height-2), 2, color.White, false)

	drawCentred(modal, "DEBUG", 8, s.textColor)

	lines := DebugLines(s.world, s.messages)
	startY := 30
	lineHeight := glyphHeight
	maxLines := (s.height - startY - 24) / lineHeight

	// Calculate visible range
	startIdx := min(s.scrollOffset, max(len(lines)-maxLines, 0))
	for i := 0; i < maxLines && startIdx+i < len(lines); i++ {
		msg := lines[startIdx+i]
		drawText(modal, msg.Text, 10, startY+i*lineHeight, msg.GetColor())
	}

	// Draw scroll indicator if needed
	if len(lines) > maxLines {
		scrollBarHeight := float32(maxLines) / float32(len(lines)) * float32(s.height-startY)
		scrollBarY := float32(startY) + float32(startIdx)/float32(len(lines))*float32(s.height-startY)
		vector.DrawFilledRect(modal, float32(s.width-10), scrollBarY, 5, scrollBarHeight, color.White, false)
	}

	drawText(modal, "Up/Down: Scroll  F1: Close", 10, s.height-20, s.textColor)

	// Draw the modal to the screen
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
}
