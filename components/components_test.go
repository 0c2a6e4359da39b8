package components

import (
	"image"
	"testing"

	"ebiten-pong/render"
)

func TestAreaEdges(t *testing.T) {
	a := NewAreaComponent(10, 20, 30, 40)
	if a.Left() != 10 || a.Right() != 39 || a.Top() != 20 || a.Bottom() != 59 {
		t.Errorf("edges = l%d r%d t%d b%d", a.Left(), a.Right(), a.Top(), a.Bottom())
	}
	if a.HorizontalCenter() != 25 || a.VerticalCenter() != 40 {
		t.Errorf("centre = %d,%d, want 25,40", a.HorizontalCenter(), a.VerticalCenter())
	}
	if a.Rect() != image.Rect(10, 20, 40, 60) {
		t.Errorf("Rect() = %v", a.Rect())
	}
}

func TestMoveWithinBounds(t *testing.T) {
	bounds := image.Rect(0, 0, 800, 600)
	tests := []struct {
		name         string
		x, y, dx, dy int
		wantX, wantY int
	}{
		{"free move", 100, 100, 3, -3, 103, 97},
		{"clamp left", 1, 100, -3, 0, 0, 100},
		{"clamp top", 100, 2, 0, -3, 100, 0},
		{"clamp right", 779, 100, 3, 0, 780, 100},
		{"clamp bottom", 100, 579, 0, 5, 100, 580},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAreaComponent(tt.x, tt.y, 20, 20)
			a.MoveWithinBounds(tt.dx, tt.dy, bounds)
			if a.X != tt.wantX || a.Y != tt.wantY {
				t.Errorf("got %d,%d want %d,%d", a.X, a.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	paddle := NewAreaComponent(0, 250, 20, 200)
	tests := []struct {
		name string
		area *AreaComponent
		want bool
	}{
		{"touching edge", NewAreaComponent(19, 300, 20, 20), true},
		{"just right", NewAreaComponent(20, 300, 20, 20), false},
		{"above", NewAreaComponent(5, 229, 20, 20), false},
		{"corner", NewAreaComponent(10, 240, 20, 20), true},
		{"contains", NewAreaComponent(0, 0, 100, 600), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paddle.Overlaps(tt.area); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.area.Overlaps(paddle); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRelativePosition(t *testing.T) {
	a := NewAreaComponent(0, 0, 10, 10)
	b := NewAreaComponent(20, 20, 10, 10)
	if !a.IsAbove(b) || !a.IsLeftOf(b) || !b.IsBelow(a) || !b.IsRightOf(a) {
		t.Error("area relations wrong for separated areas")
	}
	p, q := NewPositionComponent(1, 1), NewPositionComponent(2, 2)
	if !p.IsAbove(q) || !p.IsLeftOf(q) || q.IsAbove(p) {
		t.Error("position relations wrong")
	}
}

func TestMoveBy(t *testing.T) {
	p := NewPositionComponent(10, 10)
	p.MoveBy(NewVelocityComponent(3.9, -1.5))
	if p.X != 13 || p.Y != 9 {
		t.Errorf("MoveBy truncation: got %d,%d want 13,9", p.X, p.Y)
	}
}

func TestSpriteSizeFollowsImage(t *testing.T) {
	img := &render.Solid{Width: 20, Height: 200}
	s := NewSpriteComponent(img, 5, 6)
	if s.Width != 20 || s.Height != 200 || s.X != 5 || s.Y != 6 {
		t.Errorf("sprite = %+v", s.AreaComponent)
	}

	var b Bounded = s
	if b.Bounds() != &s.AreaComponent || b.Pos() != &s.PositionComponent {
		t.Error("sprite does not expose its embedded area and position")
	}
}

func TestDescribe(t *testing.T) {
	sprite := NewSpriteComponent(&render.Solid{Width: 20, Height: 10}, 3, 4)
	sprite.Depth = 1.5

	tests := []struct {
		name string
		comp any
		want string
	}{
		{"embedded fields", sprite, "X=3 Y=4 Width=20 Height=10 Depth=1.5"},
		{"velocity", NewVelocityComponent(-3, 0.5), "Vx=-3 Vy=0.5"},
		{"player", &PlayerDataComponent{AI: true, Points: 2}, "AI=true Points=2"},
		{"name", NewNameComponent("Computer"), "Name=Computer"},
		{"nil", (*VelocityComponent)(nil), "<nil>"},
		{"not a struct", 7, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.comp); got != tt.want {
				t.Errorf("Describe = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetComponentProperty(t *testing.T) {
	sprite := NewSpriteComponent(&render.Solid{Width: 20, Height: 10}, 3, 4)

	got, err := GetComponentProperty(sprite, "X")
	if err != nil {
		t.Fatalf("GetComponentProperty: %v", err)
	}
	if got != 3 {
		t.Errorf("X = %v, want 3", got)
	}
	if _, err := GetComponentProperty(sprite, "Missing"); err == nil {
		t.Error("expected error for missing property")
	}
	if _, err := GetComponentProperty(42, "X"); err == nil {
		t.Error("expected error for non-struct component")
	}
}
