package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/nestdraw/internal/geom"
	"github.com/ha1tch/nestdraw/internal/nest"
)

// Button is an immediate-mode push button. Its rectangle is set every
// frame, so it can follow the window size.
type Button struct {
	rect    rl.Rectangle
	text    string
	hover   bool
	pressed bool
	visible bool
}

func NewButton(text string) Button {
	return Button{text: text, visible: true}
}

// Place positions the button with its top-left corner at x,y, sized to
// fit its label.
func (b *Button) Place(x, y float32) {
	w := float32(rl.MeasureText(b.text, fontSize)) + 12
	b.rect = rl.Rectangle{X: x, Y: y, Width: w, Height: fontSize + 8}
}

// Update reports whether the button was clicked this frame.
func (b *Button) Update(mousePos rl.Vector2) bool {
	b.pressed = false
	if !b.visible {
		b.hover = false
		return false
	}
	b.hover = rl.CheckCollisionPointRec(mousePos, b.rect)
	if b.hover && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		b.pressed = true
	}
	return b.pressed
}

func (b *Button) Draw() {
	if !b.visible {
		return
	}
	color := rl.Color{70, 70, 70, 255}
	if b.hover {
		color = rl.Color{80, 80, 80, 255}
	}
	rl.DrawRectangleRec(b.rect, color)
	rl.DrawRectangleLinesEx(b.rect, 1, rl.Color{90, 90, 90, 255})

	textX := int32(b.rect.X + 6)
	textY := int32(b.rect.Y + 4)
	rl.DrawText(b.text, textX, textY, fontSize, rl.White)
}

func vec(v geom.Vec2) rl.Vector2 {
	return rl.Vector2{X: v.X, Y: v.Y}
}

func toRL(c nest.Color) rl.Color {
	ch := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return rl.Color{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: ch(c.A)}
}

func drawPrimitive(p nest.Primitive) {
	if p.HasLink {
		rl.DrawLineV(vec(p.Link), vec(p.Position), toRL(p.LinkTint))
	}
	color := toRL(p.Color)
	switch p.Shape {
	case nest.ShapeRectangle:
		if p.Filled {
			rl.DrawRectangleV(vec(p.Position), rl.Vector2{X: p.Size, Y: p.Size}, color)
		} else {
			rl.DrawRectangleLinesEx(rl.Rectangle{X: p.Position.X, Y: p.Position.Y, Width: p.Size, Height: p.Size}, geom.Thickness, color)
		}
	default:
		if p.Filled {
			rl.DrawCircleV(vec(p.Position), p.Size, color)
		} else {
			rl.DrawRing(vec(p.Position), p.Size-geom.Thickness, p.Size, 0, 360, 36, color)
		}
	}
}
