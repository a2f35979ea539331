package nest

import "github.com/ha1tch/nestdraw/internal/geom"

// Shape is the kind of a drawing primitive.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeRectangle
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// Color is an RGBA color with channels in [0,1].
type Color struct {
	R, G, B, A float32
}

// RGBA implements color.Color with alpha-premultiplied channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	ch := func(v float32) uint32 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 0xffff
		}
		return uint32(v*0xffff + 0.5)
	}
	a = ch(c.A)
	return ch(c.R) * a / 0xffff, ch(c.G) * a / 0xffff, ch(c.B) * a / 0xffff, a
}

var (
	FaintColor    = Color{R: 0.8, G: 0.8, B: 0.2, A: 0.2}
	StrongColor   = Color{R: 0.8, G: 0.8, B: 0.2, A: 0.7}
	SettledColor  = Color{R: 0.8, G: 0.5, B: 0.2, A: 0.7}
	FallbackColor = Color{R: 1, G: 1, B: 1, A: 1}
)

// Primitive is one drawing instruction. Position is the center of a
// circle and the top-left corner of a rectangle. Size is a radius for
// circles and a side length for rectangles.
type Primitive struct {
	Shape    Shape
	Position geom.Vec2
	Size     float32
	Color    Color
	Filled   bool

	// Settled marks an anchor's marker in the editor panel; all other
	// primitives are canvas nodes.
	Settled bool
	// Terminal is set on nodes at the bottom of the recursion.
	Terminal bool
	// Link is the parent node's canvas position. The shell draws a
	// connector from Link to Position in the node's base color.
	Link     geom.Vec2
	HasLink  bool
	LinkTint Color
}
