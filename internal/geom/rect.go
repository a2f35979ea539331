package geom

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

func (r Rect) Origin() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

func (r Rect) Size() Vec2 {
	return Vec2{X: r.Width, Y: r.Height}
}

// ToNormalized maps a pixel position into the rectangle's unit space.
// Positions outside the rectangle map outside [0,1] and are not clamped.
func (r Rect) ToNormalized(pixel Vec2) Vec2 {
	return Vec2{
		X: (pixel.X - r.X) / r.Width,
		Y: (pixel.Y - r.Y) / r.Height,
	}
}

// ToPixel is the inverse of ToNormalized.
func (r Rect) ToPixel(unit Vec2) Vec2 {
	return Vec2{
		X: unit.X*r.Width + r.X,
		Y: unit.Y*r.Height + r.Y,
	}
}

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}
