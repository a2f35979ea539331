package geom

import "math"

// Vec2 is a 2D vector. The same type carries normalized editor
// coordinates and pixel coordinates; which space a value lives in is
// decided by the caller.
type Vec2 struct {
	X float32
	Y float32
}

func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns the unit vector pointing along v. The zero vector
// has no direction, so it maps to (1,0), the identity rotation.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{X: 1}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate multiplies v and o as complex numbers: o is rotated by the
// angle of v and scaled by its length. The product is commutative.
func (v Vec2) Rotate(o Vec2) Vec2 {
	return Vec2{
		X: v.X*o.X - v.Y*o.Y,
		Y: v.Y*o.X + v.X*o.Y,
	}
}
