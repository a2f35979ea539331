package game

import (
	"math"

	"github.com/ha1tch/nestdraw/internal/geom"
)

// NextTarget derives a target position inside arena from seed, usually
// the wall clock in seconds. The same seed always gives the same point.
func NextTarget(seed float64, arena geom.Rect) geom.Vec2 {
	return arena.ToPixel(targetUnit(seed))
}

func targetUnit(seed float64) geom.Vec2 {
	f := fract(seed)
	x := fract(f * 37)
	y := fract(f * (57 + math.Mod(math.Round(seed), 7)))
	return geom.Vec2{X: float32(clamp01(x)), Y: float32(clamp01(y))}
}

func fract(v float64) float64 {
	return v - math.Trunc(v)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0, math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
