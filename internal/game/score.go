package game

import "github.com/ha1tch/nestdraw/internal/geom"

// Score sums the distance between every unordered pair of anchors and
// scales it by depth. Depth zero always scores zero.
func Score(pts []geom.Vec2, depth int) float32 {
	var sum float32
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			sum += pts[i].Sub(pts[j]).Len()
		}
	}
	return sum * float32(depth)
}
