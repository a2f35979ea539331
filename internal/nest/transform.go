package nest

import (
	"github.com/pkg/errors"

	"github.com/ha1tch/nestdraw/internal/geom"
)

// Transform places the child instance of sibling q under a node at p.
type Transform func(p, q geom.Vec2, scale float32) geom.Vec2

// Spiral orients each nested cluster along the direction from the
// canvas origin to its parent.
func Spiral(p, q geom.Vec2, scale float32) geom.Vec2 {
	return p.Add(q.Scale(scale).Rotate(p.Normalize()))
}

// Tile nests clusters without rotation, giving an axis-aligned
// self-similar tiling.
func Tile(p, q geom.Vec2, scale float32) geom.Vec2 {
	return p.Add(q.Scale(scale))
}

// TransformByName resolves "spiral" or "tile".
func TransformByName(name string) (Transform, error) {
	switch name {
	case "", "spiral":
		return Spiral, nil
	case "tile":
		return Tile, nil
	default:
		return nil, errors.Errorf("unknown nest transform %q", name)
	}
}
