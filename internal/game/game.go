package game

import (
	"github.com/ha1tch/nestdraw/internal/geom"
	"github.com/ha1tch/nestdraw/internal/nest"
)

// Game is the target minigame: keep the pattern's terminal nodes off
// the targets, then bank the score and ask for another one.
type Game struct {
	Targets     []geom.Vec2
	Accumulated float32
}

// Touching reports whether any terminal node of the pass lies within
// radius of a target.
func (g *Game) Touching(pass *nest.Pass, radius float32) bool {
	r2 := radius * radius
	for _, p := range pass.Primitives {
		if !p.Terminal {
			continue
		}
		center := p.Position.Add(geom.Vec2{X: p.Size / 2, Y: p.Size / 2})
		for _, t := range g.Targets {
			d := center.Sub(t)
			if d.Dot(d) < r2 {
				return true
			}
		}
	}
	return false
}

// Advance banks score and appends the next target. It reports false
// and changes nothing while the pattern touches a target.
func (g *Game) Advance(touching bool, score float32, seed float64, arena geom.Rect) bool {
	if touching {
		return false
	}
	g.Accumulated += score
	g.Targets = append(g.Targets, NextTarget(seed, arena))
	return true
}

// Reset removes every target. The banked score is kept.
func (g *Game) Reset() {
	g.Targets = g.Targets[:0]
}
