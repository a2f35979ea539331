package nest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ha1tch/nestdraw/internal/geom"
)

type scene struct {
	pts      []geom.Vec2
	selected int
	depth    int
}

func (s scene) Points() []geom.Vec2 { return s.pts }
func (s scene) Selected() int       { return s.selected }
func (s scene) Depth() int          { return s.depth }

var viewport = geom.V(1280, 800)

func anchors(n int) []geom.Vec2 {
	pts := make([]geom.Vec2, n)
	for i := range pts {
		pts[i] = geom.V(0.1+0.15*float32(i), 0.8-0.1*float32(i))
	}
	return pts
}

func withCeiling(c int) *Renderer {
	opts := DefaultOptions()
	opts.Ceiling = c
	return NewRenderer(opts)
}

func TestPassSizeMatchesRender(t *testing.T) {
	r := withCeiling(1 << 30)
	for n := 0; n <= 4; n++ {
		for d := 0; d <= 4; d++ {
			pass := r.Render(scene{pts: anchors(n), selected: -1, depth: d}, viewport)
			if pass.Exceeded {
				t.Fatalf("n=%d d=%d: unexpected budget exhaustion", n, d)
			}
			if pass.Drawn != PassSize(n, d) {
				t.Errorf("n=%d d=%d: drawn = %d, want %d", n, d, pass.Drawn, PassSize(n, d))
			}
			if pass.Drawn != len(pass.Primitives) {
				t.Errorf("n=%d d=%d: drawn %d != primitives %d", n, d, pass.Drawn, len(pass.Primitives))
			}
			if pass.Nodes != n*NodesPerAnchor(n, d) {
				t.Errorf("n=%d d=%d: nodes = %d, want %d", n, d, pass.Nodes, n*NodesPerAnchor(n, d))
			}
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := withCeiling(DefaultCeiling)
	s := scene{pts: anchors(3), selected: 1, depth: 3}
	a := r.Render(s, viewport)
	b := r.Render(s, viewport)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two passes over the same input differ")
	}
}

func TestDepthZero(t *testing.T) {
	r := withCeiling(DefaultCeiling)
	pts := anchors(3)
	pass := r.Render(scene{pts: pts, selected: -1, depth: 0}, viewport)
	if pass.Drawn != 6 {
		t.Fatalf("drawn = %d, want 6", pass.Drawn)
	}
	canvas := geom.DefaultLayout().Canvas(viewport)
	for i, p := range pts {
		settled, node := pass.Primitives[2*i], pass.Primitives[2*i+1]
		if !settled.Settled {
			t.Errorf("anchor %d: first primitive should be the settled marker", i)
		}
		if !node.Terminal || node.Shape != ShapeRectangle || !node.Filled {
			t.Errorf("anchor %d: node should be a filled terminal rectangle, got %+v", i, node)
		}
		if node.Position != canvas.ToPixel(p) {
			t.Errorf("anchor %d: node at %v, want %v", i, node.Position, canvas.ToPixel(p))
		}
	}
}

func TestScenarioGrowingScene(t *testing.T) {
	r := withCeiling(100)
	s := scene{pts: []geom.Vec2{geom.V(0.5, 0.5)}, selected: 0, depth: 1}

	pass := r.Render(s, viewport)
	if pass.Drawn != 2 || pass.Exceeded {
		t.Fatalf("n=1 d=1: drawn = %d exceeded = %v, want 2 false", pass.Drawn, pass.Exceeded)
	}

	s.depth = 2
	if pass = r.Render(s, viewport); pass.Drawn != 3 {
		t.Fatalf("n=1 d=2: drawn = %d, want 3", pass.Drawn)
	}

	s.pts = append(s.pts, geom.V(0.25, 0.75))
	s.selected = -1
	if pass = r.Render(s, viewport); pass.Drawn != 14 || pass.Exceeded {
		t.Fatalf("n=2 d=2: drawn = %d exceeded = %v, want 14 false", pass.Drawn, pass.Exceeded)
	}
}

func TestScenarioBudgetExceeded(t *testing.T) {
	r := withCeiling(16000)
	pass := r.Render(scene{pts: anchors(5), selected: -1, depth: 6}, viewport)

	if !pass.Exceeded {
		t.Fatal("expected the budget to run out")
	}
	if !errors.Is(pass.Err(), ErrBudgetExceeded) {
		t.Errorf("Err() = %v, want ErrBudgetExceeded", pass.Err())
	}
	if pass.Nodes != 16000 {
		t.Errorf("nodes = %d, want exactly the ceiling", pass.Nodes)
	}

	var settled []Primitive
	for _, p := range pass.Primitives {
		if p.Settled {
			settled = append(settled, p)
		}
	}
	if len(settled) != 5 {
		t.Fatalf("settled markers = %d, want 5", len(settled))
	}
	if settled[0].Color != SettledColor {
		t.Errorf("first anchor marker color = %+v, want settled", settled[0].Color)
	}
	for i, p := range settled[1:] {
		if p.Color != FallbackColor {
			t.Errorf("anchor %d marker color = %+v, want fallback", i+1, p.Color)
		}
	}
	// Nothing but settled markers follows the exhausted expansion.
	if pass.Drawn != 1+16000+4 {
		t.Errorf("drawn = %d, want %d", pass.Drawn, 1+16000+4)
	}
}

func TestBudgetBoundary(t *testing.T) {
	s := scene{pts: anchors(2), selected: -1, depth: 3}
	need := 2 * NodesPerAnchor(2, 3)

	if pass := withCeiling(need).Render(s, viewport); pass.Exceeded {
		t.Errorf("ceiling == need should not be exceeded")
	}
	pass := withCeiling(need - 1).Render(s, viewport)
	if !pass.Exceeded {
		t.Fatalf("ceiling == need-1 should be exceeded")
	}
	if pass.Nodes != need-1 {
		t.Errorf("nodes = %d, want %d", pass.Nodes, need-1)
	}
}

func TestSelectionHighlight(t *testing.T) {
	r := withCeiling(DefaultCeiling)
	pass := r.Render(scene{pts: anchors(2), selected: 1, depth: 1}, viewport)

	// anchor 0: settled, child via 0, child via 1
	// anchor 1: settled, child via 0, child via 1
	if len(pass.Primitives) != 6 {
		t.Fatalf("primitives = %d, want 6", len(pass.Primitives))
	}
	if got := pass.Primitives[1].Color; got != SettledColor {
		t.Errorf("branch through unselected anchor = %+v, want settled", got)
	}
	if got := pass.Primitives[2].Color; got != StrongColor {
		t.Errorf("branch through selected anchor = %+v, want strong", got)
	}
	sel := pass.Primitives[3]
	if !sel.Filled || sel.Color != StrongColor {
		t.Errorf("selected marker should be filled and strong, got %+v", sel)
	}
	if pass.Primitives[0].Filled {
		t.Error("unselected marker should be an outline")
	}
}

func TestSelectionHighlightBelowFirstLevel(t *testing.T) {
	r := withCeiling(DefaultCeiling)
	pass := r.Render(scene{pts: anchors(2), selected: 1, depth: 3}, viewport)
	if len(pass.Primitives) != 30 {
		t.Fatalf("primitives = %d, want 30", len(pass.Primitives))
	}

	at := func(level int, c Color) Color {
		return Recursion{Level: level}.Attenuate(c)
	}
	// Anchor 0, depth first: 1 via 0, 2 via 0/0, 5 via 0/1, 8 via 1,
	// 9 via 1/0, 10 via 1/0/0.
	tests := []struct {
		name  string
		index int
		want  Color
	}{
		{"unselected branch fades from settled", 1, at(2, SettledColor)},
		{"unselected grandchild", 2, at(1, SettledColor)},
		{"selected sibling one level down", 5, at(1, StrongColor)},
		{"selected branch restarts from strong", 8, at(2, StrongColor)},
		{"child of selected branch keeps strong base", 9, at(1, StrongColor)},
		{"leaf of selected branch", 10, StrongColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pass.Primitives[tt.index]
			if got.Settled {
				t.Fatalf("primitive %d is a settled marker", tt.index)
			}
			if got.Color != tt.want {
				t.Errorf("primitive %d color = %+v, want %+v", tt.index, got.Color, tt.want)
			}
		})
	}

	if pass.Primitives[8].Terminal {
		t.Error("selected branch root at depth 3 should have children")
	}
	if pass.Primitives[8].Color.R >= StrongColor.R {
		t.Errorf("selected branch root should still fade by level, R = %v", pass.Primitives[8].Color.R)
	}
	if g := pass.Primitives[9].Color.G; g != StrongColor.G {
		t.Errorf("child green = %v, want strong %v not settled %v", g, StrongColor.G, SettledColor.G)
	}
}

func TestRootLinks(t *testing.T) {
	r := withCeiling(DefaultCeiling)
	pts := anchors(1)
	canvas := geom.DefaultLayout().Canvas(viewport)

	// Depth 0: the root is the drawn node and links to the canvas origin.
	pass := r.Render(scene{pts: pts, selected: -1, depth: 0}, viewport)
	if got := pass.Primitives[1].Link; got != canvas.ToPixel(geom.Vec2{}) {
		t.Errorf("depth 0 link = %v, want canvas origin %v", got, canvas.ToPixel(geom.Vec2{}))
	}

	// Deeper: the root is not drawn, first-level nodes link to the anchor.
	pass = r.Render(scene{pts: pts, selected: -1, depth: 2}, viewport)
	if got := pass.Primitives[1].Link; got != canvas.ToPixel(pts[0]) {
		t.Errorf("first level link = %v, want anchor %v", got, canvas.ToPixel(pts[0]))
	}
	for _, p := range pass.Primitives {
		if p.HasLink && p.Link == canvas.ToPixel(geom.Vec2{}) {
			t.Errorf("no node should link to the canvas origin at depth 2: %+v", p)
		}
	}
}

func TestIntermediateNodesAreOutlines(t *testing.T) {
	r := withCeiling(DefaultCeiling)
	pass := r.Render(scene{pts: anchors(1), selected: -1, depth: 2}, viewport)
	// settled, level-1 node, level-0 node
	if len(pass.Primitives) != 3 {
		t.Fatalf("primitives = %d, want 3", len(pass.Primitives))
	}
	mid, leaf := pass.Primitives[1], pass.Primitives[2]
	if mid.Shape != ShapeCircle || mid.Filled || mid.Terminal {
		t.Errorf("intermediate node = %+v", mid)
	}
	if leaf.Shape != ShapeRectangle || !leaf.Terminal {
		t.Errorf("leaf node = %+v", leaf)
	}
	if leaf.Link != mid.Position {
		t.Errorf("leaf link = %v, want parent %v", leaf.Link, mid.Position)
	}
	if mid.Color.R >= SettledColor.R {
		t.Errorf("intermediate red channel should be attenuated, got %v", mid.Color.R)
	}
}

func TestTileTransform(t *testing.T) {
	opts := DefaultOptions()
	opts.Transform = Tile
	r := NewRenderer(opts)
	pts := []geom.Vec2{geom.V(0.4, 0.2)}
	pass := r.Render(scene{pts: pts, selected: -1, depth: 1}, viewport)

	canvas := opts.Layout.Canvas(viewport)
	want := canvas.ToPixel(pts[0].Add(pts[0].Scale(0.5)))
	if got := pass.Primitives[1].Position; got.Sub(want).Len() > 1e-3 {
		t.Errorf("tiled child at %v, want %v", got, want)
	}
}
