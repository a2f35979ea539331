package nest

import (
	"errors"

	"github.com/ha1tch/nestdraw/internal/geom"
)

// Anchors is the read side of the point store.
type Anchors interface {
	Points() []geom.Vec2
	Selected() int
	Depth() int
}

type Options struct {
	Ceiling   int
	Scale     float32
	Transform Transform
	Layout    geom.Layout
}

func DefaultOptions() Options {
	return Options{
		Ceiling:   DefaultCeiling,
		Scale:     DefaultScale,
		Transform: Spiral,
		Layout:    geom.DefaultLayout(),
	}
}

// Pass is the output of one render pass.
type Pass struct {
	Primitives []Primitive
	// Drawn counts every primitive, settled markers included.
	Drawn int
	// Nodes counts the recursive node primitives charged to the budget.
	Nodes    int
	Exceeded bool
}

// Err returns ErrBudgetExceeded if the pass ran out of budget.
func (p *Pass) Err() error {
	if p.Exceeded {
		return ErrBudgetExceeded
	}
	return nil
}

type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	if opts.Transform == nil {
		opts.Transform = Spiral
	}
	if opts.Scale == 0 {
		opts.Scale = DefaultScale
	}
	return &Renderer{opts: opts}
}

func (r *Renderer) Options() Options {
	return r.opts
}

// Render expands every anchor for a viewport of the given size. Once
// the budget runs out, the anchors that follow keep their settled
// marker in FallbackColor and are not expanded.
func (r *Renderer) Render(a Anchors, viewport geom.Vec2) *Pass {
	pts := a.Points()
	selected := a.Selected()
	depth := a.Depth()
	editor := r.opts.Layout.Editor()

	pass := &Pass{}
	budget := NewBudget(r.opts.Ceiling)
	x := &expansion{
		opts:     r.opts,
		canvas:   r.opts.Layout.Canvas(viewport),
		anchors:  pts,
		selected: selected,
		budget:   budget,
		pass:     pass,
	}

	for i, p := range pts {
		color := SettledColor
		if i == selected {
			color = StrongColor
		}
		if pass.Exceeded {
			color = FallbackColor
		}
		pass.Primitives = append(pass.Primitives, Primitive{
			Shape:    ShapeCircle,
			Position: editor.ToPixel(p),
			Size:     geom.Radius,
			Color:    color,
			Filled:   i == selected,
			Settled:  true,
		})
		if pass.Exceeded {
			continue
		}

		root := Recursion{Level: depth + 1, Scale: 1, Radius: geom.Radius}
		if err := x.descend(root, true, geom.Vec2{}, p, color); errors.Is(err, ErrBudgetExceeded) {
			pass.Exceeded = true
		}
	}

	pass.Nodes = budget.Count()
	pass.Drawn = len(pass.Primitives)
	return pass
}

type expansion struct {
	opts     Options
	canvas   geom.Rect
	anchors  []geom.Vec2
	selected int
	budget   *Budget
	pass     *Pass
}

// descend reduces st and emits the node at cur. The root of an anchor's
// expansion sits on the anchor itself and only emits when it is also
// terminal; deeper nodes always emit. Non-terminal nodes recurse once
// per anchor.
func (x *expansion) descend(st Recursion, root bool, ref, cur geom.Vec2, color Color) error {
	st = st.Reduce(x.opts.Scale)
	terminal := !st.Continue()

	if !root || terminal {
		if err := x.budget.Spend(); err != nil {
			return err
		}
		x.pass.Primitives = append(x.pass.Primitives, x.node(st, ref, cur, color, terminal))
	}
	if terminal {
		return nil
	}

	for i, q := range x.anchors {
		c := color
		if i == x.selected {
			c = StrongColor
		}
		child := x.opts.Transform(cur, q, st.Scale)
		if err := x.descend(st, false, cur, child, c); err != nil {
			return err
		}
	}
	return nil
}

func (x *expansion) node(st Recursion, ref, cur geom.Vec2, color Color, terminal bool) Primitive {
	p := Primitive{
		Position: x.canvas.ToPixel(cur),
		Color:    st.Attenuate(color),
		Terminal: terminal,
		Link:     x.canvas.ToPixel(ref),
		HasLink:  true,
		LinkTint: color,
	}
	if terminal {
		p.Shape = ShapeRectangle
		p.Size = st.Radius * 1.5
		p.Filled = true
	} else {
		p.Shape = ShapeCircle
		p.Size = st.Radius
	}
	return p
}

// PassSize returns the number of primitives a full pass over n anchors
// at the given depth emits when the budget is not exhausted: one
// settled marker per anchor, plus n + n² + … + n^depth nodes, or a
// single terminal node at depth 0.
func PassSize(n, depth int) int {
	if n == 0 {
		return 0
	}
	if depth == 0 {
		return 2 * n
	}
	return n * (1 + NodesPerAnchor(n, depth))
}

// NodesPerAnchor returns n + n² + … + n^depth for depth > 0 and 1 for
// depth 0.
func NodesPerAnchor(n, depth int) int {
	if depth == 0 {
		return 1
	}
	total, term := 0, 1
	for k := 0; k < depth; k++ {
		term *= n
		total += term
	}
	return total
}
