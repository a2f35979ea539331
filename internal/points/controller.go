package points

import "github.com/ha1tch/nestdraw/internal/geom"

// Edge is the state transition of the pointer button seen in one frame.
type Edge int

const (
	EdgeIdle Edge = iota
	EdgePress
	EdgeHeld
	EdgeRelease
)

func (e Edge) String() string {
	switch e {
	case EdgeIdle:
		return "idle"
	case EdgePress:
		return "press"
	case EdgeHeld:
		return "held"
	case EdgeRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Pointer is one frame of pointer input in screen pixels.
type Pointer struct {
	Pos  geom.Vec2
	Edge Edge
}

// Controller turns pointer input over the editor panel into Store edits.
type Controller struct {
	store  *Store
	panel  geom.Rect
	radius float32

	hover    geom.Vec2
	hovering bool
}

func NewController(store *Store, layout geom.Layout) *Controller {
	return &Controller{
		store:  store,
		panel:  layout.Editor(),
		radius: layout.HitRadius(),
	}
}

// Hover returns the cursor's normalized position while it is over the
// panel with the button up. The shell draws a faint ring there.
func (c *Controller) Hover() (geom.Vec2, bool) {
	return c.hover, c.hovering
}

// Apply processes one frame of input.
func (c *Controller) Apply(in Pointer) {
	c.hovering = false
	if !c.panel.Contains(in.Pos) {
		// Outside the panel only a release matters: it drops the
		// dragged anchor. Held input leaves the anchor where it was.
		if in.Edge == EdgeRelease && c.store.Selected() != NoSelection {
			c.store.Remove(c.store.Selected())
		}
		return
	}

	pos := c.panel.ToNormalized(in.Pos)
	switch in.Edge {
	case EdgePress:
		if i, ok := c.store.HitTest(pos, c.radius); ok {
			c.store.Select(i)
		} else {
			c.store.Add(pos)
		}
	case EdgeHeld:
		c.store.MoveSelected(pos)
	case EdgeRelease:
		c.store.ClearSelection()
		c.hover, c.hovering = pos, true
	default:
		c.hover, c.hovering = pos, true
	}
}
