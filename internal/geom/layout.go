package geom

const (
	Pad        = 20
	EditorSize = 200
	FontSize   = 16
	Thickness  = 2
	Radius     = 10
)

// Layout places the editor panel, the canvas and the target arena on
// screen. The editor is fixed; canvas and arena follow the viewport and
// are recomputed on every call so a window resize needs no event.
type Layout struct {
	Pad        float32
	EditorSize float32
	FontSize   float32
}

func DefaultLayout() Layout {
	return Layout{
		Pad:        Pad,
		EditorSize: EditorSize,
		FontSize:   FontSize,
	}
}

// Editor returns the editor panel rectangle, below its caption.
func (l Layout) Editor() Rect {
	return Rect{
		X:      l.Pad,
		Y:      l.Pad + l.FontSize*2,
		Width:  l.EditorSize,
		Height: l.EditorSize,
	}
}

// PanelContains reports whether a pixel position is inside the editor.
func (l Layout) PanelContains(pixel Vec2) bool {
	return l.Editor().Contains(pixel)
}

// Canvas returns the square the nested pattern's unit space maps onto
// for a viewport of the given size.
func (l Layout) Canvas(viewport Vec2) Rect {
	side := 0.3 * (viewport.X - 4*l.Pad - l.EditorSize)
	return Rect{
		X:      viewport.X * 0.57,
		Y:      viewport.X * 0.28,
		Width:  side,
		Height: side,
	}
}

// Arena returns the rectangle targets are spawned in.
func (l Layout) Arena(viewport Vec2) Rect {
	canvas := l.Canvas(viewport)
	origin := canvas.ToPixel(Vec2{})
	size := canvas.ToPixel(Vec2{X: 0.3, Y: 0.3})
	return Rect{
		X:      origin.X * 0.6,
		Y:      origin.Y,
		Width:  size.X,
		Height: size.Y,
	}
}

// HitRadius is the anchor hit radius in the editor's normalized space.
func (l Layout) HitRadius() float32 {
	return Radius / l.EditorSize
}
