package nest_test

import (
	"testing"

	"github.com/ha1tch/nestdraw/internal/geom"
	"github.com/ha1tch/nestdraw/internal/nest"
	"github.com/ha1tch/nestdraw/internal/points"
)

// Drives the editor the way the window does and checks each pass.
func TestEditorToRenderer(t *testing.T) {
	layout := geom.DefaultLayout()
	editor := layout.Editor()
	viewport := geom.V(1280, 800)

	store := points.NewStore(1)
	ctl := points.NewController(store, layout)
	opts := nest.DefaultOptions()
	opts.Ceiling = 100
	r := nest.NewRenderer(opts)

	ctl.Apply(points.Pointer{Pos: editor.ToPixel(geom.V(0.5, 0.5)), Edge: points.EdgePress})
	if store.Len() != 1 || store.Selected() != 0 {
		t.Fatalf("press: anchors = %d selected = %d", store.Len(), store.Selected())
	}

	pass := r.Render(store, viewport)
	if pass.Drawn != 2 || pass.Exceeded {
		t.Fatalf("n=1 d=1: drawn = %d exceeded = %v", pass.Drawn, pass.Exceeded)
	}
	if !pass.Primitives[0].Filled {
		t.Error("selected anchor's marker should be filled")
	}

	store.IncreaseDepth()
	if pass = r.Render(store, viewport); pass.Drawn != 3 {
		t.Fatalf("n=1 d=2: drawn = %d, want 3", pass.Drawn)
	}

	ctl.Apply(points.Pointer{Pos: editor.ToPixel(geom.V(0.5, 0.5)), Edge: points.EdgeRelease})
	ctl.Apply(points.Pointer{Pos: editor.ToPixel(geom.V(0.2, 0.8)), Edge: points.EdgePress})
	ctl.Apply(points.Pointer{Pos: editor.ToPixel(geom.V(0.2, 0.8)), Edge: points.EdgeRelease})
	if pass = r.Render(store, viewport); pass.Drawn != 14 || pass.Exceeded {
		t.Fatalf("n=2 d=2: drawn = %d exceeded = %v, want 14 false", pass.Drawn, pass.Exceeded)
	}
}
