package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ha1tch/nestdraw/internal/geom"
	"github.com/ha1tch/nestdraw/internal/nest"
)

var (
	background = color.RGBA{80, 80, 80, 255}
	panelLine  = color.RGBA{200, 200, 200, 255}
	targetFill = color.RGBA{0, 121, 241, 255}
	arenaLine  = color.Black
)

// Frame is everything one snapshot shows.
type Frame struct {
	Viewport geom.Vec2
	Layout   geom.Layout
	Pass     *nest.Pass
	Targets  []geom.Vec2
	Depth    int
	Score    float32
}

// Render draws the frame onto a new image.
func Render(f Frame) (image.Image, error) {
	dc := gg.NewContext(int(f.Viewport.X), int(f.Viewport.Y))
	dc.SetColor(background)
	dc.Clear()

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parsing font")
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(f.Layout.FontSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Editor panel
	ed := f.Layout.Editor()
	dc.SetColor(panelLine)
	dc.DrawString("Editor:", float64(f.Layout.Pad), float64(f.Layout.Pad+f.Layout.FontSize))
	dc.SetLineWidth(geom.Thickness)
	dc.DrawRectangle(float64(ed.X), float64(ed.Y), float64(ed.Width), float64(ed.Height))
	dc.Stroke()

	if f.Pass != nil {
		for _, p := range f.Pass.Primitives {
			drawPrimitive(dc, p)
		}
	}

	// Arena and targets
	arena := f.Layout.Arena(f.Viewport)
	dc.SetColor(arenaLine)
	dc.SetLineWidth(2)
	dc.DrawRectangle(float64(arena.X), float64(arena.Y), float64(arena.Width), float64(arena.Height))
	dc.Stroke()
	dc.SetColor(targetFill)
	for _, t := range f.Targets {
		dc.DrawCircle(float64(t.X), float64(t.Y), geom.Radius)
		dc.Fill()
	}

	// Stats
	drawn, exceeded := 0, false
	if f.Pass != nil {
		drawn, exceeded = f.Pass.Drawn, f.Pass.Exceeded
	}
	lines := []string{
		fmt.Sprintf("nesting levels: %d", f.Depth),
		fmt.Sprintf("points drawn: %d", drawn),
		fmt.Sprintf("score: %g", f.Score),
	}
	if exceeded {
		lines = append(lines, "drawing more points might freeze your computer")
	}
	dc.SetColor(panelLine)
	y := float64(f.Viewport.Y) * 0.5
	for _, line := range lines {
		dc.DrawString(line, float64(f.Layout.Pad), y)
		y += 1.5 * float64(f.Layout.FontSize)
	}

	return dc.Image(), nil
}

// SavePNG renders the frame and writes it to path.
func SavePNG(f Frame, path string) error {
	img, err := Render(f)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func drawPrimitive(dc *gg.Context, p nest.Primitive) {
	if p.HasLink {
		dc.SetColor(p.LinkTint)
		dc.SetLineWidth(1)
		dc.DrawLine(float64(p.Link.X), float64(p.Link.Y), float64(p.Position.X), float64(p.Position.Y))
		dc.Stroke()
	}

	dc.SetColor(p.Color)
	x, y, s := float64(p.Position.X), float64(p.Position.Y), float64(p.Size)
	switch p.Shape {
	case nest.ShapeRectangle:
		dc.DrawRectangle(x, y, s, s)
	default:
		dc.DrawCircle(x, y, s)
	}
	if p.Filled {
		dc.Fill()
		return
	}
	dc.SetLineWidth(geom.Thickness)
	dc.Stroke()
}
