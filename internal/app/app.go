package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/nestdraw/internal/config"
	"github.com/ha1tch/nestdraw/internal/game"
	"github.com/ha1tch/nestdraw/internal/geom"
	"github.com/ha1tch/nestdraw/internal/logger"
	"github.com/ha1tch/nestdraw/internal/nest"
	"github.com/ha1tch/nestdraw/internal/points"
)

const fontSize = geom.FontSize

var instructions = []string{
	"Click in the editor on the left to add points.",
	"Increase the nesting levels to create more points.",
	"Move your points to avoid touching the blue targets.",
}

// App is the window shell around the point store, the renderer and the
// target game.
type App struct {
	cfg    config.Config
	log    *logger.Logger
	layout geom.Layout

	store      *points.Store
	controller *points.Controller
	renderer   *nest.Renderer
	game       *game.Game

	// Buttons
	plusButton    Button
	minusButton   Button
	nextButton    Button
	restartButton Button

	// Per-frame state
	viewport geom.Vec2
	pass     *nest.Pass
	touching bool
	score    float32
}

func NewApp(cfg config.Config, log *logger.Logger) (*App, error) {
	opts, err := cfg.RendererOptions()
	if err != nil {
		return nil, err
	}
	layout := geom.DefaultLayout()
	store := points.NewStore(cfg.Depth)

	app := &App{
		cfg:           cfg,
		log:           log,
		layout:        layout,
		store:         store,
		controller:    points.NewController(store, layout),
		renderer:      nest.NewRenderer(opts),
		game:          &game.Game{},
		plusButton:    NewButton(" + "),
		minusButton:   NewButton(" - "),
		nextButton:    NewButton(" Next target "),
		restartButton: NewButton(" Restart "),
		pass:          &nest.Pass{},
	}

	app.viewport = screenSize()
	app.game.Advance(false, 0, seed(), layout.Arena(app.viewport))
	return app, nil
}

func screenSize() geom.Vec2 {
	return geom.V(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

func seed() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

func pointerEdge() points.Edge {
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		return points.EdgePress
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		return points.EdgeRelease
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		return points.EdgeHeld
	default:
		return points.EdgeIdle
	}
}

// placeButtons lays the buttons out for the current viewport.
func (app *App) placeButtons() {
	pad := app.layout.Pad
	textWidth := float32(fontSize) * 8.5
	half := app.viewport.Y*0.5 - fontSize
	app.plusButton.Place(pad+textWidth, half)
	app.minusButton.Place(pad*2+fontSize+textWidth, half)

	x, y := app.instructionsOrigin()
	y += float32(len(instructions)) * fontSize
	app.nextButton.Place(x, y)
	app.restartButton.Place(x+fontSize*8, y)
}

func (app *App) instructionsOrigin() (float32, float32) {
	return app.layout.Pad*4 + app.layout.EditorSize, app.layout.Pad + fontSize
}

// Update processes one frame of input and renders the pattern.
func (app *App) Update() {
	app.viewport = screenSize()
	app.placeButtons()
	mousePos := rl.GetMousePosition()

	app.minusButton.visible = app.store.Depth() > 0
	if app.plusButton.Update(mousePos) {
		app.store.IncreaseDepth()
		app.log.Info("nesting levels: %d", app.store.Depth())
	}
	if app.minusButton.Update(mousePos) {
		app.store.DecreaseDepth()
		app.log.Info("nesting levels: %d", app.store.Depth())
	}

	before := app.store.Len()
	app.controller.Apply(points.Pointer{
		Pos:  geom.V(mousePos.X, mousePos.Y),
		Edge: pointerEdge(),
	})
	if after := app.store.Len(); after != before {
		app.log.Debug("anchors: %d -> %d", before, after)
	}

	wasExceeded := app.pass.Exceeded
	app.pass = app.renderer.Render(app.store, app.viewport)
	if app.pass.Exceeded && !wasExceeded {
		app.log.Debug("budget of %d nodes exhausted, remaining anchors not expanded", app.renderer.Options().Ceiling)
	}
	app.score = game.Score(app.store.Points(), app.store.Depth())

	app.touching = app.game.Touching(app.pass, geom.Radius)
	app.nextButton.visible = !app.touching
	arena := app.layout.Arena(app.viewport)
	if app.nextButton.Update(mousePos) {
		if app.game.Advance(app.touching, app.score, seed(), arena) {
			app.log.Info("banked %g, total %g, targets %d", app.score, app.game.Accumulated, len(app.game.Targets))
		}
	}
	if app.restartButton.Update(mousePos) {
		app.game.Reset()
		app.log.Info("targets cleared")
	}
}

// Draw renders the frame.
func (app *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.DarkGray)

	// Editor panel
	ed := app.layout.Editor()
	pad := int32(app.layout.Pad)
	rl.DrawText("Editor:", pad, pad, fontSize, rl.LightGray)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: ed.X, Y: ed.Y, Width: ed.Width, Height: ed.Height}, geom.Thickness, rl.LightGray)

	// Instructions
	x, y := app.instructionsOrigin()
	for _, line := range instructions {
		rl.DrawText(line, int32(x), int32(y), fontSize, rl.LightGray)
		y += fontSize
	}

	// Pattern
	for _, p := range app.pass.Primitives {
		drawPrimitive(p)
	}
	if hover, ok := app.controller.Hover(); ok {
		rl.DrawRing(vec(ed.ToPixel(hover)), geom.Radius-geom.Thickness, geom.Radius, 0, 360, 36, toRL(nest.FaintColor))
	}

	// Stats
	lineHeight := float32(1.5 * fontSize)
	statsY := app.viewport.Y * 0.5
	stats := []string{
		fmt.Sprintf("nesting levels: %d", app.store.Depth()),
		fmt.Sprintf("points drawn: %d", app.pass.Drawn),
		fmt.Sprintf("score: %g", app.score),
		fmt.Sprintf("banked: %g", app.game.Accumulated),
	}
	for i, line := range stats {
		rl.DrawText(line, pad, int32(statsY+float32(i)*lineHeight), fontSize, rl.LightGray)
	}
	if app.pass.Exceeded {
		rl.DrawText("drawing more points might freeze your computer", pad, int32(statsY+float32(len(stats))*lineHeight), fontSize, rl.Orange)
	}

	// Arena
	arena := app.layout.Arena(app.viewport)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: arena.X, Y: arena.Y, Width: arena.Width, Height: arena.Height}, 2, rl.Black)
	for _, t := range app.game.Targets {
		rl.DrawCircleV(vec(t), geom.Radius, rl.Blue)
	}

	// Buttons
	app.plusButton.Draw()
	app.minusButton.Draw()
	app.nextButton.Draw()
	app.restartButton.Draw()

	rl.EndDrawing()
}

// Run opens the window and loops until it is closed.
func Run(cfg config.Config, log *logger.Logger) error {
	log = log.Named("window")
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "Nest Draw")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	app, err := NewApp(cfg, log)
	if err != nil {
		return err
	}
	log.Info("window %dx%d, depth %d, ceiling %d, nest %s", cfg.Width, cfg.Height, cfg.Depth, cfg.Ceiling, cfg.Nest)

	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
	return nil
}
