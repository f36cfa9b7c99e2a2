package window

import (
	"context"
	"image/color"
	"log/slog"
	"route-sketch-service/internal/domain"
	"route-sketch-service/internal/render"
	"route-sketch-service/internal/services"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var backgroundColor = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}

const statusBarHeight = 24

// Game drives a Canvas from window input. Every handler runs to completion
// on ebiten's update goroutine, so the canvas needs no locking here.
type Game struct {
	canvas  *services.Canvas
	planner services.Planner
	help    string
}

func NewGame(canvas *services.Canvas, planner services.Planner) *Game {
	return &Game{
		canvas:  canvas,
		planner: planner,
		help:    "click: add point   C: calculate   R: reset",
	}
}

// Run opens the window and blocks until it closes.
func Run(title string, g *Game) error {
	w, h := g.canvas.Size()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(w), int(h)+statusBarHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	ctx := context.Background()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// Layout maps the window to surface space, so the origin is the top-left corner.
		if g.canvas.AddPointAt(float64(x), float64(y), domain.Point{}) {
			slog.Debug("point added", "x", x, "y", y, "status", g.canvas.Status())
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if g.canvas.Calculate(ctx, g.planner) {
			slog.Info("route calculated", "status", g.canvas.Status())
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.canvas.Reset()
		slog.Info("canvas reset")
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.canvas.Snapshot()

	s := NewEbitenSurface(screen, backgroundColor)
	render.Render(s, snap.Points, snap.Route.Path)

	ebitenutil.DebugPrintAt(screen, snap.Status, 8, int(snap.Height)-statusBarHeight+4)
	ebitenutil.DebugPrintAt(screen, g.help, 8, 4)
}

// Layout follows the window size; the canvas keeps its minimum height.
// A resize only triggers a redraw of the stored points and route.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvas.Resize(float64(outsideWidth), float64(outsideHeight))
	w, h := g.canvas.Size()
	return int(w), int(h)
}
