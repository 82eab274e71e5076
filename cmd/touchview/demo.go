package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/touchview"
	"github.com/phanxgames/touchview/ebiteninput"
)

const (
	windowTitle   = "touchview: Seating Plan"
	screenW       = 960
	screenH       = 640
	tableRadius   = 28
	seatRadius    = 7
	seatsPerTable = 6
	resetDuration = 0.35
)

var (
	clearColor    = color.RGBA{R: 0x23, G: 0x1e, B: 0x2d, A: 0xff}
	tableColor    = color.RGBA{R: 0x8a, G: 0x6a, B: 0x4a, A: 0xff}
	selectedColor = color.RGBA{R: 0xe8, G: 0xb0, B: 0x30, A: 0xff}
	seatColor     = color.RGBA{R: 0x4d, G: 0xb3, B: 0xe6, A: 0xff}
)

type table struct {
	x, y float64
}

// seatingPlan is the ebiten.Game hosting the demo. All world coordinates are
// in plan units; the engine's transform maps them to the screen.
type seatingPlan struct {
	engine   *touchview.Engine
	src      *ebiteninput.Source
	tables   []table
	selected int
	w, h     int
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Open an interactive seating plan driven by touch and wheel input",
		Long: `demo opens a window with a zoomable seating plan.

Pinch or scroll to zoom, drag to pan, long-press a table to select it,
double-tap to animate back to the default view, and press R to reset instantly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.engineConfig()
			if err != nil {
				return err
			}
			g := newSeatingPlan(cfg)
			defer g.engine.Close()

			ebiten.SetWindowTitle(windowTitle)
			ebiten.SetWindowSize(screenW, screenH)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			if err := ebiten.RunGame(g); err != nil {
				return fmt.Errorf("run demo: %w", err)
			}
			return nil
		},
	}
}

func newSeatingPlan(cfg touchview.Config) *seatingPlan {
	g := &seatingPlan{selected: -1, w: screenW, h: screenH}
	for row := range 5 {
		for col := range 8 {
			g.tables = append(g.tables, table{x: float64(90 + col*110), y: float64(90 + row*115)})
		}
	}

	surface := touchview.SurfaceFunc(func() (touchview.Rect, bool) {
		return touchview.Rect{Width: float64(g.w), Height: float64(g.h)}, true
	})
	g.engine = touchview.New(surface, cfg)
	g.engine.OnDoubleTap(func(x, y float64) {
		g.engine.ResetAnimated(resetDuration, ease.OutCubic)
	})
	g.engine.OnLongPress(func(x, y float64) {
		g.selected = g.tableAt(x, y)
	})

	g.src = ebiteninput.New()
	g.engine.Attach(g.src)
	return g
}

// tableAt returns the index of the table under screen point (x, y), or -1.
func (g *seatingPlan) tableAt(x, y float64) int {
	wx, wy := g.engine.Transform().ScreenToWorld(x, y)
	for i, t := range g.tables {
		if math.Hypot(wx-t.x, wy-t.y) <= tableRadius {
			return i
		}
	}
	return -1
}

func (g *seatingPlan) Update() error {
	now := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
	}
	g.src.Poll(now)
	g.engine.Update(now)
	return nil
}

func (g *seatingPlan) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	v := g.engine.Transform()
	r := float32(tableRadius * v.Scale)
	sr := float32(seatRadius * v.Scale)

	for i, t := range g.tables {
		for s := range seatsPerTable {
			angle := 2 * math.Pi * float64(s) / seatsPerTable
			sx, sy := v.WorldToScreen(t.x+math.Cos(angle)*(tableRadius+10), t.y+math.Sin(angle)*(tableRadius+10))
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), sr, seatColor, true)
		}
		clr := tableColor
		if i == g.selected {
			clr = selectedColor
		}
		cx, cy := v.WorldToScreen(t.x, t.y)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, clr, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("scale %.2f  pos (%.0f, %.0f)  %s\nTPS: %.1f",
		v.Scale, v.Position.X, v.Position.Y, g.engine.State(), ebiten.ActualTPS()))
}

func (g *seatingPlan) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
