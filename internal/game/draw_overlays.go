package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// titleFace renders the large overlay headings. The 7x13 bitmap face stays
// crisp at integer scales and matches the debug-font aesthetic of the HUD.
var titleFace = text.NewGoXFace(basicfont.Face7x13)

// drawTitle renders s centred horizontally with its top edge at y.
func drawTitle(screen *ebiten.Image, s string, y, scale float64, c color.Color) {
	w := text.Advance(s, titleFace) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((ScreenWidth-w)/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, titleFace, op)
}

// drawCentredLine prints s with the debug font centred horizontally at y.
func drawCentredLine(screen *ebiten.Image, s string, y int) {
	ebitenutil.DebugPrintAt(screen, s, (ScreenWidth-len(s)*6)/2, y)
}

// drawPanel dims the playfield and draws a bordered panel centred on
// screen. Returns the panel's top-left corner.
func drawPanel(screen *ebiten.Image, w, h float32) (float32, float32) {
	vector.FillRect(screen, 0, 0, ScreenWidth, ScreenHeight,
		color.RGBA{R: 0, G: 0, B: 0, A: 170}, false)

	px := (ScreenWidth - w) / 2
	py := (ScreenHeight - h) / 2
	vector.FillRect(screen, px, py, w, h,
		color.RGBA{R: 8, G: 14, B: 8, A: 235}, false)
	vector.StrokeRect(screen, px, py, w, h,
		2.0, color.RGBA{R: 70, G: 130, B: 70, A: 255}, false)
	// Inner accent frame.
	vector.StrokeRect(screen, px+3, py+3, w-6, h-6,
		1.0, color.RGBA{R: 45, G: 80, B: 45, A: 160}, false)
	return px, py
}

func (a *App) drawReadyOverlay(screen *ebiten.Image) {
	px, py := drawPanel(screen, 420, 270)

	drawTitle(screen, "GRID SNAKE", float64(py)+28, 4,
		color.RGBA{R: 90, G: 240, B: 110, A: 255})
	drawTitle(screen, "Press SPACE to start", float64(py)+104, 2,
		color.RGBA{R: 230, G: 230, B: 230, A: 255})

	legend := []string{
		"Arrows / WASD   steer",
		"P               pause",
		"M               mute",
		"C               copy session report",
		"Esc             quit",
	}
	for i, l := range legend {
		ebitenutil.DebugPrintAt(screen, l, int(px)+52, int(py)+156+i*14)
	}
}

func (a *App) drawPauseOverlay(screen *ebiten.Image) {
	_, py := drawPanel(screen, 300, 120)

	drawTitle(screen, "PAUSED", float64(py)+24, 3,
		color.RGBA{R: 240, G: 220, B: 90, A: 255})
	drawCentredLine(screen, "Press P to resume", int(py)+88)
}

func (a *App) drawGameOverOverlay(screen *ebiten.Image) {
	g := a.game
	_, py := drawPanel(screen, 420, 250)

	drawTitle(screen, "GAME OVER", float64(py)+26, 4,
		color.RGBA{R: 235, G: 80, B: 60, A: 255})

	drawTitle(screen, fmt.Sprintf("Score  %d", g.Score), float64(py)+102, 2,
		color.RGBA{R: 230, G: 230, B: 230, A: 255})

	// A freshly set record turns the best line gold.
	bestLine := fmt.Sprintf("Best   %d", g.HighScore)
	bestCol := color.RGBA{R: 180, G: 180, B: 180, A: 255}
	if g.Score == g.HighScore && g.Score > 0 {
		bestLine += "  NEW RECORD"
		bestCol = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	}
	drawTitle(screen, bestLine, float64(py)+134, 2, bestCol)

	drawCentredLine(screen, fmt.Sprintf("death: %s", g.DeathCause()), int(py)+176)
	drawCentredLine(screen, "Press SPACE to restart", int(py)+200)
}
