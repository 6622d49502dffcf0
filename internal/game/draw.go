package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func (a *App) Draw(screen *ebiten.Image) {
	// Playfield background: near-black with a green cast.
	screen.Fill(color.RGBA{R: 10, G: 12, B: 10, A: 255})

	drawGrid(screen, ScreenWidth, ScreenHeight, cellSize,
		color.RGBA{R: 24, G: 30, B: 24, A: 255})
	a.drawFood(screen)
	a.drawSnake(screen)

	// The HUD belongs to a run in progress; the ready and game-over
	// overlays carry their own score lines.
	ph := a.game.Phase()
	if ph == PhasePlaying || ph == PhasePaused {
		a.drawHUD(screen)
	}

	switch ph {
	case PhaseReady:
		a.drawReadyOverlay(screen)
	case PhaseGameOver:
		a.drawGameOverOverlay(screen)
	case PhasePaused:
		a.drawPauseOverlay(screen)
	}

	if a.copyNoteLeft > 0 {
		ebitenutil.DebugPrintAt(screen, a.copyNote, 6, 6)
	}
}

// drawGrid strokes faint cell boundaries across the whole playfield.
func drawGrid(screen *ebiten.Image, w, h, spacing int, c color.Color) {
	if spacing <= 0 {
		return
	}
	for x := 0; x <= w; x += spacing {
		xf := float32(x)
		vector.StrokeLine(screen, xf, 0, xf, float32(h), 1.0, c, false)
	}
	for y := 0; y <= h; y += spacing {
		yf := float32(y)
		vector.StrokeLine(screen, 0, yf, float32(w), yf, 1.0, c, false)
	}
}

func (a *App) drawFood(screen *ebiten.Image) {
	f := a.game.Food.Pos
	cx := float32(f.X*cellSize) + cellSize/2
	cy := float32(f.Y*cellSize) + cellSize/2
	vector.FillCircle(screen, cx, cy, cellSize*0.35,
		color.RGBA{R: 220, G: 55, B: 45, A: 255}, false)
	// Small specular dot so the food reads as round, not flat.
	vector.FillCircle(screen, cx-2, cy-3, 2.0,
		color.RGBA{R: 255, G: 170, B: 160, A: 255}, false)
}

// drawSnake renders the body back to front so the head is drawn last.
// Segments darken toward the tail; the head carries two eyes offset
// along the committed travel direction.
func (a *App) drawSnake(screen *ebiten.Image) {
	body := a.game.Snake.Body
	n := len(body)
	for i := n - 1; i > 0; i-- {
		p := body[i]
		// Brightness falls from 1.0 at the head to 0.7 at the tail.
		fade := 1.0 - float64(i)/float64(n)*0.3
		c := color.RGBA{
			R: uint8(40 * fade),
			G: uint8(200 * fade),
			B: uint8(70 * fade),
			A: 255,
		}
		vector.FillRect(screen,
			float32(p.X*cellSize)+1, float32(p.Y*cellSize)+1,
			cellSize-2, cellSize-2, c, false)
	}

	head := body[0]
	hx := float32(head.X * cellSize)
	hy := float32(head.Y * cellSize)
	vector.FillRect(screen, hx+1, hy+1, cellSize-2, cellSize-2,
		color.RGBA{R: 60, G: 235, B: 95, A: 255}, false)

	// Eyes sit forward of the cell centre, split perpendicular to travel.
	dx, dy := a.game.Snake.Dir.Vector()
	ecx := hx + cellSize/2 + float32(dx)*4
	ecy := hy + cellSize/2 + float32(dy)*4
	px := float32(-dy) * 3
	py := float32(dx) * 3
	eye := color.RGBA{R: 245, G: 250, B: 245, A: 255}
	vector.FillCircle(screen, ecx+px, ecy+py, 2.0, eye, false)
	vector.FillCircle(screen, ecx-px, ecy-py, 2.0, eye, false)
}

// drawHUD renders the score strip in the top-right corner.
// Text is drawn into hudBuf at 1x then composited onto the screen at hudScale.
func (a *App) drawHUD(screen *ebiten.Image) {
	g := a.game

	lines := []string{
		fmt.Sprintf("Score: %d", g.Score),
		fmt.Sprintf("Best:  %d", g.HighScore),
		fmt.Sprintf("Speed: %d", g.Speed),
	}
	if a.sounds.Muted() {
		lines = append(lines, "Sound: off")
	}

	// Render into hudBuf at 1x, then scale up.
	const lineH = 12 // debug font line height at 1x
	const charW = 6  // debug font char width at 1x
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)

	// Position in unscaled coordinates (hudBuf is screen/hudScale).
	bufW := float32(ScreenWidth / hudScale)
	bx := bufW - boxW - 4
	by := float32(4)

	a.hudBuf.Clear()
	// Panel background.
	vector.FillRect(a.hudBuf, bx, by, boxW, boxH,
		color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(a.hudBuf, bx, by, boxW, boxH,
		1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	// Inner highlight line along top edge.
	vector.StrokeLine(a.hudBuf, bx+1, by+1, bx+boxW-1, by+1,
		1.0, color.RGBA{R: 80, G: 140, B: 80, A: 80}, false)

	for i, line := range lines {
		tx := int(bx) + padX
		ty := int(by) + padY + i*lineH
		ebitenutil.DebugPrintAt(a.hudBuf, line, tx, ty)
	}

	// Blit hudBuf onto screen at hudScale.
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(hudScale), float64(hudScale))
	screen.DrawImage(a.hudBuf, opts)
}
