package game

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Grid-Snake/internal/audio"
)

const (
	cellSize     = 20                    // pixels per grid cell
	ScreenWidth  = GridWidth * cellSize  // 800
	ScreenHeight = GridHeight * cellSize // 600
	hudScale     = 2                     // HUD text renders at 1x into hudBuf, blits at 2x

	framesPerSecond = 60  // ebiten's fixed Update rate
	copyNoteFrames  = 150 // how long the clipboard confirmation stays on screen
)

// App drives the engine from ebiten's fixed 60Hz Update loop and renders it.
// Engine ticks fire at Speed per second, so each frame contributes
// Speed/60 of a tick to an accumulator; whole ticks are consumed as they
// complete. Input is sampled every frame regardless of game phase.
type App struct {
	game *Game

	prevKeys  map[ebiten.Key]bool // previous-frame key state for edge triggering
	tickAccum float64             // fractional engine ticks owed

	hudBuf *ebiten.Image // 1/hudScale of screen, text stays crisp when scaled

	sounds *audio.Player

	copyNote     string // clipboard result flashed in the corner
	copyNoteLeft int    // frames remaining for copyNote

	prevPhase Phase // last frame's phase, for sound triggers
	prevScore int   // last frame's score, for the eat sound
}

// NewApp builds the playable game. Audio failures degrade to silence
// rather than aborting: the game is fully playable without a sound device.
func NewApp() *App {
	a := &App{
		game:     New(),
		prevKeys: map[ebiten.Key]bool{},
		sounds:   audio.NewPlayer(),
	}
	a.hudBuf = ebiten.NewImage(ScreenWidth/hudScale, ScreenHeight/hudScale)
	_ = a.sounds.Init() // silent mode on error
	return a
}

func (a *App) Update() error {
	// Handle input every frame regardless of phase.
	if err := a.handleInput(); err != nil {
		return err
	}

	if a.game.Phase() == PhasePlaying {
		// Speed is engine ticks per second; accumulate fractions per frame.
		a.tickAccum += float64(a.game.Speed) / framesPerSecond
		for a.tickAccum >= 1.0 {
			a.tickAccum -= 1.0
			a.game.Tick()
		}
	} else {
		// Ready/paused/game over: drop owed fractions so resuming
		// does not burst-run ticks accrued while frozen.
		a.tickAccum = 0
	}

	a.reactToTransitions()

	if a.copyNoteLeft > 0 {
		a.copyNoteLeft--
	}
	return nil
}

// reactToTransitions fires one-shot sounds when the observable state
// crosses a boundary this frame: a round starting, food eaten, a crash.
func (a *App) reactToTransitions() {
	phase := a.game.Phase()

	if phase == PhasePlaying && a.prevPhase != PhasePlaying && a.prevPhase != PhasePaused {
		a.sounds.PlayStart()
	}
	if phase == PhaseGameOver && a.prevPhase != PhaseGameOver {
		a.sounds.PlayGameOver()
	}
	if a.game.Score > a.prevScore {
		a.sounds.PlayEat()
	}

	a.prevPhase = phase
	a.prevScore = a.game.Score
}

// handleInput processes steering and control keypresses (edge-triggered).
func (a *App) handleInput() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	currentKeys := map[ebiten.Key]bool{}

	// Steering: arrows or WASD. The arrow key stands for the pair in the
	// edge map so holding W then tapping ArrowUp doesn't double-fire.
	dirKeys := []struct {
		key, alt ebiten.Key
		dir      Direction
	}{
		{ebiten.KeyArrowUp, ebiten.KeyW, DirUp},
		{ebiten.KeyArrowDown, ebiten.KeyS, DirDown},
		{ebiten.KeyArrowLeft, ebiten.KeyA, DirLeft},
		{ebiten.KeyArrowRight, ebiten.KeyD, DirRight},
	}
	for _, dk := range dirKeys {
		pressed := ebiten.IsKeyPressed(dk.key) || ebiten.IsKeyPressed(dk.alt)
		currentKeys[dk.key] = pressed
		if pressed && !a.prevKeys[dk.key] {
			a.game.DirectionIntent(dk.dir)
		}
	}

	// Space: start from the title screen, restart after game over.
	currentKeys[ebiten.KeySpace] = ebiten.IsKeyPressed(ebiten.KeySpace)
	if currentKeys[ebiten.KeySpace] && !a.prevKeys[ebiten.KeySpace] {
		a.game.StartIntent()
	}

	// P: pause/resume.
	currentKeys[ebiten.KeyP] = ebiten.IsKeyPressed(ebiten.KeyP)
	if currentKeys[ebiten.KeyP] && !a.prevKeys[ebiten.KeyP] {
		a.game.PauseToggleIntent()
	}

	// M: mute toggle.
	currentKeys[ebiten.KeyM] = ebiten.IsKeyPressed(ebiten.KeyM)
	if currentKeys[ebiten.KeyM] && !a.prevKeys[ebiten.KeyM] {
		a.sounds.ToggleMute()
	}

	// C: copy the session report to the system clipboard.
	currentKeys[ebiten.KeyC] = ebiten.IsKeyPressed(ebiten.KeyC)
	if currentKeys[ebiten.KeyC] && !a.prevKeys[ebiten.KeyC] {
		if err := clipboard.WriteAll(a.game.Report()); err != nil {
			a.copyNote = "copy failed: " + err.Error()
		} else {
			a.copyNote = "session report copied"
		}
		a.copyNoteLeft = copyNoteFrames
	}

	a.prevKeys = currentKeys
	return nil
}

func (a *App) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}
