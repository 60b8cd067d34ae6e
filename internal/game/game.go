package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ecg-simulator/internal/config"
	"github.com/iburimskiy/ecg-simulator/internal/render"
	"github.com/iburimskiy/ecg-simulator/internal/surface"
	"github.com/iburimskiy/ecg-simulator/internal/waveform"
)

var rhythmKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

// pick is the answer of the selector dialog.
type pick struct {
	rhythm waveform.Rhythm
	err    error
}

// Game hosts the ECG view inside ebiten's loop. Update is the only writer of
// the view; the selector dialog reports back through picks.
type Game struct {
	log *slog.Logger

	sched   *render.Scheduler
	canvas  *surface.Canvas
	view    *render.View
	release func()

	picks   chan pick
	picking bool

	buttonHovered bool
	buttonPressed bool
	lastErr       error
}

// New builds the game and mounts the view on rhythm r.
func New(r waveform.Rhythm, log *slog.Logger) *Game {
	sched := render.NewScheduler()
	canvas := surface.NewCanvas(config.CanvasWidth, config.CanvasHeight)
	painter := render.NewPainter(waveform.NewGenerator(nil))
	view := render.NewView(sched, canvas, painter, r, log)

	return &Game{
		log:     log,
		sched:   sched,
		canvas:  canvas,
		view:    view,
		release: view.Mount(),
		picks:   make(chan pick, 1),
	}
}

// Close stops the repaint cadence.
func (g *Game) Close() {
	g.release()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for i, k := range rhythmKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.view.Select(waveform.Rhythms()[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.view.Select(waveform.Next(g.view.Rhythm(), 1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.view.Select(waveform.Next(g.view.Rhythm(), -1))
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = inRect(mouseX, mouseY, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight)
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.openSelector()
		}
		g.buttonPressed = false
	}

	select {
	case p := <-g.picks:
		g.picking = false
		g.applyPick(p)
	default:
	}

	g.sched.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// openSelector shows the rhythm list without blocking the game loop.
func (g *Game) openSelector() {
	if g.picking {
		return
	}
	g.picking = true
	current := g.view.Rhythm()
	go func() {
		r, err := chooseRhythm(current)
		g.picks <- pick{rhythm: r, err: err}
	}()
}

func (g *Game) applyPick(p pick) {
	switch {
	case errors.Is(p.err, zenity.ErrCanceled):
	case p.err != nil:
		g.lastErr = p.err
		g.log.Error("rhythm selector failed", "error", p.err)
	default:
		g.lastErr = nil
		g.view.Select(p.rhythm)
	}
}

func chooseRhythm(current waveform.Rhythm) (waveform.Rhythm, error) {
	rhythms := waveform.Rhythms()
	items := make([]string, len(rhythms))
	for i, r := range rhythms {
		items[i] = r.Label()
	}
	choice, err := zenity.List(
		"Select the rhythm to simulate:",
		items,
		zenity.Title("ECG rhythm"),
		zenity.DefaultItems(current.Label()),
	)
	if err != nil {
		return "", err
	}
	return waveform.ParseRhythm(choice)
}

func (g *Game) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.ToolbarHeight, color.RGBA{R: 30, G: 34, B: 44, A: 255}, false)
	g.drawButton(screen)

	status := fmt.Sprintf("next repaint in %s | 1-5 select, arrows cycle, Esc quit",
		formatSeconds(g.view.UntilRepaint()))
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, config.ButtonX+config.ButtonWidth+16, config.ButtonY+6)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, config.ToolbarHeight)
	screen.DrawImage(g.canvas.Image(), op)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed || g.picking {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	label := "Rhythm: " + g.view.Rhythm().Label()
	ebitenutil.DebugPrintAt(screen, label, config.ButtonX+8, config.ButtonY+6)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
