package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ecg-simulator/internal/config"
	"github.com/iburimskiy/ecg-simulator/internal/game"
	"github.com/iburimskiy/ecg-simulator/internal/logger"
	"github.com/iburimskiy/ecg-simulator/internal/waveform"
)

func main() {
	settings, envErr := config.Load()
	log := logger.New(settings.LogLevel, settings.LogFormat)
	slog.SetDefault(log)
	if envErr != nil {
		log.Debug("no .env loaded", "error", envErr)
	}

	rhythm, err := waveform.ParseRhythm(settings.Rhythm)
	if err != nil {
		log.Warn("falling back to sinus rhythm", "error", err)
		rhythm = waveform.Sinus
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("ECG Simulator - 12 leads + DII long strip")

	g := game.New(rhythm, log)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop stopped", "error", err)
		g.Close()
		os.Exit(1)
	}
}
