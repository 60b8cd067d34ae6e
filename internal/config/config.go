package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	CanvasWidth  = 1000
	CanvasHeight = 700

	// Toolbar above the ECG canvas
	ToolbarHeight = 40
	WindowWidth   = CanvasWidth
	WindowHeight  = CanvasHeight + ToolbarHeight

	// Rhythm selector button
	ButtonWidth  = 200
	ButtonHeight = 28
	ButtonX      = 10
	ButtonY      = 6

	DefaultRhythm = "sinus"
)

// Settings are the values read from the environment at startup.
type Settings struct {
	LogLevel  string
	LogFormat string
	Rhythm    string
}

// Load reads .env (or the given files) into the environment and returns the
// settings. A missing .env is not an error worth reporting; callers get defaults.
func Load(paths ...string) (Settings, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	err := godotenv.Load(paths...)
	return Settings{
		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: GetEnv("LOG_FORMAT", "text"),
		Rhythm:    GetEnv("ECG_RHYTHM", DefaultRhythm),
	}, err
}

// GetEnv returns the value of the environment variable named by key, or fallback
// if the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}
