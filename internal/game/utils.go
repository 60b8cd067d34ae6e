package game

import (
	"fmt"
	"time"
)

func inRect(x, y, rx, ry, w, h int) bool {
	return x >= rx && x <= rx+w && y >= ry && y <= ry+h
}

// formatSeconds formats a duration as seconds with one decimal, e.g. "1.2s"
func formatSeconds(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
