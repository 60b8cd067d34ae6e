package render

import (
	"log/slog"
	"time"

	"github.com/iburimskiy/ecg-simulator/internal/waveform"
)

// RepaintPeriod is the cadence of full repaints while a view is mounted.
const RepaintPeriod = 1500 * time.Millisecond

// View ties a surface to the selected rhythm and keeps it repainted.
type View struct {
	sched   *Scheduler
	surface Surface
	painter *Painter
	log     *slog.Logger

	rhythm  waveform.Rhythm
	task    *Task
	mounted bool
	frames  int
}

// NewView returns an unmounted view drawing rhythm r onto s.
func NewView(sched *Scheduler, s Surface, p *Painter, r waveform.Rhythm, log *slog.Logger) *View {
	if log == nil {
		log = slog.Default()
	}
	return &View{sched: sched, surface: s, painter: p, rhythm: r, log: log}
}

// Mount starts the repaint cadence. The returned func stops it and must be
// called when the view goes away; calling it again is a no-op.
func (v *View) Mount() (release func()) {
	if v.mounted {
		return v.unmount
	}
	v.mounted = true
	v.arm()
	v.log.Info("view mounted", "rhythm", v.rhythm, "period", RepaintPeriod)
	return v.unmount
}

func (v *View) unmount() {
	if !v.mounted {
		return
	}
	v.disarm()
	v.mounted = false
	v.log.Info("view unmounted", "frames", v.frames)
}

// Select changes the rhythm. The current task is released before a replacement
// is armed, so the new rhythm appears on the next scheduled repaint.
func (v *View) Select(r waveform.Rhythm) {
	if r == v.rhythm {
		return
	}
	v.log.Info("rhythm selected", "from", v.rhythm, "to", r)
	v.rhythm = r
	if v.mounted {
		v.disarm()
		v.arm()
	}
}

// Rhythm returns the selected rhythm.
func (v *View) Rhythm() waveform.Rhythm { return v.rhythm }

// Frames returns how many repaints have completed.
func (v *View) Frames() int { return v.frames }

// UntilRepaint returns the simulated time before the next repaint, or zero when unmounted.
func (v *View) UntilRepaint() time.Duration {
	if v.task == nil {
		return 0
	}
	return v.task.Until()
}

func (v *View) arm() {
	v.task = v.sched.Every(RepaintPeriod, v.repaint)
}

func (v *View) disarm() {
	if v.task != nil {
		v.task.Cancel()
		v.task = nil
	}
}

func (v *View) repaint() {
	v.painter.Paint(v.surface, v.rhythm)
	v.frames++
	v.log.Debug("repaint", "rhythm", v.rhythm, "frame", v.frames)
}
