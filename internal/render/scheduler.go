package render

import "time"

// Scheduler is a single threaded timer host. Time only moves when Advance is
// called, normally once per frame of the host event loop.
type Scheduler struct {
	now   time.Duration
	tasks []*Task
}

// Task is a repeating callback armed on a Scheduler.
type Task struct {
	sched  *Scheduler
	period time.Duration
	next   time.Duration
	fn     func()
	done   bool
}

// NewScheduler returns a scheduler at simulated time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration { return s.now }

// Every arms fn to run each time another period of simulated time has elapsed.
func (s *Scheduler) Every(period time.Duration, fn func()) *Task {
	if period <= 0 {
		panic("render: non-positive task period")
	}
	t := &Task{sched: s, period: period, next: s.now + period, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves simulated time forward by dt and runs every tick that falls due,
// in time order. A task cancelled by a callback does not fire again.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	end := s.now + dt
	for {
		t := s.due(end)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.period
		t.fn()
	}
	s.now = end
	s.sweep()
}

// Active reports how many tasks are still armed.
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

func (s *Scheduler) due(end time.Duration) *Task {
	var first *Task
	for _, t := range s.tasks {
		if t.done || t.next > end {
			continue
		}
		if first == nil || t.next < first.next {
			first = t
		}
	}
	return first
}

func (s *Scheduler) sweep() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Cancel disarms the task. It is safe to call more than once.
func (t *Task) Cancel() {
	t.done = true
}

// Until returns the simulated time left before the task next fires.
func (t *Task) Until() time.Duration {
	return t.next - t.sched.now
}
