// Package schedule provides cancellable scheduled tasks for a single-threaded
// event loop.
//
// A Task does not own a timer. The event loop arms a one-shot timer for the
// token returned by Arm, and hands the token back to Fire when the timer
// expires. Every Start and Stop moves the task to a new generation, so a timer
// armed for an earlier run can never drive a later one.
package schedule

import "time"

// Token identifies one run of a task.
type Token uint64

// Task is a cancellable repeating task.
type Task struct {
	name     string
	interval time.Duration
	gen      Token
	running  bool
	pending  bool // started but not yet armed by the event loop
}

// NewTask creates a stopped task firing every interval once started.
func NewTask(name string, interval time.Duration) *Task {
	return &Task{name: name, interval: interval}
}

// Name returns the task name used to route timer messages.
func (t *Task) Name() string {
	return t.name
}

// Interval returns the time between two fires.
func (t *Task) Interval() time.Duration {
	return t.interval
}

// Start begins a new run. Any run in progress is stopped first.
func (t *Task) Start() Token {
	t.gen++
	t.running = true
	t.pending = true
	return t.gen
}

// Stop cancels the current run. Returns false if nothing was running.
func (t *Task) Stop() bool {
	if !t.running {
		return false
	}
	t.gen++
	t.running = false
	t.pending = false
	return true
}

// Running reports whether a run is in progress.
func (t *Task) Running() bool {
	return t.running
}

// Token returns the token of the current run.
func (t *Task) Token() Token {
	return t.gen
}

// Arm returns the token of a run started since the last call to Arm.
// The event loop uses it to schedule the first timer of each run.
func (t *Task) Arm() (Token, bool) {
	if !t.pending {
		return 0, false
	}
	t.pending = false
	return t.gen, true
}

// Fire reports whether a timer armed with token belongs to the current run.
// Stale tokens are rejected.
func (t *Task) Fire(token Token) bool {
	return t.running && token == t.gen
}
