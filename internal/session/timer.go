package session

import (
	"fmt"
	"time"
)

// DefaultTimerInterval is how often a running timer refreshes elapsed time.
// The display only shows whole seconds.
const DefaultTimerInterval = 250 * time.Millisecond

// Timer tracks presentation time in the store. Elapsed time is always
// computed as now minus an effective start instant, never accumulated from
// tick intervals.
type Timer struct {
	store    *Store
	clock    Clock
	interval time.Duration

	start   time.Time
	running bool
	pending bool
	token   Token

	unsubscribe func()
}

// NewTimer attaches a timer to store.
func NewTimer(store *Store, clock Clock, interval time.Duration) *Timer {
	if interval <= 0 {
		interval = DefaultTimerInterval
	}
	t := &Timer{store: store, clock: clock, interval: interval}
	t.unsubscribe = store.Subscribe(t.onChange)
	return t
}

func (t *Timer) onChange(snap Snapshot) {
	switch {
	case snap.TimerRunning && !t.running:
		t.begin()
	case !snap.TimerRunning && t.running:
		t.halt()
	}
}

func (t *Timer) begin() {
	t.running = true
	// A resumed timer continues from the elapsed value it was stopped at.
	t.start = t.clock.Now().Add(-t.store.TimerElapsed())
	t.schedule()
}

func (t *Timer) halt() {
	t.running = false
	if t.pending {
		t.clock.Cancel(t.token)
		t.pending = false
	}
}

func (t *Timer) schedule() {
	t.token = t.clock.ScheduleAfter(t.interval, t.tick)
	t.pending = true
}

func (t *Timer) tick() {
	t.pending = false
	if !t.running || !t.store.TimerRunning() {
		return
	}
	t.store.SetTimer(t.clock.Now().Sub(t.start), true)
	t.schedule()
}

// Start begins or resumes counting.
func (t *Timer) Start() {
	if t.store.TimerRunning() {
		return
	}
	t.store.SetTimer(t.store.TimerElapsed(), true)
}

// Stop freezes elapsed time at the current instant.
func (t *Timer) Stop() {
	if !t.store.TimerRunning() {
		return
	}
	elapsed := t.store.TimerElapsed()
	if t.running {
		elapsed = t.clock.Now().Sub(t.start)
	}
	t.store.SetTimer(elapsed, false)
}

// Toggle starts a stopped timer and stops a running one.
func (t *Timer) Toggle() {
	if t.store.TimerRunning() {
		t.Stop()
	} else {
		t.Start()
	}
}

// Reset stops the timer and zeroes elapsed time.
func (t *Timer) Reset() {
	t.store.SetTimer(0, false)
}

// Close detaches the timer from its store.
func (t *Timer) Close() {
	t.unsubscribe()
	t.halt()
}

// FormatElapsed renders d as MM:SS, truncating to whole seconds.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d / time.Minute)
	secs := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%02d:%02d", mins, secs)
}
