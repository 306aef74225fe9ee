package session

import (
	"math"
	"time"
)

// speedLevels holds pixels per second for levels 1 through 7. The steps grow
// by roughly half each time rather than evenly.
var speedLevels = [MaxScrollLevel]float64{12, 18, 27, 40, 60, 90, 135}

// Speed returns the scroll rate in pixels per second for a level; levels
// outside the table are clamped.
func Speed(level int) float64 {
	return speedLevels[clamp(level, MinScrollLevel, MaxScrollLevel)-1]
}

// DefaultMaxFrameDelta caps the time one frame may integrate, so a frame
// arriving after a long stall (a backgrounded tab) does not jump the page.
const DefaultMaxFrameDelta = 100 * time.Millisecond

// ScrollerOption configures a Scroller.
type ScrollerOption func(*Scroller)

// WithMaxFrameDelta overrides DefaultMaxFrameDelta.
func WithMaxFrameDelta(d time.Duration) ScrollerOption {
	return func(s *Scroller) { s.maxDelta = d }
}

// Scroller is the auto-scroll integrator. It follows the store's scroll
// flag: when the flag turns on it starts a frame loop that moves the
// viewport at the current level's speed, and when it turns off the pending
// frame is cancelled.
type Scroller struct {
	store    *Store
	clock    Clock
	viewport Viewport
	maxDelta time.Duration

	running bool
	pending bool
	token   Token
	primed  bool
	last    time.Duration
	acc     float64

	unsubscribe func()
}

// NewScroller attaches a scroller to store.
func NewScroller(store *Store, clock Clock, viewport Viewport, opts ...ScrollerOption) *Scroller {
	s := &Scroller{
		store:    store,
		clock:    clock,
		viewport: viewport,
		maxDelta: DefaultMaxFrameDelta,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.unsubscribe = store.Subscribe(s.onChange)
	if store.ScrollActive() {
		s.start()
	}
	return s
}

func (s *Scroller) onChange(snap Snapshot) {
	switch {
	case snap.ScrollActive && !s.running:
		s.start()
	case !snap.ScrollActive && s.running:
		s.stop()
	}
}

func (s *Scroller) start() {
	s.cancelPending()
	s.primed = false
	s.acc = 0
	s.running = true
	s.viewport.SetScrollBehavior(BehaviorInstant)
	s.schedule()
}

func (s *Scroller) stop() {
	s.viewport.SetScrollBehavior(BehaviorSmooth)
	s.cancelPending()
	s.primed = false
	s.running = false
}

func (s *Scroller) schedule() {
	s.token = s.clock.ScheduleFrame(s.tick)
	s.pending = true
}

func (s *Scroller) cancelPending() {
	if s.pending {
		s.clock.Cancel(s.token)
		s.pending = false
	}
}

func (s *Scroller) tick(ts time.Duration) {
	s.pending = false
	if !s.running || !s.store.ScrollActive() {
		return
	}

	if !s.primed {
		s.primed = true
		s.last = ts
		s.schedule()
		return
	}

	dt := ts - s.last
	s.last = ts
	if dt > s.maxDelta {
		dt = s.maxDelta
	}
	if dt < 0 {
		dt = 0
	}

	if s.viewport.ScrollOffset() >= s.viewport.MaxScrollOffset()-1 {
		// Reached the end of the document.
		s.store.SetScrollActive(false)
		return
	}

	s.acc += Speed(s.store.ScrollLevel()) * dt.Seconds()
	if px := math.Floor(s.acc); px > 0 {
		s.acc -= px
		s.viewport.ScrollBy(int(px))
	}

	s.schedule()
}

// Running reports whether the frame loop is active.
func (s *Scroller) Running() bool { return s.running }

// Close detaches the scroller from its store and cancels any pending frame.
func (s *Scroller) Close() {
	s.unsubscribe()
	if s.running {
		s.stop()
	}
}
