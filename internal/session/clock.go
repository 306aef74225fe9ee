package session

import (
	"sync"
	"time"
)

// Token identifies a scheduled callback.
type Token uint64

// Clock schedules frame and timer callbacks. Callbacks must run on the
// goroutine that owns the Store.
type Clock interface {
	Now() time.Time
	// ScheduleFrame runs fn on the next display frame with a monotonic
	// timestamp measured from the clock's origin.
	ScheduleFrame(fn func(ts time.Duration)) Token
	ScheduleAfter(d time.Duration, fn func()) Token
	Cancel(t Token)
}

// LoopClock is a real-time Clock. Fired callbacks are handed to post, which
// is expected to run them on the owning goroutine. A callback cancelled
// after it was posted is dropped when it runs.
type LoopClock struct {
	post   func(func())
	frame  time.Duration
	origin time.Time

	mu     sync.Mutex
	next   Token
	timers map[Token]*time.Timer
}

// DefaultFrameInterval approximates a 60Hz display.
const DefaultFrameInterval = 16 * time.Millisecond

// NewLoopClock creates a clock that fires frames every frame interval.
func NewLoopClock(post func(func()), frame time.Duration) *LoopClock {
	if frame <= 0 {
		frame = DefaultFrameInterval
	}
	return &LoopClock{
		post:   post,
		frame:  frame,
		origin: time.Now(),
		timers: make(map[Token]*time.Timer),
	}
}

func (c *LoopClock) Now() time.Time { return time.Now() }

func (c *LoopClock) ScheduleFrame(fn func(ts time.Duration)) Token {
	return c.schedule(c.frame, func() { fn(time.Since(c.origin)) })
}

func (c *LoopClock) ScheduleAfter(d time.Duration, fn func()) Token {
	return c.schedule(d, fn)
}

func (c *LoopClock) schedule(d time.Duration, fn func()) Token {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	tok := c.next
	c.timers[tok] = time.AfterFunc(d, func() {
		c.post(func() {
			if c.take(tok) {
				fn()
			}
		})
	})
	return tok
}

// take removes tok and reports whether it was still live.
func (c *LoopClock) take(tok Token) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, live := c.timers[tok]
	delete(c.timers, tok)
	return live
}

func (c *LoopClock) Cancel(tok Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[tok]; ok {
		t.Stop()
		delete(c.timers, tok)
	}
}

// Pending returns the number of scheduled callbacks that have not run.
func (c *LoopClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
