package session

import (
	"sort"
	"time"
)

type afterEntry struct {
	at time.Time
	fn func()
}

// fakeClock fires frames and timers only when the test says so.
type fakeClock struct {
	origin time.Time
	now    time.Time
	next   Token
	frames map[Token]func(time.Duration)
	afters map[Token]afterEntry
}

func newFakeClock() *fakeClock {
	origin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &fakeClock{
		origin: origin,
		now:    origin,
		frames: make(map[Token]func(time.Duration)),
		afters: make(map[Token]afterEntry),
	}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) ScheduleFrame(fn func(time.Duration)) Token {
	c.next++
	c.frames[c.next] = fn
	return c.next
}

func (c *fakeClock) ScheduleAfter(d time.Duration, fn func()) Token {
	c.next++
	c.afters[c.next] = afterEntry{at: c.now.Add(d), fn: fn}
	return c.next
}

func (c *fakeClock) Cancel(t Token) {
	delete(c.frames, t)
	delete(c.afters, t)
}

// Frame runs every frame callback pending right now with timestamp ts.
func (c *fakeClock) Frame(ts time.Duration) {
	c.now = c.origin.Add(ts)
	tokens := make([]Token, 0, len(c.frames))
	for t := range c.frames {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })
	for _, t := range tokens {
		fn, ok := c.frames[t]
		if !ok {
			continue
		}
		delete(c.frames, t)
		fn(ts)
	}
}

// Advance moves time forward by d, firing due timers in order.
func (c *fakeClock) Advance(d time.Duration) {
	target := c.now.Add(d)
	for {
		var (
			due   Token
			entry afterEntry
			found bool
		)
		for t, e := range c.afters {
			if e.at.After(target) {
				continue
			}
			if !found || e.at.Before(entry.at) || (e.at.Equal(entry.at) && t < due) {
				due, entry, found = t, e, true
			}
		}
		if !found {
			break
		}
		delete(c.afters, due)
		c.now = entry.at
		entry.fn()
	}
	c.now = target
}

func (c *fakeClock) pendingFrames() int { return len(c.frames) }
func (c *fakeClock) pendingAfters() int { return len(c.afters) }

// fakeViewport records scroll calls.
type fakeViewport struct {
	offset    float64
	max       float64
	scrolled  int
	calls     int
	behaviors []ScrollBehavior
}

func (v *fakeViewport) ScrollOffset() float64    { return v.offset }
func (v *fakeViewport) MaxScrollOffset() float64 { return v.max }

func (v *fakeViewport) ScrollBy(px int) {
	v.calls++
	v.scrolled += px
	v.offset += float64(px)
}

func (v *fakeViewport) SetScrollBehavior(b ScrollBehavior) {
	v.behaviors = append(v.behaviors, b)
}

func (v *fakeViewport) lastBehavior() ScrollBehavior {
	if len(v.behaviors) == 0 {
		return ""
	}
	return v.behaviors[len(v.behaviors)-1]
}
