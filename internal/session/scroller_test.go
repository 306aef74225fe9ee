package session

import (
	"testing"
	"time"
)

func newScrollFixture(t *testing.T, opts ...ScrollerOption) (*Store, *fakeClock, *fakeViewport, *Scroller) {
	t.Helper()
	store := NewStore()
	store.Load(fiveLines())
	clock := newFakeClock()
	vp := &fakeViewport{max: 10000}
	sc := NewScroller(store, clock, vp, opts...)
	t.Cleanup(sc.Close)
	return store, clock, vp, sc
}

func TestSpeedTable(t *testing.T) {
	want := []float64{12, 18, 27, 40, 60, 90, 135}
	for i, w := range want {
		if got := Speed(i + 1); got != w {
			t.Errorf("Speed(%d) = %v, want %v", i+1, got, w)
		}
	}
	if Speed(0) != 12 || Speed(99) != 135 {
		t.Error("Speed should clamp levels outside 1..7")
	}
}

func TestScrollerWholeSecondFrames(t *testing.T) {
	store, clock, vp, _ := newScrollFixture(t, WithMaxFrameDelta(time.Second))
	store.SetScrollActive(true)

	clock.Frame(0)
	if vp.scrolled != 0 {
		t.Fatalf("priming frame scrolled %d px", vp.scrolled)
	}
	clock.Frame(1000 * time.Millisecond)
	clock.Frame(2000 * time.Millisecond)

	if vp.scrolled != 54 {
		t.Errorf("scrolled = %d px, want 54", vp.scrolled)
	}
}

func TestScrollerClampsLongFrames(t *testing.T) {
	store, clock, vp, _ := newScrollFixture(t)
	store.SetScrollActive(true)

	clock.Frame(0)
	clock.Frame(1000 * time.Millisecond) // integrates 0.1s: 2.7px -> 2
	clock.Frame(2000 * time.Millisecond) // 0.7 + 2.7 = 3.4 -> 3

	if vp.scrolled != 5 {
		t.Errorf("scrolled = %d px, want 5", vp.scrolled)
	}
}

func TestScrollerCarriesFraction(t *testing.T) {
	store, clock, vp, _ := newScrollFixture(t)
	store.SetScrollLevel(1) // 12 px/s
	store.SetScrollActive(true)

	clock.Frame(0)
	for i := 1; i <= 60; i++ {
		clock.Frame(time.Duration(i) * 50 * time.Millisecond)
	}

	// 3 seconds at 12 px/s.
	if vp.scrolled < 35 || vp.scrolled > 36 {
		t.Errorf("scrolled = %d px, want 35 or 36", vp.scrolled)
	}
	if vp.calls >= 60 {
		t.Errorf("expected fewer scroll calls than frames, got %d", vp.calls)
	}
}

func TestScrollerLevelChangeKeepsAccumulator(t *testing.T) {
	store, clock, vp, _ := newScrollFixture(t)
	store.SetScrollActive(true)

	clock.Frame(0)
	clock.Frame(50 * time.Millisecond) // 1.35 -> 1, carry 0.35
	store.SetScrollLevel(7)
	clock.Frame(100 * time.Millisecond) // 0.35 + 6.75 = 7.1 -> 7

	if vp.scrolled != 8 {
		t.Errorf("scrolled = %d px, want 8", vp.scrolled)
	}
}

func TestScrollerStopsAtEnd(t *testing.T) {
	store, clock, vp, sc := newScrollFixture(t)
	vp.max = 100
	vp.offset = 99.5
	store.SetScrollActive(true)

	clock.Frame(0)
	clock.Frame(16 * time.Millisecond)

	if store.ScrollActive() {
		t.Error("scroll should stop at the end of the document")
	}
	if sc.Running() {
		t.Error("scroller should not be running")
	}
	if vp.scrolled != 0 {
		t.Errorf("scrolled = %d px at the end, want 0", vp.scrolled)
	}
	if clock.pendingFrames() != 0 {
		t.Errorf("pending frames = %d, want 0", clock.pendingFrames())
	}
}

func TestScrollerBehaviorToggles(t *testing.T) {
	store, clock, vp, _ := newScrollFixture(t)

	store.SetScrollActive(true)
	if vp.lastBehavior() != BehaviorInstant {
		t.Errorf("behavior while active = %q, want %q", vp.lastBehavior(), BehaviorInstant)
	}
	if clock.pendingFrames() != 1 {
		t.Errorf("pending frames = %d, want 1", clock.pendingFrames())
	}

	store.SetScrollActive(false)
	if vp.lastBehavior() != BehaviorSmooth {
		t.Errorf("behavior after stop = %q, want %q", vp.lastBehavior(), BehaviorSmooth)
	}
	if clock.pendingFrames() != 0 {
		t.Errorf("pending frames after stop = %d, want 0", clock.pendingFrames())
	}
}

func TestScrollerStaleFrameIsIgnored(t *testing.T) {
	store, _, vp, sc := newScrollFixture(t)
	store.SetScrollActive(true)
	store.SetScrollActive(false)

	// A frame that was already queued when scrolling stopped.
	sc.tick(0)
	sc.tick(time.Second)
	if vp.scrolled != 0 {
		t.Errorf("stale frame scrolled %d px", vp.scrolled)
	}
}

func TestScrollerRestartPrimesAgain(t *testing.T) {
	store, clock, vp, _ := newScrollFixture(t)
	store.SetScrollActive(true)
	clock.Frame(0)
	clock.Frame(100 * time.Millisecond)
	before := vp.scrolled

	store.SetScrollActive(false)
	store.SetScrollActive(true)
	clock.Frame(10 * time.Second)
	if vp.scrolled != before {
		t.Errorf("first frame after restart scrolled %d px", vp.scrolled-before)
	}
}
