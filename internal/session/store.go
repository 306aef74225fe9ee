// Package session holds the presentation state for one loaded script and
// the loops that drive it: the auto-scroll integrator and the timer.
//
// A Store is not safe for concurrent use. All mutation happens on a single
// goroutine; Controller provides that goroutine for real-time use.
package session

import (
	"time"

	"github.com/ziadkadry99/prompter/internal/script"
)

const (
	MinScrollLevel     = 1
	MaxScrollLevel     = 7
	DefaultScrollLevel = 3
)

// Snapshot is a point-in-time copy of the store, including derived values.
type Snapshot struct {
	Loaded            bool    `json:"loaded"`
	ActiveLine        int     `json:"active_line"`
	ScrollActive      bool    `json:"scroll_active"`
	ScrollLevel       int     `json:"scroll_level"`
	TimerElapsedMS    int64   `json:"timer_elapsed_ms"`
	TimerRunning      bool    `json:"timer_running"`
	TotalLines        int     `json:"total_lines"`
	Progress          float64 `json:"progress"`
	CurrentSlide      int     `json:"current_slide"`
	CurrentSlideTitle string  `json:"current_slide_title"`
}

type observer struct {
	id int
	fn func(Snapshot)
}

// Store is the observable session state.
type Store struct {
	script       script.Script
	loaded       bool
	totalLines   int
	activeLine   int
	scrollActive bool
	scrollLevel  int
	timerElapsed time.Duration
	timerRunning bool
	defaultLevel int

	observers []observer
	nextID    int
}

// NewStore returns an empty store with no script loaded.
func NewStore() *Store {
	s := &Store{defaultLevel: DefaultScrollLevel}
	s.reset()
	return s
}

// SetDefaultScrollLevel changes the level applied on every reset.
func (s *Store) SetDefaultScrollLevel(level int) {
	s.defaultLevel = clamp(level, MinScrollLevel, MaxScrollLevel)
}

// Subscribe registers fn to be called with a fresh snapshot after every
// change. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	snap := s.Snapshot()
	for _, o := range append([]observer(nil), s.observers...) {
		o.fn(snap)
	}
}

// Load replaces the current script and resets all session fields.
func (s *Store) Load(sc script.Script) {
	s.script = sc
	s.loaded = true
	s.totalLines = sc.TotalLines()
	s.reset()
	s.notify()
}

// Discard drops the script and returns every field to its default, as when
// the presenter goes back to the input stage.
func (s *Store) Discard() {
	s.script = nil
	s.loaded = false
	s.totalLines = 0
	s.reset()
	s.notify()
}

// ResetForNewScript clears highlight, scroll and timer state.
func (s *Store) ResetForNewScript() {
	s.reset()
	s.notify()
}

func (s *Store) reset() {
	s.activeLine = -1
	s.scrollActive = false
	s.scrollLevel = s.defaultLevel
	s.timerRunning = false
	s.timerElapsed = 0
}

func (s *Store) Script() script.Script       { return s.script }
func (s *Store) Loaded() bool                { return s.loaded }
func (s *Store) ActiveLine() int             { return s.activeLine }
func (s *Store) ScrollActive() bool          { return s.scrollActive }
func (s *Store) ScrollLevel() int            { return s.scrollLevel }
func (s *Store) TimerElapsed() time.Duration { return s.timerElapsed }
func (s *Store) TimerRunning() bool          { return s.timerRunning }
func (s *Store) TotalLines() int             { return s.totalLines }

// Progress returns how far through the script the active line is.
func (s *Store) Progress() float64 { return Progress(s.activeLine, s.totalLines) }

// CurrentSlide returns the index of the slide holding the active line, or
// -1 when nothing is highlighted.
func (s *Store) CurrentSlide() int { return s.script.SlideOfLine(s.activeLine) }

// Progress computes the fraction for an active line index. A single-line
// script with that line active counts as complete.
func Progress(active, total int) float64 {
	if active < 0 || total == 0 {
		return 0
	}
	if total == 1 {
		return 1
	}
	p := float64(active) / float64(total-1)
	if p > 1 {
		return 1
	}
	return p
}

// Snapshot returns the current state with derived values filled in.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Loaded:         s.loaded,
		ActiveLine:     s.activeLine,
		ScrollActive:   s.scrollActive,
		ScrollLevel:    s.scrollLevel,
		TimerElapsedMS: s.timerElapsed.Milliseconds(),
		TimerRunning:   s.timerRunning,
		TotalLines:     s.totalLines,
		Progress:       s.Progress(),
		CurrentSlide:   s.CurrentSlide(),
	}
	if snap.CurrentSlide >= 0 {
		snap.CurrentSlideTitle = s.script[snap.CurrentSlide].Title
	}
	return snap
}

// SetActive highlights line index. Out-of-range indexes are ignored.
func (s *Store) SetActive(index int) {
	if index < 0 || index >= s.totalLines || index == s.activeLine {
		return
	}
	s.activeLine = index
	s.notify()
}

// Advance moves the highlight by delta lines, clamped to the script.
func (s *Store) Advance(delta int) {
	if s.totalLines == 0 {
		return
	}
	s.SetActive(clamp(s.activeLine+delta, 0, s.totalLines-1))
}

// GoToSlide stops auto-scroll and highlights the first line of slide i.
// It reports whether the highlight moved to a line.
func (s *Store) GoToSlide(i int) bool {
	s.SetScrollActive(false)
	line := s.script.FirstLineOfSlide(i)
	if line < 0 {
		return false
	}
	s.SetActive(line)
	return true
}

// SetScrollActive starts or stops auto-scroll.
func (s *Store) SetScrollActive(active bool) {
	if s.scrollActive == active {
		return
	}
	s.scrollActive = active
	s.notify()
}

// SetScrollLevel sets the speed tier, clamped to [MinScrollLevel, MaxScrollLevel].
func (s *Store) SetScrollLevel(level int) {
	level = clamp(level, MinScrollLevel, MaxScrollLevel)
	if level == s.scrollLevel {
		return
	}
	s.scrollLevel = level
	s.notify()
}

// ShiftScrollLevel moves the speed tier by delta and reports whether it
// changed. Shifts past either end leave the level alone.
func (s *Store) ShiftScrollLevel(delta int) bool {
	next := s.scrollLevel + delta
	if next < MinScrollLevel || next > MaxScrollLevel {
		return false
	}
	s.SetScrollLevel(next)
	return true
}

// SetTimer updates the elapsed time and running flag together.
func (s *Store) SetTimer(elapsed time.Duration, running bool) {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed == s.timerElapsed && running == s.timerRunning {
		return
	}
	s.timerElapsed = elapsed
	s.timerRunning = running
	s.notify()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
