package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ziadkadry99/prompter/internal/script"
)

// Command is a presenter input, named after the key or gesture that sends it.
type Command string

const (
	CmdEscape      Command = "escape"       // stop auto-scroll
	CmdDown        Command = "down"         // start auto-scroll, or speed up while running
	CmdUp          Command = "up"           // slow down while running
	CmdNext        Command = "next"         // highlight the next line (j)
	CmdPrev        Command = "prev"         // highlight the previous line (k)
	CmdStop        Command = "stop"         // click anywhere
	CmdWheel       Command = "wheel"        // manual scrolling takes over
	CmdBlur        Command = "blur"         // window lost focus
	CmdTimerToggle Command = "timer-toggle" // click on the timer
	CmdTimerReset  Command = "timer-reset"  // double click on the timer
)

// Argument-carrying commands are written as prefix followed by an index,
// e.g. "activate:3" or "slide:1".
const (
	activatePrefix = "activate:"
	slidePrefix    = "slide:"
)

// ErrUnknownCommand is returned by Handle for unrecognised commands.
var ErrUnknownCommand = errors.New("unknown command")

// ErrStopped is returned when posting to a controller whose loop has exited.
var ErrStopped = errors.New("controller stopped")

// ControllerConfig configures a Controller. Zero values pick defaults.
type ControllerConfig struct {
	// Clock overrides the real-time LoopClock, mainly for tests.
	Clock         Clock
	FrameInterval time.Duration
	TimerInterval time.Duration
	MaxFrameDelta time.Duration
	ScrollLevel   int
	// OnFocus is called when keyboard or slide navigation moves the
	// highlight while auto-scroll is off, so the surface can bring that line
	// into view.
	OnFocus func(line int)
}

// Controller owns one session: its store, scroller and timer. Everything
// that touches them runs on the goroutine executing Run, or on the caller's
// goroutine when Run is never started (as in tests with a fake clock).
type Controller struct {
	store    *Store
	scroller *Scroller
	timer    *Timer
	clock    Clock
	onFocus  func(int)

	events chan func()
	done   chan struct{}
}

// NewController builds a controller that scrolls viewport.
func NewController(viewport Viewport, cfg ControllerConfig) *Controller {
	c := &Controller{
		store:   NewStore(),
		onFocus: cfg.OnFocus,
		events:  make(chan func(), 64),
		done:    make(chan struct{}),
	}
	if cfg.ScrollLevel != 0 {
		c.store.SetDefaultScrollLevel(cfg.ScrollLevel)
		c.store.ResetForNewScript()
	}

	c.clock = cfg.Clock
	if c.clock == nil {
		c.clock = NewLoopClock(func(fn func()) { c.Post(fn) }, cfg.FrameInterval)
	}

	var opts []ScrollerOption
	if cfg.MaxFrameDelta > 0 {
		opts = append(opts, WithMaxFrameDelta(cfg.MaxFrameDelta))
	}
	c.scroller = NewScroller(c.store, c.clock, viewport, opts...)
	c.timer = NewTimer(c.store, c.clock, cfg.TimerInterval)
	return c
}

func (c *Controller) Store() *Store         { return c.store }
func (c *Controller) Timer() *Timer         { return c.timer }
func (c *Controller) Clock() Clock          { return c.clock }
func (c *Controller) Done() <-chan struct{} { return c.done }

// Run executes posted work until ctx is cancelled, then stops the scroller
// and timer.
func (c *Controller) Run(ctx context.Context) error {
	defer close(c.done)
	defer c.scroller.Close()
	defer c.timer.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-c.events:
			fn()
		}
	}
}

// Post queues fn for the loop goroutine. It reports false when the loop has
// already exited.
func (c *Controller) Post(fn func()) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.events <- fn:
		return true
	case <-c.done:
		return false
	}
}

// Do runs fn on the loop goroutine and waits for it to finish.
func (c *Controller) Do(ctx context.Context, fn func() error) error {
	result := make(chan error, 1)
	if !c.Post(func() { result <- fn() }) {
		return ErrStopped
	}
	select {
	case err := <-result:
		return err
	case <-c.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Load replaces the script. The timer and scroll state start over.
func (c *Controller) Load(s script.Script) {
	c.store.Load(s)
}

// Discard returns the session to the input stage.
func (c *Controller) Discard() {
	c.store.Discard()
}

// Handle applies one presenter command.
func (c *Controller) Handle(cmd Command) error {
	s := c.store
	switch cmd {
	case CmdEscape, CmdStop, CmdWheel, CmdBlur:
		s.SetScrollActive(false)
	case CmdDown:
		if s.ScrollActive() {
			s.ShiftScrollLevel(1)
		} else if s.Loaded() {
			s.SetScrollActive(true)
		}
	case CmdUp:
		if s.ScrollActive() {
			s.ShiftScrollLevel(-1)
		}
	case CmdNext:
		c.moveHighlight(1)
	case CmdPrev:
		c.moveHighlight(-1)
	case CmdTimerToggle:
		c.timer.Toggle()
	case CmdTimerReset:
		c.timer.Reset()
	default:
		return c.handleIndexed(cmd)
	}
	return nil
}

func (c *Controller) handleIndexed(cmd Command) error {
	if arg, ok := strings.CutPrefix(string(cmd), activatePrefix); ok {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
		}
		c.Activate(n)
		return nil
	}
	if arg, ok := strings.CutPrefix(string(cmd), slidePrefix); ok {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
		}
		c.GoToSlide(n)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
}

func (c *Controller) moveHighlight(delta int) {
	c.store.Advance(delta)
	c.focus(c.store.ActiveLine())
}

// Activate marks line as the presenter's place, as a click on a line does.
func (c *Controller) Activate(line int) {
	c.store.SetActive(line)
}

// GoToSlide stops auto-scroll and highlights the first line of slide i.
func (c *Controller) GoToSlide(i int) {
	if c.store.GoToSlide(i) {
		c.focus(c.store.ActiveLine())
	}
}

func (c *Controller) focus(line int) {
	if line < 0 || c.store.ScrollActive() || c.onFocus == nil {
		return
	}
	c.onFocus(line)
}
