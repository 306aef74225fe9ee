// Package rehearse runs a script through the auto-scroll integrator in the
// terminal, printing each row as it reaches the reading line.
package rehearse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ziadkadry99/prompter/internal/progress"
	"github.com/ziadkadry99/prompter/internal/script"
	"github.com/ziadkadry99/prompter/internal/session"
)

// ReadingFraction is how far down the window the presenter reads.
const ReadingFraction = 0.4

// DefaultViewportHeight is the virtual window height in pixels.
const DefaultViewportHeight = 480

// ErrNoLines is returned for scripts without a single spoken line.
var ErrNoLines = errors.New("script has no lines to rehearse")

// Options configures a rehearsal.
type Options struct {
	Out            io.Writer
	Reporter       progress.Reporter
	ScrollLevel    int
	FrameInterval  time.Duration
	TimerInterval  time.Duration
	ViewportHeight float64
}

// Result summarizes a finished rehearsal.
type Result struct {
	Elapsed   time.Duration
	LinesRead int
	Completed bool
}

// Run auto-scrolls sc until the page ends or ctx is cancelled.
func Run(ctx context.Context, sc script.Script, opts Options) (Result, error) {
	if sc.TotalLines() == 0 {
		return Result{}, ErrNoLines
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.ViewportHeight <= 0 {
		opts.ViewportHeight = DefaultViewportHeight
	}

	rows, height := Layout(sc)
	view := opts.ViewportHeight
	// Pad the page so the last row can reach the reading line.
	vp := session.NewVirtualViewport(height+view*(1-ReadingFraction), view)
	ctrl := session.NewController(vp, session.ControllerConfig{
		FrameInterval: opts.FrameInterval,
		TimerInterval: opts.TimerInterval,
		ScrollLevel:   opts.ScrollLevel,
	})

	p := &printer{rows: rows, out: opts.Out, reporter: opts.Reporter, ctrl: ctrl}
	vp.OnScroll(func(_ int, offset float64) { p.advance(offset + view*ReadingFraction) })

	finished := make(chan struct{})
	var once sync.Once
	started := false
	ctrl.Store().Subscribe(func(snap session.Snapshot) {
		if snap.ScrollActive {
			started = true
		} else if started {
			once.Do(func() { close(finished) })
		}
	})

	loopCtx, stop := context.WithCancel(context.Background())
	defer stop()
	go ctrl.Run(loopCtx)

	err := ctrl.Do(ctx, func() error {
		ctrl.Load(sc)
		if p.reporter != nil {
			p.reporter.Start(sc.TotalLines())
		}
		p.advance(view * ReadingFraction)
		ctrl.Timer().Start()
		return ctrl.Handle(session.CmdDown)
	})
	if err != nil {
		return Result{}, fmt.Errorf("starting rehearsal: %w", err)
	}

	completed := true
	select {
	case <-finished:
	case <-ctx.Done():
		completed = false
	}

	var res Result
	err = ctrl.Do(context.Background(), func() error {
		ctrl.Handle(session.CmdEscape)
		ctrl.Timer().Stop()
		res = Result{
			Elapsed:   ctrl.Store().TimerElapsed(),
			LinesRead: p.linesRead,
			Completed: completed,
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("stopping rehearsal: %w", err)
	}

	if p.reporter != nil {
		p.reporter.Finish(fmt.Sprintf("Finished in %s, %d/%d lines", session.FormatElapsed(res.Elapsed), res.LinesRead, sc.TotalLines()))
	}
	slog.Debug("rehearsal finished", "elapsed", res.Elapsed, "lines", res.LinesRead, "completed", completed)
	return res, nil
}

// printer emits rows once the reading line passes their top edge.
type printer struct {
	rows     []Row
	next     int
	out      io.Writer
	reporter progress.Reporter
	ctrl     *session.Controller

	linesRead int
}

func (p *printer) advance(readingY float64) {
	for p.next < len(p.rows) && p.rows[p.next].Y < readingY {
		row := p.rows[p.next]
		p.next++
		fmt.Fprintln(p.out, row.Text)
		if row.Line < 0 {
			continue
		}
		p.linesRead++
		p.ctrl.Activate(row.Line)
		if p.reporter != nil {
			p.reporter.Update(row.Line+1, row.Text)
		}
	}
}
