// Package progress shows how far a rehearsal has come through a script.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives the presenter's position as lines are reached.
type Reporter interface {
	Start(totalLines int)
	// Update reports that line (1-based) is now active.
	Update(line int, message string)
	Finish(summary string)
}

// NewReporter returns a TerminalReporter for interactive use, or a
// PlainReporter when the CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &PlainReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// TerminalReporter draws a progress bar over the script's lines.
type TerminalReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(totalLines int) {
	r.bar = progressbar.NewOptions(totalLines,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription("Rehearsing"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
	)
}

func (r *TerminalReporter) Update(line int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(line)
	}
}

func (r *TerminalReporter) Finish(summary string) {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
	fmt.Fprintf(r.w, "\n%s\n", summary)
}

// PlainReporter prints one line per update, suitable for logs.
type PlainReporter struct {
	w     io.Writer
	total int
}

// NewPlainReporter returns a PlainReporter writing to w.
func NewPlainReporter(w io.Writer) *PlainReporter {
	return &PlainReporter{w: w}
}

func (r *PlainReporter) Start(totalLines int) {
	r.total = totalLines
	fmt.Fprintf(r.w, "Rehearsing %d lines\n", totalLines)
}

func (r *PlainReporter) Update(line int, message string) {
	fmt.Fprintf(r.w, "[%d/%d] %s\n", line, r.total, message)
}

func (r *PlainReporter) Finish(summary string) {
	fmt.Fprintln(r.w, summary)
}
