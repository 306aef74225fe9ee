package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlainReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlainReporter(&buf)
	r.Start(3)
	r.Update(1, "Good evening.")
	r.Update(3, "Thank you.")
	r.Finish("Finished in 00:42")

	want := "Rehearsing 3 lines\n[1/3] Good evening.\n[3/3] Thank you.\nFinished in 00:42\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter(&bytes.Buffer{}).(*PlainReporter); !ok {
		t.Error("expected PlainReporter when CI is set")
	}
}

func TestTerminalReporterWritesToWriter(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	var buf bytes.Buffer
	r := NewReporter(&buf)
	if _, ok := r.(*TerminalReporter); !ok {
		t.Fatalf("expected TerminalReporter, got %T", r)
	}
	r.Start(2)
	r.Update(2, "last line")
	r.Finish("done")
	if !strings.Contains(buf.String(), "done") {
		t.Errorf("summary missing from %q", buf.String())
	}
}
