// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization.
// Defaults: info level, text format on stderr, no file.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // "text" or "json"
	File   string // optional path for a rotated JSON log
}

// ParseLevel converts a level name to slog.Level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to console and, if opts.File is set, to a
// rotating file as well. The returned closer releases the file.
func New(opts Options, console io.Writer) (*slog.Logger, io.Closer) {
	hopts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var handlers []slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		handlers = append(handlers, slog.NewJSONHandler(console, hopts))
	} else {
		handlers = append(handlers, slog.NewTextHandler(console, hopts))
	}

	var closer io.Closer = nopCloser{}
	if path := strings.TrimSpace(opts.File); path != "" {
		w := &lj.Logger{Filename: path, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(w, hopts))
		closer = w
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer
}

// Init installs a logger built from opts as slog.Default, writing to
// stderr.
func Init(opts Options) io.Closer {
	logger, closer := New(opts, os.Stderr)
	slog.SetDefault(logger)
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
