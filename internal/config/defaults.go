package config

import (
	"github.com/ziadkadry99/prompter/internal/session"
	"github.com/ziadkadry99/prompter/internal/settings"
	"github.com/ziadkadry99/prompter/internal/share"
)

// DefaultScripts are the glob patterns `prompter parse` reads when given
// no arguments.
var DefaultScripts = []string{
	"*.txt",
	"scripts/**/*.txt",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            8080,
		DataDir:         ".prompter",
		BaseURL:         "http://localhost:8080",
		Scripts:         DefaultScripts,
		ScrollLevel:     session.DefaultScrollLevel,
		TimerIntervalMS: int(session.DefaultTimerInterval.Milliseconds()),
		FrameIntervalMS: int(session.DefaultFrameInterval.Milliseconds()),
		Theme:           string(settings.DefaultTheme),
		Accent:          string(settings.DefaultAccent),
		MaxScriptChars:  share.DefaultMaxChars,
		RetentionDays:   30,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
