package config

import (
	"path/filepath"
	"time"
)

// Config is the top-level prompter configuration, corresponding to .prompter.yml.
type Config struct {
	Port            int       `yaml:"port" koanf:"port"`
	DataDir         string    `yaml:"data_dir" koanf:"data_dir"`
	BaseURL         string    `yaml:"base_url" koanf:"base_url"`
	Scripts         []string  `yaml:"scripts" koanf:"scripts"`
	ScrollLevel     int       `yaml:"scroll_level" koanf:"scroll_level"`
	TimerIntervalMS int       `yaml:"timer_interval_ms" koanf:"timer_interval_ms"`
	FrameIntervalMS int       `yaml:"frame_interval_ms" koanf:"frame_interval_ms"`
	Theme           string    `yaml:"theme" koanf:"theme"`
	Accent          string    `yaml:"accent" koanf:"accent"`
	MaxScriptChars  int       `yaml:"max_script_chars" koanf:"max_script_chars"`
	RetentionDays   int       `yaml:"retention_days" koanf:"retention_days"`
	Log             LogConfig `yaml:"log" koanf:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
	File   string `yaml:"file" koanf:"file"`
}

// FrameInterval returns the auto-scroll frame period.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// TimerInterval returns the timer tick period.
func (c *Config) TimerInterval() time.Duration {
	return time.Duration(c.TimerIntervalMS) * time.Millisecond
}

// Retention returns how long shared scripts are kept. Zero keeps them
// forever.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// DBPath returns the SQLite database location inside DataDir.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "prompter.db")
}
