package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/prompter/internal/logging"
	"github.com/ziadkadry99/prompter/internal/session"
	"github.com/ziadkadry99/prompter/internal/settings"
)

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "PROMPTER_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PROMPTER_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// PROMPTER_PORT -> port, PROMPTER_LOG_LEVEL -> log.level.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.ScrollLevel < session.MinScrollLevel || c.ScrollLevel > session.MaxScrollLevel {
		return fmt.Errorf("invalid scroll_level %d: must be between %d and %d", c.ScrollLevel, session.MinScrollLevel, session.MaxScrollLevel)
	}

	if c.TimerIntervalMS <= 0 {
		return fmt.Errorf("timer_interval_ms must be positive")
	}

	if c.FrameIntervalMS <= 0 {
		return fmt.Errorf("frame_interval_ms must be positive")
	}

	if _, ok := settings.ParseTheme(c.Theme); !ok {
		return fmt.Errorf("invalid theme %q: must be one of night, navy, day, auto", c.Theme)
	}

	if _, ok := settings.ParseAccent(c.Accent); !ok {
		return fmt.Errorf("invalid accent %q: must be one of gold, teal", c.Accent)
	}

	if c.MaxScriptChars <= 0 {
		return fmt.Errorf("max_script_chars must be positive")
	}

	if c.RetentionDays < 0 {
		return fmt.Errorf("retention_days must be non-negative")
	}

	if c.Log.Format != "" && !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}

	return nil
}

// LogOptions converts the log section into logging options.
func (c *Config) LogOptions() logging.Options {
	return logging.Options{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		File:   c.Log.File,
	}
}
