package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/prompter/internal/session"
	"github.com/ziadkadry99/prompter/internal/settings"
)

// speedLabels describes each scroll level for the wizard menu.
var speedLabels = []string{
	"1 - 12 px/s, very slow",
	"2 - 18 px/s",
	"3 - 27 px/s, comfortable reading",
	"4 - 40 px/s",
	"5 - 60 px/s",
	"6 - 90 px/s",
	"7 - 135 px/s, skimming",
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to prompter! Let's set up your teleprompter.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Theme.
	themes := make([]string, len(settings.Themes))
	for i, t := range settings.Themes {
		themes[i] = string(t)
	}
	themePrompt := promptui.Select{
		Label: "Select colour theme",
		Items: themes,
	}
	_, theme, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.Theme = theme

	// 2. Accent.
	accents := make([]string, len(settings.Accents))
	for i, a := range settings.Accents {
		accents[i] = string(a)
	}
	accentPrompt := promptui.Select{
		Label: "Select accent colour",
		Items: accents,
	}
	_, accent, err := accentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("accent selection: %w", err)
	}
	cfg.Accent = accent

	// 3. Starting scroll speed.
	speedPrompt := promptui.Select{
		Label:     "Starting scroll speed",
		Items:     speedLabels,
		CursorPos: session.DefaultScrollLevel - 1,
	}
	speedIdx, _, err := speedPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("speed selection: %w", err)
	}
	cfg.ScrollLevel = speedIdx + 1

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:    "Port for prompter serve",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)
	cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)

	// 5. Public URL for share links.
	urlPrompt := promptui.Prompt{
		Label:   "Public URL used in share links",
		Default: cfg.BaseURL,
	}
	cfg.BaseURL, err = urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	// 6. Script patterns.
	scriptsPrompt := promptui.Prompt{
		Label:   "Script file patterns (comma-separated globs)",
		Default: joinPatterns(DefaultScripts),
	}
	scriptsStr, err := scriptsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("script patterns: %w", err)
	}
	if patterns := splitAndTrim(scriptsStr); len(patterns) > 0 {
		cfg.Scripts = patterns
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

func joinPatterns(patterns []string) string {
	return strings.Join(patterns, ", ")
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			token := trimSpace(s[start:i])
			if token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
