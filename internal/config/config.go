package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/loglens/loglens/internal/logrec"
)

// DefaultPath is the config file loaded when no --config flag is given.
const DefaultPath = "loglens.toml"

// Config holds the resolved viewer settings. It is a plain value
// threaded into the components that need it; there is no package-level
// configuration state.
type Config struct {
	// HighlightFullLine colors the whole line in the severity color
	// instead of only the [SEVERITY] tag.
	HighlightFullLine bool
	// ResetClearsSearch makes the reset command also drop the active
	// search terms.
	ResetClearsSearch bool
	// Colors maps each severity to a terminal color name.
	Colors map[logrec.Severity]string
}

type fileConfig struct {
	HighlightFullLine bool              `toml:"highlight_full_line"`
	ResetClearsSearch *bool             `toml:"reset_clears_search"`
	Colors            map[string]string `toml:"colors"`
}

var defaultColors = map[logrec.Severity]string{
	logrec.Debug:    "green",
	logrec.Info:     "blue",
	logrec.Warning:  "yellow",
	logrec.Error:    "magenta",
	logrec.Critical: "red",
}

// colorNames is the supported ANSI palette. The UI maps these to
// lipgloss colors.
var colorNames = map[string]bool{
	"black": true, "red": true, "green": true, "yellow": true,
	"blue": true, "magenta": true, "cyan": true, "white": true,
	"bright-black": true, "bright-red": true, "bright-green": true,
	"bright-yellow": true, "bright-blue": true, "bright-magenta": true,
	"bright-cyan": true, "bright-white": true,
}

// Load reads the config file at path, writing a default one first when
// it does not exist. A file that is present but malformed, or missing a
// severity color, is an error: startup must not continue with a partial
// configuration.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := writeDefault(path); err != nil {
			return Config{}, err
		}
		data, err = os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		HighlightFullLine: raw.HighlightFullLine,
		ResetClearsSearch: true,
		Colors:            make(map[logrec.Severity]string, logrec.SeverityCount),
	}
	if raw.ResetClearsSearch != nil {
		cfg.ResetClearsSearch = *raw.ResetClearsSearch
	}

	if raw.Colors == nil {
		return Config{}, fmt.Errorf("config %s: missing [colors] section", path)
	}
	for _, sev := range logrec.Severities() {
		key := strings.ToLower(sev.String())
		name, ok := raw.Colors[key]
		if !ok || strings.TrimSpace(name) == "" {
			return Config{}, fmt.Errorf("config %s: missing color for %s", path, sev)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if !colorNames[name] {
			return Config{}, fmt.Errorf("config %s: unknown color %q for %s", path, name, sev)
		}
		cfg.Colors[sev] = name
	}

	return cfg, nil
}

// Default returns the built-in settings, the same values a freshly
// created config file carries.
func Default() Config {
	colors := make(map[logrec.Severity]string, len(defaultColors))
	for sev, name := range defaultColors {
		colors[sev] = name
	}
	return Config{
		HighlightFullLine: false,
		ResetClearsSearch: true,
		Colors:            colors,
	}
}

func writeDefault(path string) error {
	raw := fileConfig{
		HighlightFullLine: false,
		Colors:            make(map[string]string, logrec.SeverityCount),
	}
	clears := true
	raw.ResetClearsSearch = &clears
	for sev, name := range defaultColors {
		raw.Colors[strings.ToLower(sev.String())] = name
	}

	data, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("create default config: %w", err)
	}
	return nil
}
