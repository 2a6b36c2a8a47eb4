// Package config loads the game's TOML configuration. A file picks a rules
// preset and overrides only the values it names.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Garsondee/Pong/internal/logging"
	"github.com/Garsondee/Pong/internal/match"
)

// Theme names accepted in [window].
const (
	ThemeTable = "table" // green felt, red paddles, white lines
	ThemeMono  = "mono"  // white on black
)

// ErrInvalidConfig wraps every validation failure from Load.
var ErrInvalidConfig = errors.New("invalid config")

// Window controls the desktop window around the playfield.
type Window struct {
	Scale float64 `toml:"scale"` // window size = playfield size × scale
	Theme string  `toml:"theme"`
	Title string  `toml:"title"`
}

// Config is everything cmd/pong needs to start.
type Config struct {
	Preset string         `toml:"preset"`
	Rules  match.Rules    `toml:"rules"`
	Log    logging.Config `toml:"log"`
	Window Window         `toml:"window"`
}

// Default is the classic preset with stderr logging.
func Default() Config {
	cfg, _ := ForPreset("classic")
	return cfg
}

// ForPreset builds the configuration a file naming only preset would give.
func ForPreset(name string) (Config, error) {
	rules, err := match.Preset(name)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if name == "" {
		name = "classic"
	}
	cfg := Config{
		Preset: strings.ToLower(name),
		Rules:  rules,
		Log:    logging.Default(),
		Window: Window{Scale: 1, Theme: ThemeTable, Title: "Ping-Pong"},
	}
	if cfg.Preset == "versus" {
		cfg.Window.Theme = ThemeMono
		cfg.Window.Title = "Pong"
	}
	return cfg, nil
}

// Load reads path over the defaults of its preset. presetOverride, when
// non-empty, wins over the file's preset key. An empty path yields the
// preset defaults.
func Load(path, presetOverride string) (Config, error) {
	preset := presetOverride
	if path != "" && preset == "" {
		var head struct {
			Preset string `toml:"preset"`
		}
		if _, err := toml.DecodeFile(path, &head); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		preset = head.Preset
	}

	cfg, err := ForPreset(preset)
	if err != nil {
		return Config{}, err
	}
	name := cfg.Preset
	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			return Config{}, fmt.Errorf("config: %s: unknown keys %s: %w",
				path, strings.Join(names, ", "), ErrInvalidConfig)
		}
		cfg.Preset = name
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the rules and the window settings.
func (c Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("config: window.scale must be > 0 (got %v): %w", c.Window.Scale, ErrInvalidConfig)
	}
	switch c.Window.Theme {
	case ThemeTable, ThemeMono:
	default:
		return fmt.Errorf("config: unknown window.theme %q: %w", c.Window.Theme, ErrInvalidConfig)
	}
	return nil
}
