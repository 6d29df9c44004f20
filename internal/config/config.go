// Package config loads soundfeed settings from layered TOML/YAML files.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const appName = "soundfeed"

type Config struct {
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error"
	Icons    string `koanf:"icons"`     // "nerd", "unicode", or "none"
	MPRIS    bool   `koanf:"mpris"`     // media keys over D-Bus (Linux only)

	// Posts API (the feed is disabled when base_url is empty)
	API APIConfig `koanf:"api"`

	Playback PlaybackConfig `koanf:"playback"`
	Gesture  GestureConfig  `koanf:"gesture"`
	Views    ViewsConfig    `koanf:"views"`
}

// APIConfig holds the posts API connection settings.
type APIConfig struct {
	BaseURL string        `koanf:"base_url"` // e.g., "https://api.example.com/v1"
	Token   string        `koanf:"token"`    // bearer token, optional
	Timeout time.Duration `koanf:"timeout"`
}

// PlaybackConfig tunes the playback service and its key bindings.
type PlaybackConfig struct {
	PollInterval    time.Duration `koanf:"poll_interval"`
	DurationEpsilon time.Duration `koanf:"duration_epsilon"`
	SeekSettle      time.Duration `koanf:"seek_settle"`
	Volume          float64       `koanf:"volume"`      // initial level (0.0-1.0)
	SeekStep        time.Duration `koanf:"seek_step"`   // shift+left/right
	VolumeStep      float64       `koanf:"volume_step"` // +/-
}

// GestureConfig tunes the progress bar seek gesture.
type GestureConfig struct {
	TapSlop      float64       `koanf:"tap_slop"` // percent of bar width
	SettleWindow time.Duration `koanf:"settle_window"`
}

// ViewsConfig controls view reporting.
type ViewsConfig struct {
	Cooldown time.Duration `koanf:"cooldown"` // one view per post per cooldown
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		Icons:    "unicode",
		MPRIS:    true,
		API: APIConfig{
			Timeout: 30 * time.Second,
		},
		Playback: PlaybackConfig{
			PollInterval:    100 * time.Millisecond,
			DurationEpsilon: 50 * time.Millisecond,
			SeekSettle:      100 * time.Millisecond,
			Volume:          1,
			SeekStep:        5 * time.Second,
			VolumeStep:      0.05,
		},
		Gesture: GestureConfig{
			TapSlop:      1,
			SettleWindow: 100 * time.Millisecond,
		},
		Views: ViewsConfig{
			Cooldown: time.Hour,
		},
	}
}

// Load reads the default config locations.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom layers the given files over the defaults; later files win and
// missing files are skipped. The parser is picked by extension.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	cfg.API.BaseURL = strings.TrimSuffix(cfg.API.BaseURL, "/")
	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/soundfeed/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml and ./config.yaml (pwd, highest priority)
		"config.toml",
		"config.yaml",
	}
}

// HasAPIConfig returns true if the posts API is configured.
func (c *Config) HasAPIConfig() bool {
	return c.API.BaseURL != ""
}

// SlogLevel maps log_level to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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

// GetAPIConfig returns the API configuration with defaults applied.
func (c *Config) GetAPIConfig() APIConfig {
	cfg := c.API
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return cfg
}

// GetPlaybackConfig returns the playback configuration with defaults applied.
func (c *Config) GetPlaybackConfig() PlaybackConfig {
	cfg := c.Playback
	def := Defaults().Playback

	if cfg.PollInterval < 10*time.Millisecond || cfg.PollInterval > time.Second {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.DurationEpsilon <= 0 {
		cfg.DurationEpsilon = def.DurationEpsilon
	}
	if cfg.SeekSettle <= 0 || cfg.SeekSettle > 2*time.Second {
		cfg.SeekSettle = def.SeekSettle
	}
	cfg.Volume = min(max(cfg.Volume, 0), 1)
	if cfg.SeekStep <= 0 {
		cfg.SeekStep = def.SeekStep
	}
	if cfg.VolumeStep <= 0 || cfg.VolumeStep > 0.5 {
		cfg.VolumeStep = def.VolumeStep
	}
	return cfg
}

// GetGestureConfig returns the gesture configuration with defaults applied.
func (c *Config) GetGestureConfig() GestureConfig {
	cfg := c.Gesture
	def := Defaults().Gesture

	if cfg.TapSlop <= 0 || cfg.TapSlop > 10 {
		cfg.TapSlop = def.TapSlop
	}
	if cfg.SettleWindow <= 0 || cfg.SettleWindow > 2*time.Second {
		cfg.SettleWindow = def.SettleWindow
	}
	return cfg
}

// GetViewsConfig returns the views configuration with defaults applied.
func (c *Config) GetViewsConfig() ViewsConfig {
	cfg := c.Views
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = time.Hour
	}
	return cfg
}

// LogPath returns where the application log is written.
func LogPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
