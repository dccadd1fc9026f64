package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "spectra"

type Config struct {
	Font      string  `koanf:"font"`       // TrueType/OpenType file used for every label
	FontSize  float64 `koanf:"font_size"`  // points
	FrameRate int     `koanf:"frame_rate"` // updates per second
	LogLevel  string  `koanf:"log_level"`  // "debug", "info", "warn" or "error"

	Window        WindowConfig        `koanf:"window"`
	Volume        VolumeConfig        `koanf:"volume"`
	Spectrum      SpectrumConfig      `koanf:"spectrum"`
	SoundPosition SoundPositionConfig `koanf:"sound_position"`
	Colors        ColorsConfig        `koanf:"colors"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  int    `koanf:"width"`
	Height int    `koanf:"height"`
	Title  string `koanf:"title"`
}

// VolumeConfig holds the volume bar settings, in percent.
type VolumeConfig struct {
	Initial int `koanf:"initial"`
	Step    int `koanf:"step"` // change per +/- key press
}

// SpectrumConfig holds the spectrum display settings.
type SpectrumConfig struct {
	Scale float64 `koanf:"scale"` // applied to magnitudes before clamping to [-1, 0]
	Bins  int     `koanf:"bins"`  // bins per channel for stereo tracks
}

// SoundPositionConfig holds the 3D listener pad settings.
type SoundPositionConfig struct {
	Limit       float64 `koanf:"limit"`        // coordinate at the edge of the pad
	MinDistance float64 `koanf:"min_distance"` // distance below which there is no attenuation
}

// ColorsConfig holds widget colors as hex strings ("#rrggbb").
type ColorsConfig struct {
	Accent   string `koanf:"accent"`   // pushed tab button
	Current  string `koanf:"current"`  // playing row in the playlist
	Spectrum string `koanf:"spectrum"` // spectrum bars
	Volume   string `koanf:"volume"`   // volume bar fill
	Seek     string `koanf:"seek"`     // seek bar fill
	Pad      string `koanf:"pad"`      // center dot of the position pad
}

// Default returns the configuration used when no file sets a key.
func Default() *Config {
	return &Config{
		Font:      filepath.Join("font", "arial.ttf"),
		FontSize:  20,
		FrameRate: 30,
		LogLevel:  "info",
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  appName,
		},
		Volume: VolumeConfig{
			Initial: 100,
			Step:    1,
		},
		Spectrum: SpectrumConfig{
			Scale: -15,
			Bins:  256,
		},
		SoundPosition: SoundPositionConfig{
			Limit:       30,
			MinDistance: 5,
		},
		Colors: ColorsConfig{
			Accent:   "#ff7d19",
			Current:  "#ff7d19",
			Spectrum: "#32641e",
			Volume:   "#ff1919",
			Seek:     "#ffffff",
			Pad:      "#ff3232",
		},
	}
}

// Load reads the configuration files in order of priority and applies
// defaults for every missing key. extra, when not empty, is loaded last and
// must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	if extra != "" {
		extra = expandPath(extra)
		if err := k.Load(file.Provider(extra), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", extra, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.Font = expandPath(cfg.Font)
	cfg.normalize()
	return cfg, nil
}

// normalize replaces out of range values with their defaults.
func (c *Config) normalize() {
	d := Default()
	if c.FrameRate <= 0 {
		c.FrameRate = d.FrameRate
	}
	if c.FontSize <= 0 {
		c.FontSize = d.FontSize
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width, c.Window.Height = d.Window.Width, d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	c.Volume.Initial = min(max(c.Volume.Initial, 0), 100)
	if c.Volume.Step <= 0 {
		c.Volume.Step = d.Volume.Step
	}
	if c.Spectrum.Scale == 0 {
		c.Spectrum.Scale = d.Spectrum.Scale
	}
	if c.Spectrum.Bins <= 0 {
		c.Spectrum.Bins = d.Spectrum.Bins
	}
	if c.SoundPosition.Limit <= 0 {
		c.SoundPosition.Limit = d.SoundPosition.Limit
	}
	if c.SoundPosition.MinDistance <= 0 {
		c.SoundPosition.MinDistance = d.SoundPosition.MinDistance
	}
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return l
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/spectra/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
