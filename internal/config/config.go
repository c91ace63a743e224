package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Lanes   LanesConfig
	Theme   ThemeConfig
	Catalog CatalogConfig
	UI      UIConfig
	Log     LogConfig
}

// LanesConfig holds lane layout and marquee constants.
type LanesConfig struct {
	Count         int
	GradientWidth int `mapstructure:"gradient_width"`
	Speed         float64
	Gap           int
}

// ThemeConfig selects the light/dark signal source.
type ThemeConfig struct {
	Mode string
	File string
}

// CatalogConfig selects which logos are shown.
type CatalogConfig struct {
	File    string
	Include []string
}

// UIConfig holds page text and animation rate.
type UIConfig struct {
	Heading string
	Callout string
	FPS     int
}

// LogConfig holds log file settings. An empty path disables logging.
type LogConfig struct {
	Path       string
	Level      string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
}

// Path returns the config file location: APPWALL_CONFIG, or
// ~/.config/appwall/config.toml.
func Path() string {
	if p := os.Getenv("APPWALL_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "appwall", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("lanes.count", 5)
	v.SetDefault("lanes.gradient_width", 50)
	v.SetDefault("lanes.speed", 20)
	v.SetDefault("lanes.gap", 2)
	v.SetDefault("theme.mode", "auto")
	v.SetDefault("theme.file", "")
	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.include", []string{})
	v.SetDefault("ui.heading", "Just Works in WASIX")
	v.SetDefault("ui.callout", "All the apps you love ♥")
	v.SetDefault("ui.fps", 30)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
}

// Default returns the built-in configuration without reading file or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file and env. Env var overrides use prefix APPWALL_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("APPWALL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "appwall"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("APPWALL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, c.Validate()
}

// Validate rejects values the wall cannot render.
func (c Config) Validate() error {
	if c.Lanes.Count < 1 {
		return fmt.Errorf("lanes.count must be positive, got %d", c.Lanes.Count)
	}
	if c.Lanes.GradientWidth < 0 {
		return fmt.Errorf("lanes.gradient_width must not be negative, got %d", c.Lanes.GradientWidth)
	}
	if c.Lanes.Speed <= 0 {
		return fmt.Errorf("lanes.speed must be positive, got %v", c.Lanes.Speed)
	}
	if c.Lanes.Gap < 0 {
		return fmt.Errorf("lanes.gap must not be negative, got %d", c.Lanes.Gap)
	}
	if c.UI.FPS < 1 || c.UI.FPS > 120 {
		return fmt.Errorf("ui.fps must be between 1 and 120, got %d", c.UI.FPS)
	}
	switch strings.ToLower(strings.TrimSpace(c.Theme.Mode)) {
	case "", "auto", "system", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be auto, light or dark, got %q", c.Theme.Mode)
	}
	return nil
}

// Save writes the provided config to Path(), creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("lanes.count", cfg.Lanes.Count)
	v.Set("lanes.gradient_width", cfg.Lanes.GradientWidth)
	v.Set("lanes.speed", cfg.Lanes.Speed)
	v.Set("lanes.gap", cfg.Lanes.Gap)
	v.Set("theme.mode", cfg.Theme.Mode)
	v.Set("theme.file", cfg.Theme.File)
	v.Set("catalog.file", cfg.Catalog.File)
	v.Set("catalog.include", cfg.Catalog.Include)
	v.Set("ui.heading", cfg.UI.Heading)
	v.Set("ui.callout", cfg.UI.Callout)
	v.Set("ui.fps", cfg.UI.FPS)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.Set("log.max_backups", cfg.Log.MaxBackups)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
