// Package config loads runtime settings from the environment and command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable runtime setting
type Config struct {
	AssetDir    string  `env:"ESCAPE_ASSET_DIR"    envDefault:"textures_escape"`
	Locale      string  `env:"ESCAPE_LOCALE"       envDefault:"en"`
	LogLevel    string  `env:"ESCAPE_LOG_LEVEL"    envDefault:"info"`
	LogFormat   string  `env:"ESCAPE_LOG_FORMAT"   envDefault:"text"`
	MusicVolume float64 `env:"ESCAPE_MUSIC_VOLUME" envDefault:"0.5"`
	Mute        bool    `env:"ESCAPE_MUTE"         envDefault:"false"`
	ConsoleEcho bool    `env:"ESCAPE_CONSOLE_ECHO" envDefault:"false"`
	TPS         int     `env:"ESCAPE_TPS"          envDefault:"60"`
	Headless    bool    `env:"ESCAPE_HEADLESS"     envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment, applies command-line overrides from args and validates the result
func Load(args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyFlags overrides fields with any flags present in args. Unset flags keep the env value.
func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("escaperoom", flag.ContinueOnError)
	assets := fs.String("assets", c.AssetDir, "directory holding textures and sounds")
	mute := fs.Bool("mute", c.Mute, "disable all audio")
	locale := fs.String("locale", c.Locale, "message language (en, de)")
	echo := fs.Bool("echo", c.ConsoleEcho, "print game messages to the terminal")
	headless := fs.Bool("headless", c.Headless, "play from stdin commands without a window")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	c.AssetDir = *assets
	c.Mute = *mute
	c.Locale = *locale
	c.ConsoleEcho = *echo
	c.Headless = *headless
	return nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("music volume must be within [0,1], got %v", c.MusicVolume))
	}
	if strings.TrimSpace(c.AssetDir) == "" {
		errs = append(errs, errors.New("asset directory is empty"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// SlogLevel converts LogLevel to a slog level
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
