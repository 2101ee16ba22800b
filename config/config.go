package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const appDir = "movieapp"

// Config represents the application configuration
type Config struct {
	Poster PosterConfig `yaml:"poster"`
	Log    LogConfig    `yaml:"log"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// PosterConfig sizes the poster region and bounds poster fetches
type PosterConfig struct {
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxAttempts int           `yaml:"max_attempts"`
}

// LogConfig holds the slog destination
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ThemeConfig holds colours used by the screen
type ThemeConfig struct {
	Accent string `yaml:"accent"`
}

func Default() Config {
	return Config{
		Poster: PosterConfig{
			Width:       36,
			Height:      9,
			Timeout:     12 * time.Second,
			MaxAttempts: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: ThemeConfig{
			Accent: "#7D56F4",
		},
	}
}

// DefaultPath returns <user config dir>/movieapp/config.yaml.
func DefaultPath() (string, error) {
	return configPath("config.yaml")
}

// DefaultLogFile returns <user cache dir>/movieapp/movieapp.log.
func DefaultLogFile() (string, error) {
	return cachePath("movieapp.log")
}

// Load reads the configuration file at path on top of Default(). A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	path, err := expandHome(strings.TrimSpace(path))
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func (c Config) Validate() error {
	if c.Poster.Width < 4 || c.Poster.Width > 200 {
		return fmt.Errorf("poster.width must be between 4 and 200, got %d", c.Poster.Width)
	}
	if c.Poster.Height < 2 || c.Poster.Height > 60 {
		return fmt.Errorf("poster.height must be between 2 and 60, got %d", c.Poster.Height)
	}
	if c.Poster.Timeout <= 0 {
		return fmt.Errorf("poster.timeout must be positive, got %s", c.Poster.Timeout)
	}
	if c.Poster.MaxAttempts < 1 {
		return fmt.Errorf("poster.max_attempts must be at least 1, got %d", c.Poster.MaxAttempts)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, off, got %q", c.Log.Level)
	}
	if !hexColorRE.MatchString(c.Theme.Accent) {
		return fmt.Errorf("theme.accent must be a #rrggbb colour, got %q", c.Theme.Accent)
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}

func cachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}
