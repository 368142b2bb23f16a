// Package config loads application settings from a YAML file, with
// QRPANELS_* environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"qrpanels/internal/qr"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "QRPANELS_"

// Config holds all application configuration values.
type Config struct {
	Panels          int    `yaml:"panels"`
	BoxSize         int    `yaml:"box_size"`
	Border          int    `yaml:"border"`
	ErrorCorrection string `yaml:"error_correction"`
	DefaultFilename string `yaml:"default_filename"`
	PreviewSize     int    `yaml:"preview_size"` // preview edge, in half-block pixels
	WindowWidth     int    `yaml:"window_width"`
	WindowHeight    int    `yaml:"window_height"`
	LogLevel        string `yaml:"log_level"`
	LogFile         string `yaml:"log_file"`
}

// Defaults returns a Config populated with the built-in values.
func Defaults() *Config {
	return &Config{
		Panels:          4,
		BoxSize:         qr.DefaultBoxSize,
		Border:          qr.DefaultBorder,
		ErrorCorrection: "low",
		DefaultFilename: "qrcode.png",
		PreviewSize:     40,
		WindowWidth:     64,
		WindowHeight:    48,
		LogLevel:        "info",
	}
}

// Load reads configuration from the YAML file at path, falling back to
// defaults if the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	ints := map[string]*int{
		"PANELS":        &cfg.Panels,
		"BOX_SIZE":      &cfg.BoxSize,
		"BORDER":        &cfg.Border,
		"PREVIEW_SIZE":  &cfg.PreviewSize,
		"WINDOW_WIDTH":  &cfg.WindowWidth,
		"WINDOW_HEIGHT": &cfg.WindowHeight,
	}
	for name, dst := range ints {
		v := os.Getenv(EnvPrefix + name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
	}

	strs := map[string]*string{
		"ERROR_CORRECTION": &cfg.ErrorCorrection,
		"DEFAULT_FILENAME": &cfg.DefaultFilename,
		"LOG_LEVEL":        &cfg.LogLevel,
		"LOG_FILE":         &cfg.LogFile,
	}
	for name, dst := range strs {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	return nil
}

// Validate rejects values the UI or encoder cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Panels < 1 {
		errs = append(errs, fmt.Errorf("panels must be at least 1, got %d", c.Panels))
	}
	if c.BoxSize < 1 {
		errs = append(errs, fmt.Errorf("box_size must be at least 1, got %d", c.BoxSize))
	}
	if c.Border < 0 {
		errs = append(errs, fmt.Errorf("border must not be negative, got %d", c.Border))
	}
	if c.PreviewSize < 8 {
		errs = append(errs, fmt.Errorf("preview_size must be at least 8, got %d", c.PreviewSize))
	}
	if c.WindowWidth < 1 || c.WindowHeight < 1 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if strings.TrimSpace(c.DefaultFilename) == "" {
		errs = append(errs, errors.New("default_filename must not be empty"))
	}
	if _, err := qr.ParseLevel(c.ErrorCorrection); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// EncoderOptions converts the config into qr encoder options.
func (c *Config) EncoderOptions() (qr.Options, error) {
	level, err := qr.ParseLevel(c.ErrorCorrection)
	if err != nil {
		return qr.Options{}, err
	}
	opts := qr.DefaultOptions()
	opts.Level = level
	opts.BoxSize = c.BoxSize
	opts.Border = c.Border
	return opts, nil
}

// SlogLevel returns the configured log level; unknown names map to info.
func (c *Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}
