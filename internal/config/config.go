package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultLogLevel     = "info"
	defaultLogFormat    = "auto"
	defaultOutputFormat = "png"
)

// Config holds CLI defaults read from a TOML file.
type Config struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	// OutputFormat is the extension appended to --out when it has none.
	OutputFormat string `toml:"output_format"`
	Overwrite    bool   `toml:"overwrite"`
}

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		LogLevel:     defaultLogLevel,
		LogFormat:    defaultLogFormat,
		OutputFormat: defaultOutputFormat,
	}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "steganography", "config.toml"), nil
}

// Load reads the configuration at path. An empty path falls back to
// DefaultPath, and a missing default file yields Default().
// An explicitly given path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize lowercases and trims every field and fills empty ones with defaults.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.OutputFormat = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.OutputFormat)), ".")
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
	if c.OutputFormat == "" {
		c.OutputFormat = defaultOutputFormat
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unsupported value %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q", c.LogFormat)
	}
	switch c.OutputFormat {
	case "png", "bmp", "tif", "tiff":
	default:
		return fmt.Errorf("output_format: unsupported value %q", c.OutputFormat)
	}
	return nil
}
