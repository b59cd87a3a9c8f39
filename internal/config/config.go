package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects the front end used to tell the story.
type Mode string

const (
	ModePlain Mode = "plain" // line-by-line on stdout, Enter to continue
	ModeTUI   Mode = "tui"   // full-screen pager
)

// Theme selects the color palette for styled output.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var (
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidFormat   = errors.New("invalid log format")
	ErrEmptyPrompt     = errors.New("prompt must not be empty")
)

// Config holds all storyteller configuration.
type Config struct {
	// Prompt is shown after every story line.
	Prompt string `yaml:"prompt"`

	// Mode is plain or tui.
	Mode Mode `yaml:"mode"`

	// Theme is auto, light or dark.
	Theme Theme `yaml:"theme"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Prompt: "Press Enter to continue...",
		Mode:   ModePlain,
		Theme:  ThemeAuto,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing
// file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("STORYTELLER_MODE"); v != "" {
		c.Mode = Mode(strings.ToLower(v))
	}
	if v := os.Getenv("STORYTELLER_THEME"); v != "" {
		c.Theme = Theme(strings.ToLower(v))
	}
	if v := os.Getenv("STORYTELLER_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("STORYTELLER_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Prompt == "" {
		return ErrEmptyPrompt
	}

	switch c.Mode {
	case ModePlain, ModeTUI:
	default:
		return fmt.Errorf("%w: %q (valid: %s, %s)", ErrInvalidMode, c.Mode, ModePlain, ModeTUI)
	}

	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: %q (valid: %s, %s, %s)", ErrInvalidTheme, c.Theme, ThemeAuto, ThemeLight, ThemeDark)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Logging.Format)
	}

	return nil
}

// IsTUI reports whether the pager front end was requested.
func (c *Config) IsTUI() bool {
	return c.Mode == ModeTUI
}
