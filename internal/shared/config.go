package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Replay ReplayConfig `toml:"replay"`
	Export ExportConfig `toml:"export"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // TUI log destination
}

// ReplayConfig contains scenario replay settings.
type ReplayConfig struct {
	Scenario  string  `toml:"scenario"`   // default scenario path
	RateLimit float64 `toml:"rate_limit"` // steps per second, 0 disables throttling
}

// ExportConfig contains playlist export settings.
type ExportConfig struct {
	Format    string `toml:"format"`
	OutputDir string `toml:"output_dir"`
}

// ExportFormats lists the accepted values for [ExportConfig.Format].
var ExportFormats = []string{"text", "csv", "markdown", "json"}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks level, format and rate values.
func (c *Config) Validate() error {
	var problems []string

	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level %q must be one of debug, info, warn, error", c.Log.Level))
	}

	if !IsExportFormat(c.Export.Format) {
		problems = append(problems, fmt.Sprintf("export.format %q must be one of %s", c.Export.Format, strings.Join(ExportFormats, ", ")))
	}

	if c.Replay.RateLimit < 0 {
		problems = append(problems, "replay.rate_limit must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(problems, "\n  - "))
	}
	return nil
}

// IsExportFormat reports whether format is one of [ExportFormats].
func IsExportFormat(format string) bool {
	for _, f := range ExportFormats {
		if f == format {
			return true
		}
	}
	return false
}
