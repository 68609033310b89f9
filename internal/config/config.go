// Package config provides configuration types and defaults for tidk.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pgonzale60/telomeric-identifier/internal/log"
	"github.com/pgonzale60/telomeric-identifier/internal/presentation"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all configuration options for tidk.
type Config struct {
	Debug    bool         `mapstructure:"debug"`
	LogFile  string       `mapstructure:"log_file"`  // empty logs to stderr
	LogLevel string       `mapstructure:"log_level"` // debug, info, warn, error
	Report   ReportConfig `mapstructure:"report"`
	Output   OutputConfig `mapstructure:"output"`
}

// ReportConfig controls the human-readable table.
type ReportConfig struct {
	WrapWidth int    `mapstructure:"wrap_width"` // motif column width, 0 disables wrapping
	Border    string `mapstructure:"border"`     // normal, rounded, ascii, hidden
	Color     bool   `mapstructure:"color"`
}

// OutputConfig controls machine-readable output.
type OutputConfig struct {
	Format string `mapstructure:"format"` // text or json
}

// ReportOptions converts the report section into renderer options.
func (c Config) ReportOptions() presentation.ReportOptions {
	return presentation.ReportOptions{
		WrapWidth: c.Report.WrapWidth,
		Border:    c.Report.Border,
		Color:     c.Report.Color,
	}
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Debug:    false,
		LogLevel: "debug",
		Report: ReportConfig{
			WrapWidth: presentation.DefaultWrapWidth,
			Border:    presentation.BorderNormal,
			Color:     false,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// Validate checks the configuration for values the commands cannot honour.
func (c Config) Validate() error {
	if err := ValidateReport(c.Report); err != nil {
		return err
	}
	switch c.Output.Format {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatJSON, c.Output.Format)
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}

// ValidateReport checks the report section.
func ValidateReport(r ReportConfig) error {
	if r.WrapWidth < 0 {
		return fmt.Errorf("report.wrap_width must be >= 0, got %d", r.WrapWidth)
	}
	if !presentation.ValidBorder(r.Border) {
		return fmt.Errorf("report.border must be one of normal, rounded, ascii, hidden; got %q", r.Border)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# tidk configuration

# Write debug logs (also enabled by TIDK_DEBUG=1)
debug: false
# log_file: /tmp/tidk.log   # default: stderr
log_level: debug

# Human-readable table printed by 'tidk table'
report:
  wrap_width: 30   # width of the motif column, 0 disables wrapping
  border: normal   # normal, rounded, ascii or hidden
  color: false

# Machine-readable output for clades/lookup/table
output:
  format: text     # text or json
`
}

// WriteDefaultConfig writes the default config template to configPath,
// creating parent directories. It refuses to overwrite an existing file.
func WriteDefaultConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "wrote default config", "path", configPath)
	return nil
}
