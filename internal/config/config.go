// =============================================================================
// XML to XLSX Converter - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. One file
// covers both runtime modes:
//   - serve:   the upload/download web form (listen address, upload limit)
//   - process: the batch directory pipeline (directories, naming, concurrency)
//
// A missing configuration file is not an error; the defaults are usable for
// both modes out of the box.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// SERVER SETTINGS
	// =========================================================================

	// ListenAddr is the address the web form binds to.
	// Default: ":8080"
	ListenAddr string `yaml:"listen_addr"`

	// MaxUploadMB is the upload size limit for the web form, in megabytes.
	// Default: 200
	MaxUploadMB int64 `yaml:"max_upload_mb"`

	// =========================================================================
	// DIRECTORY SETTINGS (batch mode)
	// =========================================================================

	// InputDir is scanned for XML exports to process.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir receives the generated workbooks.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir receives input files after successful processing.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// OutputArchiveDir receives copies of generated workbooks.
	// Default: "./output_archive"
	OutputArchiveDir string `yaml:"output_archive_dir"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat names generated workbooks in batch mode.
	// Placeholders:
	//   {name}      - input file name without extension
	//   {timestamp} - conversion completion time (YYYYMMDD_HHMMSS)
	//   {uuid}      - a random UUID
	// Default: "{name}_transactions_{timestamp}.xlsx"
	OutputNameFormat string `yaml:"output_name_format"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the number of files processed in parallel.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// LogLevel controls converter logging verbosity.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults, and
// validates the result. A missing file selects the defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file: run with defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.MaxUploadMB == 0 {
		cfg.MaxUploadMB = 200
	}
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.InputArchiveDir == "" {
		cfg.InputArchiveDir = "./input_archive"
	}
	if cfg.OutputArchiveDir == "" {
		cfg.OutputArchiveDir = "./output_archive"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "{name}_transactions_{timestamp}.xlsx"
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate rejects values that would misbehave at runtime. Directories are
// not checked here; the batch command creates them on demand.
func validate(cfg *Config) error {
	if cfg.MaxUploadMB < 0 {
		return fmt.Errorf("max_upload_mb must be positive, got %d", cfg.MaxUploadMB)
	}
	if cfg.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", cfg.MaxConcurrency)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}
	return nil
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}
