package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcpscan/mcpscan/internal/scanners"
	"github.com/spf13/viper"
)

// Config holds all configuration for mcpscan
type Config struct {
	// Directory holding scanner temp files and per-repo violations files
	ResultsDir string `mapstructure:"results_dir"`

	// Path of the generated Markdown summary
	SummaryFile string `mapstructure:"summary_file"`

	// Output format for detect (text or json)
	Format string `mapstructure:"format"`

	// Known scanner identifiers, in merge order
	Scanners []string `mapstructure:"scanners"`

	// Doublestar globs excluded from detection walks
	Exclude []string `mapstructure:"exclude"`

	// Verbose output
	Verbose bool `mapstructure:"verbose"`

	// Debug mode
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		ResultsDir:  "results",
		SummaryFile: "SCAN_RESULTS.md",
		Format:      "text",
		Scanners:    scanners.DefaultNames,
		Exclude:     nil,
		Verbose:     false,
		Debug:       false,
	}
}

// Load loads configuration with the following precedence (lowest to highest):
// 1. Default values
// 2. Config file (~/.mcpscan.yaml or ./mcpscan.yaml)
// 3. Environment variables (MCPSCAN_*)
// 4. CLI flags (handled by caller)
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile loads configuration from a specific file path
// If path is empty, it searches for config in standard locations
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("results_dir", defaults.ResultsDir)
	v.SetDefault("summary_file", defaults.SummaryFile)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("scanners", defaults.Scanners)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("debug", defaults.Debug)

	// Set config file settings
	v.SetConfigName("mcpscan")
	v.SetConfigType("yaml")

	if configPath != "" {
		// Use explicit config file path
		v.SetConfigFile(configPath)
	} else {
		// Search for config in standard locations
		// 1. Current directory
		v.AddConfigPath(".")

		// 2. Home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}

		// 3. XDG config directory
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, "mcpscan"))
		}
	}

	// Enable environment variable support
	v.SetEnvPrefix("MCPSCAN")
	v.AutomaticEnv()

	// Try to read config file (ignore error if not found)
	if err := v.ReadInConfig(); err != nil {
		// Only return error if it's not a "file not found" error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Unmarshal into config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate format
	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format: %s (must be text or json)", c.Format)
	}

	// Validate results_dir is not empty
	if c.ResultsDir == "" {
		return fmt.Errorf("results_dir cannot be empty")
	}

	// Validate summary_file is not empty
	if c.SummaryFile == "" {
		return fmt.Errorf("summary_file cannot be empty")
	}

	// Validate scanners: at least one, no blank names
	if len(c.Scanners) == 0 {
		return fmt.Errorf("scanners cannot be empty")
	}
	for _, name := range c.Scanners {
		if name == "" {
			return fmt.Errorf("scanner names cannot be blank")
		}
	}

	return nil
}

// Registry builds the scanner registry from the configured scanner names.
func (c *Config) Registry() *scanners.Registry {
	return scanners.NewRegistry(c.Scanners)
}

// GenerateSampleConfig generates a sample configuration file content
func GenerateSampleConfig() string {
	return `# mcpscan Configuration
# Save this file as ~/mcpscan.yaml or ./mcpscan.yaml

# Directory holding scanner temp files and per-repo violations files
results_dir: results

# Path of the generated Markdown summary
summary_file: SCAN_RESULTS.md

# Output format for detect: text or json
format: text

# Known scanner identifiers, in merge order
scanners:
  - trivy
  - grype
  - semgrep
  - bandit

# Doublestar globs excluded from detection walks
# exclude:
#   - node_modules/**
#   - vendor/**

# Enable verbose output
verbose: false

# Enable debug mode
debug: false
`
}
