// Package config provides configuration management for the analysis pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInput          = errors.New("analysis.input is required")
	ErrMissingOutputDir      = errors.New("analysis.output.dir is required")
	ErrInvalidMinYear        = errors.New("analysis.years.min must be 1957 or later")
	ErrInvalidYearWindow     = errors.New("analysis.years.min cannot exceed analysis.years.max")
	ErrInvalidTopN           = errors.New("analysis.rankings.top_n must be at least 1")
	ErrInvalidMinOrgLaunches = errors.New("analysis.rankings.min_org_launches must be at least 1")
	ErrInvalidMinRockets     = errors.New("analysis.rankings.min_rocket_launches must be at least 1")
	ErrInvalidMinRated       = errors.New("analysis.rankings.min_rated_launches must be at least 1")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete analysis configuration.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalysisConfig contains dataset and aggregation settings.
type AnalysisConfig struct {
	Input          string               `yaml:"input"`
	Output         OutputConfig         `yaml:"output"`
	Years          YearWindow           `yaml:"years"`
	Classification ClassificationConfig `yaml:"classification"`
	Rankings       RankingsConfig       `yaml:"rankings"`
}

// OutputConfig defines where artifacts are written.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Dashboard string `yaml:"dashboard"`
	Report    string `yaml:"report"`
}

// YearWindow bounds the temporal trend analysis. Max of zero means the
// current calendar year, resolved once at load time.
type YearWindow struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ClassificationConfig exposes the status classification policy.
type ClassificationConfig struct {
	// CountPartialFailureAsSuccess keeps "partial failure" inside the success
	// vocabulary. On by default; turning it off materially lowers published
	// success rates.
	CountPartialFailureAsSuccess bool `yaml:"count_partial_failure_as_success"`
}

// RankingsConfig sets the inclusion thresholds for ranked report sections.
type RankingsConfig struct {
	TopN              int `yaml:"top_n"`
	MinOrgLaunches    int `yaml:"min_org_launches"`
	MinRocketLaunches int `yaml:"min_rocket_launches"`
	// MinRatedLaunches is the floor for the best-success-rate ranking, where
	// small samples would dominate otherwise.
	MinRatedLaunches int `yaml:"min_rated_launches"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Input: "data/space_launches.csv",
			Output: OutputConfig{
				Dir:       "output",
				Dashboard: "sector_comparison_dashboard.png",
				Report:    "analysis_report.md",
			},
			Years: YearWindow{
				Min: 1957,
				Max: time.Now().Year(),
			},
			Classification: ClassificationConfig{
				CountPartialFailureAsSuccess: true,
			},
			Rankings: RankingsConfig{
				TopN:              10,
				MinOrgLaunches:    5,
				MinRocketLaunches: 3,
				MinRatedLaunches:  10,
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file, layered over the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Analysis.Years.Max == 0 {
		cfg.Analysis.Years.Max = time.Now().Year()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Analysis.Input == "" {
		return ErrMissingInput
	}

	if c.Analysis.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	if c.Analysis.Years.Min < 1957 {
		return ErrInvalidMinYear
	}

	if c.Analysis.Years.Min > c.Analysis.Years.Max {
		return ErrInvalidYearWindow
	}

	if c.Analysis.Rankings.TopN < 1 {
		return ErrInvalidTopN
	}

	if c.Analysis.Rankings.MinOrgLaunches < 1 {
		return ErrInvalidMinOrgLaunches
	}

	if c.Analysis.Rankings.MinRocketLaunches < 1 {
		return ErrInvalidMinRockets
	}

	if c.Analysis.Rankings.MinRatedLaunches < 1 {
		return ErrInvalidMinRated
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// DashboardPath returns the full path of the dashboard artifact.
func (c *Config) DashboardPath() string {
	return c.Analysis.Output.Dir + "/" + c.Analysis.Output.Dashboard
}

// ReportPath returns the full path of the markdown report artifact.
func (c *Config) ReportPath() string {
	return c.Analysis.Output.Dir + "/" + c.Analysis.Output.Report
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, Years: %d-%d}",
		c.Analysis.Input,
		c.Analysis.Output.Dir,
		c.Analysis.Years.Min,
		c.Analysis.Years.Max,
	)
}
