package contract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huangsam/branchscope/schema"
)

// DefaultStaleDays is the default age threshold for stale branches.
const DefaultStaleDays = 30

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath       string            // Absolute path to the repository under analysis
	StaleDays      int               // Branches older than this many days are stale
	IncludeRemotes bool              // Include remote-tracking branches in the listing
	Output         schema.OutputMode // Rendering mode for the report
	OutputFile     string            // Optional destination file, stdout if empty
	Width          int               // Terminal width override (0 = auto-detect)
	UseColors      bool              // Enable colored marks in report output
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Days       int    `mapstructure:"days"`
	Remote     bool   `mapstructure:"remote"`
	JSON       bool   `mapstructure:"json"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Color      string `mapstructure:"color"`
	Width      int    `mapstructure:"width"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := resolveRepoPath(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.IncludeRemotes = input.Remote
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. StaleDays Validation ---
	if input.Days < 0 {
		return fmt.Errorf("days must be zero or greater (received %d)", input.Days)
	}
	cfg.StaleDays = input.Days

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv, table, parquet", cfg.Output)
	}

	// The --json switch takes precedence over --output.
	if input.JSON {
		cfg.Output = schema.JSONOut
	}

	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// resolveRepoPath resolves the target repository path and verifies it points
// inside a Git repository. The check runs once up front, before any analysis.
func resolveRepoPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = filepath.Clean(absPath)
	return client.CheckRepository(ctx, cfg.RepoPath)
}
