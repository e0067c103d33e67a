package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/optgen/internal/emit"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CatalogPaths []string // .hcl, .yaml and .yml files or directories

	// OutputPath is where generated output goes. Empty means the App's
	// output writer.
	OutputPath string

	// AgainstPath is the committed file Check compares with.
	AgainstPath string

	Artifacts []string
	Contexts  []string

	LogFormat string
	LogLevel  string
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.CatalogPaths) == 0 {
		return nil, errors.New("at least one catalog path is required")
	}
	for _, p := range cfg.CatalogPaths {
		if strings.TrimSpace(p) == "" {
			return nil, errors.New("catalog paths cannot be empty")
		}
	}

	if _, err := emit.ParseArtifacts(cfg.Artifacts); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !oneOf(cfg.LogLevel, logLevels) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %s", cfg.LogLevel, strings.Join(logLevels, ", "))
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !oneOf(cfg.LogFormat, logFormats) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %s", cfg.LogFormat, strings.Join(logFormats, ", "))
	}

	return &cfg, nil
}

func oneOf(s string, values []string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}
