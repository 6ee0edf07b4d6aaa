package config

import (
	"fmt"
	"slices"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

var (
	validLogLevels  = []string{"silent", "error", "warn", "info", "debug", "trace"}
	validLogOutputs = []string{"stderr", "host", "both"}
	validLogStyles  = []string{"pretty", "json"}
)

// Validate checks a Config for issues. Returns nil if valid.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	check := func(path, value string, allowed []string) {
		if value != "" && !slices.Contains(allowed, value) {
			issues = append(issues, ValidationIssue{
				Path:    path,
				Message: fmt.Sprintf("must be one of %v, got %q", allowed, value),
			})
		}
	}

	check("logging.level", cfg.Logging.Level, validLogLevels)
	check("logging.output", cfg.Logging.Output, validLogOutputs)
	check("logging.style", cfg.Logging.Style, validLogStyles)

	return issues
}
