package config

import (
	"path/filepath"
)

// Config holds conversion settings for the command-line front end.
type Config struct {
	// OutputDir is where the per-group PDFs are written.
	OutputDir string

	// Strategy selects the date grouping: month, quarter or year.
	Strategy string

	// Verbose enables progress logging.
	Verbose bool
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		OutputDir: "./pdfs",
		Strategy:  "month",
		Verbose:   true,
	}
}

// OutputPath returns the path a group PDF will be written to.
func (c *Config) OutputPath(groupKey string) string {
	return filepath.Join(c.OutputDir, groupKey+".pdf")
}
