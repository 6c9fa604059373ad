package cmd

import (
	"fmt"
	"os"

	"github.com/nesc-lab/paperpage/internal/config"
	"github.com/nesc-lab/paperpage/internal/paper"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `paperpage init` to create a config file", err)
	}
	if paperFile != "" {
		cfg.Paper = paperFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadPaper loads the configured content file, or the built-in page.
func loadPaper(cfg *config.Config) (*paper.Paper, error) {
	p, err := paper.LoadOrDefault(cfg.Paper)
	if err != nil {
		return nil, fmt.Errorf("loading paper: %w", err)
	}
	if cfg.Paper == "" {
		debugf("No paper file configured, using the built-in page\n")
	} else {
		debugf("Loaded paper from %s\n", cfg.Paper)
	}
	return p, nil
}

// debugf prints to stderr when --verbose is set.
func debugf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
