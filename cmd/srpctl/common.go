package main

import (
	"io"

	"github.com/fzdarsky/srp6a/internal/config"
	"github.com/fzdarsky/srp6a/internal/logging"
)

// loadConfig reads path, or the defaults when path is empty. Environment
// overrides apply in both cases.
func loadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

// newLogger creates the configured logger writing to stderr, so stdout
// carries only command output.
func newLogger(cfg *config.Config, stderr io.Writer) *logging.Logger {
	logger := cfg.NewLogger()
	logger.SetOutput(stderr, stderr)
	return logger
}
