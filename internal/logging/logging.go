// Package logging sets up file-based structured logging. The console owns
// the terminal, so nothing may write to stdout/stderr while it runs; all
// diagnostics go to a log file that can be paged from inside the app.
package logging

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFileName is the log file created in the workspace directory.
const DefaultFileName = "opsdeck.log"

// New builds a zap logger writing to the given file path.
func New(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		path = DefaultFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log path: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{abs}
	cfg.ErrorOutputPaths = []string{abs}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
