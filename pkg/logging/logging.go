// Package logging builds the process-wide zap logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Setup builds the logger for one invocation. Verbose runs get a
// development config at debug level so per-file include/skip decisions
// are visible; normal runs use the production config. The logger is
// returned rather than installed globally so it can be passed down the
// pipeline explicitly.
func Setup(verbose bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	return cfg.Build()
}

// Sync flushes the logger's buffers. Syncing stderr fails with EINVAL
// when it is neither a terminal nor a regular file (e.g. piped), so
// that case is swallowed.
func Sync(logger *zap.Logger) {
	if logger == nil {
		return
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			logger.Error("Logger sync failed", zap.Error(err))
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
