// Package logging builds the zap logger used for diagnostics.
// User-facing progress is printed separately; logs go to stderr.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr at warn level,
// or debug level when verbose is set.
func New(verbose bool) (*zap.Logger, error) {
	return newWithOutput(verbose, "stderr")
}

func newWithOutput(verbose bool, path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}
