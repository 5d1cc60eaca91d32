// Package log wraps a process-wide zap logger.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var (
	baseLogger *zap.Logger
	log        *zap.SugaredLogger
)

// Init builds the logger. debug selects the development encoder and level.
func Init(debug bool) error {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}
	Set(zapLogger)
	return nil
}

// InitFile builds a logger writing to path instead of stderr, for hosts
// that own the terminal. An empty path discards everything.
func InitFile(debug bool, path string) error {
	if path == "" {
		Set(zap.NewNop())
		return nil
	}
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("can't open log file %s: %w", path, err)
	}
	Set(zapLogger)
	return nil
}

// Set replaces the logger, e.g. with zaptest or zap.NewNop in tests.
func Set(l *zap.Logger) {
	baseLogger = l
	log = l.Sugar()
}

// Logger returns the sugared logger, falling back to a no-op logger when
// Init was never called.
func Logger() *zap.SugaredLogger {
	if log == nil {
		Set(zap.NewNop())
	}
	return log
}

// Sync flushes buffered entries.
func Sync() {
	if baseLogger != nil {
		_ = baseLogger.Sync()
	}
}

func Debugw(msg string, keysAndValues ...interface{}) {
	Logger().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	Logger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	Logger().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	Logger().Errorw(msg, keysAndValues...)
}

func Fatalf(template string, args ...interface{}) {
	Logger().Fatalf(template, args...)
}
