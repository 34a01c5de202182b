// Package log provides the debug logger shared by commitgoblin packages.
// It is a no-op until SetFile points it at a file.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	logger = zap.NewNop()
	file   *os.File
)

// SetFile directs debug logs to path as JSON lines. An empty path disables logging.
func SetFile(path string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()

	if path == "" {
		logger = zap.NewNop()
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		logger = zap.NewNop()
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)

	file = f
	logger = zap.New(core)
	return nil
}

// SetLogger replaces the logger. Used by tests to attach an observer.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// L returns the current logger.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debugf writes a formatted debug message.
func Debugf(format string, args ...any) {
	L().Sugar().Debugf(format, args...)
}

// Close flushes and closes the log file if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	_ = logger.Sync()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	logger = zap.NewNop()
	return err
}
