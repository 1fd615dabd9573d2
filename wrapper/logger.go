package wrapper

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger, a no-op logger unless SetLogger ran.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger sets the logger used for contract violations and recovered
// panics. Call it before any binding is used.
func SetLogger(l *zap.Logger) {
	logger = l
}
