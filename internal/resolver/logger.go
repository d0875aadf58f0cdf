package resolver

import (
	"sync"

	"github.com/tphakala/hamkit/internal/logger"
)

var (
	pkgLogger     logger.Logger
	pkgLoggerOnce sync.Once
)

// GetLogger returns the resolver package logger.
func GetLogger() logger.Logger {
	pkgLoggerOnce.Do(func() {
		pkgLogger = logger.Global().Module("resolver")
	})
	return pkgLogger
}
