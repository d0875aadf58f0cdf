package clublog

import (
	"sync"

	"github.com/tphakala/hamkit/internal/logger"
)

var (
	pkgLogger     logger.Logger
	pkgLoggerOnce sync.Once
)

// GetLogger returns the clublog package logger.
func GetLogger() logger.Logger {
	pkgLoggerOnce.Do(func() {
		pkgLogger = logger.Global().Module("clublog")
	})
	return pkgLogger
}
