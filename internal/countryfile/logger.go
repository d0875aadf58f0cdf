package countryfile

import (
	"sync"

	"github.com/tphakala/hamkit/internal/logger"
)

var (
	pkgLogger     logger.Logger
	pkgLoggerOnce sync.Once
)

// GetLogger returns the countryfile package logger.
func GetLogger() logger.Logger {
	pkgLoggerOnce.Do(func() {
		pkgLogger = logger.Global().Module("countryfile")
	})
	return pkgLogger
}
