package datastore

import (
	"sync"

	"github.com/tphakala/hamkit/internal/logger"
)

var (
	pkgLogger     logger.Logger
	pkgLoggerOnce sync.Once
)

// GetLogger returns the datastore package logger.
func GetLogger() logger.Logger {
	pkgLoggerOnce.Do(func() {
		pkgLogger = logger.Global().Module("datastore")
	})
	return pkgLogger
}
