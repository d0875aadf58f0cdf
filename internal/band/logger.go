package band

import (
	"sync"

	"github.com/tphakala/hamkit/internal/logger"
)

var (
	serviceLogger logger.Logger
	initOnce      sync.Once
)

// GetLogger returns the band package logger.
func GetLogger() logger.Logger {
	initOnce.Do(func() {
		serviceLogger = logger.Global().Module("band")
	})
	return serviceLogger
}
