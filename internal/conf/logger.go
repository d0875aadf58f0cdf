// Package conf loads hamkit settings from defaults, config.yaml and the
// environment.
package conf

import "github.com/tphakala/hamkit/internal/logger"

// GetLogger returns the config package logger scoped to the config module.
// The logger is fetched from the global logger each time so it follows a
// central logger installed after Load.
func GetLogger() logger.Logger {
	return logger.Global().Module("config")
}
