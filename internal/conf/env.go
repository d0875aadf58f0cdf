// env.go - environment variable overrides for hamkit
package conf

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// envKeyReplacer maps config keys to variable names: api.listen -> HAMKIT_API_LISTEN.
var envKeyReplacer = strings.NewReplacer(".", "_")

// envBinding holds metadata for environment variable bindings (internal use)
type envBinding struct {
	ConfigKey string             // Viper config key
	EnvVar    string             // Environment variable name
	Validate  func(string) error // Optional validation function
}

// getEnvBindings returns the short aliases on top of the automatic
// HAMKIT_<SECTION>_<KEY> names.
func getEnvBindings() []envBinding {
	return []envBinding{
		{"debug", "HAMKIT_DEBUG", validateEnvBool},
		{"logging.default_level", "HAMKIT_LOG_LEVEL", validateEnvLogLevel},
		{"sources.clublog.apikey", "HAMKIT_CLUBLOG_APIKEY", nil},
		{"api.listen", "HAMKIT_LISTEN", validateEnvListen},
		{"refresh.interval", "HAMKIT_REFRESH_INTERVAL", validateEnvDuration},
		{"snapshot.path", "HAMKIT_SNAPSHOT", nil},
	}
}

// bindEnvVars sets up environment variable bindings with validation (internal)
func bindEnvVars() error {
	var warnings []string

	for _, binding := range getEnvBindings() {
		if err := viper.BindEnv(binding.ConfigKey, binding.EnvVar); err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to bind %s: %v", binding.EnvVar, err))
			continue
		}

		if binding.Validate != nil {
			if envValue := os.Getenv(binding.EnvVar); envValue != "" {
				if err := binding.Validate(envValue); err != nil {
					warnings = append(warnings, fmt.Sprintf("invalid %s value '%s': %v", binding.EnvVar, envValue, err))
				}
			}
		}
	}

	if len(warnings) > 0 {
		return fmt.Errorf("environment variable issues:\n  - %s", strings.Join(warnings, "\n  - "))
	}
	return nil
}

func validateEnvBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("must be true/false, 1/0, t/f")
	}
	return nil
}

func validateEnvLogLevel(value string) error {
	if !isLogLevel(value) {
		return fmt.Errorf("must be one of %s", strings.Join(logLevels, ", "))
	}
	return nil
}

func validateEnvListen(value string) error {
	_, _, err := net.SplitHostPort(value)
	return err
}

func validateEnvDuration(value string) error {
	_, err := time.ParseDuration(value)
	return err
}
