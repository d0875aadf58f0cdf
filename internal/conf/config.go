// config.go: settings struct and the functions that load it.
package conf

import (
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

// EnvPrefix prefixes every environment override, HAMKIT_API_LISTEN etc.
const EnvPrefix = "HAMKIT"

// CountryFileSettings configures the cty.csv source.
type CountryFileSettings struct {
	Enabled bool   // download the country file
	URL     string // cty.csv location
}

// ClubLogSettings configures the Club Log cty.xml source.
type ClubLogSettings struct {
	Enabled bool   // download Club Log corrections
	URL     string // cty.php endpoint without the api key
	APIKey  string // Club Log application key
}

// SourcesSettings configures remote country data.
type SourcesSettings struct {
	Timeout     time.Duration // per request timeout
	Retries     int           // attempts per download, including the first
	RetryDelay  time.Duration // base delay between attempts
	UserAgent   string
	CountryFile CountryFileSettings
	ClubLog     ClubLogSettings
}

// SnapshotSettings configures local persistence.
type SnapshotSettings struct {
	Path    string // snapshot file written after each refresh
	Archive string // SQLite archive path, empty disables archiving
	Retain  int    // archived snapshots kept
}

// RefreshSettings configures the background updater.
type RefreshSettings struct {
	Interval       time.Duration // time between scheduled refreshes
	MaxAge         time.Duration // age after which the database is stale
	ManualInterval time.Duration // minimum spacing of API triggered refreshes
}

// CacheSettings configures the callsign lookup cache.
type CacheSettings struct {
	TTL     time.Duration
	Cleanup time.Duration // janitor interval, 0 disables
}

// APISettings configures the HTTP server.
type APISettings struct {
	Enabled bool
	Listen  string // host:port
}

// MetricsSettings configures the Prometheus endpoint.
type MetricsSettings struct {
	Enabled bool // expose /metrics on the API server
}

// Settings contains all configuration options for hamkit.
type Settings struct {
	Debug    bool                 // true to enable debug logging
	Logging  logger.LoggingConfig // central logger outputs and levels
	Sources  SourcesSettings
	Snapshot SnapshotSettings
	Refresh  RefreshSettings
	Cache    CacheSettings
	API      APISettings
	Metrics  MetricsSettings
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads defaults, the configuration file and environment overrides into
// a validated Settings. configFile overrides the search paths when set. A
// missing config file is not an error.
func Load(configFile string) (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	if err := initViper(configFile); err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryConfiguration).
			Context("operation", "unmarshal").
			Build()
	}

	if settings.Debug {
		settings.Logging.DefaultLevel = "debug"
		if settings.Logging.Console != nil {
			settings.Logging.Console.Level = "debug"
		}
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, errors.New(err).
			Category(errors.CategoryValidation).
			Context("operation", "validate").
			Build()
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper registers defaults and environment bindings, then reads the
// config file if one exists.
func initViper(configFile string) error {
	setDefaultConfig()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()
	if err := bindEnvVars(); err != nil {
		GetLogger().Warn("ignoring invalid environment overrides", logger.Error(err))
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		paths, err := GetDefaultConfigPaths()
		if err != nil {
			return err
		}
		for _, path := range paths {
			viper.AddConfigPath(path)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			GetLogger().Debug("no config file found, using defaults")
			return nil
		}
		return errors.New(err).
			Category(errors.CategoryConfiguration).
			Context("operation", "read-config").
			Context("config_file", configFile).
			Build()
	}

	GetLogger().Debug("config file loaded", logger.String("path", viper.ConfigFileUsed()))
	return nil
}

// GetSettings returns the settings from the last successful Load.
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}
