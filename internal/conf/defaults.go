// conf/defaults.go default values for settings
package conf

import (
	"time"

	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("logging.default_level", "info")
	viper.SetDefault("logging.timezone", "Local")
	viper.SetDefault("logging.console.enabled", true)
	viper.SetDefault("logging.console.level", "info")
	viper.SetDefault("logging.file_output.enabled", false)
	viper.SetDefault("logging.file_output.path", "logs/hamkit.log")
	viper.SetDefault("logging.file_output.level", "info")

	viper.SetDefault("sources.timeout", 30*time.Second)
	viper.SetDefault("sources.retries", 3)
	viper.SetDefault("sources.retrydelay", 2*time.Second)
	viper.SetDefault("sources.useragent", "hamkit/1.0")
	viper.SetDefault("sources.countryfile.enabled", true)
	viper.SetDefault("sources.countryfile.url", "https://www.country-files.com/cty/cty.csv")
	viper.SetDefault("sources.clublog.enabled", false)
	viper.SetDefault("sources.clublog.url", "https://cdn.clublog.org/cty.php")
	viper.SetDefault("sources.clublog.apikey", "")

	viper.SetDefault("snapshot.path", "data/country.hkdb")
	viper.SetDefault("snapshot.archive", "")
	viper.SetDefault("snapshot.retain", 10)

	viper.SetDefault("refresh.interval", 24*time.Hour)
	viper.SetDefault("refresh.maxage", 7*24*time.Hour)
	viper.SetDefault("refresh.manualinterval", time.Minute)

	viper.SetDefault("cache.ttl", 10*time.Minute)
	viper.SetDefault("cache.cleanup", 20*time.Minute)

	viper.SetDefault("api.enabled", true)
	viper.SetDefault("api.listen", "127.0.0.1:8073")

	viper.SetDefault("metrics.enabled", true)
}
