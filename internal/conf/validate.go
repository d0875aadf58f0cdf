// conf/validate.go

package conf

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"
	"time"
)

// minRefreshInterval keeps scheduled refreshes polite to the data providers.
const minRefreshInterval = time.Hour

var logLevels = []string{"trace", "debug", "info", "warn", "error"}

func isLogLevel(s string) bool {
	return slices.Contains(logLevels, strings.ToLower(s))
}

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %s", strings.Join(ve.Errors, "; "))
}

// ValidateSettings validates the entire Settings struct
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	ve.Errors = append(ve.Errors, validateLoggingSettings(settings)...)
	ve.Errors = append(ve.Errors, validateSourcesSettings(&settings.Sources)...)
	ve.Errors = append(ve.Errors, validateSnapshotSettings(&settings.Snapshot)...)
	ve.Errors = append(ve.Errors, validateRefreshSettings(&settings.Refresh)...)
	ve.Errors = append(ve.Errors, validateCacheSettings(&settings.Cache)...)
	ve.Errors = append(ve.Errors, validateAPISettings(&settings.API)...)

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateLoggingSettings(settings *Settings) []string {
	var errs []string
	if !isLogLevel(settings.Logging.DefaultLevel) {
		errs = append(errs, fmt.Sprintf("logging.default_level %q is not one of %s",
			settings.Logging.DefaultLevel, strings.Join(logLevels, ", ")))
	}
	if settings.Logging.FileOutput != nil && settings.Logging.FileOutput.Enabled && settings.Logging.FileOutput.Path == "" {
		errs = append(errs, "logging.file_output.path is required when file output is enabled")
	}
	return errs
}

func validateSourcesSettings(settings *SourcesSettings) []string {
	var errs []string

	if settings.Timeout <= 0 {
		errs = append(errs, "sources.timeout must be positive")
	}
	if settings.Retries < 1 {
		errs = append(errs, "sources.retries must be at least 1")
	}
	if settings.RetryDelay < 0 {
		errs = append(errs, "sources.retrydelay must not be negative")
	}

	if settings.CountryFile.Enabled {
		if err := validateHTTPURL(settings.CountryFile.URL); err != nil {
			errs = append(errs, fmt.Sprintf("sources.countryfile.url: %v", err))
		}
	}

	if settings.ClubLog.Enabled {
		if err := validateHTTPURL(settings.ClubLog.URL); err != nil {
			errs = append(errs, fmt.Sprintf("sources.clublog.url: %v", err))
		}
		if strings.TrimSpace(settings.ClubLog.APIKey) == "" {
			errs = append(errs, "sources.clublog.apikey is required when Club Log is enabled")
		}
	}

	return errs
}

func validateSnapshotSettings(settings *SnapshotSettings) []string {
	var errs []string
	if settings.Retain < 1 {
		errs = append(errs, "snapshot.retain must be at least 1")
	}
	if settings.Archive != "" && settings.Archive == settings.Path {
		errs = append(errs, "snapshot.archive must differ from snapshot.path")
	}
	return errs
}

func validateRefreshSettings(settings *RefreshSettings) []string {
	var errs []string
	if settings.Interval < minRefreshInterval {
		errs = append(errs, fmt.Sprintf("refresh.interval must be at least %s", minRefreshInterval))
	}
	if settings.MaxAge <= 0 {
		errs = append(errs, "refresh.maxage must be positive")
	}
	if settings.ManualInterval < 0 {
		errs = append(errs, "refresh.manualinterval must not be negative")
	}
	return errs
}

func validateCacheSettings(settings *CacheSettings) []string {
	var errs []string
	if settings.TTL < 0 {
		errs = append(errs, "cache.ttl must not be negative")
	}
	if settings.Cleanup < 0 {
		errs = append(errs, "cache.cleanup must not be negative")
	}
	return errs
}

func validateAPISettings(settings *APISettings) []string {
	if !settings.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(settings.Listen); err != nil {
		return []string{fmt.Sprintf("api.listen %q: %v", settings.Listen, err)}
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is missing")
	}
	return nil
}
