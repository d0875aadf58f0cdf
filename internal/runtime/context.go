// Package runtime assembles the resolver and its collaborators from settings.
package runtime

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/tphakala/hamkit/internal/buildinfo"
	"github.com/tphakala/hamkit/internal/clublog"
	"github.com/tphakala/hamkit/internal/conf"
	"github.com/tphakala/hamkit/internal/datastore"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
	"github.com/tphakala/hamkit/internal/observability"
	"github.com/tphakala/hamkit/internal/resolver"
	"github.com/tphakala/hamkit/internal/snapshot"
	"github.com/tphakala/hamkit/internal/source"
)

// Context is the running application: settings plus the wired resolver.
type Context struct {
	Build    *buildinfo.Context
	Settings *conf.Settings
	Resolver *resolver.Resolver
	Metrics  *observability.Metrics // nil when metrics are disabled
	Store    *snapshot.FileStore
	Archive  *datastore.Archive // nil when archiving is disabled

	log logger.Logger
}

// New wires the resolver described by settings. Nothing is fetched or
// loaded yet.
func New(settings *conf.Settings, build *buildinfo.Context) (*Context, error) {
	c := &Context{Build: build}
	if err := c.Setup(settings); err != nil {
		return nil, err
	}
	return c, nil
}

// Setup wires the collaborators into a Context created before the settings
// were known, as the CLI does.
func (c *Context) Setup(settings *conf.Settings) error {
	log := logger.Global().Module("runtime")
	c.Settings = settings
	c.log = log

	if settings.Metrics.Enabled {
		m, err := observability.NewMetrics()
		if err != nil {
			return err
		}
		m.CountErrors()
		c.Metrics = m
	}

	sources, err := buildSources(settings)
	if err != nil {
		return err
	}

	userAgent := settings.Sources.UserAgent
	if userAgent == "" {
		userAgent = c.Build.UserAgent()
	}
	fetcher := source.NewFetcher(nil, source.Config{
		Timeout:    settings.Sources.Timeout,
		Retries:    settings.Sources.Retries,
		RetryDelay: settings.Sources.RetryDelay,
		UserAgent:  userAgent,
	}, nil)

	deps := resolver.Dependencies{Fetcher: fetcher}
	if settings.Snapshot.Path != "" {
		c.Store = snapshot.NewFileStore(settings.Snapshot.Path, nil)
		deps.Store = c.Store
	}
	if settings.Snapshot.Archive != "" {
		archive, err := openArchive(settings.Snapshot.Archive)
		if err != nil {
			return err
		}
		c.Archive = archive
		deps.Archive = archive
	}
	if c.Metrics != nil {
		deps.Metrics = c.Metrics.Resolver
	}

	c.Resolver = resolver.New(resolver.Config{
		Sources:         sources,
		RefreshInterval: settings.Refresh.Interval,
		MaxAge:          settings.Refresh.MaxAge,
		CacheTTL:        settings.Cache.TTL,
		CacheCleanup:    settings.Cache.Cleanup,
		Retain:          settings.Snapshot.Retain,
		ManualInterval:  settings.Refresh.ManualInterval,
	}, deps)

	log.Debug("runtime assembled",
		logger.Int("sources", len(sources)),
		logger.Bool("archive", c.Archive != nil),
		logger.Bool("metrics", c.Metrics != nil))
	return nil
}

func buildSources(settings *conf.Settings) ([]resolver.Source, error) {
	var sources []resolver.Source
	if cf := settings.Sources.CountryFile; cf.Enabled {
		sources = append(sources, resolver.CountryFileSource(cf.URL, nil, nil))
	}
	if cl := settings.Sources.ClubLog; cl.Enabled {
		u, err := clublog.URL(cl.URL, cl.APIKey)
		if err != nil {
			return nil, errors.New(err).
				Category(errors.CategoryConfiguration).
				Context("setting", "sources.clublog.url").
				Build()
		}
		sources = append(sources, resolver.ClubLogSource(u, nil, nil))
	}
	return sources, nil
}

func openArchive(path string) (*datastore.Archive, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.New(err).
				Category(errors.CategoryFileIO).
				Context("path", path).
				Build()
		}
	}
	return datastore.Open(path, nil)
}

// EnsureDatabase publishes the persisted snapshot and refreshes it when it
// is missing or stale. A failed refresh is only an error when there is no
// database to fall back to.
func (c *Context) EnsureDatabase(ctx context.Context) error {
	restored, err := c.Resolver.Restore(ctx)
	if err != nil {
		c.log.Warn("could not restore snapshot", logger.Error(err))
	}

	if restored && !c.Resolver.Stale(time.Now()) {
		return nil
	}

	if err := c.Resolver.Refresh(ctx); err != nil {
		if restored {
			c.log.Warn("using stale database, refresh failed", logger.Error(err))
			return nil
		}
		return err
	}
	return nil
}

// Close stops the updater and releases the archive.
func (c *Context) Close() error {
	if c.Resolver != nil {
		c.Resolver.Stop()
	}
	if c.Archive != nil {
		return c.Archive.Close()
	}
	return nil
}
