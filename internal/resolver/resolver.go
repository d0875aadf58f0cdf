// Package resolver serves callsign and frequency lookups from the published
// country database and the band plan, and keeps the database up to date.
package resolver

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/tphakala/hamkit/internal/band"
	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
	"github.com/tphakala/hamkit/internal/observability/metrics"
)

// Defaults for zero Config values.
const (
	DefaultRefreshInterval = 24 * time.Hour
	DefaultMaxAge          = 7 * 24 * time.Hour
	DefaultCacheTTL        = 10 * time.Minute
	DefaultRetain          = 10
	DefaultManualInterval  = time.Minute
)

// cacheBucket is the time resolution of cached callsign lookups.
const cacheBucket = time.Minute

// Config controls refresh and caching.
type Config struct {
	Sources         []Source
	RefreshInterval time.Duration
	MaxAge          time.Duration
	CacheTTL        time.Duration
	// CacheCleanup of zero disables the cache janitor goroutine.
	CacheCleanup time.Duration
	// Retain is the number of archived snapshots kept after a refresh.
	Retain int
	// ManualInterval is the minimum spacing of TriggerRefresh calls.
	ManualInterval time.Duration
}

// Dependencies are the collaborators of a Resolver. Only Fetcher is needed
// for refreshes; everything else is optional.
type Dependencies struct {
	Bands   *band.Service
	Fetcher Fetcher
	Store   SnapshotStore
	Archive SnapshotArchive
	Metrics *metrics.ResolverMetrics
	Logger  logger.Logger
	Now     func() time.Time
}

type cachedLookup struct {
	entity country.Entity
	found  bool
}

// Resolver answers lookups against an atomically published database.
type Resolver struct {
	config  Config
	bands   *band.Service
	fetcher Fetcher
	store   SnapshotStore
	archive SnapshotArchive
	metrics *metrics.ResolverMetrics
	log     logger.Logger
	now     func() time.Time

	db         atomic.Pointer[country.Database]
	generation atomic.Uint64
	cache      *cache.Cache
	limiter    *rate.Limiter

	// refreshMu serialises refreshes.
	refreshMu sync.Mutex

	// statusMu guards the refresh outcome below; it is never held across I/O.
	statusMu    sync.Mutex
	sources     map[string]*sourceState
	lastRefresh time.Time
	lastErr     error

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a Resolver publishing an empty database.
func New(cfg Config, deps Dependencies) *Resolver {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultMaxAge
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Retain <= 0 {
		cfg.Retain = DefaultRetain
	}
	if cfg.ManualInterval <= 0 {
		cfg.ManualInterval = DefaultManualInterval
	}
	if deps.Bands == nil {
		deps.Bands = band.Default()
	}
	if deps.Logger == nil {
		deps.Logger = GetLogger()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	r := &Resolver{
		config:  cfg,
		bands:   deps.Bands,
		fetcher: deps.Fetcher,
		store:   deps.Store,
		archive: deps.Archive,
		metrics: deps.Metrics,
		log:     deps.Logger,
		now:     deps.Now,
		cache:   cache.New(cfg.CacheTTL, cfg.CacheCleanup),
		limiter: rate.NewLimiter(rate.Every(cfg.ManualInterval), 1),
		sources: make(map[string]*sourceState),
	}
	r.db.Store(country.Empty())
	return r
}

// Database returns the published database. It is never nil.
func (r *Resolver) Database() *country.Database {
	return r.db.Load()
}

// Publish replaces the published database and drops cached lookups.
// A nil database is ignored.
func (r *Resolver) Publish(db *country.Database) {
	if db == nil {
		r.log.Warn("ignoring nil database")
		return
	}
	r.db.Store(db)
	r.generation.Add(1)
	r.cache.Flush()

	stats := db.Stats()
	if r.metrics != nil {
		r.metrics.RecordPublish(stats.Entities, stats.Records, stats.Timestamp)
	}
	r.log.Info("database published",
		logger.Time("timestamp", stats.Timestamp),
		logger.Int("entities", stats.Entities),
		logger.Int("groups", stats.Groups),
		logger.Int("records", stats.Records))
}

// LookupCallsign resolves a callsign at the given instant. The callsign is
// trimmed and upper-cased first.
func (r *Resolver) LookupCallsign(callsign string, at time.Time) (country.Entity, bool) {
	start := time.Now()
	call := country.NormalizeCallsign(callsign)
	key := strconv.FormatUint(r.generation.Load(), 10) + "|" + call + "|" +
		strconv.FormatInt(at.Truncate(cacheBucket).Unix(), 10)

	if v, ok := r.cache.Get(key); ok {
		if hit, ok := v.(cachedLookup); ok {
			r.recordCache(true)
			r.recordLookup(metrics.LookupCallsign, hit.found, start)
			return hit.entity, hit.found
		}
	}
	r.recordCache(false)

	entity, found := r.Database().Lookup(call, at)
	r.cache.SetDefault(key, cachedLookup{entity: entity, found: found})
	r.recordLookup(metrics.LookupCallsign, found, start)
	return entity, found
}

// LookupID returns the entity with the given id. Ids missing from the
// published database resolve to the static entity table with name and
// deleted flag only.
func (r *Resolver) LookupID(id country.DXCC) (country.Entity, bool) {
	start := time.Now()
	entity, found := r.Database().LookupByID(id)
	if !found && id.Known() {
		entity, found = country.Entity{ID: id, Name: id.Name(), Deleted: id.Deleted()}, true
	}
	r.recordLookup(metrics.LookupEntity, found, start)
	return entity, found
}

// Band returns the band containing f.
func (r *Resolver) Band(f band.Frequency) (band.Band, bool) {
	start := time.Now()
	b, found := r.bands.FindBand(f)
	r.recordLookup(metrics.LookupBand, found, start)
	return b, found
}

// Segments returns the band plan segments overlapping rng.
func (r *Resolver) Segments(rng band.Range) []band.Segment {
	start := time.Now()
	segs := r.bands.SegmentsOverlapping(rng)
	r.recordLookup(metrics.LookupPlan, len(segs) > 0, start)
	return segs
}

// Markers returns the band plan markers inside rng.
func (r *Resolver) Markers(rng band.Range) []band.Marker {
	return r.bands.MarkersIn(rng)
}

// Bands returns the band service used for frequency lookups.
func (r *Resolver) Bands() *band.Service {
	return r.bands
}

// Stale reports whether the published database is older than the configured
// maximum age. A database without a timestamp is always stale.
func (r *Resolver) Stale(now time.Time) bool {
	db := r.Database()
	if db.Timestamp.IsZero() {
		return true
	}
	return db.Age(now) > r.config.MaxAge
}

// Restore publishes the persisted snapshot, trying the snapshot file first
// and the archive second. It reports whether anything was published.
func (r *Resolver) Restore(ctx context.Context) (bool, error) {
	if r.store != nil {
		db, err := r.store.Load()
		if err != nil {
			r.log.Warn("snapshot file unreadable", logger.Error(err))
		} else if db != nil {
			r.Publish(db)
			return true, nil
		}
	}

	if r.archive != nil {
		db, _, err := r.archive.Latest(ctx, SourceMerged)
		switch {
		case errors.IsNotFound(err):
		case err != nil:
			return false, err
		default:
			r.Publish(db)
			return true, nil
		}
	}

	return false, nil
}

// Status is a point-in-time summary of the resolver.
type Status struct {
	Stats       country.Stats  `json:"database" yaml:"database"`
	Age         string         `json:"age" yaml:"age"`
	Stale       bool           `json:"stale" yaml:"stale"`
	LastRefresh time.Time      `json:"lastRefresh,omitzero" yaml:"last_refresh,omitempty"`
	LastError   string         `json:"lastError,omitempty" yaml:"last_error,omitempty"`
	Sources     []SourceStatus `json:"sources" yaml:"sources"`
	Region      string         `json:"bandPlan" yaml:"band_plan"`
}

// Status reports the published database and the last refresh outcome.
func (r *Resolver) Status() Status {
	now := r.now()
	db := r.Database()

	st := Status{
		Stats:  db.Stats(),
		Age:    db.Age(now).Truncate(time.Second).String(),
		Stale:  r.Stale(now),
		Region: r.bands.Region(),
	}

	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	st.LastRefresh = r.lastRefresh
	if r.lastErr != nil {
		st.LastError = r.lastErr.Error()
	}
	for _, src := range r.config.Sources {
		ss := SourceStatus{Name: src.Name}
		if state, ok := r.sources[src.Name]; ok {
			ss.LastModified = state.lastModified
			ss.FetchedAt = state.fetchedAt
			if state.err != nil {
				ss.LastError = state.err.Error()
			}
		}
		st.Sources = append(st.Sources, ss)
	}
	return st
}

func (r *Resolver) recordLookup(kind string, found bool, start time.Time) {
	if r.metrics != nil {
		r.metrics.RecordLookup(kind, found, time.Since(start))
	}
}

func (r *Resolver) recordCache(hit bool) {
	if r.metrics == nil {
		return
	}
	if hit {
		r.metrics.RecordCacheHit()
	} else {
		r.metrics.RecordCacheMiss()
	}
}
