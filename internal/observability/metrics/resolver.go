package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ResolverMetrics contains Prometheus metrics for callsign and frequency resolution
type ResolverMetrics struct {
	registry *prometheus.Registry

	// Lookup metrics
	lookupsTotal          *prometheus.CounterVec
	lookupDurationSeconds *prometheus.HistogramVec
	cacheHitsTotal        prometheus.Counter
	cacheMissesTotal      prometheus.Counter

	// Refresh metrics
	refreshTotal           *prometheus.CounterVec
	refreshDurationSeconds prometheus.Histogram
	sourceFetchTotal       *prometheus.CounterVec
	sourceBytes            *prometheus.GaugeVec

	// Database metrics
	databaseEntities  prometheus.Gauge
	databaseRecords   prometheus.Gauge
	databaseTimestamp prometheus.Gauge
	publishTotal      prometheus.Counter

	// Errors built anywhere in the process, by component and category
	errorsTotal *prometheus.CounterVec
}

// NewResolverMetrics creates and registers new resolver metrics
func NewResolverMetrics(registry *prometheus.Registry) (*ResolverMetrics, error) {
	m := &ResolverMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ResolverMetrics) initMetrics() {
	m.lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hamkit_lookups_total",
			Help: "Total number of lookups",
		},
		[]string{"kind", "result"}, // kind: callsign, entity, band, plan; result: found, not_found
	)

	m.lookupDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hamkit_lookup_duration_seconds",
			Help:    "Time taken to resolve a lookup",
			Buckets: prometheus.ExponentialBuckets(BucketStart10us, BucketFactor2, BucketCount10),
		},
		[]string{"kind"},
	)

	m.cacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hamkit_lookup_cache_hits_total",
		Help: "Total number of callsign lookups served from cache",
	})

	m.cacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hamkit_lookup_cache_misses_total",
		Help: "Total number of callsign lookups that missed the cache",
	})

	m.refreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hamkit_refresh_total",
			Help: "Total number of database refresh attempts",
		},
		[]string{"status"},
	)

	m.refreshDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hamkit_refresh_duration_seconds",
		Help:    "Time taken to fetch, parse and publish a database",
		Buckets: prometheus.ExponentialBuckets(BucketStart10ms, BucketFactor2, BucketCount12),
	})

	m.sourceFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hamkit_source_fetch_total",
			Help: "Total number of source downloads",
		},
		[]string{"source", "status"}, // status: success, error, not_modified
	)

	m.sourceBytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hamkit_source_last_bytes",
			Help: "Size of the last downloaded document per source",
		},
		[]string{"source"},
	)

	m.databaseEntities = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hamkit_database_entities",
		Help: "Number of entities in the published database",
	})

	m.databaseRecords = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hamkit_database_prefix_records",
		Help: "Number of prefix records in the published database",
	})

	m.databaseTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hamkit_database_timestamp_seconds",
		Help: "Timestamp of the published database as Unix time",
	})

	m.publishTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hamkit_database_publish_total",
		Help: "Total number of databases published",
	})

	m.errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hamkit_errors_total",
			Help: "Total number of errors by component and category",
		},
		[]string{"component", "category"},
	)
}

// Describe implements the Collector interface
func (m *ResolverMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.lookupsTotal.Describe(ch)
	m.lookupDurationSeconds.Describe(ch)
	m.cacheHitsTotal.Describe(ch)
	m.cacheMissesTotal.Describe(ch)
	m.refreshTotal.Describe(ch)
	m.refreshDurationSeconds.Describe(ch)
	m.sourceFetchTotal.Describe(ch)
	m.sourceBytes.Describe(ch)
	m.databaseEntities.Describe(ch)
	m.databaseRecords.Describe(ch)
	m.databaseTimestamp.Describe(ch)
	m.publishTotal.Describe(ch)
	m.errorsTotal.Describe(ch)
}

// Collect implements the Collector interface
func (m *ResolverMetrics) Collect(ch chan<- prometheus.Metric) {
	m.lookupsTotal.Collect(ch)
	m.lookupDurationSeconds.Collect(ch)
	m.cacheHitsTotal.Collect(ch)
	m.cacheMissesTotal.Collect(ch)
	m.refreshTotal.Collect(ch)
	m.refreshDurationSeconds.Collect(ch)
	m.sourceFetchTotal.Collect(ch)
	m.sourceBytes.Collect(ch)
	m.databaseEntities.Collect(ch)
	m.databaseRecords.Collect(ch)
	m.databaseTimestamp.Collect(ch)
	m.publishTotal.Collect(ch)
	m.errorsTotal.Collect(ch)
}

// RecordLookup records a lookup and its duration
func (m *ResolverMetrics) RecordLookup(kind string, found bool, duration time.Duration) {
	result := ResultNotFound
	if found {
		result = ResultFound
	}
	m.lookupsTotal.WithLabelValues(kind, result).Inc()
	m.lookupDurationSeconds.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordCacheHit records a callsign cache hit
func (m *ResolverMetrics) RecordCacheHit() {
	m.cacheHitsTotal.Inc()
}

// RecordCacheMiss records a callsign cache miss
func (m *ResolverMetrics) RecordCacheMiss() {
	m.cacheMissesTotal.Inc()
}

// RecordRefresh records a refresh attempt
func (m *ResolverMetrics) RecordRefresh(status string, duration time.Duration) {
	m.refreshTotal.WithLabelValues(status).Inc()
	m.refreshDurationSeconds.Observe(duration.Seconds())
}

// RecordSourceFetch records a source download
func (m *ResolverMetrics) RecordSourceFetch(source, status string, bytes int) {
	m.sourceFetchTotal.WithLabelValues(source, status).Inc()
	if status == StatusSuccess {
		m.sourceBytes.WithLabelValues(source).Set(float64(bytes))
	}
}

// RecordPublish updates the database gauges
func (m *ResolverMetrics) RecordPublish(entities, records int, timestamp time.Time) {
	m.publishTotal.Inc()
	m.databaseEntities.Set(float64(entities))
	m.databaseRecords.Set(float64(records))
	m.databaseTimestamp.Set(float64(timestamp.Unix()))
}

// RecordError records an error by component and category
func (m *ResolverMetrics) RecordError(component, category string) {
	m.errorsTotal.WithLabelValues(component, category).Inc()
}
