// Package metrics provides Prometheus collectors for the resolver and its API.
package metrics

// Status label values
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusNotModified = "not_modified"
	StatusSkipped     = "skipped"
)

// Lookup kinds
const (
	LookupCallsign = "callsign"
	LookupEntity   = "entity"
	LookupBand     = "band"
	LookupPlan     = "plan"
)

// Lookup results
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
)

// Histogram bucket parameters
const (
	// BucketStart10us is the starting bucket for lookups (10µs to ~5ms range).
	BucketStart10us = 0.00001
	// BucketStart100us is the starting bucket for HTTP requests (100µs to ~200ms range).
	BucketStart100us = 0.0001
	// BucketStart100B is the starting bucket for response sizes (100B to ~10MB range).
	BucketStart100B = 100
	// BucketStart10ms is the starting bucket for refreshes (10ms to ~40s range).
	BucketStart10ms = 0.01
	// BucketFactor2 is the exponential growth factor for histogram buckets.
	BucketFactor2 = 2
	// BucketFactor10 grows buckets by an order of magnitude.
	BucketFactor10 = 10
	// BucketCount6 defines 6 exponential buckets.
	BucketCount6 = 6
	// BucketCount10 defines 10 exponential buckets.
	BucketCount10 = 10
	// BucketCount12 defines 12 exponential buckets.
	BucketCount12 = 12
)
