package band

import (
	"sync"

	"github.com/tphakala/hamkit/internal/logger"
	"github.com/tphakala/hamkit/internal/rangetree"
)

// Service answers band and band-plan queries. The backing trees are built
// once, on first use, and are read-only afterwards, so a Service may be
// shared freely between goroutines.
type Service struct {
	plan Plan

	once     sync.Once
	bands    *rangetree.IntervalTree[Frequency, bandLimits]
	segments *rangetree.IntervalTree[Frequency, Segment]
	markers  *rangetree.PointTree[Frequency, Marker]
}

// NewService returns a Service for the given band plan.
func NewService(plan Plan) *Service {
	return &Service{plan: plan}
}

var (
	defaultService     *Service
	defaultServiceOnce sync.Once
)

// Default returns a process-wide Service for IARU Region 1. Components should
// prefer an injected Service; Default exists for command-line helpers.
func Default() *Service {
	defaultServiceOnce.Do(func() {
		defaultService = NewService(IARURegion1)
	})
	return defaultService
}

func (s *Service) build() {
	s.once.Do(func() {
		s.bands = rangetree.BuildIntervalTree(bandTable, func(b bandLimits) Range { return b.rng })
		s.segments = rangetree.BuildIntervalTree(s.plan.Segments, segmentRange)
		s.markers = rangetree.BuildPointTree(s.plan.Markers, markerFrequency)

		GetLogger().Debug("band trees built",
			logger.String("region", s.plan.Region),
			logger.Int("bands", s.bands.Len()),
			logger.Int("segments", s.segments.Len()),
			logger.Int("markers", s.markers.Len()))
	})
}

// Region returns the name of the band plan served.
func (s *Service) Region() string {
	return s.plan.Region
}

// FindBand returns the band containing f.
func (s *Service) FindBand(f Frequency) (Band, bool) {
	s.build()
	found := s.bands.SearchPoint(f)
	if len(found) == 0 {
		return BandNone, false
	}
	return found[0].band, true
}

// BandsIn returns every band overlapping r, in ascending order.
func (s *Service) BandsIn(r Range) []Band {
	s.build()
	found := s.bands.SearchRange(r)
	out := make([]Band, 0, len(found))
	for _, b := range found {
		out = append(out, b.band)
	}
	return out
}

// SegmentsAt returns the band-plan segments containing f.
func (s *Service) SegmentsAt(f Frequency) []Segment {
	s.build()
	return s.segments.SearchPoint(f)
}

// SegmentsOverlapping returns the band-plan segments overlapping r.
func (s *Service) SegmentsOverlapping(r Range) []Segment {
	s.build()
	return s.segments.SearchRange(r)
}

// MarkersIn returns the notable frequencies inside r in ascending order.
func (s *Service) MarkersIn(r Range) []Marker {
	s.build()
	return s.markers.SearchRange(r)
}

// Band returns the band containing f using the default Service.
func (f Frequency) Band() (Band, bool) {
	return Default().FindBand(f)
}
