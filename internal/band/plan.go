package band

// SegmentKind classifies a band-plan segment.
type SegmentKind string

// Segment kinds. Segments of different kinds may overlap; a contest-preferred
// or DX-preferred segment is layered over the mode segment it belongs to.
const (
	SegmentCW               SegmentKind = "cw"
	SegmentNarrow           SegmentKind = "narrow"
	SegmentDigital          SegmentKind = "digital"
	SegmentAllModes         SegmentKind = "all-modes"
	SegmentFM               SegmentKind = "fm"
	SegmentBeacon           SegmentKind = "beacon"
	SegmentSatellite        SegmentKind = "satellite"
	SegmentContestPreferred SegmentKind = "contest-preferred"
	SegmentDXPreferred      SegmentKind = "dx-preferred"
)

// MarkerKind classifies a single notable frequency.
type MarkerKind string

// Marker kinds.
const (
	MarkerCalling   MarkerKind = "calling"
	MarkerQRP       MarkerKind = "qrp"
	MarkerEmergency MarkerKind = "emergency"
	MarkerDigital   MarkerKind = "digital"
	MarkerBeacon    MarkerKind = "beacon"
	MarkerSSTV      MarkerKind = "sstv"
)

// Segment is a sub-interval of a band with a usage rule.
type Segment struct {
	Band  Band        `json:"band" yaml:"band"`
	Range Range       `json:"range" yaml:"range"`
	Kind  SegmentKind `json:"kind" yaml:"kind"`
}

// Marker is a single notable frequency within a band.
type Marker struct {
	Band      Band       `json:"band" yaml:"band"`
	Frequency Frequency  `json:"frequency" yaml:"frequency"`
	Kind      MarkerKind `json:"kind" yaml:"kind"`
	Note      string     `json:"note,omitempty" yaml:"note,omitempty"`
}

// Plan is a regional band plan.
type Plan struct {
	Region   string
	Segments []Segment
	Markers  []Marker
}

func segmentRange(s Segment) Range { return s.Range }

func markerFrequency(m Marker) Frequency { return m.Frequency }
