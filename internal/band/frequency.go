package band

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/rangetree"
)

// Frequency is a radio frequency in Hz.
type Frequency uint64

// Range is a closed frequency interval.
type Range = rangetree.Range[Frequency]

// NewRange returns the closed interval [lower, upper].
func NewRange(lower, upper Frequency) Range {
	return rangetree.NewRange(lower, upper)
}

// Common multipliers.
const (
	KHz Frequency = 1_000
	MHz Frequency = 1_000_000
	GHz Frequency = 1_000_000_000
)

// ParseMHz parses a decimal megahertz value such as "14.074" into a Frequency,
// rounding to the nearest Hz.
func ParseMHz(s string) (Frequency, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New(err).
			Component("band").
			Category(errors.CategoryValidation).
			Context("input", s).
			Build()
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Newf("frequency out of range: %q", s).
			Component("band").
			Category(errors.CategoryValidation).
			Build()
	}
	return Frequency(math.Round(v * 1e6)), nil
}

// MHzValue returns the frequency in megahertz.
func (f Frequency) MHzValue() float64 {
	return float64(f) / 1e6
}

// String formats the frequency with the largest unit that keeps the value at
// or above one, using three decimals.
func (f Frequency) String() string {
	switch {
	case f < MHz:
		return fmt.Sprintf("%.3f kHz", float64(f)/1e3)
	case f < GHz:
		return fmt.Sprintf("%.3f MHz", float64(f)/1e6)
	default:
		return fmt.Sprintf("%.3f GHz", float64(f)/1e9)
	}
}
