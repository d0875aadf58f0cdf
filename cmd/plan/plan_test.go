package plan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/hamkit/cmd/output"
	"github.com/tphakala/hamkit/internal/band"
)

type planResolver struct{ svc *band.Service }

func (p planResolver) Segments(rng band.Range) []band.Segment {
	return p.svc.SegmentsOverlapping(rng)
}

func (p planResolver) Markers(rng band.Range) []band.Marker { return p.svc.MarkersIn(rng) }

func (p planResolver) Bands() *band.Service { return p.svc }

func TestResolve(t *testing.T) {
	t.Parallel()
	res := planResolver{band.Default()}

	r, err := Resolve(res, "14.070", "14.080")
	require.NoError(t, err)
	assert.Equal(t, []band.Band{band.Band20m}, r.Bands)
	require.NotEmpty(t, r.Segments)
	require.Len(t, r.Markers, 1)
	assert.Equal(t, band.Frequency(14_074_000), r.Markers[0].Frequency)

	_, err = Resolve(res, "14.1", "14.0")
	require.Error(t, err)

	_, err = Resolve(res, "x", "14.0")
	require.Error(t, err)
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	r, err := Resolve(planResolver{band.Default()}, "14.070", "14.080")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, output.Text, r))
	assert.Contains(t, buf.String(), "14,070,000 Hz - 14,080,000 Hz: 1 bands")
	assert.Contains(t, buf.String(), "FT8")
}
