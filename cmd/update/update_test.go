package update

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/hamkit/cmd/output"
	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/resolver"
)

func TestWriteText(t *testing.T) {
	t.Parallel()

	st := resolver.Status{
		Stats: country.Stats{
			Timestamp: time.Date(2024, 3, 14, 8, 0, 2, 0, time.UTC),
			Entities:  346,
			Deleted:   62,
			Records:   7123,
		},
		Sources: []resolver.SourceStatus{
			{Name: resolver.SourceCountryFile},
			{Name: resolver.SourceClubLog, LastError: "timeout"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, output.Text, st))
	assert.Equal(t,
		"database 2024-03-14T08:00:02Z: 346 entities (62 deleted), 7,123 prefix records\n"+
			"  countryfile  ok\n"+
			"  clublog      timeout\n",
		buf.String())
}
