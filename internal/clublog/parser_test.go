package clublog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<clublog date="2024-03-14T08:00:02+00:00" xmlns="https://clublog.org/cty/v1.2">
<entities>
<entity><adif>1</adif><name>CANADA</name><prefix>VE</prefix><deleted>FALSE</deleted><cqz>5</cqz><cont>NA</cont><long>-80.00</long><lat>45.00</lat></entity>
<entity><adif>2</adif><name>ABU AIL IS</name><prefix>A1</prefix><deleted>TRUE</deleted><cqz>21</cqz><cont>AS</cont><long>42.50</long><lat>15.70</lat><end>1991-03-30T23:59:59+00:00</end></entity>
<entity><adif>x</adif><name>BROKEN</name><prefix>ZZ</prefix><cont>EU</cont></entity>
</entities>
<exceptions>
<exception record="1"><call>VE1ABC</call><entity>CANADA</entity><adif>1</adif><cqz>2</cqz><cont>NA</cont><long>-60.00</long><lat>46.00</lat><start>2010-01-01T00:00:00+00:00</start><end>2012-12-31T23:59:59+00:00</end></exception>
<exception record="2"><call></call><adif>1</adif></exception>
</exceptions>
<prefixes>
<prefix record="1"><call>VE</call><entity>CANADA</entity><adif>1</adif><cqz>5</cqz><cont>NA</cont><long>-80.00</long><lat>45.00</lat></prefix>
<prefix record="2"><call>A1</call><entity>ABU AIL IS</entity><adif>2</adif><cqz>21</cqz><cont>AS</cont><end>1991-03-30T23:59:59+00:00</end></prefix>
</prefixes>
<invalid_operations><invalid record="1"><call>VE0XX</call></invalid></invalid_operations>
<zone_exceptions><zone_exception record="1"><call>VE2XX</call><zone>2</zone></zone_exception></zone_exceptions>
</clublog>`

func testParser(buf *bytes.Buffer) *Parser {
	return &Parser{Logger: logger.NewSlogLogger(buf, logger.LogLevelDebug, time.UTC)}
}

func assertSample(t *testing.T, db *country.Database) {
	t.Helper()

	assert.True(t, db.Timestamp.Equal(time.Date(2024, 3, 14, 8, 0, 2, 0, time.UTC)))
	require.Len(t, db.Entities, 2)

	ve := db.Entities[1]
	assert.Equal(t, "CANADA", ve.Name)
	assert.Equal(t, "VE", ve.Prefix)
	assert.Equal(t, "NA", ve.Continent)
	assert.Equal(t, uint8(5), *ve.CQZone)
	assert.Nil(t, ve.ITUZone)
	assert.InDelta(t, -80.0, *ve.Lon, 0.001)
	assert.False(t, ve.Deleted)

	a1 := db.Entities[2]
	assert.True(t, a1.Deleted)
	require.NotNil(t, a1.ValidTo)
	assert.Equal(t, 1991, a1.ValidTo.Year())

	exc := db.Prefixes["VE1ABC"]
	require.Len(t, exc, 1)
	assert.True(t, exc[0].Exact)
	assert.Equal(t, uint8(2), *exc[0].CQZone)
	assert.Equal(t, "NA", *exc[0].Continent)
	require.NotNil(t, exc[0].ValidFrom)

	pfx := db.Prefixes["VE"]
	require.Len(t, pfx, 1)
	assert.False(t, pfx[0].Exact)

	assert.NotContains(t, db.Prefixes, "VE0XX")
	assert.NotContains(t, db.Prefixes, "VE2XX")

	e, ok := db.Lookup("VE1ABC", time.Date(2011, 6, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, uint8(2), *e.CQZone)

	e, ok = db.Lookup("VE1ABC", time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, uint8(5), *e.CQZone, "expired exception falls through to VE")
}

func TestParsePlainXML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	db, err := testParser(&buf).Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)

	assertSample(t, db)
	assert.Contains(t, buf.String(), "skipped incomplete club log entries")
}

func TestParseGzipXML(t *testing.T) {
	t.Parallel()

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(sampleXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var buf bytes.Buffer
	db, err := testParser(&buf).Parse(&compressed)
	require.NoError(t, err)

	assertSample(t, db)
}

func TestParseRejectsNonFiniteCoordinates(t *testing.T) {
	t.Parallel()

	doc := `<clublog date="2024-03-14T08:00:02+00:00"><entities>
<entity><adif>1</adif><name>CANADA</name><prefix>VE</prefix><cont>NA</cont><lat>NaN</lat><long>+Inf</long></entity>
</entities></clublog>`

	var buf bytes.Buffer
	db, err := testParser(&buf).Parse(strings.NewReader(doc))
	require.NoError(t, err)

	ve := db.Entities[1]
	assert.Nil(t, ve.Lat)
	assert.Nil(t, ve.Lon)

	_, err = country.MarshalSnapshot(db)
	require.NoError(t, err)
}

func TestParseMissingDateUsesClock(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &Parser{
		Logger: logger.NewSlogLogger(nil, logger.LogLevelError, time.UTC),
		Now:    func() time.Time { return now },
	}

	db, err := p.Parse(strings.NewReader(`<clublog><entities></entities></clublog>`))
	require.NoError(t, err)
	assert.True(t, db.Timestamp.Equal(now))
	assert.Empty(t, db.Entities)
}

func TestParseStructuralErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"no root", []byte(`<other><entities/></other>`)},
		{"broken xml", []byte(`<clublog><entities><entity>`)},
		{"bad gzip", []byte{0x1f, 0x8b, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(bytes.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.IsCategory(err, errors.CategoryFileParsing))
		})
	}
}

func TestURL(t *testing.T) {
	t.Parallel()

	u, err := URL("", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.clublog.org/cty.php?api=abc123", u)

	u, err = URL("http://localhost:8080/cty.php?x=1", "k")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/cty.php?api=k&x=1", u)
}
