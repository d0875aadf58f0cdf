package country

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	y2000 = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	y2010 = time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	y2015 = time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	y2024 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
)

func testEntities() []Entity {
	return []Entity{
		{ID: 1, Prefix: "VE", Name: "Canada", Continent: "NA", CQZone: Ptr[uint8](5), ITUZone: Ptr[uint8](9)},
		{ID: 291, Prefix: "K", Name: "United States", Continent: "NA", CQZone: Ptr[uint8](5), ITUZone: Ptr[uint8](8),
			Lat: Ptr[float32](37.5), Lon: Ptr[float32](-91.9), Timezone: Ptr[float32](5)},
		{ID: 6, Prefix: "KH6", Name: "Hawaii", Continent: "OC", CQZone: Ptr[uint8](31), ITUZone: Ptr[uint8](61)},
		{ID: 246, Prefix: "1A", Name: "Sov Mil Order of Malta", Continent: "EU", Deleted: true},
	}
}

func TestLookupLongestMatch(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{
		{Prefix: "K", EntityID: 291},
		{Prefix: "KH6", EntityID: 6},
	})

	e, ok := db.Lookup("KH6ABC", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(6), e.ID)

	e, ok = db.Lookup("K1ABC", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(291), e.ID)

	e, ok = db.Lookup("KH7XYZ", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(291), e.ID, "KH7 falls back to K")

	_, ok = db.Lookup("VK2ABC", y2024)
	assert.False(t, ok)
}

func TestLookupExactPriority(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{
		{Prefix: "W1AW", Exact: true, EntityID: 1},
		{Prefix: "W", EntityID: 291},
	})

	e, ok := db.Lookup("W1AW", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(1), e.ID)

	e, ok = db.Lookup("W1XYZ", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(291), e.ID)

	e, ok = db.Lookup("W1AWX", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(291), e.ID, "exact record only matches the whole callsign")
}

func TestLookupIgnoresExactRecordsForShorterPrefixes(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{
		{Prefix: "KH6", Exact: true, EntityID: 6},
		{Prefix: "K", EntityID: 291},
	})

	e, ok := db.Lookup("KH6ABC", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(291), e.ID)
}

func TestLookupTemporalValidity(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{
		{Prefix: "KH6", EntityID: 6, ValidFrom: &y2000, ValidTo: &y2010},
		{Prefix: "K", EntityID: 291},
	})

	e, ok := db.Lookup("KH6ABC", time.Date(2005, 3, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, DXCC(6), e.ID)
	require.NotNil(t, e.ValidFrom)
	assert.True(t, e.ValidFrom.Equal(y2000), "window comes from the record")

	e, ok = db.Lookup("KH6ABC", y2015)
	require.True(t, ok)
	assert.Equal(t, DXCC(291), e.ID, "expired record falls through to the shorter prefix")

	only := Build(y2024, testEntities(), []Prefix{
		{Prefix: "KH6", EntityID: 6, ValidFrom: &y2000, ValidTo: &y2010},
	})
	_, ok = only.Lookup("KH6ABC", y2015)
	assert.False(t, ok)
}

func TestLookupValidityBoundsInclusive(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{
		{Prefix: "KH6", EntityID: 6, ValidFrom: &y2000, ValidTo: &y2010},
	})

	_, ok := db.Lookup("KH6A", y2000)
	assert.True(t, ok)
	_, ok = db.Lookup("KH6A", y2010)
	assert.True(t, ok)
	_, ok = db.Lookup("KH6A", y2000.Add(-time.Second))
	assert.False(t, ok)
}

func TestLookupFirstListedWins(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{
		{Prefix: "K", EntityID: 291},
		{Prefix: "K", EntityID: 6},
	})

	e, ok := db.Lookup("K1ABC", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(291), e.ID)
}

func TestLookupOverlay(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{
		{Prefix: "K", EntityID: 291},
		{Prefix: "KL7", EntityID: 291, Continent: Ptr("OC"), CQZone: Ptr[uint8](1), Lat: Ptr[float32](61.4)},
		{Prefix: "1A", EntityID: 246},
	})

	e, ok := db.Lookup("KL7XX", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(291), e.ID)
	assert.Equal(t, "United States", e.Name)
	assert.Equal(t, "KL7", e.Prefix)
	assert.Equal(t, "OC", e.Continent)
	assert.Equal(t, uint8(1), *e.CQZone)
	assert.Equal(t, uint8(8), *e.ITUZone, "no override keeps the entity value")
	assert.InDelta(t, 61.4, *e.Lat, 0.001)
	assert.InDelta(t, -91.9, *e.Lon, 0.001)

	e, ok = db.Lookup("1A0KM", y2024)
	require.True(t, ok)
	assert.True(t, e.Deleted)

	base, ok := db.LookupByID(291)
	require.True(t, ok)
	assert.Equal(t, uint8(5), *base.CQZone, "lookup does not modify stored entities")
}

func TestLookupMissingEntity(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{
		{Prefix: "K", EntityID: 291},
		{Prefix: "KG4", EntityID: 105},
	})

	_, ok := db.Lookup("KG4AB", y2024)
	assert.False(t, ok, "unknown entity is not found rather than falling back")
}

func TestLookupEdgeCases(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{{Prefix: "K", EntityID: 291}})

	_, ok := db.Lookup("", y2024)
	assert.False(t, ok)

	var nilDB *Database
	_, ok = nilDB.Lookup("K1ABC", y2024)
	assert.False(t, ok)
	_, ok = nilDB.LookupByID(291)
	assert.False(t, ok)

	_, ok = db.LookupNow("K1ABC")
	assert.True(t, ok)

	_, ok = db.LookupByID(999)
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	t.Parallel()

	db := Build(y2024,
		[]Entity{{ID: 1, Name: "first"}, {ID: 1, Name: "second"}},
		[]Prefix{
			{Prefix: "VE", EntityID: 1, CQZone: Ptr[uint8](1)},
			{Prefix: "VA", EntityID: 1},
			{Prefix: "VE", EntityID: 1, CQZone: Ptr[uint8](2)},
		})

	assert.Equal(t, "second", db.Entities[1].Name)
	require.Len(t, db.Prefixes["VE"], 2)
	assert.Equal(t, uint8(1), *db.Prefixes["VE"][0].CQZone)
	assert.Equal(t, uint8(2), *db.Prefixes["VE"][1].CQZone)
	assert.Len(t, db.Prefixes["VA"], 1)

	stats := db.Stats()
	assert.Equal(t, 1, stats.Entities)
	assert.Equal(t, 2, stats.Groups)
	assert.Equal(t, 3, stats.Records)
}

func TestMergeEntityPrecedence(t *testing.T) {
	t.Parallel()

	self := Build(y2000, []Entity{
		{ID: 1, Prefix: "VE", Name: "Canada", Continent: "NA", CQZone: Ptr[uint8](14), Lat: Ptr[float32](10)},
		{ID: 2, Name: "Only in self"},
	}, nil)
	other := Build(y2010, []Entity{
		{ID: 1, Name: "Canada (new)", CQZone: Ptr[uint8](27), Deleted: true},
		{ID: 3, Name: "Only in other"},
	}, nil)

	merged := self.Merge(other)

	e := merged.Entities[1]
	assert.Equal(t, uint8(27), *e.CQZone)
	require.NotNil(t, e.Lat)
	assert.InDelta(t, 10, *e.Lat, 0, "absence never overwrites presence")
	assert.Equal(t, "Canada (new)", e.Name)
	assert.True(t, e.Deleted)
	assert.Equal(t, "VE", e.Prefix)
	assert.Equal(t, "NA", e.Continent)

	assert.Equal(t, "Only in self", merged.Entities[2].Name)
	assert.Equal(t, "Only in other", merged.Entities[3].Name)
	assert.True(t, merged.Timestamp.Equal(y2010))
}

func TestMergePrefixCompatibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		selfExact   bool
		otherExact  bool
		wantOverlay bool
	}{
		{"exact over exact", true, true, true},
		{"exact over pattern", false, true, true},
		{"pattern over pattern", false, false, true},
		{"pattern over exact", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			self := Build(y2000, testEntities(), []Prefix{
				{Prefix: "KH6", Exact: tt.selfExact, EntityID: 6, ITUZone: Ptr[uint8](61), Lat: Ptr[float32](21)},
			})
			other := Build(y2010, testEntities(), []Prefix{
				{Prefix: "KH6", Exact: tt.otherExact, EntityID: 6, ITUZone: Ptr[uint8](62)},
			})

			group := self.Merge(other).Prefixes["KH6"]
			require.Len(t, group, 1)
			assert.Equal(t, tt.otherExact, group[0].Exact)
			assert.Equal(t, uint8(62), *group[0].ITUZone)
			if tt.wantOverlay {
				require.NotNil(t, group[0].Lat)
				assert.InDelta(t, 21, *group[0].Lat, 0)
			} else {
				assert.Nil(t, group[0].Lat)
			}
		})
	}
}

func TestMergeKeepsSelfOnlyGroups(t *testing.T) {
	t.Parallel()

	self := Build(y2000, testEntities(), []Prefix{
		{Prefix: "K", EntityID: 291},
		{Prefix: "VE", EntityID: 1},
	})
	other := Build(y2010, testEntities(), []Prefix{
		{Prefix: "K", EntityID: 291, CQZone: Ptr[uint8](4)},
	})

	merged := self.Merge(other)

	assert.Len(t, merged.Prefixes["VE"], 1)
	e, ok := merged.Lookup("VE3ABC", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(1), e.ID)

	e, ok = merged.Lookup("K1ABC", y2024)
	require.True(t, ok)
	assert.Equal(t, uint8(4), *e.CQZone)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	self := Build(y2000, testEntities(), []Prefix{{Prefix: "K", EntityID: 291, Lat: Ptr[float32](1)}})
	other := Build(y2010, []Entity{{ID: 291, Name: "USA"}}, []Prefix{{Prefix: "K", EntityID: 291}})
	selfCopy := Build(y2000, testEntities(), []Prefix{{Prefix: "K", EntityID: 291, Lat: Ptr[float32](1)}})
	otherCopy := Build(y2010, []Entity{{ID: 291, Name: "USA"}}, []Prefix{{Prefix: "K", EntityID: 291}})

	_ = self.Merge(other)

	assert.True(t, self.Equal(selfCopy))
	assert.True(t, other.Equal(otherCopy))
}

func TestMergeEmptyIsIdentity(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{
		{Prefix: "K", EntityID: 291},
		{Prefix: "W1AW", Exact: true, EntityID: 291, ValidFrom: &y2000},
		{Prefix: "KH6", EntityID: 6},
	})

	assert.True(t, db.Merge(Empty()).Equal(db))
	assert.True(t, db.Merge(nil).Equal(db))
	assert.True(t, Empty().Merge(db).Equal(db))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := Build(y2024, testEntities(), []Prefix{{Prefix: "K", EntityID: 291}, {Prefix: "K", EntityID: 6}})
	b := Build(y2024.In(time.FixedZone("EET", 2*3600)), testEntities(), []Prefix{{Prefix: "K", EntityID: 291}, {Prefix: "K", EntityID: 6}})
	assert.True(t, a.Equal(b), "timestamps compare by instant")

	reordered := Build(y2024, testEntities(), []Prefix{{Prefix: "K", EntityID: 6}, {Prefix: "K", EntityID: 291}})
	assert.False(t, a.Equal(reordered), "group order matters")

	changed := Build(y2024, testEntities(), []Prefix{{Prefix: "K", EntityID: 291, CQZone: Ptr[uint8](3)}, {Prefix: "K", EntityID: 6}})
	assert.False(t, a.Equal(changed))

	var nilDB *Database
	assert.True(t, nilDB.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestCountryFileScenario(t *testing.T) {
	t.Parallel()

	db := Build(y2024,
		[]Entity{{ID: 291, Prefix: "W", Name: "United States", Continent: "NA",
			CQZone: Ptr[uint8](5), ITUZone: Ptr[uint8](7),
			Lat: Ptr[float32](40), Lon: Ptr[float32](-74), Timezone: Ptr[float32](5)}},
		[]Prefix{
			{Prefix: "K1A", Exact: true, EntityID: 291},
			{Prefix: "K", EntityID: 291},
		})

	e, ok := db.Lookup("K1AA", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(291), e.ID)
	assert.Equal(t, "K", e.Prefix)

	e, ok = db.Lookup("K1A", y2024)
	require.True(t, ok)
	assert.Equal(t, DXCC(291), e.ID)
	assert.Equal(t, "K1A", e.Prefix)
}

func TestAgeAndNormalize(t *testing.T) {
	t.Parallel()

	db := Build(y2024, nil, nil)
	assert.Equal(t, 48*time.Hour, db.Age(y2024.Add(48*time.Hour)))
	assert.Zero(t, Empty().Age(y2024))
	assert.Equal(t, "DL1ABC", NormalizeCallsign("  dl1abc\n"))
}
