package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/hamkit/internal/errors"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	db := Build(y2024, testEntities(), []Prefix{
		{Prefix: "K", EntityID: 291},
		{Prefix: "KL7", EntityID: 291, Continent: Ptr("NA"), CQZone: Ptr[uint8](1), ITUZone: Ptr[uint8](1),
			Lat: Ptr[float32](61.4), Lon: Ptr[float32](-148.9), Timezone: Ptr[float32](9)},
		{Prefix: "W1AW", Exact: true, EntityID: 291, ValidFrom: &y2000, ValidTo: &y2010},
		{Prefix: "K", EntityID: 6},
	})
	db.Entities[6] = Entity{ID: 6, Name: "Hawaii", ValidFrom: &y2000}

	data, err := MarshalSnapshot(db)
	require.NoError(t, err)
	assert.Equal(t, []byte("HKDB"), data[:4])
	assert.Equal(t, SnapshotVersion, data[4])

	decoded, err := UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(db))
}

func TestSnapshotEmpty(t *testing.T) {
	t.Parallel()

	data, err := MarshalSnapshot(Empty())
	require.NoError(t, err)

	decoded, err := UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(Empty()))
	assert.NotNil(t, decoded.Entities)
	assert.NotNil(t, decoded.Prefixes)
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	t.Parallel()

	valid, err := MarshalSnapshot(Build(y2024, testEntities(), nil))
	require.NoError(t, err)

	wrongVersion := append([]byte{}, valid...)
	wrongVersion[4] = 99

	truncated := valid[:len(valid)/2]

	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"short", []byte("HKD")},
		{"bad magic", []byte("XXXX\x01payload")},
		{"wrong version", wrongVersion},
		{"truncated payload", truncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := UnmarshalSnapshot(tt.data)
			require.Error(t, err)
			assert.True(t, errors.IsCategory(err, errors.CategorySnapshot))
		})
	}

	_, err = MarshalSnapshot(nil)
	require.Error(t, err)
}
