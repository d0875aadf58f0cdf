package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pooled connection would see a different in-memory database
	sqlDB.SetMaxOpenConns(1)

	archive, err := New(db, logger.NewSlogLogger(nil, logger.LogLevelError, time.UTC))
	require.NoError(t, err)
	t.Cleanup(func() { _ = archive.Close() })
	return archive
}

func sampleDB(month time.Month) *country.Database {
	return country.Build(time.Date(2024, month, 1, 0, 0, 0, 0, time.UTC),
		[]country.Entity{{ID: 230, Prefix: "DL", Name: "Fed. Rep. of Germany", Continent: "EU"}},
		[]country.Prefix{{Prefix: "DL", EntityID: 230}, {Prefix: "DA", EntityID: 230}})
}

func TestArchiveSaveAndLatest(t *testing.T) {
	t.Parallel()
	archive := newTestArchive(t)
	ctx := context.Background()

	_, err := archive.Save(ctx, "countryfile", sampleDB(time.January))
	require.NoError(t, err)
	rec, err := archive.Save(ctx, "merged", sampleDB(time.February))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, 1, rec.Entities)
	assert.Equal(t, 2, rec.Prefixes)

	db, latest, err := archive.Latest(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, latest.ID)
	assert.True(t, db.Equal(sampleDB(time.February)))

	db, latest, err = archive.Latest(ctx, "countryfile")
	require.NoError(t, err)
	assert.Equal(t, "countryfile", latest.Source)
	assert.True(t, db.Equal(sampleDB(time.January)))

	got, err := archive.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, got.Equal(sampleDB(time.February)))
}

func TestArchiveNotFound(t *testing.T) {
	t.Parallel()
	archive := newTestArchive(t)
	ctx := context.Background()

	_, _, err := archive.Latest(ctx, "")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = archive.Get(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestArchiveListAndPrune(t *testing.T) {
	t.Parallel()
	archive := newTestArchive(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for m := time.January; m <= time.May; m++ {
		rec, err := archive.Save(ctx, "merged", sampleDB(m))
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	all, err := archive.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, ids[4], all[0].ID, "newest first")
	assert.Nil(t, all[0].Data, "list omits payloads")

	limited, err := archive.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	removed, err := archive.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	remaining, err := archive.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, ids[4], remaining[0].ID)
	assert.Equal(t, ids[3], remaining[1].ID)

	_, err = archive.Prune(ctx, 0)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
}

func TestOpenMemory(t *testing.T) {
	t.Parallel()

	archive, err := Open(":memory:", logger.NewSlogLogger(nil, logger.LogLevelError, time.UTC))
	require.NoError(t, err)
	require.NoError(t, archive.Close())
}
