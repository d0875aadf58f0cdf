package runtime

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/hamkit/internal/buildinfo"
	"github.com/tphakala/hamkit/internal/conf"
	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
)

func testSettings(t *testing.T) *conf.Settings {
	t.Helper()
	return &conf.Settings{
		Sources: conf.SourcesSettings{
			Timeout: time.Second,
			Retries: 1,
		},
		Snapshot: conf.SnapshotSettings{
			Path:    filepath.Join(t.TempDir(), "country.hkdb"),
			Archive: ":memory:",
			Retain:  2,
		},
		Refresh: conf.RefreshSettings{Interval: time.Hour, MaxAge: 24 * time.Hour},
		Metrics: conf.MetricsSettings{Enabled: true},
	}
}

func newContext(t *testing.T, settings *conf.Settings) *Context {
	t.Helper()
	t.Cleanup(errors.ClearErrorHooks)

	c, err := New(settings, buildinfo.NewContext("v0.0.1", ""))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewWiresCollaborators(t *testing.T) {
	settings := testSettings(t)
	settings.Sources.CountryFile = conf.CountryFileSettings{Enabled: true, URL: "https://example.org/cty.csv"}
	settings.Sources.ClubLog = conf.ClubLogSettings{Enabled: true, URL: "https://cdn.clublog.org/cty.php", APIKey: "k"}

	c := newContext(t, settings)

	assert.NotNil(t, c.Resolver)
	assert.NotNil(t, c.Metrics)
	assert.NotNil(t, c.Archive)
	require.NotNil(t, c.Store)
	assert.Equal(t, settings.Snapshot.Path, c.Store.Path())

	st := c.Resolver.Status()
	require.Len(t, st.Sources, 2)
	assert.Equal(t, "countryfile", st.Sources[0].Name)
	assert.Equal(t, "clublog", st.Sources[1].Name)
}

func TestNewWithoutOptionalParts(t *testing.T) {
	settings := testSettings(t)
	settings.Snapshot.Archive = ""
	settings.Metrics.Enabled = false

	c := newContext(t, settings)
	assert.Nil(t, c.Archive)
	assert.Nil(t, c.Metrics)
}

func TestEnsureDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing persisted and no sources", func(t *testing.T) {
		c := newContext(t, testSettings(t))
		err := c.EnsureDatabase(ctx)
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryConfiguration))
	})

	t.Run("fresh snapshot is used as is", func(t *testing.T) {
		c := newContext(t, testSettings(t))
		db := country.Build(time.Now(), []country.Entity{{ID: 1, Name: "Canada"}}, []country.Prefix{{Prefix: "VE", EntityID: 1}})
		require.NoError(t, c.Store.Save(db))

		require.NoError(t, c.EnsureDatabase(ctx))
		_, ok := c.Resolver.LookupCallsign("VE3XYZ", time.Now())
		assert.True(t, ok)
	})

	t.Run("stale snapshot survives failed refresh", func(t *testing.T) {
		c := newContext(t, testSettings(t))
		db := country.Build(time.Now().Add(-30*24*time.Hour), []country.Entity{{ID: 1, Name: "Canada"}}, nil)
		require.NoError(t, c.Store.Save(db))

		require.NoError(t, c.EnsureDatabase(ctx))
		assert.True(t, c.Resolver.Stale(time.Now()))
		assert.Len(t, c.Resolver.Database().Entities, 1)
	})
}
