package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/hamkit/internal/band"
	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/logger"
	"github.com/tphakala/hamkit/internal/observability"
	"github.com/tphakala/hamkit/internal/resolver"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, opts ...ServerOption) *Server {
	t.Helper()

	log := logger.NewSlogLogger(nil, logger.LogLevelError, time.UTC)
	res := resolver.New(resolver.Config{}, resolver.Dependencies{
		Bands:  band.NewService(band.IARURegion1),
		Logger: log,
		Now:    func() time.Time { return fixedNow },
	})

	from := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	res.Publish(country.Build(fixedNow.Add(-time.Hour),
		[]country.Entity{
			{ID: 291, Prefix: "K", Name: "United States", Continent: "NA", CQZone: country.Ptr[uint8](5)},
			{ID: 1, Prefix: "VE", Name: "Canada", Continent: "NA"},
		},
		[]country.Prefix{
			{Prefix: "K", EntityID: 291},
			{Prefix: "VE", EntityID: 1},
			{Prefix: "VE1ABC", Exact: true, EntityID: 1, CQZone: country.Ptr[uint8](2), ValidFrom: &from},
		}))

	opts = append([]ServerOption{WithLogger(log), WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(DefaultConfig(), res, opts...)
}

func do(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(method, target, http.NoBody))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestGetCallsign(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		wantCode   int
		wantEntity country.DXCC
		wantPrefix string
	}{
		{"prefix match", "/api/v1/callsign/k1aa", http.StatusOK, 291, "K"},
		{"exact match", "/api/v1/callsign/VE1ABC", http.StatusOK, 1, "VE1ABC"},
		{"exact before validity", "/api/v1/callsign/VE1ABC?at=2009-06-01T00:00:00Z", http.StatusOK, 1, "VE"},
		{"unknown", "/api/v1/callsign/ZZ9ZZ", http.StatusNotFound, 0, ""},
		{"bad characters", "/api/v1/callsign/K1%3BAA", http.StatusBadRequest, 0, ""},
		{"bad at", "/api/v1/callsign/K1AA?at=yesterday", http.StatusBadRequest, 0, ""},
		{"portable suffix", "/api/v1/callsign/VE1ABC/P", http.StatusOK, 1, "VE"},
		{"encoded slash", "/api/v1/callsign/VE1ABC%2FP", http.StatusOK, 1, "VE"},
		{"portable prefix", "/api/v1/callsign/K/VE1ABC", http.StatusOK, 291, "K"},
		{"missing callsign", "/api/v1/callsign/", http.StatusBadRequest, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, s, http.MethodGet, tt.target)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantCode != http.StatusOK {
				resp := decode[ErrorResponse](t, rec)
				assert.Equal(t, tt.wantCode, resp.Code)
				assert.Len(t, resp.CorrelationID, 8)
				return
			}
			resp := decode[CallsignResponse](t, rec)
			assert.Equal(t, tt.wantEntity, resp.Entity.ID)
			assert.Equal(t, tt.wantPrefix, resp.Entity.Prefix)
		})
	}
}

func TestGetCallsignDefaultsToClock(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/callsign/VE1ABC")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[CallsignResponse](t, rec)
	assert.True(t, resp.At.Equal(fixedNow))
	assert.Equal(t, "CA", resp.ISO)
	require.NotNil(t, resp.Entity.CQZone)
	assert.Equal(t, uint8(2), *resp.Entity.CQZone)
}

func TestGetEntity(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/entity/291")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[EntityResponse](t, rec)
	assert.Equal(t, "United States", resp.Name)
	assert.Equal(t, "US", resp.ISO)

	rec = do(t, s, http.MethodGet, "/api/v1/entity/230")
	require.Equal(t, http.StatusOK, rec.Code, "static table answers ids missing from the database")
	resp = decode[EntityResponse](t, rec)
	assert.Equal(t, "FEDERAL REPUBLIC OF GERMANY", resp.Name)
	assert.Equal(t, "DE", resp.ISO)

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/api/v1/entity/999").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/v1/entity/abc").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/v1/entity/70000").Code)
}

func TestGetBand(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/band?freq=14074000")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[BandResponse](t, rec)
	assert.Equal(t, band.Band20m, resp.Band)
	assert.Equal(t, band.Band20m.Range(), resp.Range)
	assert.NotEmpty(t, resp.Segments)

	rec = do(t, s, http.MethodGet, "/api/v1/band?mhz=7.074")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, band.Band40m, decode[BandResponse](t, rec).Band)

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/api/v1/band?freq=100").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/v1/band").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/v1/band?freq=-5").Code)
}

func TestGetPlan(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/plan?from=14000000&to=14100000")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[PlanResponse](t, rec)
	assert.Equal(t, []band.Band{band.Band20m}, resp.Bands)
	assert.NotEmpty(t, resp.Segments)
	for _, seg := range resp.Segments {
		assert.Equal(t, band.Band20m, seg.Band)
	}

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/v1/plan?from=2&to=1").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/v1/plan?from=1").Code)
}

func TestGetStatus(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/status")
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode[resolver.Status](t, rec)
	assert.Equal(t, 2, st.Stats.Entities)
	assert.Equal(t, 3, st.Stats.Records)
	assert.False(t, st.Stale)
	assert.Equal(t, "1h0m0s", st.Age)
}

func TestPostRefreshWithoutSources(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	assert.Equal(t, http.StatusServiceUnavailable, do(t, s, http.MethodPost, "/api/v1/refresh").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, s, http.MethodPost, "/api/v1/refresh").Code)
}

func TestUnknownRouteIsJSON(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, decode[ErrorResponse](t, rec).Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	m, err := observability.NewMetrics()
	require.NoError(t, err)

	s := newTestServer(t, WithMetrics(m))
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/api/v1/entity/1").Code)

	rec := do(t, s, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hamkit_lookup_cache_hits_total")
	assert.Contains(t, rec.Body.String(), `hamkit_http_requests_total{method="GET",path="/api/v1/entity/:id",status_code="200"} 1`)

	without := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, do(t, without, http.MethodGet, "/metrics").Code)
}
