package api

import (
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tphakala/hamkit/internal/band"
	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

// callsignPattern admits portable designators such as "VP2E/K1ABC/P". The
// route is a wildcard so the slashes may be sent raw or as %2F.
var callsignPattern = regexp.MustCompile(`^[A-Z0-9/]{1,20}$`)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	Code          int    `json:"code"`
	CorrelationID string `json:"correlation_id"`
}

// CallsignResponse answers a callsign lookup.
type CallsignResponse struct {
	Callsign string         `json:"callsign"`
	At       time.Time      `json:"at"`
	Entity   country.Entity `json:"entity"`
	ISO      string         `json:"iso,omitempty"`
}

// EntityResponse answers an entity lookup.
type EntityResponse struct {
	country.Entity
	ISO string `json:"iso,omitempty"`
}

// BandResponse answers a frequency lookup.
type BandResponse struct {
	Frequency band.Frequency `json:"frequency"`
	Display   string         `json:"display"`
	Band      band.Band      `json:"band"`
	Range     band.Range     `json:"range"`
	Segments  []band.Segment `json:"segments"`
}

// PlanResponse lists the band plan between two frequencies.
type PlanResponse struct {
	Range    band.Range     `json:"range"`
	Bands    []band.Band    `json:"bands"`
	Segments []band.Segment `json:"segments"`
	Markers  []band.Marker  `json:"markers"`
}

// GetCallsign handles GET /api/v1/callsign/*?at=RFC3339.
func (s *Server) GetCallsign(c echo.Context) error {
	raw, err := url.PathUnescape(c.Param("*"))
	if err != nil {
		return s.HandleError(c, err, "invalid callsign", http.StatusBadRequest)
	}
	call := country.NormalizeCallsign(raw)
	if !callsignPattern.MatchString(call) {
		return s.HandleError(c, nil, "invalid callsign", http.StatusBadRequest)
	}

	at := s.now()
	if raw := c.QueryParam("at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return s.HandleError(c, err, "at must be an RFC3339 timestamp", http.StatusBadRequest)
		}
		at = t
	}

	entity, ok := s.resolver.LookupCallsign(call, at)
	if !ok {
		return s.HandleError(c, errors.NotFound("no entity for callsign %s", call), "callsign not found", http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, CallsignResponse{Callsign: call, At: at.UTC(), Entity: entity, ISO: entity.ID.ISO()})
}

// GetEntity handles GET /api/v1/entity/:id.
func (s *Server) GetEntity(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 16)
	if err != nil {
		return s.HandleError(c, err, "entity id must be an integer between 0 and 65535", http.StatusBadRequest)
	}

	entity, ok := s.resolver.LookupID(country.DXCC(id))
	if !ok {
		return s.HandleError(c, errors.NotFound("no entity with id %d", id), "entity not found", http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, EntityResponse{Entity: entity, ISO: entity.ID.ISO()})
}

// GetBand handles GET /api/v1/band?freq=<Hz> or ?mhz=<MHz>.
func (s *Server) GetBand(c echo.Context) error {
	f, err := frequencyParam(c, "freq", "mhz")
	if err != nil {
		return s.HandleError(c, err, "freq (Hz) or mhz is required", http.StatusBadRequest)
	}

	b, ok := s.resolver.Band(f)
	if !ok {
		return s.HandleError(c, errors.NotFound("no band contains %s", f), "frequency outside amateur bands", http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, BandResponse{
		Frequency: f,
		Display:   f.String(),
		Band:      b,
		Range:     b.Range(),
		Segments:  s.resolver.Segments(band.NewRange(f, f)),
	})
}

// GetPlan handles GET /api/v1/plan?from=<Hz>&to=<Hz>.
func (s *Server) GetPlan(c echo.Context) error {
	from, err := frequencyParam(c, "from", "")
	if err != nil {
		return s.HandleError(c, err, "from (Hz) is required", http.StatusBadRequest)
	}
	to, err := frequencyParam(c, "to", "")
	if err != nil {
		return s.HandleError(c, err, "to (Hz) is required", http.StatusBadRequest)
	}
	if from > to {
		return s.HandleError(c, nil, "from must not exceed to", http.StatusBadRequest)
	}

	r := band.NewRange(from, to)
	return c.JSON(http.StatusOK, PlanResponse{
		Range:    r,
		Bands:    s.resolver.Bands().BandsIn(r),
		Segments: s.resolver.Segments(r),
		Markers:  s.resolver.Markers(r),
	})
}

// GetStatus handles GET /api/v1/status.
func (s *Server) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, s.resolver.Status())
}

// PostRefresh handles POST /api/v1/refresh.
func (s *Server) PostRefresh(c echo.Context) error {
	if err := s.resolver.TriggerRefresh(c.Request().Context()); err != nil {
		return s.HandleError(c, err, "refresh failed", statusForError(err))
	}
	return c.JSON(http.StatusOK, s.resolver.Status())
}

// frequencyParam reads a frequency in Hz from hzName, or in MHz from mhzName
// when that is set and hzName is absent.
func frequencyParam(c echo.Context, hzName, mhzName string) (band.Frequency, error) {
	if raw := strings.TrimSpace(c.QueryParam(hzName)); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, errors.New(err).Category(errors.CategoryValidation).Context("param", hzName).Build()
		}
		return band.Frequency(v), nil
	}
	if mhzName != "" {
		if raw := c.QueryParam(mhzName); raw != "" {
			return band.ParseMHz(raw)
		}
	}
	return 0, errors.ValidationError("missing " + hzName)
}

func statusForError(err error) int {
	switch {
	case errors.IsCategory(err, errors.CategoryLimit):
		return http.StatusTooManyRequests
	case errors.IsCategory(err, errors.CategoryConfiguration):
		return http.StatusServiceUnavailable
	case errors.IsCategory(err, errors.CategoryValidation):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsCategory(err, errors.CategoryCancellation), errors.IsCategory(err, errors.CategoryTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// NewErrorResponse creates a new API error response
func NewErrorResponse(err error, message string, code int) *ErrorResponse {
	errorStr := http.StatusText(code)
	if err != nil && code < http.StatusInternalServerError {
		errorStr = err.Error()
	}
	return &ErrorResponse{
		Error:         errorStr,
		Message:       message,
		Code:          code,
		CorrelationID: uuid.NewString()[:8],
	}
}

// HandleError logs err and writes an ErrorResponse.
func (s *Server) HandleError(c echo.Context, err error, message string, code int) error {
	resp := NewErrorResponse(err, message, code)

	fields := []logger.Field{
		logger.String("correlation_id", resp.CorrelationID),
		logger.String("path", c.Path()),
		logger.Int("code", code),
		logger.String("ip", c.RealIP()),
	}
	if err != nil {
		fields = append(fields, logger.Error(err))
	}
	if code >= http.StatusInternalServerError {
		s.log.Warn(message, fields...)
	} else {
		s.log.Debug(message, fields...)
	}

	return c.JSON(code, resp)
}

// httpErrorHandler renders echo's own errors, unknown routes included, as
// ErrorResponse.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := "internal error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = http.StatusText(code)
	}
	if err := s.HandleError(c, err, message, code); err != nil {
		s.log.Error("failed to write error response", logger.Error(err))
	}
}
