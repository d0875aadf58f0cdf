package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestRecorder receives per-request measurements.
type RequestRecorder interface {
	RequestStarted()
	RecordRequest(method, path string, status int, duration time.Duration, size int64)
}

// NewRequestMetrics records method, route template, status and size of each
// request. Unmatched routes are reported under the path "unmatched".
func NewRequestMetrics(rec RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rec == nil {
				return next(c)
			}

			start := time.Now()
			rec.RequestStarted()

			err := next(c)
			if err != nil {
				// let the error handler write the response so the status is final
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			res := c.Response()
			rec.RecordRequest(c.Request().Method, path, res.Status, time.Since(start), res.Size)
			return nil
		}
	}
}
