package api

import (
	"time"

	"github.com/labstack/echo/v4"
)

// logRequests writes one debug line per request. Errors are rendered here so
// the logged status is the one the client saw.
func (s *HTTPServer) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		latency := time.Since(start)

		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		res := c.Response()

		args := []any{
			"method", req.Method,
			"uri", req.RequestURI,
			"route", c.Path(),
			"status", res.Status,
			"latency", latency,
			"request_id", res.Header().Get(echo.HeaderXRequestID),
		}
		if err != nil {
			args = append(args, "error", err)
		}
		s.logger.Debug(req.Context(), "request handled", args...)
		return nil
	}
}
