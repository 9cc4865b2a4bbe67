package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

type TimeoutMiddleware struct {
	timeout time.Duration
}

func NewTimeoutMiddleware(timeout time.Duration) *TimeoutMiddleware {
	return &TimeoutMiddleware{timeout: timeout}
}

// Bound bounds the request context so a hung store call surfaces as a
// deadline error instead of blocking the handler indefinitely.
func (m *TimeoutMiddleware) Bound(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), m.timeout)
		defer cancel()

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
