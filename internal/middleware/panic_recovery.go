package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"spender/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into an internal error response so a
// single bad request cannot take down the server
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if recovered := recover(); recovered != nil {
					respondToPanic(c, recovered)
				}
			}()

			return next(c)
		}
	}
}

// respondToPanic logs the panic with its stack and writes the standard error
// envelope. The trace ID falls back to "unknown" when the request never went
// through the trace middleware.
func respondToPanic(c echo.Context, recovered interface{}) {
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("Recovered from handler panic",
		"trace_id", traceID,
		"panic", fmt.Sprintf("%v", recovered),
		"stack_trace", string(debug.Stack()),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	response := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	if err := c.JSON(http.StatusInternalServerError, response); err != nil {
		slog.Error("Failed to write panic response",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
