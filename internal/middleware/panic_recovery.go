package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"budget-engine/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiPanicsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_panics_total",
		Help: "Total number of recovered handler panics by route",
	},
	[]string{"endpoint"},
)

// PanicRecovery recovers from handler panics and answers with SYSTEM_001
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				apiPanicsTotal.WithLabelValues(c.Path()).Inc()
				slog.ErrorContext(c.Request().Context(), "panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)

				if c.Response().Committed {
					return
				}

				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if jsonErr := c.JSON(http.StatusInternalServerError, errorResponse); jsonErr != nil {
					slog.Error("failed to send panic recovery response",
						"trace_id", traceID,
						"error", jsonErr.Error(),
					)
				}
				err = nil
			}()

			return next(c)
		}
	}
}
