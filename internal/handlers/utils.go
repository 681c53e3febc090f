package handlers

import (
	"strings"

	"budget-engine/internal/dto"

	"github.com/labstack/echo/v4"
)

// periodQueryFromContext reads the period selection from the query string
func periodQueryFromContext(c echo.Context) dto.PeriodQuery {
	return dto.PeriodQuery{
		Month: strings.TrimSpace(c.QueryParam("month")),
		Year:  strings.TrimSpace(c.QueryParam("year")),
		Last:  strings.TrimSpace(c.QueryParam("last")),
		Unit:  strings.TrimSpace(c.QueryParam("unit")),
	}
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
