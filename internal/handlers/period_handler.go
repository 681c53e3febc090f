package handlers

import (
	"net/http"
	"time"

	"budget-engine/internal/dto"
	"budget-engine/internal/errors"
	"budget-engine/internal/models"
	"budget-engine/internal/services"

	"github.com/labstack/echo/v4"
)

// PeriodHandler resolves and navigates budget periods
type PeriodHandler struct {
	resolver services.TimePeriodResolverInterface
	now      func() time.Time
}

// NewPeriodHandler creates a new period handler
func NewPeriodHandler(resolver services.TimePeriodResolverInterface, now func() time.Time) *PeriodHandler {
	return &PeriodHandler{resolver: resolver, now: now}
}

// ResolvePeriod returns the concrete range of the selected period
// @Summary Resolve period
// @Tags Periods
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param last query int false "Trailing window length"
// @Param unit query string false "Trailing window unit" Enums(day, week, month, year)
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} errors.ErrorResponse "PERIOD_001..PERIOD_003 - Invalid period"
// @Router /periods [get]
func (h *PeriodHandler) ResolvePeriod(c echo.Context) error {
	period, err := h.bindPeriod(c)
	if err != nil {
		return sendServiceError(c, err)
	}
	return h.respond(c, period)
}

// AdjacentPeriod returns the period before or after the selected one.
// Trailing windows are relative to now and come back unchanged.
// @Summary Navigate periods
// @Tags Periods
// @Produce json
// @Param direction query string true "Direction" Enums(next, previous)
// @Success 200 {object} dto.PeriodResponse
// @Failure 400 {object} errors.ErrorResponse "PERIOD_004 - Invalid direction"
// @Router /periods/adjacent [get]
func (h *PeriodHandler) AdjacentPeriod(c echo.Context) error {
	direction, err := dto.ParseDirection(c.QueryParam("direction"))
	if err != nil {
		return sendServiceError(c, err)
	}

	period, err := h.bindPeriod(c)
	if err != nil {
		return sendServiceError(c, err)
	}

	if direction == dto.DirectionNext {
		period = h.resolver.Next(period)
	} else {
		period = h.resolver.Previous(period)
	}
	return h.respond(c, period)
}

func (h *PeriodHandler) bindPeriod(c echo.Context) (models.TimePeriod, error) {
	return periodQueryFromContext(c).ToTimePeriod(h.now(), h.resolver.StartDayOfMonth())
}

func (h *PeriodHandler) respond(c echo.Context, period models.TimePeriod) error {
	timeRange, err := h.resolver.Resolve(period)
	if err != nil {
		return SendError(c, errors.PeriodInvalid, errors.WithDetails(err.Error()))
	}
	return c.JSON(http.StatusOK, dto.NewPeriodResponse(period, timeRange, h.resolver.StartDayOfMonth()))
}
