package handlers

import (
	"net/http"

	"budget-engine/internal/dto"
	"budget-engine/internal/errors"
	"budget-engine/internal/services"

	"github.com/labstack/echo/v4"
)

// ExchangeRateHandler manages the stored exchange rates
type ExchangeRateHandler struct {
	rateService services.ExchangeRateServiceInterface
}

// NewExchangeRateHandler creates a new exchange rate handler
func NewExchangeRateHandler(rateService services.ExchangeRateServiceInterface) *ExchangeRateHandler {
	return &ExchangeRateHandler{rateService: rateService}
}

// ListRates returns every stored rate
// @Summary List exchange rates
// @Tags Exchange Rates
// @Produce json
// @Success 200 {object} dto.ExchangeRateListResponse
// @Router /exchange-rates [get]
func (h *ExchangeRateHandler) ListRates(c echo.Context) error {
	rates, err := h.rateService.ListRates(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExchangeRateListResponse{
		Rates: rates,
		Total: len(rates),
	})
}

// SetRate stores the rate of an ordered currency pair, replacing the previous one
// @Summary Set exchange rate
// @Tags Exchange Rates
// @Accept json
// @Produce json
// @Param request body dto.SetExchangeRateRequest true "1 base = rate currency"
// @Success 200 {object} models.ExchangeRate
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "RATE_001/RATE_002 - Invalid rate"
// @Router /exchange-rates [put]
func (h *ExchangeRateHandler) SetRate(c echo.Context) error {
	var req dto.SetExchangeRateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidJSON, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	rate, err := req.ToModel()
	if err != nil {
		return SendError(c, errors.ValidationInvalidDecimal, errors.WithDetails(err.Error()))
	}

	stored, err := h.rateService.SetRate(c.Request().Context(), rate)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, stored)
}
