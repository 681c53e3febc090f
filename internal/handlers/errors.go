package handlers

import (
	"context"
	stderrors "errors"

	"budget-engine/internal/dto"
	"budget-engine/internal/errors"
	"budget-engine/internal/models"
	"budget-engine/internal/services"

	"github.com/labstack/echo/v4"
)

// domainErrors maps service and model sentinels to API error codes
var domainErrors = []struct {
	err  error
	code errors.ErrorCode
}{
	{services.ErrBudgetNotFound, errors.BudgetNotFound},
	{services.ErrInvalidBudgetOrder, errors.BudgetInvalidOrder},
	{models.ErrBudgetNameRequired, errors.BudgetNameRequired},
	{models.ErrInvalidBudgetCap, errors.BudgetInvalidAmount},
	{models.ErrInvalidMonth, errors.PeriodInvalidMonth},
	{models.ErrInvalidLastN, errors.PeriodInvalidLastN},
	{models.ErrInvalidPeriod, errors.PeriodInvalid},
	{dto.ErrInvalidDirection, errors.PeriodInvalidDirection},
	{models.ErrInvalidExchangeRate, errors.RateInvalid},
	{models.ErrSameCurrencyPair, errors.RateSameCurrency},
	{models.ErrInvalidCurrencyCode, errors.RateInvalidCurrency},
	{services.ErrCircuitBreakerOpen, errors.RateSourceUnavailable},
	{context.Canceled, errors.SystemRequestCancelled},
}

// sendServiceError writes the API error for a known domain error and falls
// back to a generic system error.
func sendServiceError(c echo.Context, err error) error {
	for _, known := range domainErrors {
		if stderrors.Is(err, known.err) {
			return SendError(c, known.code, errors.WithDetails(err.Error()))
		}
	}
	return SendSystemError(c, err)
}
