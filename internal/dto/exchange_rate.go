package dto

import (
	"fmt"
	"strings"

	"budget-engine/internal/models"

	"github.com/shopspring/decimal"
)

// SetExchangeRateRequest stores that one unit of base equals rate units of currency
type SetExchangeRateRequest struct {
	Base     string `json:"base" validate:"required,currency_code"`
	Currency string `json:"currency" validate:"required,currency_code,nefield=Base"`
	Rate     string `json:"rate" validate:"required,positive_decimal"`
}

// ToModel converts the request into an exchange rate
func (r *SetExchangeRateRequest) ToModel() (*models.ExchangeRate, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(r.Rate))
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", r.Rate, err)
	}
	return &models.ExchangeRate{
		BaseCurrency: r.Base,
		Currency:     r.Currency,
		Rate:         rate,
	}, nil
}

// ExchangeRateListResponse lists the stored exchange rates
type ExchangeRateListResponse struct {
	Rates []models.ExchangeRate `json:"rates"`
	Total int                   `json:"total"`
}
