package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidExchangeRate = errors.New("exchange rate must be positive")
	ErrSameCurrencyPair    = errors.New("exchange rate needs two different currencies")
)

// ExchangeRate states that one unit of BaseCurrency equals Rate units of Currency.
type ExchangeRate struct {
	BaseCurrency string          `gorm:"type:varchar(3);primaryKey" json:"base_currency"`
	Currency     string          `gorm:"type:varchar(3);primaryKey" json:"currency"`
	Rate         decimal.Decimal `gorm:"type:decimal(19,8);not null" json:"rate"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// Validate validates the exchange rate fields
func (e *ExchangeRate) Validate() error {
	if !IsValidCurrencyCode(e.BaseCurrency) || !IsValidCurrencyCode(e.Currency) {
		return ErrInvalidCurrencyCode
	}
	if !e.Rate.IsPositive() {
		return ErrInvalidExchangeRate
	}
	return nil
}

// TableName returns the table name for ExchangeRate
func (e *ExchangeRate) TableName() string {
	return "exchange_rates"
}
