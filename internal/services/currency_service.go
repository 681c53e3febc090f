package services

import (
	"context"

	"budget-engine/internal/models"

	"github.com/shopspring/decimal"
)

const (
	conversionIdentity  = "identity"
	conversionConverted = "converted"
	conversionMissing   = "missing"
	conversionFailed    = "failed"
)

type currencyService struct {
	provider RateProviderInterface
	metrics  MetricsRecorderInterface
	logger   BudgetLoggerInterface
}

// NewCurrencyService creates a currency normalizer backed by provider
func NewCurrencyService(provider RateProviderInterface, metrics MetricsRecorderInterface, logger BudgetLoggerInterface) CurrencyServiceInterface {
	return &currencyService{
		provider: provider,
		metrics:  metrics,
		logger:   logger,
	}
}

// ResolveCurrency returns the currency of the transaction's account, falling
// back to baseCurrency for unknown accounts and accounts without a currency.
func (s *currencyService) ResolveCurrency(transaction *models.Transaction, accounts models.AccountSet, baseCurrency string) string {
	if currency := accounts.Currency(transaction.AccountID); currency != "" {
		return currency
	}
	return baseCurrency
}

// Convert returns amount expressed in to. It yields no value when the rate is
// unavailable, including when the provider fails or times out.
func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) decimal.NullDecimal {
	if from == to {
		s.record(conversionIdentity, from, to)
		return decimal.NewNullDecimal(amount)
	}

	rate, err := s.provider.Rate(ctx, from, to)
	if err != nil {
		s.logger.LogMissingRate(ctx, from, to, err.Error())
		s.record(conversionFailed, from, to)
		return decimal.NullDecimal{}
	}
	if !rate.Valid {
		s.logger.LogMissingRate(ctx, from, to, "no rate for currency pair")
		s.record(conversionMissing, from, to)
		return decimal.NullDecimal{}
	}

	s.record(conversionConverted, from, to)
	return decimal.NewNullDecimal(amount.Mul(rate.Decimal))
}

func (s *currencyService) record(status, from, to string) {
	s.metrics.IncrementCounter(MetricCurrencyConversion, map[string]string{
		"status": status,
		"from":   from,
		"to":     to,
	})
}
