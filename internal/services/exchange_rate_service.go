package services

import (
	"context"
	"fmt"
	"strings"

	"budget-engine/internal/models"
	"budget-engine/internal/repositories"
)

type exchangeRateService struct {
	rateRepo repositories.ExchangeRateRepositoryInterface
	metrics  MetricsRecorderInterface
}

// NewExchangeRateService creates a new exchange rate service
func NewExchangeRateService(rateRepo repositories.ExchangeRateRepositoryInterface, metrics MetricsRecorderInterface) ExchangeRateServiceInterface {
	return &exchangeRateService{
		rateRepo: rateRepo,
		metrics:  metrics,
	}
}

func (s *exchangeRateService) ListRates(ctx context.Context) ([]models.ExchangeRate, error) {
	rates, err := s.rateRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}

// SetRate stores rate, replacing any previous rate for the same ordered pair.
func (s *exchangeRateService) SetRate(ctx context.Context, rate *models.ExchangeRate) (*models.ExchangeRate, error) {
	stored := &models.ExchangeRate{
		BaseCurrency: strings.ToUpper(strings.TrimSpace(rate.BaseCurrency)),
		Currency:     strings.ToUpper(strings.TrimSpace(rate.Currency)),
		Rate:         rate.Rate,
	}
	if err := stored.Validate(); err != nil {
		return nil, err
	}
	if stored.BaseCurrency == stored.Currency {
		return nil, models.ErrSameCurrencyPair
	}

	if err := s.rateRepo.Upsert(stored); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter(MetricExchangeRateUpdated, nil)
	return stored, nil
}
