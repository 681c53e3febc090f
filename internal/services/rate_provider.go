package services

import (
	"context"
	"errors"
	"fmt"

	"budget-engine/internal/repositories"

	"github.com/shopspring/decimal"
)

type storedRateProvider struct {
	rateRepo repositories.ExchangeRateRepositoryInterface
}

// NewStoredRateProvider creates a rate provider over stored exchange rates. A
// pair is found either directly or as the inverse of the opposite pair.
func NewStoredRateProvider(rateRepo repositories.ExchangeRateRepositoryInterface) RateProviderInterface {
	return &storedRateProvider{
		rateRepo: rateRepo,
	}
}

func (p *storedRateProvider) Rate(ctx context.Context, from, to string) (decimal.NullDecimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.NullDecimal{}, err
	}

	direct, err := p.rateRepo.Find(from, to)
	if err == nil {
		return decimal.NewNullDecimal(direct.Rate), nil
	}
	if !errors.Is(err, repositories.ErrExchangeRateNotFound) {
		return decimal.NullDecimal{}, fmt.Errorf("failed to look up rate %s/%s: %w", from, to, err)
	}

	inverse, err := p.rateRepo.Find(to, from)
	if err != nil {
		if errors.Is(err, repositories.ErrExchangeRateNotFound) {
			return decimal.NullDecimal{}, nil
		}
		return decimal.NullDecimal{}, fmt.Errorf("failed to look up rate %s/%s: %w", to, from, err)
	}
	if inverse.Rate.IsZero() {
		return decimal.NullDecimal{}, nil
	}

	return decimal.NewNullDecimal(decimal.NewFromInt(1).Div(inverse.Rate)), nil
}
