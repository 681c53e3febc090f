package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const rateProviderService = "rate_provider"

type guardedRateProvider struct {
	next    RateProviderInterface
	breaker CircuitBreakerInterface
	timeout time.Duration
	logger  BudgetLoggerInterface
	metrics MetricsRecorderInterface
}

type rateResult struct {
	rate decimal.NullDecimal
	err  error
}

// NewGuardedRateProvider bounds every lookup of next by timeout and stops
// calling it while the circuit breaker is open.
func NewGuardedRateProvider(next RateProviderInterface, breaker CircuitBreakerInterface, timeout time.Duration, logger BudgetLoggerInterface, metrics MetricsRecorderInterface) RateProviderInterface {
	return &guardedRateProvider{
		next:    next,
		breaker: breaker,
		timeout: timeout,
		logger:  logger,
		metrics: metrics,
	}
}

func (g *guardedRateProvider) Rate(ctx context.Context, from, to string) (decimal.NullDecimal, error) {
	before := g.breaker.GetState()
	if g.breaker.IsOpen() {
		return decimal.NullDecimal{}, ErrCircuitBreakerOpen
	}

	lookupCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	done := make(chan rateResult, 1)
	go func() {
		rate, err := g.next.Rate(lookupCtx, from, to)
		done <- rateResult{rate: rate, err: err}
	}()

	var res rateResult
	select {
	case res = <-done:
	case <-lookupCtx.Done():
		res = rateResult{err: lookupCtx.Err()}
	}

	switch {
	case res.err == nil:
		g.breaker.RecordSuccess()
	case ctx.Err() != nil:
		// caller cancelled or ran out of time, not a provider failure
	default:
		g.breaker.RecordFailure()
	}

	if after := g.breaker.GetState(); after != before {
		g.logger.LogCircuitBreakerStateChange(ctx, rateProviderService, before.String(), after.String())
		g.metrics.RecordGauge(MetricCircuitBreakerState, float64(after), map[string]string{"service": rateProviderService})
	}

	return res.rate, res.err
}
