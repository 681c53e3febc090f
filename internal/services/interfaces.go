package services

import (
	"context"
	"time"

	"budget-engine/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimePeriodResolverInterface turns logical periods into concrete ranges
type TimePeriodResolverInterface interface {
	Resolve(period models.TimePeriod) (models.TimeRange, error)
	Next(period models.TimePeriod) models.TimePeriod
	Previous(period models.TimePeriod) models.TimePeriod
	StartDayOfMonth() int
}

// RateProviderInterface looks up the multiplier that converts an amount in
// from into an amount in to. An invalid NullDecimal means no rate is known.
type RateProviderInterface interface {
	Rate(ctx context.Context, from, to string) (decimal.NullDecimal, error)
}

// CurrencyServiceInterface normalizes transaction amounts into a base currency
type CurrencyServiceInterface interface {
	ResolveCurrency(transaction *models.Transaction, accounts models.AccountSet, baseCurrency string) string
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) decimal.NullDecimal
}

// BudgetFilterInterface applies a budget's account and category scope
type BudgetFilterInterface interface {
	Matches(transaction *models.Transaction, budget *models.Budget) bool
	Matcher(budget *models.Budget) models.TransactionMatcher
}

// SpendAggregatorInterface computes the spent amount of one budget
type SpendAggregatorInterface interface {
	Spent(ctx context.Context, budget *models.Budget, transactions []models.Transaction, accounts models.AccountSet, baseCurrency string) (models.SpendResult, error)
}

// BudgetRollupServiceInterface assembles display budgets and summary caps
type BudgetRollupServiceInterface interface {
	Rollup(ctx context.Context, budgets []models.Budget, transactions []models.Transaction, accounts []models.Account, baseCurrency string, timeRange models.TimeRange) (*models.BudgetRollup, error)
}

// BudgetOrderServiceInterface persists a user-defined display order
type BudgetOrderServiceInterface interface {
	Reorder(ctx context.Context, newOrder []models.DisplayBudget) error
}

// SyncTriggerInterface requests a sync of budget changes. Its outcome is opaque to callers.
type SyncTriggerInterface interface {
	Sync(ctx context.Context) error
	Close() error
}

// BudgetServiceInterface is the budget screen use-case layer
type BudgetServiceInterface interface {
	Overview(ctx context.Context, period models.TimePeriod) (*models.BudgetOverview, error)
	GetBudget(ctx context.Context, id uuid.UUID) (*models.Budget, error)
	CreateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	UpdateBudget(ctx context.Context, id uuid.UUID, changes *models.Budget) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id uuid.UUID) error
	ReorderBudgets(ctx context.Context, budgetIDs []uuid.UUID) error
}

// ExchangeRateServiceInterface manages stored exchange rates
type ExchangeRateServiceInterface interface {
	ListRates(ctx context.Context) ([]models.ExchangeRate, error)
	SetRate(ctx context.Context, rate *models.ExchangeRate) (*models.ExchangeRate, error)
}

// LedgerGeneratorInterface generates a realistic demo ledger
type LedgerGeneratorInterface interface {
	GenerateAccounts(count int, currencies []string) []models.Account
	GenerateCategories() []models.Category
	GenerateTransactions(accounts []models.Account, categories []models.Category, from, to time.Time, count int) []models.Transaction
	GenerateBudgets(accounts []models.Account, categories []models.Category) []models.Budget
}

// MetricsRecorderInterface records metrics for monitoring
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// BudgetLoggerInterface writes structured budget engine events
type BudgetLoggerInterface interface {
	LogRollupStarted(ctx context.Context, budgetCount, transactionCount int, timeRange models.TimeRange)
	LogRollupCompleted(ctx context.Context, budgetCount, unconvertedCount int, durationMs int64)
	LogMissingRate(ctx context.Context, from, to string, reason string)
	LogReorderApplied(ctx context.Context, budgetCount int)
	LogSyncTriggered(ctx context.Context, err error)
	LogBudgetChanged(ctx context.Context, budgetID uuid.UUID, action string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
