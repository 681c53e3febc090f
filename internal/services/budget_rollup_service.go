package services

import (
	"context"
	"sort"
	"time"

	"budget-engine/internal/models"

	"github.com/shopspring/decimal"
)

type budgetRollupService struct {
	aggregator SpendAggregatorInterface
	logger     BudgetLoggerInterface
	metrics    MetricsRecorderInterface
}

// NewBudgetRollupService creates the rollup service
func NewBudgetRollupService(aggregator SpendAggregatorInterface, logger BudgetLoggerInterface, metrics MetricsRecorderInterface) BudgetRollupServiceInterface {
	return &budgetRollupService{
		aggregator: aggregator,
		logger:     logger,
		metrics:    metrics,
	}
}

// Rollup computes the spent amount of every budget over the transactions in
// timeRange, ordered by OrderID, together with the largest global cap and the
// sum of category caps. It retains nothing between calls.
func (s *budgetRollupService) Rollup(ctx context.Context, budgets []models.Budget, transactions []models.Transaction, accounts []models.Account, baseCurrency string, timeRange models.TimeRange) (*models.BudgetRollup, error) {
	start := time.Now()

	inRange := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if transactions[i].HappenedWithin(timeRange) {
			inRange = append(inRange, transactions[i])
		}
	}

	s.logger.LogRollupStarted(ctx, len(budgets), len(inRange), timeRange)

	ordered := make([]models.Budget, len(budgets))
	for i := range budgets {
		ordered[i] = budgets[i].Clone()
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderID < ordered[j].OrderID
	})

	accountSet := models.NewAccountSet(accounts)
	rollup := &models.BudgetRollup{
		DisplayBudgets:       make([]models.DisplayBudget, 0, len(ordered)),
		AppBudgetMax:         decimal.Zero,
		CategoryBudgetsTotal: decimal.Zero,
	}

	for i := range ordered {
		budget := &ordered[i]

		spent, err := s.aggregator.Spent(ctx, budget, inRange, accountSet, baseCurrency)
		if err != nil {
			s.metrics.IncrementCounter(MetricRollup, map[string]string{"status": "aborted"})
			return nil, err
		}

		rollup.DisplayBudgets = append(rollup.DisplayBudgets, models.DisplayBudget{
			Budget:      *budget,
			SpentAmount: spent.Spent,
		})
		rollup.UnconvertedCount += spent.UnconvertedCount

		if budget.IsCategoryBudget() {
			rollup.CategoryBudgetsTotal = rollup.CategoryBudgetsTotal.Add(budget.Amount)
		} else if budget.Amount.GreaterThan(rollup.AppBudgetMax) {
			rollup.AppBudgetMax = budget.Amount
		}
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricRollup, map[string]string{"status": "completed"})
	s.metrics.RecordProcessingTime(MetricRollup, duration)
	s.metrics.RecordGauge(MetricUnconvertedTransactions, float64(rollup.UnconvertedCount), nil)
	s.logger.LogRollupCompleted(ctx, len(ordered), rollup.UnconvertedCount, duration.Milliseconds())

	return rollup, nil
}
