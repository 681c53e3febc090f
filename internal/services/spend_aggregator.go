package services

import (
	"context"
	"fmt"

	"budget-engine/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type spendPolicy int

const (
	spendExcluded spendPolicy = iota
	spendAccumulated
)

// Every models.TransactionType must have an entry.
var transactionSpendPolicies = map[models.TransactionType]spendPolicy{
	models.TransactionTypeExpense:  spendAccumulated,
	models.TransactionTypeIncome:   spendExcluded,
	models.TransactionTypeTransfer: spendExcluded,
}

func spendPolicyFor(t models.TransactionType) spendPolicy {
	if policy, ok := transactionSpendPolicies[t]; ok {
		return policy
	}
	return spendExcluded
}

type spendAggregator struct {
	filter      BudgetFilterInterface
	currency    CurrencyServiceInterface
	concurrency int
}

// NewSpendAggregator creates an aggregator running at most concurrency
// conversions at a time.
func NewSpendAggregator(filter BudgetFilterInterface, currency CurrencyServiceInterface, concurrency int) SpendAggregatorInterface {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &spendAggregator{
		filter:      filter,
		currency:    currency,
		concurrency: concurrency,
	}
}

// Spent sums the matching expenses of budget in baseCurrency. An expense
// without an exchange rate contributes nothing and is counted as unconverted.
// The only error is the cancellation of ctx; no partial result is returned.
func (a *spendAggregator) Spent(ctx context.Context, budget *models.Budget, transactions []models.Transaction, accounts models.AccountSet, baseCurrency string) (models.SpendResult, error) {
	matches := a.filter.Matcher(budget)

	var expenses []*models.Transaction
	for i := range transactions {
		txn := &transactions[i]
		if spendPolicyFor(txn.Type) != spendAccumulated || !matches(txn) {
			continue
		}
		expenses = append(expenses, txn)
	}

	converted := make([]decimal.NullDecimal, len(expenses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, txn := range expenses {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			from := a.currency.ResolveCurrency(txn, accounts, baseCurrency)
			converted[i] = a.currency.Convert(gctx, txn.Amount, from, baseCurrency)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.SpendResult{}, fmt.Errorf("failed to aggregate spend for budget %s: %w", budget.ID, err)
	}
	if err := ctx.Err(); err != nil {
		return models.SpendResult{}, fmt.Errorf("failed to aggregate spend for budget %s: %w", budget.ID, err)
	}

	// Index order keeps the sum identical across calls.
	result := models.SpendResult{Spent: decimal.Zero}
	for _, amount := range converted {
		if !amount.Valid {
			result.UnconvertedCount++
			continue
		}
		result.Spent = result.Spent.Add(amount.Decimal)
	}

	return result, nil
}
