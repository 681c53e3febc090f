package services

import (
	"fmt"
	"log/slog"
	"time"

	"budget-engine/internal/models"
)

const demoTransactionCount = 400

// SeedDemoLedger fills an empty ledger with generated accounts, categories,
// transactions over the last year and a few budgets. A ledger that already
// has transactions is left untouched.
func SeedDemoLedger(repos BudgetRepositories, generator LedgerGeneratorInterface, baseCurrency string, now time.Time) error {
	existing, err := repos.Transactions.Count()
	if err != nil {
		return fmt.Errorf("failed to check ledger: %w", err)
	}
	if existing > 0 {
		slog.Info("ledger already has transactions, skipping demo data", "count", existing)
		return nil
	}

	if err := repos.Settings.Save(&models.Settings{BaseCurrency: baseCurrency, Name: "Demo"}); err != nil {
		return err
	}

	accounts := generator.GenerateAccounts(3, []string{baseCurrency, "", "EUR"})
	for i := range accounts {
		if err := repos.Accounts.Create(&accounts[i]); err != nil {
			return err
		}
	}

	categories := generator.GenerateCategories()
	for i := range categories {
		if err := repos.Categories.Create(&categories[i]); err != nil {
			return err
		}
	}

	transactions := generator.GenerateTransactions(accounts, categories, now.AddDate(-1, 0, 0), now, demoTransactionCount)
	if err := repos.Transactions.CreateBatch(transactions); err != nil {
		return err
	}

	budgets := generator.GenerateBudgets(accounts, categories)
	for i := range budgets {
		if err := repos.Budgets.Create(&budgets[i]); err != nil {
			return err
		}
	}

	slog.Info("demo ledger seeded",
		"accounts", len(accounts),
		"categories", len(categories),
		"transactions", len(transactions),
		"budgets", len(budgets),
	)
	return nil
}
