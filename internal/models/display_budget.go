package models

import "github.com/shopspring/decimal"

// DisplayBudget pairs a budget with what was spent against it in the selected
// range. It is derived on every aggregation pass and never persisted.
type DisplayBudget struct {
	Budget      Budget          `json:"budget"`
	SpentAmount decimal.Decimal `json:"spent_amount"`
}

// SpendResult is the spent amount of one budget plus the number of matching
// expenses that could not be converted and were left out of it.
type SpendResult struct {
	Spent            decimal.Decimal
	UnconvertedCount int
}

// TransactionMatcher reports whether a transaction falls inside one budget's scope.
type TransactionMatcher func(transaction *Transaction) bool

// BudgetRollup is the result of one aggregation pass over a snapshot.
type BudgetRollup struct {
	DisplayBudgets       []DisplayBudget `json:"display_budgets"`
	AppBudgetMax         decimal.Decimal `json:"app_budget_max"`
	CategoryBudgetsTotal decimal.Decimal `json:"category_budgets_total"`
	// UnconvertedCount is the number of matching expenses left out because no
	// exchange rate was available.
	UnconvertedCount int `json:"unconverted_count"`
}

// BudgetOverview is everything the budget screen needs for one period.
type BudgetOverview struct {
	Period       TimePeriod   `json:"period"`
	Range        TimeRange    `json:"range"`
	BaseCurrency string       `json:"base_currency"`
	Categories   []Category   `json:"categories"`
	Accounts     []Account    `json:"accounts"`
	Rollup       BudgetRollup `json:"rollup"`
}
