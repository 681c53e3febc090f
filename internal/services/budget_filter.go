package services

import "budget-engine/internal/models"

type budgetFilter struct{}

// NewBudgetFilter creates the account/category scope filter
func NewBudgetFilter() BudgetFilterInterface {
	return &budgetFilter{}
}

// Matches passes when both the account and the category scope pass. An
// unscoped dimension passes everything, including uncategorized transactions.
func (f *budgetFilter) Matches(transaction *models.Transaction, budget *models.Budget) bool {
	return f.Matcher(budget)(transaction)
}

// Matcher builds the scopes of budget once for filtering many transactions.
func (f *budgetFilter) Matcher(budget *models.Budget) models.TransactionMatcher {
	accounts := budget.AccountScope()
	categories := budget.CategoryScope()

	return func(transaction *models.Transaction) bool {
		return accounts.Contains(transaction.AccountID) && categories.ContainsOptional(transaction.CategoryID)
	}
}
