package dto

import (
	"fmt"
	"strings"

	"budget-engine/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget Request DTOs

// BudgetRequest is the payload for creating or replacing a budget. Empty id
// lists leave that dimension unscoped.
type BudgetRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Amount      string   `json:"amount" validate:"required,decimal_amount"`
	AccountIDs  []string `json:"account_ids" validate:"omitempty,dive,uuid"`
	CategoryIDs []string `json:"category_ids" validate:"omitempty,dive,uuid"`
}

// ToModel converts the request into a budget. Order and sync state are owned
// by the service.
func (r *BudgetRequest) ToModel() (*models.Budget, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", r.Amount, err)
	}

	accountIDs, err := parseIDList(r.AccountIDs)
	if err != nil {
		return nil, err
	}
	categoryIDs, err := parseIDList(r.CategoryIDs)
	if err != nil {
		return nil, err
	}

	return &models.Budget{
		Name:        strings.TrimSpace(r.Name),
		Amount:      amount,
		AccountIDs:  accountIDs,
		CategoryIDs: categoryIDs,
	}, nil
}

// ReorderBudgetsRequest lists every budget id in the new display order
type ReorderBudgetsRequest struct {
	BudgetIDs []string `json:"budget_ids" validate:"required,min=1,dive,uuid"`
}

// IDs parses the budget ids
func (r *ReorderBudgetsRequest) IDs() ([]uuid.UUID, error) {
	ids, err := parseIDList(r.BudgetIDs)
	if err != nil {
		return nil, err
	}
	return []uuid.UUID(ids), nil
}

// Budget Response DTOs

// BudgetResponse is a single budget together with its spend in the selected range
type BudgetResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	SpentAmount decimal.Decimal `json:"spent_amount"`
	Remaining   decimal.Decimal `json:"remaining"`
	AccountIDs  []uuid.UUID     `json:"account_ids"`
	CategoryIDs []uuid.UUID     `json:"category_ids"`
	IsGlobal    bool            `json:"is_global"`
	OrderID     float64         `json:"order_id"`
	IsSynced    bool            `json:"is_synced"`
}

// BudgetOverviewResponse is the budget screen for one period
type BudgetOverviewResponse struct {
	Period               PeriodResponse    `json:"period"`
	BaseCurrency         string            `json:"base_currency"`
	Budgets              []BudgetResponse  `json:"budgets"`
	AppBudgetMax         decimal.Decimal   `json:"app_budget_max"`
	CategoryBudgetsTotal decimal.Decimal   `json:"category_budgets_total"`
	UnconvertedCount     int               `json:"unconverted_count"`
	Accounts             []models.Account  `json:"accounts"`
	Categories           []models.Category `json:"categories"`
}

// NewBudgetResponse builds the response for a budget and its spend
func NewBudgetResponse(budget models.Budget, spent decimal.Decimal) BudgetResponse {
	return BudgetResponse{
		ID:          budget.ID,
		Name:        budget.Name,
		Amount:      budget.Amount,
		SpentAmount: spent,
		Remaining:   budget.Amount.Sub(spent),
		AccountIDs:  nonNilIDs(budget.AccountIDs),
		CategoryIDs: nonNilIDs(budget.CategoryIDs),
		IsGlobal:    !budget.IsCategoryBudget(),
		OrderID:     budget.OrderID,
		IsSynced:    budget.IsSynced,
	}
}

// NewBudgetOverviewResponse flattens an overview for the API
func NewBudgetOverviewResponse(overview *models.BudgetOverview, period PeriodResponse) BudgetOverviewResponse {
	budgets := make([]BudgetResponse, 0, len(overview.Rollup.DisplayBudgets))
	for _, db := range overview.Rollup.DisplayBudgets {
		budgets = append(budgets, NewBudgetResponse(db.Budget, db.SpentAmount))
	}

	accounts := overview.Accounts
	if accounts == nil {
		accounts = []models.Account{}
	}
	categories := overview.Categories
	if categories == nil {
		categories = []models.Category{}
	}

	return BudgetOverviewResponse{
		Period:               period,
		BaseCurrency:         overview.BaseCurrency,
		Budgets:              budgets,
		AppBudgetMax:         overview.Rollup.AppBudgetMax,
		CategoryBudgetsTotal: overview.Rollup.CategoryBudgetsTotal,
		UnconvertedCount:     overview.Rollup.UnconvertedCount,
		Accounts:             accounts,
		Categories:           categories,
	}
}

func parseIDList(raw []string) (models.UUIDList, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	ids := make(models.UUIDList, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func nonNilIDs(ids models.UUIDList) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return []uuid.UUID(ids)
}
