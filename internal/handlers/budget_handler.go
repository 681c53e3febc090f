package handlers

import (
	"net/http"
	"time"

	"budget-engine/internal/dto"
	"budget-engine/internal/errors"
	"budget-engine/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget screen HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	resolver      services.TimePeriodResolverInterface
	now           func() time.Time
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface, resolver services.TimePeriodResolverInterface, now func() time.Time) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		resolver:      resolver,
		now:           now,
	}
}

// GetOverview returns every budget with its spend for the selected period
// @Summary Budget overview
// @Description Budgets in display order with the amount spent in the selected period, plus the app-wide cap and the category budgets total
// @Tags Budgets
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param last query int false "Trailing window length"
// @Param unit query string false "Trailing window unit" Enums(day, week, month, year)
// @Success 200 {object} dto.BudgetOverviewResponse
// @Failure 400 {object} errors.ErrorResponse "PERIOD_001..PERIOD_003 - Invalid period"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [get]
func (h *BudgetHandler) GetOverview(c echo.Context) error {
	startDay := h.resolver.StartDayOfMonth()
	period, err := periodQueryFromContext(c).ToTimePeriod(h.now(), startDay)
	if err != nil {
		return sendServiceError(c, err)
	}

	overview, err := h.budgetService.Overview(c.Request().Context(), period)
	if err != nil {
		return sendServiceError(c, err)
	}

	periodResp := dto.NewPeriodResponse(overview.Period, overview.Range, startDay)
	return c.JSON(http.StatusOK, dto.NewBudgetOverviewResponse(overview, periodResp))
}

// GetBudget returns a single budget
// @Summary Get budget by ID
// @Tags Budgets
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Success 200 {object} models.Budget
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid budget ID"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid budget ID"))
	}

	budget, err := h.budgetService.GetBudget(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// CreateBudget adds a budget after the last one in display order
// @Summary Create budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.BudgetRequest true "Budget details"
// @Success 201 {object} models.Budget
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "BUDGET_003/BUDGET_004 - Invalid budget"
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req dto.BudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidJSON, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := req.ToModel()
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	created, err := h.budgetService.CreateBudget(c.Request().Context(), budget)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// UpdateBudget replaces the name, cap and scopes of a budget
// @Summary Update budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Param id path string true "Budget ID (UUID)"
// @Param request body dto.BudgetRequest true "Budget details"
// @Success 200 {object} models.Budget
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid budget ID"))
	}

	var req dto.BudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidJSON, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	changes, err := req.ToModel()
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	updated, err := h.budgetService.UpdateBudget(c.Request().Context(), id, changes)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteBudget removes a budget
// @Summary Delete budget
// @Tags Budgets
// @Param id path string true "Budget ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - Budget not found"
// @Router /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid budget ID"))
	}

	if err := h.budgetService.DeleteBudget(c.Request().Context(), id); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ReorderBudgets applies a user-defined display order
// @Summary Reorder budgets
// @Description The body lists every budget id exactly once in the new order
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body dto.ReorderBudgetsRequest true "New order"
// @Success 200 {object} SuccessResponse
// @Failure 422 {object} errors.ErrorResponse "BUDGET_002 - Order does not list every budget exactly once"
// @Router /budgets/order [put]
func (h *BudgetHandler) ReorderBudgets(c echo.Context) error {
	var req dto.ReorderBudgetsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidJSON, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ids, err := req.IDs()
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	if err := h.budgetService.ReorderBudgets(c.Request().Context(), ids); err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Budgets reordered",
		Meta:    map[string]int{"count": len(ids)},
	})
}
