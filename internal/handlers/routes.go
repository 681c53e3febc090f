package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler served by the API. Dev is nil outside
// development.
type Handlers struct {
	Health        *HealthCheckHandler
	Budgets       *BudgetHandler
	Periods       *PeriodHandler
	ExchangeRates *ExchangeRateHandler
	Dev           *DevHandler
}

// RegisterRoutes mounts the API under /api/v1
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api/v1")

	budgets := api.Group("/budgets")
	budgets.GET("", h.Budgets.GetOverview)
	budgets.POST("", h.Budgets.CreateBudget)
	budgets.PUT("/order", h.Budgets.ReorderBudgets)
	budgets.GET("/:id", h.Budgets.GetBudget)
	budgets.PUT("/:id", h.Budgets.UpdateBudget)
	budgets.DELETE("/:id", h.Budgets.DeleteBudget)

	periods := api.Group("/periods")
	periods.GET("", h.Periods.ResolvePeriod)
	periods.GET("/adjacent", h.Periods.AdjacentPeriod)

	rates := api.Group("/exchange-rates")
	rates.GET("", h.ExchangeRates.ListRates)
	rates.PUT("", h.ExchangeRates.SetRate)

	if h.Dev != nil {
		api.POST("/dev/seed", h.Dev.SeedDemoData)
	}
}
