package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"budget-engine/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	repos        services.BudgetRepositories
	generator    services.LedgerGeneratorInterface
	baseCurrency string
	now          func() time.Time
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	repos services.BudgetRepositories,
	generator services.LedgerGeneratorInterface,
	baseCurrency string,
	now func() time.Time,
) *DevHandler {
	return &DevHandler{
		repos:        repos,
		generator:    generator,
		baseCurrency: baseCurrency,
		now:          now,
	}
}

// SeedDemoData fills an empty ledger with a generated year of history
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Success Response: 200 OK
//   - message: Success message
//   - transactions: Number of transactions in the ledger afterwards
//
// Error Responses:
//   - 500: Internal server error
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	slog.InfoContext(c.Request().Context(), "demo seed requested", "client_ip", getClientIP(c))

	if err := services.SeedDemoLedger(h.repos, h.generator, h.baseCurrency, h.now()); err != nil {
		return SendSystemError(c, err)
	}

	count, err := h.repos.Transactions.Count()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "demo ledger ready",
		"transactions": count,
	})
}
