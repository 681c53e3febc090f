package services

import (
	"context"
	"fmt"
	"sync"

	"budget-engine/internal/models"
	"budget-engine/internal/repositories"
)

type budgetOrderService struct {
	// mu serializes reorders so that concurrent reorders cannot interleave their writes.
	mu         sync.Mutex
	budgetRepo repositories.BudgetRepositoryInterface
	sync       SyncTriggerInterface
	logger     BudgetLoggerInterface
	metrics    MetricsRecorderInterface
}

// NewBudgetOrderService creates the budget ordering store
func NewBudgetOrderService(budgetRepo repositories.BudgetRepositoryInterface, syncTrigger SyncTriggerInterface, logger BudgetLoggerInterface, metrics MetricsRecorderInterface) BudgetOrderServiceInterface {
	return &budgetOrderService{
		budgetRepo: budgetRepo,
		sync:       syncTrigger,
		logger:     logger,
		metrics:    metrics,
	}
}

// Reorder gives every budget its zero-based position in newOrder as OrderID,
// marks it unsynced and saves it, then triggers a sync. A failed sync is
// logged and does not fail the reorder. Spent amounts are not recomputed.
func (s *budgetOrderService) Reorder(ctx context.Context, newOrder []models.DisplayBudget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range newOrder {
		budget := newOrder[i].Budget.Clone()
		budget.OrderID = float64(i)
		budget.IsSynced = false

		if err := s.budgetRepo.Save(&budget); err != nil {
			s.metrics.IncrementCounter(MetricBudgetReorder, map[string]string{"status": "failed"})
			return fmt.Errorf("failed to save order of budget %s: %w", budget.ID, err)
		}
	}

	s.metrics.IncrementCounter(MetricBudgetReorder, map[string]string{"status": "success"})
	s.logger.LogReorderApplied(ctx, len(newOrder))

	err := s.sync.Sync(ctx)
	s.logger.LogSyncTriggered(ctx, err)
	status := "success"
	if err != nil {
		status = "failed"
	}
	s.metrics.IncrementCounter(MetricSyncTriggered, map[string]string{"status": status})

	return nil
}
