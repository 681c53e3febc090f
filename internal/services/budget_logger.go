package services

import (
	"context"
	"log/slog"
	"time"

	"budget-engine/internal/models"

	"github.com/google/uuid"
)

type correlationIDKey struct{}

// WithCorrelationID attaches the request trace id to ctx for log correlation.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the id set by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

type BudgetLogger struct {
	logger *slog.Logger
}

func NewBudgetLogger(logger *slog.Logger) BudgetLoggerInterface {
	return &BudgetLogger{
		logger: logger,
	}
}

func (bl *BudgetLogger) LogRollupStarted(ctx context.Context, budgetCount, transactionCount int, timeRange models.TimeRange) {
	bl.logger.DebugContext(ctx, "budget rollup started",
		slog.String("event_type", "budget_rollup_started"),
		slog.Int("budget_count", budgetCount),
		slog.Int("transaction_count", transactionCount),
		slog.Time("from", timeRange.From),
		slog.Time("to", timeRange.To),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (bl *BudgetLogger) LogRollupCompleted(ctx context.Context, budgetCount, unconvertedCount int, durationMs int64) {
	level := slog.LevelInfo
	if unconvertedCount > 0 {
		level = slog.LevelWarn
	}
	bl.logger.Log(ctx, level, "budget rollup completed",
		slog.String("event_type", "budget_rollup_completed"),
		slog.Int("budget_count", budgetCount),
		slog.Int("unconverted_count", unconvertedCount),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (bl *BudgetLogger) LogMissingRate(ctx context.Context, from, to string, reason string) {
	bl.logger.WarnContext(ctx, "exchange rate unavailable",
		slog.String("event_type", "exchange_rate_missing"),
		slog.String("from", from),
		slog.String("to", to),
		slog.String("reason", reason),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (bl *BudgetLogger) LogReorderApplied(ctx context.Context, budgetCount int) {
	bl.logger.InfoContext(ctx, "budget order applied",
		slog.String("event_type", "budget_reorder_applied"),
		slog.Int("budget_count", budgetCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (bl *BudgetLogger) LogSyncTriggered(ctx context.Context, err error) {
	if err != nil {
		bl.logger.ErrorContext(ctx, "budget sync trigger failed",
			slog.String("event_type", "budget_sync_failed"),
			slog.String("error", err.Error()),
			slog.String("correlation_id", CorrelationID(ctx)),
		)
		return
	}
	bl.logger.InfoContext(ctx, "budget sync triggered",
		slog.String("event_type", "budget_sync_triggered"),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (bl *BudgetLogger) LogBudgetChanged(ctx context.Context, budgetID uuid.UUID, action string) {
	bl.logger.InfoContext(ctx, "budget changed",
		slog.String("event_type", "budget_"+action),
		slog.String("budget_id", budgetID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (bl *BudgetLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	bl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}
