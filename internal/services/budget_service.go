package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"budget-engine/internal/models"
	"budget-engine/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrBudgetNotFound     = errors.New("budget not found")
	ErrInvalidBudgetOrder = errors.New("budget order must list every budget exactly once")
)

// BudgetRepositories groups the storage collaborators of the budget screen.
type BudgetRepositories struct {
	Budgets      repositories.BudgetRepositoryInterface
	Transactions repositories.TransactionRepositoryInterface
	Accounts     repositories.AccountRepositoryInterface
	Categories   repositories.CategoryRepositoryInterface
	Settings     repositories.SettingsRepositoryInterface
}

type budgetService struct {
	repos           BudgetRepositories
	resolver        TimePeriodResolverInterface
	rollup          BudgetRollupServiceInterface
	order           BudgetOrderServiceInterface
	logger          BudgetLoggerInterface
	metrics         MetricsRecorderInterface
	defaultCurrency string
}

// NewBudgetService creates the budget use-case service. defaultCurrency is the
// base currency used until the user picks one in settings.
func NewBudgetService(repos BudgetRepositories, resolver TimePeriodResolverInterface, rollup BudgetRollupServiceInterface, order BudgetOrderServiceInterface, logger BudgetLoggerInterface, metrics MetricsRecorderInterface, defaultCurrency string) BudgetServiceInterface {
	return &budgetService{
		repos:           repos,
		resolver:        resolver,
		rollup:          rollup,
		order:           order,
		logger:          logger,
		metrics:         metrics,
		defaultCurrency: defaultCurrency,
	}
}

// Overview loads a fresh snapshot for period and rolls it up.
func (s *budgetService) Overview(ctx context.Context, period models.TimePeriod) (*models.BudgetOverview, error) {
	timeRange, err := s.resolver.Resolve(period)
	if err != nil {
		return nil, err
	}

	var (
		categories   []models.Category
		accounts     []models.Account
		budgets      []models.Budget
		transactions []models.Transaction
		baseCurrency string
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		categories, err = s.repos.Categories.GetAll()
		return err
	})
	g.Go(func() (err error) {
		accounts, err = s.repos.Accounts.GetAll()
		return err
	})
	g.Go(func() (err error) {
		budgets, err = s.repos.Budgets.GetAll()
		return err
	})
	g.Go(func() (err error) {
		transactions, err = s.repos.Transactions.GetHistory(timeRange)
		return err
	})
	g.Go(func() (err error) {
		baseCurrency, err = s.baseCurrency()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load budget snapshot: %w", err)
	}

	rollup, err := s.rollup.Rollup(ctx, budgets, transactions, accounts, baseCurrency, timeRange)
	if err != nil {
		return nil, err
	}

	return &models.BudgetOverview{
		Period:       period,
		Range:        timeRange,
		BaseCurrency: baseCurrency,
		Categories:   categories,
		Accounts:     accounts,
		Rollup:       *rollup,
	}, nil
}

func (s *budgetService) baseCurrency() (string, error) {
	settings, err := s.repos.Settings.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrSettingsNotFound) {
			return s.defaultCurrency, nil
		}
		return "", err
	}
	if settings.BaseCurrency == "" {
		return s.defaultCurrency, nil
	}
	return settings.BaseCurrency, nil
}

// GetBudget retrieves a single budget
func (s *budgetService) GetBudget(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	budget, err := s.repos.Budgets.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// CreateBudget stores a new budget after the last one in display order.
func (s *budgetService) CreateBudget(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	maxOrder, err := s.repos.Budgets.MaxOrderID()
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	created := budget.Clone()
	created.ID = uuid.Nil
	created.OrderID = maxOrder + 1
	created.IsSynced = false

	if err := s.repos.Budgets.Create(&created); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.changed(ctx, created.ID, "created")
	return &created, nil
}

// UpdateBudget replaces the name, cap and scopes of an existing budget. The
// display order is kept.
func (s *budgetService) UpdateBudget(ctx context.Context, id uuid.UUID, changes *models.Budget) (*models.Budget, error) {
	existing, err := s.GetBudget(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := changes.Clone()
	existing.Name = updated.Name
	existing.Amount = updated.Amount
	existing.AccountIDs = updated.AccountIDs
	existing.CategoryIDs = updated.CategoryIDs
	existing.IsSynced = false

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repos.Budgets.Save(existing); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	s.changed(ctx, existing.ID, "updated")
	return existing, nil
}

// DeleteBudget removes a budget
func (s *budgetService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	if err := s.repos.Budgets.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	s.changed(ctx, id, "deleted")
	return nil
}

// ReorderBudgets applies a new display order given as the complete list of budget ids.
func (s *budgetService) ReorderBudgets(ctx context.Context, budgetIDs []uuid.UUID) error {
	budgets, err := s.repos.Budgets.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}
	if len(budgetIDs) != len(budgets) {
		return ErrInvalidBudgetOrder
	}

	byID := make(map[uuid.UUID]models.Budget, len(budgets))
	for _, b := range budgets {
		byID[b.ID] = b
	}

	newOrder := make([]models.DisplayBudget, 0, len(budgetIDs))
	for _, id := range budgetIDs {
		budget, ok := byID[id]
		if !ok {
			return ErrInvalidBudgetOrder
		}
		delete(byID, id)
		newOrder = append(newOrder, models.DisplayBudget{Budget: budget})
	}

	return s.order.Reorder(ctx, newOrder)
}

func (s *budgetService) changed(ctx context.Context, id uuid.UUID, action string) {
	s.logger.LogBudgetChanged(ctx, id, action)
	s.metrics.IncrementCounter(MetricBudgetChanged, map[string]string{"action": action})
	slog.DebugContext(ctx, "budget changed, callers must re-fetch the overview", "budget_id", id, "action", action)
}
