package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget-engine/internal/models"
	"budget-engine/internal/repositories"
	"budget-engine/internal/repositories/repository_mocks"
	"budget-engine/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	budgetRepo      *repository_mocks.MockBudgetRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	accountRepo     *repository_mocks.MockAccountRepositoryInterface
	categoryRepo    *repository_mocks.MockCategoryRepositoryInterface
	settingsRepo    *repository_mocks.MockSettingsRepositoryInterface
	resolver        *service_mocks.MockTimePeriodResolverInterface
	rollup          *service_mocks.MockBudgetRollupServiceInterface
	order           *service_mocks.MockBudgetOrderServiceInterface
	logger          *service_mocks.MockBudgetLoggerInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         BudgetServiceInterface
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.settingsRepo = repository_mocks.NewMockSettingsRepositoryInterface(s.ctrl)
	s.resolver = service_mocks.NewMockTimePeriodResolverInterface(s.ctrl)
	s.rollup = service_mocks.NewMockBudgetRollupServiceInterface(s.ctrl)
	s.order = service_mocks.NewMockBudgetOrderServiceInterface(s.ctrl)
	s.logger = service_mocks.NewMockBudgetLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.service = NewBudgetService(BudgetRepositories{
		Budgets:      s.budgetRepo,
		Transactions: s.transactionRepo,
		Accounts:     s.accountRepo,
		Categories:   s.categoryRepo,
		Settings:     s.settingsRepo,
	}, s.resolver, s.rollup, s.order, s.logger, s.metrics, "USD")
}

func (s *BudgetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetServiceTestSuite) expectChanged(action string) {
	s.logger.EXPECT().LogBudgetChanged(gomock.Any(), gomock.Any(), action)
	s.metrics.EXPECT().IncrementCounter(MetricBudgetChanged, map[string]string{"action": action})
}

func (s *BudgetServiceTestSuite) marchRange() models.TimeRange {
	return models.TimeRange{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *BudgetServiceTestSuite) TestOverview_Success() {
	period, _ := models.NewMonthPeriod(time.March, 2024)
	timeRange := s.marchRange()
	budgets := []models.Budget{{ID: uuid.New(), Name: "Monthly", Amount: decimal.NewFromInt(100)}}
	accounts := []models.Account{{ID: uuid.New(), Name: "Checking", Currency: "EUR"}}
	categories := []models.Category{{ID: uuid.New(), Name: "Food"}}
	transactions := []models.Transaction{{ID: uuid.New(), Type: models.TransactionTypeExpense}}
	rollup := &models.BudgetRollup{AppBudgetMax: decimal.NewFromInt(100)}

	s.resolver.EXPECT().Resolve(period).Return(timeRange, nil)
	s.categoryRepo.EXPECT().GetAll().Return(categories, nil)
	s.accountRepo.EXPECT().GetAll().Return(accounts, nil)
	s.budgetRepo.EXPECT().GetAll().Return(budgets, nil)
	s.transactionRepo.EXPECT().GetHistory(timeRange).Return(transactions, nil)
	s.settingsRepo.EXPECT().Get().Return(&models.Settings{BaseCurrency: "EUR"}, nil)
	s.rollup.EXPECT().Rollup(gomock.Any(), budgets, transactions, accounts, "EUR", timeRange).Return(rollup, nil)

	overview, err := s.service.Overview(context.Background(), period)

	s.Require().NoError(err)
	s.Equal("EUR", overview.BaseCurrency)
	s.Equal(timeRange, overview.Range)
	s.Equal(categories, overview.Categories)
	s.Equal(accounts, overview.Accounts)
	s.True(decimal.NewFromInt(100).Equal(overview.Rollup.AppBudgetMax))
}

func (s *BudgetServiceTestSuite) TestOverview_DefaultCurrencyWithoutSettings() {
	period := models.NewYearPeriod(2024)
	timeRange := s.marchRange()

	s.resolver.EXPECT().Resolve(period).Return(timeRange, nil)
	s.categoryRepo.EXPECT().GetAll().Return(nil, nil)
	s.accountRepo.EXPECT().GetAll().Return(nil, nil)
	s.budgetRepo.EXPECT().GetAll().Return(nil, nil)
	s.transactionRepo.EXPECT().GetHistory(timeRange).Return(nil, nil)
	s.settingsRepo.EXPECT().Get().Return(nil, repositories.ErrSettingsNotFound)
	s.rollup.EXPECT().Rollup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "USD", timeRange).Return(&models.BudgetRollup{}, nil)

	overview, err := s.service.Overview(context.Background(), period)

	s.Require().NoError(err)
	s.Equal("USD", overview.BaseCurrency)
}

func (s *BudgetServiceTestSuite) TestOverview_InvalidPeriod() {
	s.resolver.EXPECT().Resolve(models.TimePeriod{}).Return(models.TimeRange{}, models.ErrInvalidPeriod)

	_, err := s.service.Overview(context.Background(), models.TimePeriod{})

	s.ErrorIs(err, models.ErrInvalidPeriod)
}

func (s *BudgetServiceTestSuite) TestOverview_LoadFailure() {
	period := models.NewYearPeriod(2024)
	dbErr := errors.New("connection reset")

	s.resolver.EXPECT().Resolve(period).Return(s.marchRange(), nil)
	s.categoryRepo.EXPECT().GetAll().Return(nil, nil)
	s.accountRepo.EXPECT().GetAll().Return(nil, dbErr)
	s.budgetRepo.EXPECT().GetAll().Return(nil, nil)
	s.transactionRepo.EXPECT().GetHistory(gomock.Any()).Return(nil, nil)
	s.settingsRepo.EXPECT().Get().Return(&models.Settings{BaseCurrency: "USD"}, nil)

	_, err := s.service.Overview(context.Background(), period)

	s.ErrorIs(err, dbErr)
}

func (s *BudgetServiceTestSuite) TestCreateBudget_AppendsToOrder() {
	input := &models.Budget{Name: "Groceries", Amount: decimal.NewFromInt(400), IsSynced: true}

	s.budgetRepo.EXPECT().MaxOrderID().Return(float64(4), nil)
	s.budgetRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(budget *models.Budget) error {
		s.Equal(float64(5), budget.OrderID)
		s.False(budget.IsSynced)
		budget.ID = uuid.New()
		return nil
	})
	s.expectChanged("created")

	created, err := s.service.CreateBudget(context.Background(), input)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, created.ID)
	s.Equal(float64(5), created.OrderID)
}

func (s *BudgetServiceTestSuite) TestCreateBudget_FirstBudget() {
	s.budgetRepo.EXPECT().MaxOrderID().Return(float64(-1), nil)
	s.budgetRepo.EXPECT().Create(gomock.Any()).Return(nil)
	s.expectChanged("created")

	created, err := s.service.CreateBudget(context.Background(), &models.Budget{Name: "Monthly", Amount: decimal.NewFromInt(1)})

	s.Require().NoError(err)
	s.Equal(float64(0), created.OrderID)
}

func (s *BudgetServiceTestSuite) TestCreateBudget_Invalid() {
	_, err := s.service.CreateBudget(context.Background(), &models.Budget{Name: " ", Amount: decimal.NewFromInt(1)})

	s.ErrorIs(err, models.ErrBudgetNameRequired)
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_KeepsOrder() {
	id := uuid.New()
	category := uuid.New()
	existing := &models.Budget{ID: id, Name: "Old", Amount: decimal.NewFromInt(10), OrderID: 3, IsSynced: true}
	changes := &models.Budget{Name: "New", Amount: decimal.NewFromInt(20), OrderID: 99, CategoryIDs: models.UUIDList{category}}

	s.budgetRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.budgetRepo.EXPECT().Save(gomock.Any()).Return(nil)
	s.expectChanged("updated")

	updated, err := s.service.UpdateBudget(context.Background(), id, changes)

	s.Require().NoError(err)
	s.Equal("New", updated.Name)
	s.Equal(float64(3), updated.OrderID)
	s.False(updated.IsSynced)
	s.True(updated.IsCategoryBudget())
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_NotFound() {
	id := uuid.New()
	s.budgetRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrBudgetNotFound)

	_, err := s.service.UpdateBudget(context.Background(), id, &models.Budget{Name: "X"})

	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *BudgetServiceTestSuite) TestDeleteBudget() {
	id := uuid.New()
	s.budgetRepo.EXPECT().Delete(id).Return(nil)
	s.expectChanged("deleted")

	s.NoError(s.service.DeleteBudget(context.Background(), id))
}

func (s *BudgetServiceTestSuite) TestDeleteBudget_NotFound() {
	id := uuid.New()
	s.budgetRepo.EXPECT().Delete(id).Return(repositories.ErrBudgetNotFound)

	s.ErrorIs(s.service.DeleteBudget(context.Background(), id), ErrBudgetNotFound)
}

func (s *BudgetServiceTestSuite) TestReorderBudgets() {
	a := models.Budget{ID: uuid.New(), Name: "A"}
	b := models.Budget{ID: uuid.New(), Name: "B"}
	c := models.Budget{ID: uuid.New(), Name: "C"}

	s.budgetRepo.EXPECT().GetAll().Return([]models.Budget{a, b, c}, nil)
	s.order.EXPECT().Reorder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, newOrder []models.DisplayBudget) error {
		s.Require().Len(newOrder, 3)
		s.Equal(c.ID, newOrder[0].Budget.ID)
		s.Equal(a.ID, newOrder[1].Budget.ID)
		s.Equal(b.ID, newOrder[2].Budget.ID)
		return nil
	})

	s.NoError(s.service.ReorderBudgets(context.Background(), []uuid.UUID{c.ID, a.ID, b.ID}))
}

func (s *BudgetServiceTestSuite) TestReorderBudgets_RejectsIncompleteOrder() {
	a := models.Budget{ID: uuid.New(), Name: "A"}
	b := models.Budget{ID: uuid.New(), Name: "B"}

	tests := []struct {
		name string
		ids  []uuid.UUID
	}{
		{"missing budget", []uuid.UUID{a.ID}},
		{"duplicate budget", []uuid.UUID{a.ID, a.ID}},
		{"unknown budget", []uuid.UUID{a.ID, uuid.New()}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.budgetRepo.EXPECT().GetAll().Return([]models.Budget{a, b}, nil)

			err := s.service.ReorderBudgets(context.Background(), tt.ids)

			s.ErrorIs(err, ErrInvalidBudgetOrder)
		})
	}
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
