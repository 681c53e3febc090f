package repositories

import (
	"testing"
	"time"

	"budget-engine/internal/database"
	"budget-engine/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    TransactionRepositoryInterface
	account *models.Account
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.account = database.CreateTestAccount(s.T(), s.db, "Checking", "USD")
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) TestGetHistory_HalfOpenRange() {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	inside := database.CreateTestTransaction(s.T(), s.db, s.account.ID, nil, models.TransactionTypeExpense, decimal.NewFromInt(10), from)
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, nil, models.TransactionTypeExpense, decimal.NewFromInt(20), to)
	database.CreateTestTransaction(s.T(), s.db, s.account.ID, nil, models.TransactionTypeExpense, decimal.NewFromInt(30), from.Add(-time.Second))

	planned := &models.Transaction{
		Type:      models.TransactionTypeExpense,
		Amount:    decimal.NewFromInt(40),
		AccountID: s.account.ID,
		DueDate:   &from,
	}
	s.Require().NoError(s.repo.Create(planned))

	history, err := s.repo.GetHistory(models.TimeRange{From: from, To: to})
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(inside.ID, history[0].ID)
	s.True(decimal.NewFromInt(10).Equal(history[0].Amount))
}

func (s *TransactionRepositorySuite) TestCreate_RejectsInvalidTransaction() {
	err := s.repo.Create(&models.Transaction{
		Type:      models.TransactionType("REFUND"),
		Amount:    decimal.NewFromInt(1),
		AccountID: s.account.ID,
	})
	s.ErrorIs(err, models.ErrInvalidTransactionType)

	err = s.repo.Create(&models.Transaction{
		Type:   models.TransactionTypeExpense,
		Amount: decimal.NewFromInt(1),
	})
	s.ErrorIs(err, models.ErrAccountRequired)
}

func (s *TransactionRepositorySuite) TestCreateBatchAndCount() {
	category := database.CreateTestCategory(s.T(), s.db, "Food")
	at := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)

	batch := make([]models.Transaction, 0, 150)
	for i := 0; i < 150; i++ {
		batch = append(batch, models.Transaction{
			ID:         uuid.New(),
			Type:       models.TransactionTypeExpense,
			Amount:     decimal.NewFromInt(int64(i + 1)),
			AccountID:  s.account.ID,
			CategoryID: &category.ID,
			DateTime:   &at,
		})
	}

	s.Require().NoError(s.repo.CreateBatch(batch))
	s.NoError(s.repo.CreateBatch(nil))

	count, err := s.repo.Count()
	s.Require().NoError(err)
	s.Equal(int64(150), count)
}
