package repositories

import (
	"testing"

	"budget-engine/internal/database"
	"budget-engine/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite covers the account and category repositories, which
// share the same display ordering rules
type AccountRepositorySuite struct {
	suite.Suite
	db           *database.DB
	accounts     AccountRepositoryInterface
	categoryRepo CategoryRepositoryInterface
}

func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.accounts = NewAccountRepository(s.db.DB)
	s.categoryRepo = NewCategoryRepository(s.db.DB)
}

func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) TestCreateAccount() {
	account := &models.Account{Name: "Wallet", Currency: "EUR", IncludeInBalance: true}

	err := s.accounts.Create(account)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.False(account.CreatedAt.IsZero())
}

func (s *AccountRepositorySuite) TestCreateAccount_EmptyCurrencyAllowed() {
	account := &models.Account{Name: "Cash"}

	s.NoError(s.accounts.Create(account))
}

func (s *AccountRepositorySuite) TestCreateAccount_InvalidCurrency() {
	account := &models.Account{Name: "Broken", Currency: "euro"}

	err := s.accounts.Create(account)

	s.Require().Error(err)
	s.ErrorIs(err, models.ErrInvalidCurrencyCode)
}

func (s *AccountRepositorySuite) TestCreateAccount_NameRequired() {
	err := s.accounts.Create(&models.Account{Name: "  "})

	s.ErrorIs(err, models.ErrAccountNameRequired)
}

func (s *AccountRepositorySuite) TestGetAllAccounts_DisplayOrder() {
	s.Require().NoError(s.accounts.Create(&models.Account{Name: "Savings", OrderNum: 2}))
	s.Require().NoError(s.accounts.Create(&models.Account{Name: "Checking", OrderNum: 1}))
	s.Require().NoError(s.accounts.Create(&models.Account{Name: "Brokerage", OrderNum: 2}))

	accounts, err := s.accounts.GetAll()

	s.Require().NoError(err)
	s.Require().Len(accounts, 3)
	s.Equal("Checking", accounts[0].Name)
	s.Equal("Brokerage", accounts[1].Name)
	s.Equal("Savings", accounts[2].Name)
}

func (s *AccountRepositorySuite) TestGetAllAccounts_Empty() {
	accounts, err := s.accounts.GetAll()

	s.NoError(err)
	s.Empty(accounts)
}

func (s *AccountRepositorySuite) TestGetAllCategories_DisplayOrder() {
	s.Require().NoError(s.categoryRepo.Create(&models.Category{Name: "Rent", OrderNum: 3}))
	s.Require().NoError(s.categoryRepo.Create(&models.Category{Name: "Groceries", OrderNum: 1}))
	s.Require().NoError(s.categoryRepo.Create(&models.Category{Name: "Eating out", OrderNum: 1}))

	categories, err := s.categoryRepo.GetAll()

	s.Require().NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("Eating out", categories[0].Name)
	s.Equal("Groceries", categories[1].Name)
	s.Equal("Rent", categories[2].Name)
}
