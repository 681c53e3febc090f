package repositories

import (
	"budget-engine/internal/models"

	"github.com/google/uuid"
)

// BudgetRepositoryInterface defines the contract for budget storage
type BudgetRepositoryInterface interface {
	GetAll() ([]models.Budget, error)
	GetByID(id uuid.UUID) (*models.Budget, error)
	Create(budget *models.Budget) error
	// Save upserts by id.
	Save(budget *models.Budget) error
	Delete(id uuid.UUID) error
	MaxOrderID() (float64, error)
}

// TransactionRepositoryInterface defines the contract for reading the ledger
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	// GetHistory returns dated transactions inside the half-open range, oldest first.
	GetHistory(timeRange models.TimeRange) ([]models.Transaction, error)
	Count() (int64, error)
}

// AccountRepositoryInterface defines the contract for account snapshots
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetAll() ([]models.Account, error)
}

// CategoryRepositoryInterface defines the contract for category snapshots
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetAll() ([]models.Category, error)
}

// SettingsRepositoryInterface defines the contract for user settings
type SettingsRepositoryInterface interface {
	Get() (*models.Settings, error)
	Save(settings *models.Settings) error
}

// ExchangeRateRepositoryInterface defines the contract for stored exchange rates
type ExchangeRateRepositoryInterface interface {
	Find(baseCurrency, currency string) (*models.ExchangeRate, error)
	GetAll() ([]models.ExchangeRate, error)
	Upsert(rate *models.ExchangeRate) error
}
