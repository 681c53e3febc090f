package repositories

import (
	"errors"
	"fmt"
	"time"

	"budget-engine/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrExchangeRateNotFound = errors.New("exchange rate not found")
)

type exchangeRateRepository struct {
	db *gorm.DB
}

// NewExchangeRateRepository creates a new exchange rate repository
func NewExchangeRateRepository(db *gorm.DB) ExchangeRateRepositoryInterface {
	return &exchangeRateRepository{
		db: db,
	}
}

// Find retrieves the stored rate for one ordered currency pair
func (r *exchangeRateRepository) Find(baseCurrency, currency string) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	if err := r.db.Where("base_currency = ? AND currency = ?", baseCurrency, currency).First(&rate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExchangeRateNotFound
		}
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	return &rate, nil
}

// GetAll retrieves every stored rate
func (r *exchangeRateRepository) GetAll() ([]models.ExchangeRate, error) {
	var rates []models.ExchangeRate
	if err := r.db.Order("base_currency ASC").Order("currency ASC").Find(&rates).Error; err != nil {
		return nil, fmt.Errorf("failed to get exchange rates: %w", err)
	}
	return rates, nil
}

// Upsert inserts the rate or replaces the existing one for the same pair
func (r *exchangeRateRepository) Upsert(rate *models.ExchangeRate) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	rate.UpdatedAt = time.Now()

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "base_currency"}, {Name: "currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(rate).Error
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate: %w", err)
	}
	return nil
}
