package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"budget-engine/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// GetAll returns every budget ordered by display order
func (r *budgetRepository) GetAll() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Order("order_id ASC").Order("created_at ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByID retrieves a budget by ID
func (r *budgetRepository) GetByID(id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// Create creates a new budget
func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// Save inserts or updates a budget by ID
func (r *budgetRepository) Save(budget *models.Budget) error {
	if err := r.db.Save(budget).Error; err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}

// Delete removes a budget
func (r *budgetRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Budget{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// MaxOrderID returns the highest display order in use, or -1 when there are no budgets
func (r *budgetRepository) MaxOrderID() (float64, error) {
	var maxOrder sql.NullFloat64
	if err := r.db.Model(&models.Budget{}).Select("MAX(order_id)").Row().Scan(&maxOrder); err != nil {
		return 0, fmt.Errorf("failed to get max budget order: %w", err)
	}
	if !maxOrder.Valid {
		return -1, nil
	}
	return maxOrder.Float64, nil
}
