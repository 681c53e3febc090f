package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBudgetNameRequired = errors.New("budget name is required")
	ErrInvalidBudgetCap   = errors.New("budget amount cannot be negative")
)

// Budget is a spending cap, optionally scoped to accounts and/or categories.
//
// A budget without a category scope is global and counts toward the app-wide
// cap. Account scope alone does not make a budget category-scoped.
type Budget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Amount      decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"amount"`
	AccountIDs  UUIDList        `gorm:"type:text" json:"account_ids"`
	CategoryIDs UUIDList        `gorm:"type:text" json:"category_ids"`
	OrderID     float64         `gorm:"not null;default:0;index" json:"order_id"`
	IsSynced    bool            `gorm:"not null;default:false" json:"is_synced"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeSave hook for Budget
func (b *Budget) BeforeSave(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrBudgetNameRequired
	}
	if b.Amount.IsNegative() {
		return ErrInvalidBudgetCap
	}
	return nil
}

// AccountScope returns the account restriction of the budget.
func (b *Budget) AccountScope() Scope {
	return b.AccountIDs.Scope()
}

// CategoryScope returns the category restriction of the budget.
func (b *Budget) CategoryScope() Scope {
	return b.CategoryIDs.Scope()
}

// IsCategoryBudget reports whether the budget has a category scope. All other
// budgets are global.
func (b *Budget) IsCategoryBudget() bool {
	return !b.CategoryScope().IsUnscoped()
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// Clone returns a copy that shares no id lists with b.
func (b Budget) Clone() Budget {
	c := b
	if b.AccountIDs != nil {
		c.AccountIDs = append(UUIDList(nil), b.AccountIDs...)
	}
	if b.CategoryIDs != nil {
		c.CategoryIDs = append(UUIDList(nil), b.CategoryIDs...)
	}
	return c
}
