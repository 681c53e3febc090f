package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the closed set of ledger entry kinds.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "INCOME"
	TransactionTypeExpense  TransactionType = "EXPENSE"
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount cannot be negative")
	ErrAccountRequired        = errors.New("account ID is required")
)

// Transaction is a read-only ledger entry as seen by the budget engine.
// Its currency is the currency of the account it belongs to.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Type        TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(19,4);not null" json:"amount"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Title       string          `gorm:"type:varchar(255)" json:"title,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	DateTime    *time.Time      `gorm:"index" json:"date_time,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return ErrAccountRequired
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	return nil
}

// IsHistory reports whether the transaction has happened, as opposed to a planned payment.
func (t *Transaction) IsHistory() bool {
	return t.DateTime != nil
}

// HappenedWithin reports whether the transaction date falls in the half-open range.
func (t *Transaction) HappenedWithin(r TimeRange) bool {
	if t.DateTime == nil {
		return false
	}
	return r.Contains(*t.DateTime)
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// AllTransactionTypes lists every transaction type the engine knows about.
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeIncome,
		TransactionTypeExpense,
		TransactionTypeTransfer,
	}
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType TransactionType) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}
