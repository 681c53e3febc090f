package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCurrencyCode = errors.New("currency code must be three uppercase letters")
	ErrAccountNameRequired = errors.New("account name is required")

	currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Account is a money container. The engine only reads its currency.
type Account struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name             string    `gorm:"type:varchar(100);not null" json:"name"`
	Currency         string    `gorm:"type:varchar(3)" json:"currency,omitempty"`
	Color            string    `gorm:"type:varchar(9)" json:"color,omitempty"`
	OrderNum         float64   `gorm:"not null;default:0" json:"order_num"`
	IncludeInBalance bool      `gorm:"not null;default:true" json:"include_in_balance"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// Validate validates the account fields. An empty currency is allowed and means
// "use the base currency".
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrAccountNameRequired
	}
	if a.Currency != "" && !IsValidCurrencyCode(a.Currency) {
		return ErrInvalidCurrencyCode
	}
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidCurrencyCode checks for an ISO-4217-like code.
func IsValidCurrencyCode(code string) bool {
	return currencyCodePattern.MatchString(code)
}
