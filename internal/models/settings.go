package models

import (
	"time"

	"github.com/google/uuid"
)

// Settings holds user preferences the budget screen depends on.
type Settings struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BaseCurrency string    `gorm:"type:varchar(3);not null" json:"base_currency"`
	Name         string    `gorm:"type:varchar(100)" json:"name,omitempty"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for Settings
func (s *Settings) TableName() string {
	return "settings"
}
