package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	validAccountID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				AccountID: validAccountID,
				Type:      TransactionTypeExpense,
				Amount:    decimal.NewFromFloat(12.50),
			},
		},
		{
			name: "zero amount is allowed",
			transaction: Transaction{
				AccountID: validAccountID,
				Type:      TransactionTypeIncome,
				Amount:    decimal.Zero,
			},
		},
		{
			name: "missing account ID",
			transaction: Transaction{
				Type:   TransactionTypeExpense,
				Amount: decimal.NewFromInt(10),
			},
			wantErr: ErrAccountRequired,
		},
		{
			name: "unknown type",
			transaction: Transaction{
				AccountID: validAccountID,
				Type:      "REFUND",
				Amount:    decimal.NewFromInt(10),
			},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				AccountID: validAccountID,
				Type:      TransactionTypeTransfer,
				Amount:    decimal.NewFromInt(-1),
			},
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_HappenedWithin(t *testing.T) {
	r := TimeRange{
		From: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
	}

	at := func(tm time.Time) *Transaction {
		return &Transaction{DateTime: &tm}
	}

	assert.True(t, at(r.From).HappenedWithin(r), "from is inclusive")
	assert.False(t, at(r.To).HappenedWithin(r), "to is exclusive")
	assert.True(t, at(r.To.Add(-time.Nanosecond)).HappenedWithin(r))
	assert.False(t, at(r.From.Add(-time.Nanosecond)).HappenedWithin(r))
	assert.False(t, (&Transaction{}).HappenedWithin(r), "planned payments have no date")
}

func TestIsValidTransactionType(t *testing.T) {
	for _, tt := range AllTransactionTypes() {
		assert.True(t, IsValidTransactionType(tt), string(tt))
	}
	assert.False(t, IsValidTransactionType(""))
	assert.False(t, IsValidTransactionType("credit"))
}
