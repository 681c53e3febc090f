package models

import "github.com/google/uuid"

// AccountSet indexes an account snapshot by id.
type AccountSet map[uuid.UUID]Account

// NewAccountSet builds an AccountSet from a snapshot. Later duplicates win.
func NewAccountSet(accounts []Account) AccountSet {
	set := make(AccountSet, len(accounts))
	for _, a := range accounts {
		set[a.ID] = a
	}
	return set
}

// Currency returns the currency of the account, or "" when the account is
// unknown or has no currency of its own.
func (s AccountSet) Currency(id uuid.UUID) string {
	if a, ok := s[id]; ok {
		return a.Currency
	}
	return ""
}
