package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ScopeKind distinguishes an unrestricted scope from a restricted one.
type ScopeKind int

const (
	ScopeUnscoped ScopeKind = iota
	ScopeRestricted
)

// Scope is the budget restriction on one dimension (accounts or categories).
// An Unscoped scope matches every id, including a missing one.
type Scope struct {
	kind ScopeKind
	ids  map[uuid.UUID]struct{}
}

// Unscoped returns a scope that matches everything.
func Unscoped() Scope {
	return Scope{kind: ScopeUnscoped}
}

// ScopedTo restricts a scope to the given ids. With no ids it returns Unscoped:
// an empty restriction has no stored representation.
func ScopedTo(ids ...uuid.UUID) Scope {
	if len(ids) == 0 {
		return Unscoped()
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Scope{kind: ScopeRestricted, ids: set}
}

// Kind returns the scope variant.
func (s Scope) Kind() ScopeKind {
	return s.kind
}

// IsUnscoped reports whether the scope matches everything.
func (s Scope) IsUnscoped() bool {
	return s.kind == ScopeUnscoped
}

// Contains reports whether id passes the scope.
func (s Scope) Contains(id uuid.UUID) bool {
	if s.kind == ScopeUnscoped {
		return true
	}
	_, ok := s.ids[id]
	return ok
}

// ContainsOptional is Contains for nullable references. A nil id only passes an
// unscoped filter.
func (s Scope) ContainsOptional(id *uuid.UUID) bool {
	if s.kind == ScopeUnscoped {
		return true
	}
	if id == nil {
		return false
	}
	return s.Contains(*id)
}

// Len returns the number of ids in a restricted scope, zero when unscoped.
func (s Scope) Len() int {
	return len(s.ids)
}

// UUIDList is an ordered id list stored as a JSON text column.
type UUIDList []uuid.UUID

// Value implements driver.Valuer interface
func (l UUIDList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal([]uuid.UUID(l))
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into UUIDList", value)
	}

	if len(bytes) == 0 {
		*l = nil
		return nil
	}

	var ids []uuid.UUID
	if err := json.Unmarshal(bytes, &ids); err != nil {
		return err
	}
	*l = ids
	return nil
}

// Scope converts the stored list into a Scope.
func (l UUIDList) Scope() Scope {
	return ScopedTo(l...)
}
