package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_Unscoped(t *testing.T) {
	s := Unscoped()

	assert.True(t, s.IsUnscoped())
	assert.Equal(t, ScopeUnscoped, s.Kind())
	assert.True(t, s.Contains(uuid.New()))
	assert.True(t, s.ContainsOptional(nil))
	assert.Zero(t, s.Len())
}

func TestScope_ScopedTo(t *testing.T) {
	in := uuid.New()
	out := uuid.New()
	s := ScopedTo(in, in)

	assert.False(t, s.IsUnscoped())
	assert.Equal(t, ScopeRestricted, s.Kind())
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(in))
	assert.False(t, s.Contains(out))
	assert.True(t, s.ContainsOptional(&in))
	assert.False(t, s.ContainsOptional(nil), "uncategorized never passes a category restriction")
}

func TestScope_ScopedToNothingIsUnscoped(t *testing.T) {
	assert.True(t, ScopedTo().IsUnscoped())
	assert.True(t, UUIDList(nil).Scope().IsUnscoped())
	assert.True(t, UUIDList{}.Scope().IsUnscoped())
}

func TestUUIDList_ValueAndScan(t *testing.T) {
	ids := UUIDList{uuid.New(), uuid.New()}

	v, err := ids.Value()
	require.NoError(t, err)

	var scanned UUIDList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, ids, scanned)

	empty, err := UUIDList{}.Value()
	require.NoError(t, err)
	assert.Nil(t, empty)

	var fromNil UUIDList
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	assert.Error(t, fromNil.Scan(42))
}
