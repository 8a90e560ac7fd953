package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_InsertionOrder(t *testing.T) {
	rec := New()
	rec.Set("c", "3")
	rec.Set("a", "1")
	rec.Set("b", "2")

	assert.Equal(t, []string{"c", "a", "b"}, rec.Keys())
	assert.Equal(t, 3, rec.Len())
}

func TestRecords_DuplicateKeyKeepsPosition(t *testing.T) {
	rec := New()
	rec.Set("a", "1")
	rec.Set("b", "2")
	rec.Set("a", "overwritten")

	assert.Equal(t, []string{"a", "b"}, rec.Keys())

	v, ok := rec.Get("a")
	require.True(t, ok)
	assert.Equal(t, "overwritten", v)
}

func TestRecords_GetMissing(t *testing.T) {
	rec := New()

	v, ok := rec.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestRecords_MarshalJSONPreservesOrder(t *testing.T) {
	rec := New()
	rec.Set("z", "last first")
	rec.Set("a", "second")

	out, err := rec.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last first","a":"second"}`, string(out))
}
