package codec

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langconv/internal/store"
)

func TestJSONDecode_PreservesMemberOrder(t *testing.T) {
	rec, err := NewJSONCodec().Decode([]byte(`{"z": "1", "a": "2", "m": "3"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, rec.Keys())
}

func TestJSONDecode_SkipsNonStringMembers(t *testing.T) {
	input := `{"a": "x", "b": 5, "c": "y", "d": null, "e": [1], "f": {"g": "h"}, "i": true}`

	rec, err := NewJSONCodec().Decode([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c"}, rec.Keys())
}

func TestJSONDecode_NonObjectTopLevel(t *testing.T) {
	for _, input := range []string{`[1, 2]`, `"hello"`, `42`, `null`} {
		rec, err := NewJSONCodec().Decode([]byte(input))
		require.NoError(t, err, input)
		assert.Equal(t, 0, rec.Len(), input)
	}
}

func TestJSONDecode_InvalidSyntax(t *testing.T) {
	_, err := NewJSONCodec().Decode([]byte(`{a: }`))
	require.Error(t, err)
}

func TestJSONEncode_Pretty(t *testing.T) {
	rec := store.New()
	rec.Set("greeting", "hello")
	rec.Set("farewell", "good bye")
	rec.Set("menu.title", "Main Menu")

	out, err := NewJSONCodec().Encode(rec)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "pretty", out)
}

func TestJSONEncode_Empty(t *testing.T) {
	out, err := NewJSONCodec().Encode(store.New())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestJSONRoundTrip(t *testing.T) {
	rec := store.New()
	rec.Set("one", "first")
	rec.Set("two", "second")
	rec.Set("three", "third")

	c := NewJSONCodec()
	out, err := c.Encode(rec)
	require.NoError(t, err)

	back, err := c.Decode(out)
	require.NoError(t, err)

	assert.Equal(t, rec.Keys(), back.Keys())
	for _, key := range rec.Keys() {
		want, _ := rec.Get(key)
		got, _ := back.Get(key)
		assert.Equal(t, want, got, key)
	}
}
