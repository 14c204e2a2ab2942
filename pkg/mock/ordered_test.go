package mock

import (
	"encoding/json"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	assert2 "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	t.Parallel()
	assert := assert2.New(t)

	m := &orderedMap[int]{}
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)

	assert.Equal([]string{"b", "a"}, m.Names())
	assert.Equal(2, m.Len())

	v, ok := m.Get("b")
	assert.True(ok)
	assert.Equal(3, v)

	_, ok = m.Get("c")
	assert.False(ok)

	names := m.Names()
	names[0] = "changed"
	assert.Equal([]string{"b", "a"}, m.Names())
}

func TestCache_MarshalJSON(t *testing.T) {
	t.Parallel()

	cache := NewCache()
	cache.Set("User", []any{map[string]any{"id": "1"}})
	cache.Set("Order", []any{})
	cache.Set("Tag", []any{"a", "b"})

	bts, err := json.Marshal(cache)
	require.NoError(t, err)
	assert2.Equal(t, `{"User":[{"id":"1"}],"Order":[],"Tag":["a","b"]}`, string(bts))
}

func TestSchemas_MarshalJSON(t *testing.T) {
	t.Parallel()

	schemas := NewSchemas()
	schemas.Set("Zeta", openapi3.NewStringSchema())
	schemas.Set("Alpha", openapi3.NewBoolSchema())

	bts, err := json.Marshal(schemas)
	require.NoError(t, err)
	assert2.Equal(t, `{"Zeta":{"type":"string"},"Alpha":{"type":"boolean"}}`, string(bts))
}

func TestEmptyCache_MarshalJSON(t *testing.T) {
	bts, err := json.Marshal(NewCache())
	require.NoError(t, err)
	assert2.Equal(t, `{}`, string(bts))
}
