package mock

import (
	"bytes"
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
)

// orderedMap keeps keys in first-insertion order.
// Setting an existing key replaces the value but keeps its position.
type orderedMap[V any] struct {
	keys  []string
	items map[string]V
}

func (m *orderedMap[V]) Set(name string, value V) {
	if m.items == nil {
		m.items = make(map[string]V)
	}
	if _, exists := m.items[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.items[name] = value
}

func (m *orderedMap[V]) Get(name string) (V, bool) {
	v, ok := m.items[name]
	return v, ok
}

// Names returns a copy of the keys in insertion order.
func (m *orderedMap[V]) Names() []string {
	res := make([]string, len(m.keys))
	copy(res, m.keys)
	return res
}

func (m *orderedMap[V]) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *orderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.items[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Schemas maps schema names to their definitions, in insertion order.
type Schemas struct {
	orderedMap[*openapi3.Schema]
}

// NewSchemas creates an empty Schemas.
func NewSchemas() *Schemas {
	return &Schemas{}
}

// Cache maps schema names to their generated records, in insertion order.
// Object records are map[string]any; other schemas produce plain values.
type Cache struct {
	orderedMap[[]any]
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{}
}
