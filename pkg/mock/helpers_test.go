package mock

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// fixedRand always returns the same index, clamped to n.
type fixedRand int

func (f fixedRand) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

// sequenceRand returns the next value on every call.
type sequenceRand struct {
	values []int
	calls  int
}

func (s *sequenceRand) Intn(n int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v % n
}

func newSchemas(names ...string) *Schemas {
	res := NewSchemas()
	for _, name := range names {
		res.Set(name, userSchema())
	}
	return res
}

func newCache(entries map[string][]any, order ...string) *Cache {
	res := NewCache()
	for _, name := range order {
		res.Set(name, entries[name])
	}
	return res
}

func userSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("name", openapi3.NewStringSchema())
}
