package mock

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/migudevelop/openapi-mock-generator/internal/logger"
)

// DefaultCount is the number of records generated per schema when no count is configured.
const DefaultCount = 10

// ValueGenerator produces one value conforming to a schema.
// Implementations honor type, format and extension hints of the schema.
type ValueGenerator interface {
	Generate(schema *openapi3.Schema) (any, error)
}

// ValueGeneratorFunc adapts a function to ValueGenerator.
type ValueGeneratorFunc func(schema *openapi3.Schema) (any, error)

func (f ValueGeneratorFunc) Generate(schema *openapi3.Schema) (any, error) {
	return f(schema)
}

// Generator drives the two-phase pipeline: records for every schema, then relations.
type Generator struct {
	values   ValueGenerator
	resolver *Resolver
	logger   logger.Sink
	count    int
}

// Option configures a Generator.
type Option func(*Generator)

// WithCount sets the number of records per schema. Negative values generate nothing.
func WithCount(count int) Option {
	return func(g *Generator) {
		g.count = count
	}
}

// WithRand sets the randomness source for relation targets.
func WithRand(rnd Rand) Option {
	return func(g *Generator) {
		g.resolver = NewResolver(rnd)
	}
}

// WithLogger sets the sink for progress messages.
func WithLogger(sink logger.Sink) Option {
	return func(g *Generator) {
		if sink != nil {
			g.logger = sink
		}
	}
}

// NewGenerator creates a Generator producing values with values.
func NewGenerator(values ValueGenerator, options ...Option) *Generator {
	g := &Generator{
		values: values,
		logger: logger.Nop(),
		count:  DefaultCount,
	}
	for _, opt := range options {
		opt(g)
	}
	if g.resolver == nil {
		g.resolver = NewResolver(nil)
	}
	return g
}

// Count returns the configured number of records per schema.
func (g *Generator) Count() int {
	return g.count
}

// GenerateRecords calls the value generator count times for schema.
// Records are independent: nothing is deduplicated or seeded here.
// A generator error is returned as is and no records are returned.
func (g *Generator) GenerateRecords(schema *openapi3.Schema, count int) ([]any, error) {
	if count < 0 {
		count = 0
	}

	res := make([]any, 0, count)
	for i := 0; i < count; i++ {
		value, err := g.values.Generate(schema)
		if err != nil {
			return nil, err
		}
		res = append(res, value)
	}
	return res, nil
}

// GenerateSchemaMocks generates the configured number of records for every schema
// and then resolves relations across the whole cache.
func (g *Generator) GenerateSchemaMocks(schemas *Schemas) (*Cache, error) {
	cache := NewCache()
	if schemas == nil {
		return cache, nil
	}

	for _, name := range schemas.keys {
		g.logger.Info("Generating mocks", "schema", name, "count", g.count)
		records, err := g.GenerateRecords(schemas.items[name], g.count)
		if err != nil {
			g.logger.Error("Error generating mocks", "schema", name, "error", err)
			return nil, err
		}
		cache.Set(name, records)
	}

	// Resolved in place: later schemas see earlier ones already rewritten.
	for _, name := range cache.keys {
		records := cache.items[name]
		resolved := make([]any, len(records))
		for i, record := range records {
			if obj, ok := record.(map[string]any); ok {
				resolved[i] = g.resolver.Resolve(obj, schemas, cache)
				continue
			}
			resolved[i] = record
		}
		cache.Set(name, resolved)
		g.logger.Success("Mocks generated", "schema", name, "records", len(resolved))
	}

	return cache, nil
}

// GenerateSchemaMocksWithRelations is a shortcut for NewGenerator(values, WithCount(count)).GenerateSchemaMocks(schemas).
func GenerateSchemaMocksWithRelations(values ValueGenerator, schemas *Schemas, count int) (*Cache, error) {
	return NewGenerator(values, WithCount(count)).GenerateSchemaMocks(schemas)
}
