// Package fake turns OpenAPI schemas into random values.
package fake

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/jaswdr/faker"
	"github.com/migudevelop/openapi-mock-generator/internal/types"
)

const (
	// ExtensionFaker names a registry function or a gofakeit template to produce the value.
	ExtensionFaker = "x-faker"

	// KeywordFaker is the json-schema-faker spelling of ExtensionFaker.
	KeywordFaker = "faker"

	// DefaultMaxDepth limits nesting so circular references terminate.
	DefaultMaxDepth = 8

	defaultRange = 10000
)

// Generator produces values for schemas. It is not safe for concurrent use.
type Generator struct {
	rnd      *rand.Rand
	faker    faker.Faker
	gofake   *gofakeit.Faker
	fakes    map[string]FakeFunc
	maxDepth int
}

// Option configures a Generator.
type Option func(*generatorOptions)

type generatorOptions struct {
	seed     int64
	maxDepth int
}

// WithSeed makes the output reproducible. Zero uses a time based seed.
func WithSeed(seed int64) Option {
	return func(o *generatorOptions) {
		o.seed = seed
	}
}

// WithMaxDepth sets how deep nested objects and arrays are generated.
func WithMaxDepth(depth int) Option {
	return func(o *generatorOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// New creates a Generator.
func New(options ...Option) *Generator {
	opts := &generatorOptions{maxDepth: DefaultMaxDepth}
	for _, opt := range options {
		opt(opts)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fake := faker.NewWithSeed(rand.NewSource(seed))
	return &Generator{
		rnd:      rand.New(rand.NewSource(seed)),
		faker:    fake,
		gofake:   gofakeit.New(seed),
		fakes:    newRegistry(fake),
		maxDepth: opts.maxDepth,
	}
}

// Generate returns one value conforming to schema.
func (g *Generator) Generate(schema *openapi3.Schema) (any, error) {
	return g.generate(schema, 0)
}

func (g *Generator) generate(schema *openapi3.Schema, depth int) (any, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	if depth > g.maxDepth {
		return nil, nil
	}

	if value, ok, err := g.fromExtension(schema); ok || err != nil {
		return value, err
	}

	if len(schema.Enum) > 0 {
		return types.GetRandomSliceValue(g.rnd, schema.Enum), nil
	}

	if len(schema.AllOf) > 0 {
		merged, err := mergeAllOf(schema)
		if err != nil {
			return nil, err
		}
		return g.generateObject(merged, depth)
	}

	if alternatives := append(append(openapi3.SchemaRefs{}, schema.OneOf...), schema.AnyOf...); len(alternatives) > 0 {
		ref := types.GetRandomSliceValue(g.rnd, alternatives)
		if ref == nil || ref.Value == nil {
			return nil, ErrNilSchema
		}
		return g.generate(ref.Value, depth+1)
	}

	switch schema.Type {
	case openapi3.TypeObject:
		return g.generateObject(schema, depth)
	case openapi3.TypeArray:
		return g.generateArray(schema, depth)
	case openapi3.TypeString:
		return g.generateString(schema)
	case openapi3.TypeInteger:
		return g.generateInteger(schema)
	case openapi3.TypeNumber:
		return g.generateNumber(schema)
	case openapi3.TypeBoolean:
		return g.faker.Bool(), nil
	case "":
		if len(schema.Properties) > 0 {
			return g.generateObject(schema, depth)
		}
		if schema.Items != nil {
			return g.generateArray(schema, depth)
		}
		return g.generateString(schema)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, schema.Type)
}

// fromExtension resolves the x-faker extension, or the faker keyword when x-faker is absent.
// A value with braces is a gofakeit template, anything else is a registry key.
func (g *Generator) fromExtension(schema *openapi3.Schema) (any, bool, error) {
	raw, ok := schema.Extensions[ExtensionFaker]
	if !ok {
		if raw, ok = schema.Extensions[KeywordFaker]; !ok {
			return nil, false, nil
		}
	}

	name, err := extensionString(raw)
	if err != nil {
		return nil, false, err
	}

	if strings.Contains(name, "{") {
		return g.gofake.Generate(name), true, nil
	}

	fn, ok := g.fakes[normalizeFakeName(name)]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownFaker, name)
	}
	return fn().Get(), true, nil
}

func extensionString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.RawMessage:
		return unmarshalString(v)
	case []byte:
		return unmarshalString(v)
	}
	return "", fmt.Errorf("%w: %v", ErrInvalidExtension, raw)
}

func unmarshalString(data []byte) (string, error) {
	var res string
	if err := json.Unmarshal(data, &res); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidExtension, string(data))
	}
	return res, nil
}

// mergeAllOf flattens allOf members and own properties into one object schema.
func mergeAllOf(schema *openapi3.Schema) (*openapi3.Schema, error) {
	res := &openapi3.Schema{
		Type:       openapi3.TypeObject,
		Properties: make(openapi3.Schemas),
	}

	var collect func(s *openapi3.Schema) error
	collect = func(s *openapi3.Schema) error {
		for _, ref := range s.AllOf {
			if ref == nil || ref.Value == nil {
				return ErrNilSchema
			}
			if err := collect(ref.Value); err != nil {
				return err
			}
		}
		for name, prop := range s.Properties {
			res.Properties[name] = prop
		}
		return nil
	}

	if err := collect(schema); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Generator) generateObject(schema *openapi3.Schema, depth int) (any, error) {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	// sorted so a seeded generator is reproducible
	sort.Strings(names)

	res := make(map[string]any, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("property %s: %w", name, ErrNilSchema)
		}

		value, err := g.generate(ref.Value, depth+1)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", name, err)
		}
		if value == nil {
			continue
		}
		res[name] = value
	}

	return res, nil
}

func (g *Generator) generateArray(schema *openapi3.Schema, depth int) (any, error) {
	res := make([]any, 0)
	if schema.Items == nil {
		return res, nil
	}
	if schema.Items.Value == nil {
		return nil, fmt.Errorf("items: %w", ErrNilSchema)
	}

	// avoid generating too many items
	lo := int(schema.MinItems)
	hi := lo + 2
	if lo == 0 {
		lo, hi = 1, 3
	}
	if schema.MaxItems != nil && int(*schema.MaxItems) < hi {
		hi = int(*schema.MaxItems)
	}
	if hi < lo {
		lo = hi
	}

	take := lo + g.rnd.Intn(hi-lo+1)
	for i := 0; i < take; i++ {
		item, err := g.generate(schema.Items.Value, depth+1)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		if item == nil {
			continue
		}
		res = append(res, item)
	}

	return res, nil
}

func (g *Generator) generateString(schema *openapi3.Schema) (string, error) {
	switch schema.Format {
	case "date":
		return g.faker.Time().Time(time.Now()).Format("2006-01-02"), nil
	case "date-time", "datetime":
		return g.faker.Time().Time(time.Now()).UTC().Format("2006-01-02T15:04:05.000Z"), nil
	case "uuid":
		id, err := uuid.NewRandomFromReader(g.rnd)
		if err != nil {
			return "", err
		}
		return id.String(), nil
	}

	var value string
	switch {
	case schema.Pattern != "":
		value = g.gofake.Regex(schema.Pattern)
	case schema.Format == "email":
		value = g.faker.Internet().Email()
	case schema.Format == "password":
		value = g.faker.Internet().Password()
	case schema.Format == "hostname":
		value = g.faker.Internet().Domain()
	case schema.Format == "uri" || schema.Format == "url":
		value = g.faker.Internet().URL()
	case schema.Format == "ipv4":
		value = g.faker.Internet().Ipv4()
	case schema.Format == "ipv6":
		value = g.faker.Internet().Ipv6()
	case schema.Format == "byte" || schema.Format == "binary":
		value = base64.StdEncoding.EncodeToString([]byte(g.faker.Lorem().Word()))
	case schema.Format == "int32" || schema.Format == "int64":
		n, err := g.generateInteger(schema)
		if err != nil {
			return "", err
		}
		value = strconv.FormatInt(n, 10)
	default:
		value = g.faker.Lorem().Word()
	}

	return g.applyStringLength(schema, value), nil
}

// applyStringLength pads with words up to minLength and cuts at maxLength.
func (g *Generator) applyStringLength(schema *openapi3.Schema, value string) string {
	if schema.Format == "byte" || schema.Format == "binary" {
		return value
	}

	minLength := int(schema.MinLength)
	for len(value) < minLength {
		value += " " + g.faker.Lorem().Word()
	}
	if schema.MaxLength != nil && len(value) > int(*schema.MaxLength) {
		value = value[:*schema.MaxLength]
	}
	return value
}

// bounds returns the range for numeric values before exclusive flags apply.
// A missing side extends defaultRange from the other one.
func bounds(schema *openapi3.Schema) (float64, float64, error) {
	lo, hi := 1.0, float64(defaultRange)

	switch {
	case schema.Min != nil && schema.Max != nil:
		lo, hi = *schema.Min, *schema.Max
		if hi < lo {
			return 0, 0, fmt.Errorf("%w: minimum %v is greater than maximum %v", ErrUnsatisfiableSchema, lo, hi)
		}
	case schema.Min != nil:
		lo = *schema.Min
		hi = lo + defaultRange
	case schema.Max != nil:
		hi = *schema.Max
		if hi < lo {
			lo = hi - defaultRange
		}
	}

	return lo, hi, nil
}

// toInt64 converts f, saturating at the int64 limits.
func toInt64(f float64) int64 {
	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// int64Between returns a uniform value in [lo, hi] for any lo <= hi.
func (g *Generator) int64Between(lo, hi int64) int64 {
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int64(g.rnd.Uint64())
	}

	n := span + 1
	if n <= math.MaxInt64 {
		return int64(uint64(lo) + uint64(g.rnd.Int63n(int64(n))))
	}
	for {
		if off := g.rnd.Uint64(); off < n {
			return int64(uint64(lo) + off)
		}
	}
}

func (g *Generator) generateInteger(schema *openapi3.Schema) (int64, error) {
	lo, hi, err := bounds(schema)
	if err != nil {
		return 0, err
	}

	ilo, ihi := toInt64(math.Ceil(lo)), toInt64(math.Floor(hi))
	if schema.ExclusiveMin && float64(ilo) == lo {
		if ilo == math.MaxInt64 {
			return 0, fmt.Errorf("%w: no integer above %v", ErrUnsatisfiableSchema, lo)
		}
		ilo++
	}
	if schema.ExclusiveMax && float64(ihi) == hi {
		if ihi == math.MinInt64 {
			return 0, fmt.Errorf("%w: no integer below %v", ErrUnsatisfiableSchema, hi)
		}
		ihi--
	}
	if ihi < ilo {
		return 0, fmt.Errorf("%w: no integer between %v and %v", ErrUnsatisfiableSchema, lo, hi)
	}

	// fractional multipleOf values are not applied to integers
	if m := schema.MultipleOf; m != nil && *m >= 1 && *m == math.Trunc(*m) && *m <= math.MaxInt64 {
		step := toInt64(*m)
		kLo, kHi := ceilDiv(ilo, step), floorDiv(ihi, step)
		if kHi < kLo {
			return 0, fmt.Errorf("%w: no multiple of %v between %v and %v", ErrUnsatisfiableSchema, *m, lo, hi)
		}
		return g.int64Between(kLo, kHi) * step, nil
	}

	return g.int64Between(ilo, ihi), nil
}

func (g *Generator) generateNumber(schema *openapi3.Schema) (float64, error) {
	lo, hi, err := bounds(schema)
	if err != nil {
		return 0, err
	}
	if lo == hi && (schema.ExclusiveMin || schema.ExclusiveMax) {
		return 0, fmt.Errorf("%w: empty exclusive range at %v", ErrUnsatisfiableSchema, lo)
	}

	inRange := func(v float64) bool {
		if v < lo || v > hi {
			return false
		}
		if schema.ExclusiveMin && v == lo {
			return false
		}
		return !(schema.ExclusiveMax && v == hi)
	}

	if m := schema.MultipleOf; m != nil && *m > 0 {
		step := *m
		kLo, kHi := math.Ceil(lo/step), math.Floor(hi/step)
		if !inRange(kLo * step) {
			kLo++
		}
		if !inRange(kHi * step) {
			kHi--
		}
		if kHi < kLo {
			return 0, fmt.Errorf("%w: no multiple of %v between %v and %v", ErrUnsatisfiableSchema, step, lo, hi)
		}
		k := kLo + math.Floor(g.rnd.Float64()*(kHi-kLo+1))
		if k > kHi {
			k = kHi
		}
		return k * step, nil
	}

	value := lo + g.rnd.Float64()*(hi-lo)
	if !inRange(value) {
		value = lo + (hi-lo)/2
	}
	if rounded := math.Round(value*100) / 100; inRange(rounded) {
		return rounded, nil
	}
	return value, nil
}
