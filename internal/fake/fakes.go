package fake

import (
	"reflect"
	"sort"
	"strings"

	"github.com/jaswdr/faker"
	"github.com/migudevelop/openapi-mock-generator/internal/types"
)

// FakeFunc returns one fake value.
// It unifies the different return types of the fake library.
type FakeFunc func() MixedValue

// MixedValue is a value that can represent string, int, float64, or bool type.
type MixedValue interface {
	Get() any
}

type StringValue string
type IntValue int64
type Float64Value float64
type BoolValue bool

func (s StringValue) Get() any {
	return string(s)
}

func (i IntValue) Get() any {
	return int64(i)
}

func (f Float64Value) Get() any {
	return float64(f)
}

func (b BoolValue) Get() any {
	return bool(b)
}

// Names returns all registry keys usable in the x-faker extension, sorted.
func Names() []string {
	fakes := newRegistry(faker.New())
	res := make([]string, 0, len(fakes))
	for name := range fakes {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// normalizeFakeName maps "person.firstName" and "Person.FirstName" to "person.first_name".
func normalizeFakeName(name string) string {
	parts := strings.Split(strings.TrimSpace(name), ".")
	for i, part := range parts {
		parts[i] = types.ToSnakeCase(part)
	}
	return strings.Join(parts, ".")
}

// newRegistry gathers every exported no-argument method of fake into a map.
// Keys are snake_cased, dot-separated method paths: person.first_name calls fake.Person().FirstName().
func newRegistry(fake faker.Faker) map[string]FakeFunc {
	return getFakeFuncs(fake, "", make(map[reflect.Type]bool))
}

// getFakeFuncs returns the fake functions of obj, descending into methods that return structs.
// visited tracks already-processed types to prevent infinite recursion.
func getFakeFuncs(obj any, prefix string, visited map[reflect.Type]bool) map[string]FakeFunc {
	res := make(map[string]FakeFunc)

	ref := reflect.ValueOf(obj)
	objType := ref.Type()

	if visited[objType] {
		return res
	}
	visited[objType] = true

	for i := 0; i < ref.NumMethod(); i++ {
		mType := objType.Method(i)
		name := mType.Name
		mappedName := types.ToSnakeCase(name)

		fn := ref.Method(i)
		// receiver is the first input of the method type
		if mType.Type.NumIn() > 1 || mType.Type.NumOut() == 0 {
			continue
		}

		switch mType.Type.Out(0).Kind() {
		case reflect.Struct:
			structInstance := fn.Call(nil)[0].Interface()
			for k, v := range getFakeFuncs(structInstance, prefix+mappedName+".", visited) {
				res[k] = v
			}
		case reflect.Float32, reflect.Float64:
			res[prefix+mappedName] = fromReflectedFloat64Value(fn)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			res[prefix+mappedName] = fromReflectedIntValue(fn)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			res[prefix+mappedName] = fromReflectedUIntValue(fn)
		case reflect.Bool:
			res[prefix+mappedName] = fromReflectedBoolValue(fn)
		case reflect.String:
			res[prefix+mappedName] = fromReflectedStringValue(fn)
		default:
		}
	}

	return res
}

func fromReflectedStringValue(fn reflect.Value) FakeFunc {
	return func() MixedValue {
		return StringValue(fn.Call(nil)[0].String())
	}
}

func fromReflectedBoolValue(fn reflect.Value) FakeFunc {
	return func() MixedValue {
		return BoolValue(fn.Call(nil)[0].Bool())
	}
}

func fromReflectedIntValue(fn reflect.Value) FakeFunc {
	return func() MixedValue {
		return IntValue(fn.Call(nil)[0].Int())
	}
}

func fromReflectedUIntValue(fn reflect.Value) FakeFunc {
	return func() MixedValue {
		return IntValue(int64(fn.Call(nil)[0].Uint()))
	}
}

func fromReflectedFloat64Value(fn reflect.Value) FakeFunc {
	return func() MixedValue {
		return Float64Value(fn.Call(nil)[0].Float())
	}
}
