package files

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/migudevelop/openapi-mock-generator/internal/logger"
	"github.com/migudevelop/openapi-mock-generator/internal/types"
	"github.com/migudevelop/openapi-mock-generator/pkg/mock"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a written mock file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// NameCase controls how schema names become file names.
type NameCase string

const (
	NameCaseOriginal NameCase = "original"
	NameCaseKebab    NameCase = "kebab"
	NameCasePascal   NameCase = "pascal"
)

var (
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrUnknownNameCase = errors.New("unknown file name case")
)

// WriteOptions configures WriteMocks.
type WriteOptions struct {
	Format   Format
	NameCase NameCase
}

// FileName returns the file name for a schema, extension included.
func (o WriteOptions) FileName(name string) (string, error) {
	switch o.NameCase {
	case "", NameCaseOriginal:
	case NameCaseKebab:
		name = types.ToKebabCase(name)
	case NameCasePascal:
		name = types.ToPascalCase(name)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownNameCase, o.NameCase)
	}

	switch o.Format {
	case "", FormatJSON:
		return name + ".json", nil
	case FormatYAML:
		return name + ".yaml", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, o.Format)
}

// Encode renders records in format. JSON is indented with two spaces and not HTML-escaped.
func Encode(records []any, format Format) ([]byte, error) {
	if records == nil {
		records = []any{}
	}

	switch format {
	case "", FormatJSON:
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return nil, err
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	case FormatYAML:
		return yaml.Marshal(records)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

// WriteMocks writes one file per cache entry into dir and returns the written paths in cache order.
func WriteMocks(dir string, cache *mock.Cache, opts WriteOptions, sink logger.Sink) ([]string, error) {
	if sink == nil {
		sink = logger.Nop()
	}
	if cache == nil {
		return nil, nil
	}

	var res []string
	for _, name := range cache.Names() {
		fileName, err := opts.FileName(name)
		if err != nil {
			return nil, err
		}

		records, _ := cache.Get(name)
		data, err := Encode(records, opts.Format)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", name, err)
		}

		filePath := filepath.Join(dir, fileName)
		if err := SaveFile(filePath, data); err != nil {
			return nil, fmt.Errorf("writing %s: %w", filePath, err)
		}

		sink.Success(fmt.Sprintf("Mock file written: %s", filePath), "records", len(records))
		res = append(res, filePath)
	}

	return res, nil
}
