package openapi

import (
	"fmt"
	"os"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/migudevelop/openapi-mock-generator/internal/logger"
	"github.com/migudevelop/openapi-mock-generator/pkg/mock"
	"gopkg.in/yaml.v3"
)

// Loader reads component schemas from OpenAPI documents.
type Loader struct {
	logger logger.Sink
}

// NewLoader creates a Loader reporting to sink.
func NewLoader(sink logger.Sink) *Loader {
	if sink == nil {
		sink = logger.Nop()
	}
	return &Loader{logger: sink}
}

// LoadSchemas parses the document at filePath and returns its components.schemas
// in document order. A document without component schemas yields an empty mapping.
func (l *Loader) LoadSchemas(filePath string) (*mock.Schemas, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error("Error parsing OpenAPI document", "file", filePath, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrParseDocument, err)
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromFile(filePath)
	if err != nil {
		l.logger.Error("Error parsing OpenAPI document", "file", filePath, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrParseDocument, filePath, err)
	}

	res := mock.NewSchemas()
	components := doc.Components.Schemas
	if len(components) == 0 {
		l.logger.Warn("No schemas found in components.", "file", filePath)
		return res, nil
	}

	l.logger.Info("Extracting schemas from components...", "file", filePath)

	order, err := componentSchemaNames(contents)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadingSchemas, filePath, err)
	}

	for _, name := range order {
		ref, ok := components[name]
		if !ok || ref == nil || ref.Value == nil {
			continue
		}
		res.Set(name, ref.Value)
	}

	// names the node walk could not see, e.g. documents with anchors
	var rest []string
	for name, ref := range components {
		if _, ok := res.Get(name); !ok && ref != nil && ref.Value != nil {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		res.Set(name, components[name].Value)
	}

	return res, nil
}

// LoadAll loads every file and returns one fragment per file, in order.
func (l *Loader) LoadAll(filePaths []string) ([]*mock.Schemas, error) {
	res := make([]*mock.Schemas, 0, len(filePaths))
	for _, filePath := range filePaths {
		schemas, err := l.LoadSchemas(filePath)
		if err != nil {
			return nil, err
		}
		res = append(res, schemas)
	}
	return res, nil
}

// componentSchemaNames returns the keys of components.schemas in the order they appear.
// JSON documents are valid YAML, so both formats are handled.
func componentSchemaNames(contents []byte) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(contents, &root); err != nil {
		return nil, err
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = node.Content[0]
	}

	for _, key := range []string{"components", "schemas"} {
		node = mappingValue(node, key)
		if node == nil {
			return nil, nil
		}
	}

	if node.Kind != yaml.MappingNode {
		return nil, nil
	}

	names := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		names = append(names, node.Content[i].Value)
	}
	return names, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
