package openapi

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/migudevelop/openapi-mock-generator/internal/logger"
	"github.com/migudevelop/openapi-mock-generator/internal/types"
)

// DefaultExtensions are the file extensions searched when none are configured.
var DefaultExtensions = []string{".yaml"}

// FindFiles recursively collects the files under root whose extension is one of extensions.
// Matching is case-insensitive and the result is in lexical walk order.
func FindFiles(root string, extensions []string, sink logger.Sink) ([]string, error) {
	if sink == nil {
		sink = logger.Nop()
	}

	exts := types.NormalizeExtensions(extensions)
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	sink.Info(fmt.Sprintf("Searching for OpenAPI files in folder: %s", root))

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("searching OpenAPI files: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var res []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		if !types.SliceContains(exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		sink.Success(fmt.Sprintf("Adding OpenAPI file: %s", path))
		res = append(res, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching OpenAPI files: %w", err)
	}

	return res, nil
}
