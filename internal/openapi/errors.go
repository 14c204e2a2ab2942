package openapi

import "errors"

var (
	ErrNotDirectory   = errors.New("not a directory")
	ErrParseDocument  = errors.New("error parsing OpenAPI document")
	ErrReadingSchemas = errors.New("error reading component schemas order")
)
