package fake

import "errors"

var (
	ErrNilSchema        = errors.New("schema is nil")
	ErrUnsupportedType  = errors.New("unsupported schema type")
	ErrUnknownFaker     = errors.New("unknown x-faker function")
	ErrInvalidExtension = errors.New("invalid x-faker value")

	// ErrUnsatisfiableSchema means the numeric constraints admit no value.
	ErrUnsatisfiableSchema = errors.New("schema constraints cannot be satisfied")
)
