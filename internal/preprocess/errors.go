package preprocess

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrMissingNameHint indicates the naming algorithm was invoked without
	// a single usable hint. This is a contract violation and aborts the run.
	ErrMissingNameHint = errors.New("no usable name hint")

	// ErrUnsupportedScheme matches any UnsupportedSchemeError.
	ErrUnsupportedScheme = errors.New("unsupported security scheme")
)

// UnsupportedSchemeError is returned in strict mode when a security scheme
// cannot be normalized. It names the offending scheme.
type UnsupportedSchemeError struct {
	Key    string
	Type   string
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	if e.Scheme != "" {
		return fmt.Sprintf("unsupported security scheme %q (type %q, scheme %q)", e.Key, e.Type, e.Scheme)
	}
	return fmt.Sprintf("unsupported security scheme %q (type %q)", e.Key, e.Type)
}

// Is makes the error match ErrUnsupportedScheme under errors.Is.
func (e *UnsupportedSchemeError) Is(target error) bool {
	return target == ErrUnsupportedScheme
}
