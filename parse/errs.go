package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is the ancestor of all malformed-input errors,
	// tokenizer errors included.
	ErrFormat = errors.New("format error")

	ErrDuplicateKey  = fmt.Errorf("%w: duplicate key", ErrFormat)
	ErrUnterminated  = fmt.Errorf("%w: unexpected end of input", ErrFormat)
	ErrSequenceShape = fmt.Errorf("%w: name = value line in a sequence", ErrFormat)
	ErrPragma        = fmt.Errorf("%w: bad pragma line", ErrFormat)

	// ErrRoot reports a caller-supplied root that is not a container.
	ErrRoot = errors.New("root must be a mapping or sequence")

	// ErrDepth reports include nesting past the configured limit.
	ErrDepth = errors.New("include depth exceeded")
)

// formatErr folds a tokenizer error into the ErrFormat family while
// keeping it reachable through errors.Is.
func formatErr(err error) error {
	return fmt.Errorf("%w: %w", ErrFormat, err)
}
