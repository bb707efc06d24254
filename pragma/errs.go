package pragma

import "errors"

var (
	ErrHandlerExists = errors.New("pragma handler exists")
	ErrName          = errors.New("invalid pragma name")
	ErrUndefined     = errors.New("undefined pragma")
	ErrNotFound      = errors.New("include file not found")
	ErrArgs          = errors.New("bad pragma argument")
)
