package validators

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the base of every validation failure in this package.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type for validation", ErrInvalidInput)
	ErrUnknownField    = fmt.Errorf("%w: unknown field for validation", ErrInvalidInput)

	ErrEmptyEntryName   = fmt.Errorf("%w: entry name is required", ErrInvalidInput)
	ErrEmptySecret      = fmt.Errorf("%w: entry secret is required", ErrInvalidInput)
	ErrEmptyPassword    = fmt.Errorf("%w: master password is required", ErrInvalidInput)
	ErrInvalidAccountID = fmt.Errorf("%w: account id must be positive", ErrInvalidInput)
)
