package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error kind raised by validation.
// Every sentinel below wraps it, so callers may match either.
var ErrInvalidArgument = errors.New("invalid argument")

// Domain errors as sentinel values
var (
	// Product errors
	ErrEmptyName     = fmt.Errorf("%w: product name cannot be empty", ErrInvalidArgument)
	ErrMissingPrice  = fmt.Errorf("%w: product price is required", ErrInvalidArgument)
	ErrNegativePrice = fmt.Errorf("%w: product price cannot be negative", ErrInvalidArgument)

	// Tax rate errors
	ErrNegativeTaxRate = fmt.Errorf("%w: tax rate cannot be negative", ErrInvalidArgument)
	ErrEmptyTaxLabel   = fmt.Errorf("%w: tax rate label cannot be empty", ErrInvalidArgument)

	// Invoice errors
	ErrNilProduct      = fmt.Errorf("%w: product is required", ErrInvalidArgument)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
)
