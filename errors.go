package ddouble

import (
	"github.com/pkg/errors"
)

// Conversion and formatting failures wrap one of these; test for them with
// errors.Is. Arithmetic never fails.
var (
	// ErrInvalidArgument is returned when a caller breaks a documented
	// precondition, i.e. Clamp with min > max, or FromBits with an
	// inconsistent encoding.
	ErrInvalidArgument = errors.New("ddouble: invalid argument")

	// ErrInvalidCast is returned when converting NaN to a type that has no
	// representation for it.
	ErrInvalidCast = errors.New("ddouble: invalid cast")

	// ErrOverflow is returned when a finite or infinite value does not fit
	// the range of the target type.
	ErrOverflow = errors.New("ddouble: overflow")

	// ErrFormat is returned for malformed format layouts and unparseable
	// strings.
	ErrFormat = errors.New("ddouble: invalid format")
)
