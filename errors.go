package bignum

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("bignum")

var (
	// ErrDivisionByZero is returned by QuoRem, Quo and Rem when the
	// divisor is zero.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrShiftCount is returned by the shift operations when the shift
	// count is negative.
	ErrShiftCount = Error.New("negative shift count")

	// ErrUnsupported is returned by operations this package declares but
	// does not implement.
	ErrUnsupported = Error.New("operation not supported")

	// ErrRange is returned when a value does not fit in the requested
	// fixed-width integer type.
	ErrRange = Error.New("value out of range")
)
