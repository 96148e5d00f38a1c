package text

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEscapeCharacter is returned when a `~X` escape sequence's
	// second byte is not one of the documented targets.
	ErrInvalidEscapeCharacter = errors.New("text: invalid escape character")

	// ErrInvalidFloatNumber is returned when a number's decimal text
	// cannot be parsed as a float and is not one of the infinity tokens.
	ErrInvalidFloatNumber = errors.New("text: invalid float number")

	// ErrMissingExponent is returned when a `^F` mantissa is not followed
	// by a `^f` exponent.
	ErrMissingExponent = errors.New("text: mantissa not followed by exponent")

	// ErrInvalidMapKeyType is returned when a decoded map key is Null or
	// NaN, neither of which value.NewMapKey accepts.
	ErrInvalidMapKeyType = errors.New("text: map key cannot be null or NaN")

	// ErrMapMissingValue is returned when a map key is immediately
	// followed by the map terminator instead of a value.
	ErrMapMissingValue = errors.New("text: map key has no matching value")

	// ErrUnclosedMap is returned when the input ends before a `^T` block
	// sees its matching `^t`.
	ErrUnclosedMap = errors.New("text: unclosed map")

	// ErrUnexpectedEOF is returned when the input ends mid-identifier or
	// mid-value.
	ErrUnexpectedEOF = errors.New("text: unexpected end of input")

	// ErrRecursionLimitExceeded is returned when map nesting exceeds the
	// bound this package enforces.
	ErrRecursionLimitExceeded = errors.New("text: recursion limit exceeded")

	// ErrNanEncountered is returned by Encode when asked to serialize a
	// NaN number; the V1 format has no representation for it.
	ErrNanEncountered = errors.New("text: cannot encode NaN")

	// ErrMissingHeader is returned when the input does not begin with the
	// "^1" stream header.
	ErrMissingHeader = errors.New("text: missing stream header")

	// ErrTrailingData is returned when data remains after the top-level
	// value's closing "^^".
	ErrTrailingData = errors.New("text: trailing data after end of stream")
)

// MaxRecursionDepth bounds nested "^T" map blocks.
const MaxRecursionDepth = 128

// InvalidIdentifierError reports an identifier whose second byte is not
// one this package recognizes.
type InvalidIdentifierError struct {
	Offset int
	Byte   byte
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("text: invalid identifier byte %#02x at offset %d", e.Byte, e.Offset)
}
