package legacy

import "errors"

var (
	// ErrInvalidPrefix is returned when the mode byte is neither 1 (store)
	// nor 3 (compressed), or the input is empty.
	ErrInvalidPrefix = errors.New("legacy: invalid mode byte")

	// ErrInputIsTooSmall is returned when the input is shorter than the
	// fixed compressed-mode header, or the encoded original size is zero.
	ErrInputIsTooSmall = errors.New("legacy: input is too small")

	// ErrDataExceedsMaxSize is returned when the encoded original size (or,
	// in store mode, the stored payload length) exceeds the caller's
	// configured maximum.
	ErrDataExceedsMaxSize = errors.New("legacy: data exceeds max size")

	// ErrUnexpectedEOF is returned when the input ends before the code
	// table or payload is fully read.
	ErrUnexpectedEOF = errors.New("legacy: unexpected end of input")

	// ErrInvalidData is the catch-all for structurally bogus input: an
	// unterminated code, an ambiguous or incomplete lookup table, or a
	// payload that doesn't decode to exactly the declared original size.
	ErrInvalidData = errors.New("legacy: invalid compressed data")
)
