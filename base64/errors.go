package base64

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned when a decode input length is not a valid
// encoded length (remainder 1 when divided by 4).
var ErrInvalidLength = errors.New("base64: invalid input length")

// ErrDataIsTooLarge is returned when computing an encoded or decoded
// length would overflow an int.
var ErrDataIsTooLarge = errors.New("base64: data is too large to encode")

// DecodeError reports the offset of the first invalid byte encountered
// while decoding. Every compiled kernel (scalar, SSE4.1, AVX2, NEON) must
// report the same offset for the same input, per the bit-exactness
// property in the package's governing specification.
type DecodeError struct {
	// Offset is the zero-based index, within the slice passed to the
	// failing call, of the first byte outside the base64 alphabet.
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("base64: invalid byte at offset %d", e.Offset)
}
