package base64

// Encode encodes src into dst using the best kernel available on this
// CPU, and returns the number of bytes written. dst must be pre-sized to
// exactly EncodedLen(len(src)); see §5 of the governing specification:
// the unchecked kernels assume that precondition and will not bounds
// check it.
func Encode(dst, src []byte) int {
	return currentKernel().encode(dst, src)
}

// EncodeToString encodes src and returns the result as a new string.
func EncodeToString(src []byte) (string, error) {
	n, err := EncodedLen(len(src))
	if err != nil {
		return "", err
	}

	dst := make([]byte, n)
	Encode(dst, src)

	return string(dst), nil
}

// Decode decodes src using the best kernel available on this CPU. On
// success it returns the number of bytes written to dst, which must be
// pre-sized to exactly the value returned by DecodedLen(len(src)). On
// failure it returns a *DecodeError identifying the first invalid byte.
func Decode(dst, src []byte) (int, error) {
	if len(src)%4 == 1 {
		return 0, ErrInvalidLength
	}

	written, offset, ok := currentKernel().decode(dst, src)
	if !ok {
		return 0, &DecodeError{Offset: offset}
	}

	return written, nil
}

// DecodeString decodes s and returns the result as a new byte slice.
func DecodeString(s string) ([]byte, error) {
	n, err := DecodedLen(len(s))
	if err != nil {
		return nil, err
	}

	dst := make([]byte, n)
	written, err := Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}

	return dst[:written], nil
}
