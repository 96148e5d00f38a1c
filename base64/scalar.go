package base64

// EncodeScalar encodes src into dst using the scalar reference
// implementation and returns the number of bytes written. dst must have
// length at least the value returned by EncodedLen(len(src)); callers
// that don't already have that length should use EncodeToString instead.
//
// This is the correctness reference for every vectorized kernel: it is
// never the fastest path, but it is always correct, and SIMD kernels fall
// back to it (on the offending chunk) to compute a precise invalid-byte
// offset.
func EncodeScalar(dst, src []byte) int {
	written := 0
	i := 0
	for ; i+3 <= len(src); i += 3 {
		a, b, c := src[i], src[i+1], src[i+2]
		x := uint32(a) | uint32(b)<<8 | uint32(c)<<16
		dst[written+0] = alphabet[x&0x3f]
		dst[written+1] = alphabet[(x>>6)&0x3f]
		dst[written+2] = alphabet[(x>>12)&0x3f]
		dst[written+3] = alphabet[(x>>18)&0x3f]
		written += 4
	}

	switch len(src) - i {
	case 1:
		a := src[i]
		x := uint32(a)
		dst[written+0] = alphabet[x&0x3f]
		dst[written+1] = alphabet[(x>>6)&0x3f]
		written += 2
	case 2:
		a, b := src[i], src[i+1]
		x := uint32(a) | uint32(b)<<8
		dst[written+0] = alphabet[x&0x3f]
		dst[written+1] = alphabet[(x>>6)&0x3f]
		dst[written+2] = alphabet[(x>>12)&0x3f]
		written += 3
	}

	return written
}

// DecodeScalarUnchecked decodes src into dst using the scalar reference
// implementation. dst must have length at least DecodedLen(len(src)).
//
// On success it returns (written, 0, true). On the first invalid input
// byte it returns (0, offset, false) where offset is the zero-based index
// of that byte within src.
func DecodeScalarUnchecked(dst, src []byte) (written int, invalidOffset int, ok bool) {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		i0 := reverse[src[i+0]]
		i1 := reverse[src[i+1]]
		i2 := reverse[src[i+2]]
		i3 := reverse[src[i+3]]
		if i0 == invalidIndex {
			return 0, i + 0, false
		}
		if i1 == invalidIndex {
			return 0, i + 1, false
		}
		if i2 == invalidIndex {
			return 0, i + 2, false
		}
		if i3 == invalidIndex {
			return 0, i + 3, false
		}

		dst[written+0] = i0 | i1<<6
		dst[written+1] = i1>>2 | i2<<4
		dst[written+2] = i2>>4 | i3<<2
		written += 3
	}

	switch len(src) - i {
	case 2:
		i0 := reverse[src[i+0]]
		i1 := reverse[src[i+1]]
		if i0 == invalidIndex {
			return 0, i + 0, false
		}
		if i1 == invalidIndex {
			return 0, i + 1, false
		}
		dst[written] = i0 | i1<<6
		written++
	case 3:
		i0 := reverse[src[i+0]]
		i1 := reverse[src[i+1]]
		i2 := reverse[src[i+2]]
		if i0 == invalidIndex {
			return 0, i + 0, false
		}
		if i1 == invalidIndex {
			return 0, i + 1, false
		}
		if i2 == invalidIndex {
			return 0, i + 2, false
		}
		dst[written+0] = i0 | i1<<6
		dst[written+1] = i1>>2 | i2<<4
		written += 2
	}

	return written, 0, true
}

// scanInvalidOffset scans src (starting at the absolute offset base) for
// the first byte outside the alphabet and returns its absolute offset. It
// is used by SIMD kernels to pin down the exact invalid byte within a
// chunk a vector lane has already flagged as containing one.
func scanInvalidOffset(src []byte, base int) int {
	for i, b := range src {
		if reverse[b] == invalidIndex {
			return base + i
		}
	}
	// Unreachable if the caller's vector check was correct: it means a
	// lane signaled invalid but the scalar scan found nothing. Report the
	// chunk's base offset so the caller still surfaces an error instead
	// of silently declaring success.
	return base
}
