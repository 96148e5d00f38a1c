package value

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// hashNullConstant is an arbitrary but fixed hash for the Null value.
const hashNullConstant = 0x6e756c6c00000000 // "null" + zero padding

// Hash returns a 64-bit hash of v consistent with Compare's equality:
// equal values (Compare == 0) hash identically, except that distinct NaN
// bit patterns, and +0 and -0, do not collide (the spec hashes numbers by
// raw bit pattern, not by comparison class).
//
// Strings are hashed with xxHash64 (the same fast, non-cryptographic
// hash this codebase's map-flavor index uses for key lookup); booleans
// and numbers hash by value; Array and Map hash by identity handle; Null
// hashes to a fixed constant.
func Hash(v *Value) uint64 {
	switch v.Kind() {
	case KindNull:
		return hashNullConstant
	case KindBool:
		b, _ := v.Bool()
		if b {
			return 1
		}

		return 0
	case KindNumber:
		n, _ := v.Number()

		return numberBits(n)
	case KindString:
		s, _ := v.Str()

		return xxhash.Sum64String(s)
	case KindArray, KindMap:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], handleOf(v))

		return xxhash.Sum64(buf[:])
	default:
		return 0
	}
}
