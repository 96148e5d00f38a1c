package legacy

// bitBuffer accumulates bits LSB-first across successive input bytes:
// bit 0 is the oldest bit still unconsumed. It is a value type (copying
// a bitBuffer copies its accumulated state), matching the decode loop's
// need to speculatively advance a copy before committing to it.
type bitBuffer struct {
	data uint64
	n    int
}

func (b *bitBuffer) len() int { return b.n }

func (b *bitBuffer) insertByte(v byte) bool {
	if b.n+8 > 64 {
		return false
	}
	b.data |= uint64(v) << uint(b.n)
	b.n += 8
	return true
}

// insertAndExtractByte inserts v, then reads and discards the low 8 bits
// of the buffer (which may include carried-over bits from a previous
// partially-consumed code, not necessarily v's own bits).
func (b *bitBuffer) insertAndExtractByte(v byte) (byte, bool) {
	if !b.insertByte(v) {
		return 0, false
	}
	out := byte(b.data)
	b.data >>= 8
	b.n -= 8
	return out, true
}

func (b *bitBuffer) extractBits(n int) uint32 {
	mask := uint64(1)<<uint(n) - 1
	v := b.data & mask
	b.data >>= uint(n)
	b.n -= n
	return uint32(v)
}

func (b *bitBuffer) discardBits(n int) {
	b.data >>= uint(n)
	b.n -= n
}

func (b *bitBuffer) peekByte() byte {
	return byte(b.data)
}

type byteSource struct {
	data []byte
	pos  int
}

func (s *byteSource) next() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	v := s.data[s.pos]
	s.pos++
	return v, true
}

// fillFrom tops the buffer up with whole bytes from src until it would
// overflow 64 bits or src is exhausted.
func (b *bitBuffer) fillFrom(src *byteSource) {
	for b.n+8 <= 64 {
		v, ok := src.next()
		if !ok {
			return
		}
		b.data |= uint64(v) << uint(b.n)
		b.n += 8
	}
}

// getCode scans the buffer for the first pair of consecutive set bits
// (the code terminator), returning the bits before it as a raw
// (not-yet-unescaped) code and its length, and reporting whether a
// terminator was found at all in the currently buffered bits.
func getCode(b *bitBuffer) (code uint32, codeLen int, found bool, err error) {
	if b.n < 2 {
		return 0, 0, false, nil
	}
	for i := 0; i <= b.n-2; i++ {
		b1 := b.data & (1 << uint(i))
		b2 := b.data & (1 << uint(i+1))
		if b1 != 0 && b2 != 0 {
			if i > 32 {
				return 0, 0, false, ErrInvalidData
			}
			c := b.extractBits(i)
			b.discardBits(2)
			return c, i, true, nil
		}
	}
	return 0, 0, false, nil
}

// unescapeCode drops every other bit of a raw code, matching the
// reference decompressor's escape scheme for embedding terminator-like
// bit pairs inside a code's data bits.
func unescapeCode(code uint32, codeLen int) (uint32, int) {
	var out uint32
	i, l := 0, 0
	for i < codeLen {
		if code&(1<<uint(i)) != 0 {
			out |= 1 << uint(l)
			i++
		}
		i++
		l++
	}
	return out, l
}
