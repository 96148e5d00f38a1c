package binary

import (
	"math"

	"github.com/weakauras/wacodec/value"
)

func appendFloat64BE(dst []byte, bits uint64) []byte {
	return bigEndian.AppendUint64(dst, bits)
}

// maxInt56 is the largest magnitude this package serializes as an
// integer tag; anything larger, or any non-integral float, goes through
// the Float tag instead.
const maxInt56 = 1<<56 - 1

// Encode serializes v into a V2 tag stream with a leading version byte
// (always 1). A nil v produces a stream with no value after the
// version byte.
//
// Strings longer than two bytes are deduplicated against a string-ref
// table: the second and later occurrence of an identical string is
// written as a StrRef rather than re-emitted inline. Composite
// containers (maps, arrays, mixed) are never deduplicated on encode,
// even though the decoder supports resolving MapRef against them.
func Encode(v *value.Value) ([]byte, error) {
	e := &encoder{buf: []byte{1}, stringIndex: make(map[string]int)}
	if v == nil {
		return e.buf, nil
	}
	if err := e.writeValue(v, 0); err != nil {
		return nil, err
	}
	return e.buf, nil
}

type encoder struct {
	buf         []byte
	stringIndex map[string]int // 1-based index into the emitted string-ref table
}

func (e *encoder) writeValue(v *value.Value, depth int) error {
	switch v.Kind() {
	case value.KindNull:
		e.buf = append(e.buf, buildFullTag(tagNull))
		return nil

	case value.KindBool:
		b, _ := v.Bool()
		if b {
			e.buf = append(e.buf, buildFullTag(tagTrue))
		} else {
			e.buf = append(e.buf, buildFullTag(tagFalse))
		}
		return nil

	case value.KindNumber:
		n, _ := v.Number()
		return e.writeNumber(n)

	case value.KindString:
		s, _ := v.Str()
		return e.writeString(s)

	case value.KindArray:
		if depth+1 > MaxRecursionDepth {
			return ErrRecursionLimitExceeded
		}
		a, _ := v.Array()
		return e.writeArray(a, depth)

	case value.KindMap:
		if depth+1 > MaxRecursionDepth {
			return ErrRecursionLimitExceeded
		}
		m, _ := v.Map()
		return e.writeMap(m, depth)

	default:
		return nil
	}
}

func (e *encoder) writeNumber(n float64) error {
	if math.IsNaN(n) {
		e.buf = append(e.buf, buildFullTag(tagFloat))
		e.buf = appendFloat64BE(e.buf, 0x7ff8000000000000)
		return nil
	}

	if n == math.Trunc(n) && !math.IsInf(n, 0) && math.Abs(n) <= float64(maxInt56) {
		negative := n < 0
		magnitude := uint64(math.Abs(n))

		switch {
		case !negative && magnitude <= 127:
			e.buf = append(e.buf, buildFastPath(uint8(magnitude)))
			return nil
		case magnitude >= 128 && magnitude <= 4095:
			tag, next := buildCompact12(uint16(magnitude), negative)
			e.buf = append(e.buf, tag, next)
			return nil
		default:
			width := widthForUint(magnitude)
			if width != 0 {
				e.buf = append(e.buf, buildFullTag(intTagForWidth(width, negative)))
				e.buf = appendUintBE(e.buf, magnitude, width)
				return nil
			}
		}
	}

	e.buf = append(e.buf, buildFullTag(tagFloat))
	e.buf = appendFloat64BE(e.buf, math.Float64bits(n))
	return nil
}

func (e *encoder) writeString(s string) error {
	if len(s) > 2 {
		if idx, ok := e.stringIndex[s]; ok {
			return e.writeRefTag(idx, tagStrRef8, tagStrRef16, tagStrRef24)
		}
	}

	n := len(s)
	switch {
	case n <= 15:
		e.buf = append(e.buf, buildEmbedded(embStr, byte(n)))
		e.buf = append(e.buf, s...)
	case n <= 0xFF:
		e.buf = append(e.buf, buildFullTag(tagStr8))
		e.buf = appendUintBE(e.buf, uint64(n), lenWidth8)
		e.buf = append(e.buf, s...)
	case n <= 0xFFFF:
		e.buf = append(e.buf, buildFullTag(tagStr16))
		e.buf = appendUintBE(e.buf, uint64(n), lenWidth16)
		e.buf = append(e.buf, s...)
	case n <= 0xFFFFFF:
		e.buf = append(e.buf, buildFullTag(tagStr24))
		e.buf = appendUintBE(e.buf, uint64(n), lenWidth24)
		e.buf = append(e.buf, s...)
	default:
		return ErrStringIsTooLarge
	}

	if len(s) > 2 {
		if len(e.stringIndex) >= MaxRefTableSize {
			return ErrTooManyUniqueStrings
		}
		e.stringIndex[s] = len(e.stringIndex) + 1
	}
	return nil
}

func (e *encoder) writeRefTag(idx int, t8, t16, t24 fullTag) error {
	switch {
	case idx <= 0xFF:
		e.buf = append(e.buf, buildFullTag(t8))
		e.buf = appendUintBE(e.buf, uint64(idx), lenWidth8)
	case idx <= 0xFFFF:
		e.buf = append(e.buf, buildFullTag(t16))
		e.buf = appendUintBE(e.buf, uint64(idx), lenWidth16)
	case idx <= 0xFFFFFF:
		e.buf = append(e.buf, buildFullTag(t24))
		e.buf = appendUintBE(e.buf, uint64(idx), lenWidth24)
	default:
		return ErrTooManyUniqueStrings
	}
	return nil
}

func (e *encoder) writeArray(a *value.Array, depth int) error {
	n := a.Len()
	switch {
	case n <= 15:
		e.buf = append(e.buf, buildEmbedded(embArray, byte(n)))
	case n <= 0xFF:
		e.buf = append(e.buf, buildFullTag(tagArray8))
		e.buf = appendUintBE(e.buf, uint64(n), lenWidth8)
	case n <= 0xFFFF:
		e.buf = append(e.buf, buildFullTag(tagArray16))
		e.buf = appendUintBE(e.buf, uint64(n), lenWidth16)
	case n <= 0xFFFFFF:
		e.buf = append(e.buf, buildFullTag(tagArray24))
		e.buf = appendUintBE(e.buf, uint64(n), lenWidth24)
	default:
		return ErrArrayIsTooLarge
	}

	var err error
	a.Range(func(_ int, item *value.Value) bool {
		if err = e.writeValue(item, depth+1); err != nil {
			return false
		}
		return true
	})
	return err
}

func (e *encoder) writeMap(m *value.Map, depth int) error {
	n := m.Len()
	switch {
	case n <= 15:
		e.buf = append(e.buf, buildEmbedded(embMap, byte(n)))
	case n <= 0xFF:
		e.buf = append(e.buf, buildFullTag(tagMap8))
		e.buf = appendUintBE(e.buf, uint64(n), lenWidth8)
	case n <= 0xFFFF:
		e.buf = append(e.buf, buildFullTag(tagMap16))
		e.buf = appendUintBE(e.buf, uint64(n), lenWidth16)
	case n <= 0xFFFFFF:
		e.buf = append(e.buf, buildFullTag(tagMap24))
		e.buf = appendUintBE(e.buf, uint64(n), lenWidth24)
	default:
		return ErrMapIsTooLarge
	}

	var err error
	m.Range(func(ent value.Entry) bool {
		if err = e.writeValue(ent.Key.Value(), depth+1); err != nil {
			return false
		}
		if err = e.writeValue(ent.Value, depth+1); err != nil {
			return false
		}
		return true
	})
	return err
}
