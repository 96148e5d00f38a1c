package text

import (
	"math"

	"github.com/weakauras/wacodec/value"
)

// Encode serializes v into a V1 "^1…^^" tag stream. A nil v produces the
// empty-stream form "^1^^".
func Encode(v *value.Value) ([]byte, error) {
	e := &encoder{buf: make([]byte, 0, 64)}
	e.buf = append(e.buf, '^', '1')

	if v != nil {
		if err := e.writeValue(v, 0); err != nil {
			return nil, err
		}
	}

	e.buf = append(e.buf, '^', '^')
	return e.buf, nil
}

type encoder struct {
	buf []byte
}

func (e *encoder) writeValue(v *value.Value, depth int) error {
	switch v.Kind() {
	case value.KindNull:
		e.buf = append(e.buf, '^', byte(idNull))
		return nil

	case value.KindBool:
		b, _ := v.Bool()
		if b {
			e.buf = append(e.buf, '^', byte(idTrue))
		} else {
			e.buf = append(e.buf, '^', byte(idFalse))
		}
		return nil

	case value.KindNumber:
		n, _ := v.Number()
		if math.IsNaN(n) {
			return ErrNanEncountered
		}
		e.buf = append(e.buf, '^', byte(idNumber))
		e.buf = append(e.buf, formatNumberText(n)...)
		return nil

	case value.KindString:
		s, _ := v.Str()
		e.buf = append(e.buf, '^', byte(idString))
		e.buf = escapeString(e.buf, s)
		return nil

	case value.KindArray:
		if depth+1 > MaxRecursionDepth {
			return ErrRecursionLimitExceeded
		}
		a, _ := v.Array()
		e.buf = append(e.buf, '^', byte(idMapOpen))
		var err error
		a.Range(func(i int, item *value.Value) bool {
			e.buf = append(e.buf, '^', byte(idNumber))
			e.buf = append(e.buf, formatNumberText(float64(i+1))...)
			if err = e.writeValue(item, depth+1); err != nil {
				return false
			}
			return true
		})
		if err != nil {
			return err
		}
		e.buf = append(e.buf, '^', byte(idMapClose))
		return nil

	case value.KindMap:
		if depth+1 > MaxRecursionDepth {
			return ErrRecursionLimitExceeded
		}
		m, _ := v.Map()
		e.buf = append(e.buf, '^', byte(idMapOpen))
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
		if err != nil {
			return err
		}
		e.buf = append(e.buf, '^', byte(idMapClose))
		return nil

	default:
		return nil
	}
}
