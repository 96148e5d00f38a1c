package text

import (
	"math"

	"github.com/weakauras/wacodec/value"
)

// Decode parses a V1 "^1…^^" tag stream and returns the single
// top-level value it contains, or nil if the stream encodes no value
// at all ("^1^^").
func Decode(data []byte) (*value.Value, error) {
	if len(data) < 2 || data[0] != '^' || data[1] != '1' {
		return nil, ErrMissingHeader
	}

	d := &decoder{src: data, pos: 2}

	id, ok := d.peekIdentifier()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	if id == idEnd {
		d.pos += 2
		if d.pos != len(d.src) {
			return nil, ErrTrailingData
		}
		return nil, nil
	}

	v, err := d.decodeValue(0)
	if err != nil {
		return nil, err
	}

	id, ok = d.peekIdentifier()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	if id != idEnd {
		return nil, ErrTrailingData
	}
	d.pos += 2

	if d.pos != len(d.src) {
		return nil, ErrTrailingData
	}

	return v, nil
}

type identifier byte

const (
	idEnd       identifier = '^' // "^^": end of stream / end of map
	idNull      identifier = 'Z'
	idTrue      identifier = 'B'
	idFalse     identifier = 'b'
	idString    identifier = 'S'
	idNumber    identifier = 'N'
	idMantissa  identifier = 'F'
	idExponent  identifier = 'f'
	idMapOpen   identifier = 'T'
	idMapClose  identifier = 't'
)

type decoder struct {
	src []byte
	pos int
}

// peekIdentifier reads, without consuming, the 2-byte identifier at the
// current position.
func (d *decoder) peekIdentifier() (identifier, bool) {
	if d.pos+2 > len(d.src) {
		return 0, false
	}
	if d.src[d.pos] != '^' {
		return 0, false
	}
	return identifier(d.src[d.pos+1]), true
}

func (d *decoder) validIdentifier(id identifier) bool {
	switch id {
	case idEnd, idNull, idTrue, idFalse, idString, idNumber, idMantissa, idExponent, idMapOpen, idMapClose:
		return true
	default:
		return false
	}
}

// scanUnescapedCaret returns the index, relative to d.pos, of the next
// raw '^' byte, which is never itself escaped inside a string or number
// body (escaping it requires "~}").
func (d *decoder) scanUnescapedCaret() int {
	for i := d.pos; i < len(d.src); i++ {
		if d.src[i] == '^' {
			return i - d.pos
		}
	}
	return -1
}

// decodeValue reads one identifier-prefixed value. depth counts
// currently-open "^T" blocks.
func (d *decoder) decodeValue(depth int) (*value.Value, error) {
	id, ok := d.peekIdentifier()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	if !d.validIdentifier(id) {
		return nil, &InvalidIdentifierError{Offset: d.pos + 1, Byte: d.src[d.pos+1]}
	}

	switch id {
	case idNull:
		d.pos += 2
		return value.Null(), nil

	case idTrue:
		d.pos += 2
		return value.Bool(true), nil

	case idFalse:
		d.pos += 2
		return value.Bool(false), nil

	case idString:
		d.pos += 2
		n := d.scanUnescapedCaret()
		if n < 0 {
			return nil, ErrUnexpectedEOF
		}
		s, err := unescapeString(d.src[d.pos : d.pos+n])
		if err != nil {
			return nil, err
		}
		d.pos += n
		return value.String(s), nil

	case idNumber:
		d.pos += 2
		n := d.scanUnescapedCaret()
		if n < 0 {
			return nil, ErrUnexpectedEOF
		}
		f, err := parseNumberText(d.src[d.pos : d.pos+n])
		if err != nil {
			return nil, err
		}
		d.pos += n
		return value.Number(f), nil

	case idMantissa:
		d.pos += 2
		n := d.scanUnescapedCaret()
		if n < 0 {
			return nil, ErrUnexpectedEOF
		}
		mantissa, err := parseNumberText(d.src[d.pos : d.pos+n])
		if err != nil {
			return nil, err
		}
		d.pos += n

		expID, ok := d.peekIdentifier()
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		if expID != idExponent {
			return nil, ErrMissingExponent
		}
		d.pos += 2

		n = d.scanUnescapedCaret()
		if n < 0 {
			return nil, ErrUnexpectedEOF
		}
		exponent, err := parseNumberText(d.src[d.pos : d.pos+n])
		if err != nil {
			return nil, err
		}
		d.pos += n

		return value.Number(math.Ldexp(mantissa, int(exponent))), nil

	case idMapOpen:
		return d.decodeMap(depth)

	default:
		return nil, &InvalidIdentifierError{Offset: d.pos + 1, Byte: d.src[d.pos+1]}
	}
}

func (d *decoder) decodeMap(depth int) (*value.Value, error) {
	if depth+1 > MaxRecursionDepth {
		return nil, ErrRecursionLimitExceeded
	}
	d.pos += 2 // consume "^T"

	m := value.NewMap()
	for {
		id, ok := d.peekIdentifier()
		if !ok {
			return nil, ErrUnclosedMap
		}
		if id == idMapClose {
			d.pos += 2
			break
		}

		key, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		mapKey, err := value.NewMapKey(key)
		if err != nil {
			return nil, ErrInvalidMapKeyType
		}

		id, ok = d.peekIdentifier()
		if !ok {
			return nil, ErrUnclosedMap
		}
		if id == idMapClose {
			return nil, ErrMapMissingValue
		}

		val, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}

		m.Set(mapKey, val)
	}

	if items, ok := m.IsArrayShaped(); ok {
		return value.FromArray(value.NewArrayFrom(items)), nil
	}
	return value.FromMap(m), nil
}
