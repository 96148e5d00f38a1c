package binary

import (
	"math"

	"github.com/weakauras/wacodec/endian"
	"github.com/weakauras/wacodec/value"
)

// bigEndian is used for the one fixed-width field in the tag stream, the
// 8-byte IEEE-754 float; every other integer field has an irregular width
// (1, 2, 3, 4, or 7 bytes) that encoding/binary's ByteOrder doesn't cover,
// so those still go through readUintBE/appendUintBE.
var bigEndian = endian.GetBigEndianEngine()

// Decode parses a V2 tag stream (version byte plus a single top-level
// value) and returns that value, or nil if no bytes follow the version
// byte.
func Decode(data []byte) (*value.Value, error) {
	if len(data) < 1 {
		return nil, ErrUnexpectedEOF
	}
	if data[0] != 1 && data[0] != 2 {
		return nil, ErrInvalidPrefix
	}
	if len(data) == 1 {
		return nil, nil
	}

	d := &decoder{src: data, pos: 1}
	return d.decodeValue(0)
}

type decoder struct {
	src        []byte
	pos        int
	stringRefs []*value.Value
	tableRefs  []*value.Value
}

func (d *decoder) need(n int) bool {
	return d.pos+n <= len(d.src)
}

func (d *decoder) decodeValue(depth int) (*value.Value, error) {
	if !d.need(1) {
		return nil, ErrUnexpectedEOF
	}
	b := d.src[d.pos]

	switch classifyLowBits(b) {
	case 1: // fast-path 7-bit integer
		d.pos++
		return value.Number(float64(fastPathValue(b))), nil

	case 2: // embedded-type short form
		d.pos++
		return d.decodeEmbedded(b, depth)

	case 3: // 12-bit compact integer
		if !d.need(2) {
			return nil, ErrUnexpectedEOF
		}
		next := d.src[d.pos+1]
		d.pos += 2
		magnitude, negative := compact12Value(b, next)
		n := float64(magnitude)
		if negative {
			n = -n
		}
		return value.Number(n), nil

	case 0: // full 5-bit tag
		d.pos++
		return d.decodeFullTag(fullTagValue(b), depth)

	default:
		return nil, &TagError{Offset: d.pos, Tag: b}
	}
}

func (d *decoder) decodeEmbedded(b byte, depth int) (*value.Value, error) {
	et, count := embeddedParts(b)
	switch et {
	case embStr:
		return d.decodeStringBody(int(count))
	case embMap:
		return d.decodeMapBody(int(count), depth)
	case embArray:
		return d.decodeArrayBody(int(count), depth)
	case embMixed:
		arrLen := int(count&0x03) + 1
		mapLen := int((count>>2)&0x03) + 1
		return d.decodeMixedBody(arrLen, mapLen, depth)
	default:
		return nil, ErrInvalidEmbeddedTag
	}
}

func (d *decoder) decodeFullTag(t fullTag, depth int) (*value.Value, error) {
	switch t {
	case tagNull:
		return value.Null(), nil

	case tagPosInt16, tagPosInt24, tagPosInt32, tagPosInt56,
		tagNegInt16, tagNegInt24, tagNegInt32, tagNegInt56:
		width := widthForIntTag(t)
		if !d.need(width) {
			return nil, ErrUnexpectedEOF
		}
		magnitude := readUintBE(d.src[d.pos:], width)
		d.pos += width
		n := float64(magnitude)
		if isNegativeIntTag(t) {
			n = -n
		}
		return value.Number(n), nil

	case tagFloat:
		if !d.need(8) {
			return nil, ErrUnexpectedEOF
		}
		bits := bigEndian.Uint64(d.src[d.pos:])
		d.pos += 8
		return value.Number(math.Float64frombits(bits)), nil

	case tagFloatStrPos, tagFloatStrNeg:
		if !d.need(1) {
			return nil, ErrUnexpectedEOF
		}
		n := int(d.src[d.pos])
		d.pos++
		if !d.need(n) {
			return nil, ErrUnexpectedEOF
		}
		text := d.src[d.pos : d.pos+n]
		d.pos += n
		f, err := parseDecimalText(text)
		if err != nil {
			return nil, err
		}
		if t == tagFloatStrNeg {
			f = -f
		}
		return value.Number(f), nil

	case tagTrue:
		return value.Bool(true), nil
	case tagFalse:
		return value.Bool(false), nil

	case tagStr8, tagStr16, tagStr24:
		width := lengthWidthFor(t, tagStr8, tagStr16, tagStr24)
		n, err := d.readCount(width)
		if err != nil {
			return nil, err
		}
		return d.decodeStringBody(n)

	case tagMap8, tagMap16, tagMap24:
		width := lengthWidthFor(t, tagMap8, tagMap16, tagMap24)
		n, err := d.readCount(width)
		if err != nil {
			return nil, err
		}
		return d.decodeMapBody(n, depth)

	case tagArray8, tagArray16, tagArray24:
		width := lengthWidthFor(t, tagArray8, tagArray16, tagArray24)
		n, err := d.readCount(width)
		if err != nil {
			return nil, err
		}
		return d.decodeArrayBody(n, depth)

	case tagMixed8, tagMixed16, tagMixed24:
		width := lengthWidthFor(t, tagMixed8, tagMixed16, tagMixed24)
		arrLen, err := d.readCount(width)
		if err != nil {
			return nil, err
		}
		mapLen, err := d.readCount(width)
		if err != nil {
			return nil, err
		}
		return d.decodeMixedBody(arrLen, mapLen, depth)

	case tagStrRef8, tagStrRef16, tagStrRef24:
		width := lengthWidthFor(t, tagStrRef8, tagStrRef16, tagStrRef24)
		idx, err := d.readCount(width)
		if err != nil {
			return nil, err
		}
		if idx < 1 || idx > len(d.stringRefs) {
			return nil, ErrInvalidStringReference
		}
		return cloneValue(d.stringRefs[idx-1]), nil

	case tagMapRef8, tagMapRef16, tagMapRef24:
		width := lengthWidthFor(t, tagMapRef8, tagMapRef16, tagMapRef24)
		idx, err := d.readCount(width)
		if err != nil {
			return nil, err
		}
		if idx < 1 || idx > len(d.tableRefs) {
			return nil, ErrInvalidMapReference
		}
		return cloneValue(d.tableRefs[idx-1]), nil

	default:
		return nil, &TagError{Offset: d.pos - 1, Tag: buildFullTag(t)}
	}
}

// lengthWidthFor maps a tag to {1,2,3} given its *8/*16/*24 siblings.
func lengthWidthFor(t, t8, t16, t24 fullTag) int {
	switch t {
	case t8:
		return lenWidth8
	case t16:
		return lenWidth16
	case t24:
		return lenWidth24
	default:
		return 0
	}
}

func (d *decoder) readCount(width int) (int, error) {
	if !d.need(width) {
		return 0, ErrUnexpectedEOF
	}
	n := int(readUintBE(d.src[d.pos:], width))
	d.pos += width
	return n, nil
}

func (d *decoder) decodeStringBody(n int) (*value.Value, error) {
	if !d.need(n) {
		return nil, ErrUnexpectedEOF
	}
	raw := d.src[d.pos : d.pos+n]
	d.pos += n
	v := value.String(string(raw))
	if n > 2 {
		d.stringRefs = append(d.stringRefs, v)
	}
	return v, nil
}

func (d *decoder) decodeMapBody(n int, depth int) (*value.Value, error) {
	if depth+1 > MaxRecursionDepth {
		return nil, ErrRecursionLimitExceeded
	}
	m := value.NewMap()
	for i := 0; i < n; i++ {
		key, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		mapKey, err := value.NewMapKey(key)
		if err != nil {
			return nil, ErrInvalidMapKeyType
		}
		val, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		m.Set(mapKey, val)
	}
	out := value.FromMap(m)
	d.tableRefs = append(d.tableRefs, out)
	return out, nil
}

func (d *decoder) decodeArrayBody(n int, depth int) (*value.Value, error) {
	if depth+1 > MaxRecursionDepth {
		return nil, ErrRecursionLimitExceeded
	}
	a := value.NewArray(n)
	for i := 0; i < n; i++ {
		item, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		a.Append(item)
	}
	out := value.FromArray(a)
	d.tableRefs = append(d.tableRefs, out)
	return out, nil
}

func (d *decoder) decodeMixedBody(arrLen, mapLen int, depth int) (*value.Value, error) {
	if depth+1 > MaxRecursionDepth {
		return nil, ErrRecursionLimitExceeded
	}
	m := value.NewMap()
	for i := 1; i <= arrLen; i++ {
		val, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		mapKey, _ := value.NewMapKey(value.Number(float64(i)))
		m.Set(mapKey, val)
	}
	for i := 0; i < mapLen; i++ {
		key, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		mapKey, err := value.NewMapKey(key)
		if err != nil {
			return nil, ErrInvalidMapKeyType
		}
		val, err := d.decodeValue(depth + 1)
		if err != nil {
			return nil, err
		}
		m.Set(mapKey, val)
	}
	out := value.FromMap(m)
	d.tableRefs = append(d.tableRefs, out)
	return out, nil
}
