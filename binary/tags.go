package binary

// embeddedType is the 2-bit type field carried by a CCCCTT10 tag byte.
type embeddedType byte

const (
	embStr   embeddedType = 0
	embMap   embeddedType = 1
	embArray embeddedType = 2
	embMixed embeddedType = 3
)

// fullTag is the 5-bit type space carried by a TTTTT000 tag byte.
type fullTag byte

const (
	tagNull fullTag = iota
	tagPosInt16
	tagPosInt24
	tagPosInt32
	tagPosInt56
	tagNegInt16
	tagNegInt24
	tagNegInt32
	tagNegInt56
	tagFloat
	tagFloatStrPos
	tagFloatStrNeg
	tagTrue
	tagFalse
	tagStr8
	tagStr16
	tagStr24
	tagMap8
	tagMap16
	tagMap24
	tagArray8
	tagArray16
	tagArray24
	tagMixed8
	tagMixed16
	tagMixed24
	tagStrRef8
	tagStrRef16
	tagStrRef24
	tagMapRef8
	tagMapRef16
	tagMapRef24
)

const maxFullTag = tagMapRef24

// Tag byte low-bit discriminators.
const (
	lowBitFastPath   = 0x01 // ...NNNNN1
	lowBits2Mask     = 0x03
	lowBitsEmbedded  = 0x02 // CCCCTT10 (only the low 2 bits are the discriminator; TT occupies bits 2-3)
	lowBits3Mask     = 0x07
	lowBitsCompact12 = 0x04 // NNNNS100
	lowBitsFullTag   = 0x00 // TTTTT000
)

// classifyLowBits returns which of the four tag-byte layouts b uses.
// The four patterns partition every possible byte value: bit 0 set is
// always the fast path; among the rest, bit 1 set is always embedded
// (bits 2-3 there are the TT payload, not part of the discriminator);
// among what remains, bit 2 distinguishes compact-12 from full-tag.
func classifyLowBits(b byte) int {
	switch {
	case b&lowBitFastPath != 0:
		return 1
	case b&lowBits2Mask == lowBitsEmbedded:
		return 2
	case b&lowBits3Mask == lowBitsCompact12:
		return 3
	default: // b&lowBits3Mask == lowBitsFullTag
		return 0
	}
}

func buildFastPath(n uint8) byte {
	return (n << 1) | lowBitFastPath
}

func fastPathValue(b byte) int {
	return int(b >> 1)
}

func buildEmbedded(et embeddedType, count byte) byte {
	return (count << 4) | (byte(et) << 2) | 0x02
}

func embeddedParts(b byte) (embeddedType, byte) {
	et := embeddedType((b >> 2) & 0x03)
	count := (b >> 4) & 0x0F
	return et, count
}

// buildCompact12 packs a 12-bit unsigned magnitude (128..4095) and sign
// into the tag byte plus one following byte: tag holds the low 4 bits of
// the magnitude in its high nibble and the sign in bit 3; the following
// byte holds the magnitude's high 8 bits.
func buildCompact12(magnitude uint16, negative bool) (tag byte, next byte) {
	sign := byte(0)
	if negative {
		sign = 1
	}
	low4 := byte(magnitude & 0x0F)
	high8 := byte(magnitude >> 4)
	tag = (low4 << 4) | (sign << 3) | lowBitsCompact12
	return tag, high8
}

func compact12Value(tag, next byte) (magnitude uint16, negative bool) {
	low4 := (tag >> 4) & 0x0F
	negative = (tag>>3)&0x01 != 0
	magnitude = uint16(next)<<4 | uint16(low4)
	return magnitude, negative
}

func buildFullTag(t fullTag) byte {
	return (byte(t) << 3) | lowBitsFullTag
}

func fullTagValue(b byte) fullTag {
	return fullTag(b >> 3)
}
