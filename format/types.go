package format

// StringVersion identifies the prefix and serializer an import/export
// string uses, corresponding to the `OutputStringVersion` knob on Encode.
type (
	StringVersion   uint8
	CompressionType uint8
)

const (
	// VersionLegacy denotes a no-prefix string: the legacy pre-DEFLATE
	// decompressor and the textual (V1) value serializer. Decode-only.
	VersionLegacy StringVersion = 0x1
	// VersionDeflate denotes a bare `!` prefix: DEFLATE compression with
	// the textual (V1) value serializer.
	VersionDeflate StringVersion = 0x2
	// VersionV2 denotes the `!WA:2!` prefix: DEFLATE compression with the
	// dense binary (V2) tag-stream serializer.
	VersionV2 StringVersion = 0x3

	CompressionNone    CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionDeflate CompressionType = 0x2 // CompressionDeflate represents raw DEFLATE compression.
	CompressionLegacy  CompressionType = 0x3 // CompressionLegacy represents the legacy pre-DEFLATE scheme.
)

func (v StringVersion) String() string {
	switch v {
	case VersionLegacy:
		return "Legacy"
	case VersionDeflate:
		return "Deflate"
	case VersionV2:
		return "V2"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionDeflate:
		return "Deflate"
	case CompressionLegacy:
		return "Legacy"
	default:
		return "Unknown"
	}
}
