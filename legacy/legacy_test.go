package legacy

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompressStoreMode(t *testing.T) {
	out, err := Decompress([]byte{1, 'h', 'i'}, 1024)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), out)
}

func TestDecompressEmptyInput(t *testing.T) {
	_, err := Decompress(nil, 1024)
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestDecompressInvalidModeByte(t *testing.T) {
	_, err := Decompress([]byte{2, 0, 0, 0, 0}, 1024)
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestDecompressInputTooSmall(t *testing.T) {
	_, err := Decompress([]byte{3, 0, 0, 0}, 1024)
	assert.ErrorIs(t, err, ErrInputIsTooSmall)
}

func TestDecompressMaxSizeEnforcement(t *testing.T) {
	// mode=3, numSymbols-1=0, originalSize=100 (LE), no further bytes needed
	// to trigger the size check since it happens right after the header.
	data := []byte{3, 0, 100, 0, 0}
	_, err := Decompress(data, 50)
	assert.ErrorIs(t, err, ErrDataExceedsMaxSize)
}

// Hand-built two-symbol compressed stream decoding to "AB": symbol 'A'
// gets the 6-bit code 000000, symbol 'B' gets the 5-bit code 00001
// (low bit first); both code-table entries consume their input byte
// exactly, leaving no leftover bits to carry into the payload.
func TestDecompressCompressedMode(t *testing.T) {
	data := []byte{
		3,          // mode: compressed
		1,          // numSymbols - 1 (2 symbols)
		2, 0, 0,    // originalSize = 2, little-endian
		0x41,       // symbol 'A'
		0xC0,       // 'A' code-table byte: code 000000, terminator at bit 6
		0x42,       // symbol 'B'
		0xC1,       // 'B' code-table byte: code 000001, terminator at bit 6
		0x40, 0x00, // payload: 'A' (bits 0-5 = 0) then 'B' (bit 6 = 1)
	}

	out, err := Decompress(data, 1024)
	require.NoError(t, err)
	assert.Equal(t, []byte("AB"), out)
}

// corpusCases exercises Decompress against a small stored corpus under
// testdata/, rather than only synthetic streams built directly in Go.
var corpusCases = []struct {
	file string
	want string
}{
	{"store_hello.bin", "Hello, World!"},
	{"compressed_ab.bin", "AB"},
}

func TestDecompressCorpus(t *testing.T) {
	for _, tc := range corpusCases {
		t.Run(tc.file, func(t *testing.T) {
			data, err := os.ReadFile("testdata/" + tc.file)
			require.NoError(t, err)

			out, err := Decompress(data, 1024)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

func TestGetCodeAndUnescapeCode(t *testing.T) {
	var b bitBuffer
	ok := b.insertByte(0xC0) // 0b11000000: terminator at bit 6
	require.True(t, ok)

	code, codeLen, found, err := getCode(&b)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 6, codeLen)
	assert.Equal(t, uint32(0), code)

	unescaped, unescapedLen := unescapeCode(code, codeLen)
	assert.Equal(t, uint32(0), unescaped)
	assert.Equal(t, 6, unescapedLen)
}
