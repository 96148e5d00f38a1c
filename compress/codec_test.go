package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weakauras/wacodec/format"
)

func TestNoOpRoundTrip(t *testing.T) {
	c := NewNoOpCompressor()
	data := []byte("hello, world!")

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, compressed)

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDeflateRoundTrip(t *testing.T) {
	c := NewDeflateCompressor()
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 50))

	compressed, err := c.Compress(data)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data))

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDeflateEmptyInput(t *testing.T) {
	c := NewDeflateCompressor()
	compressed, err := c.Compress(nil)
	require.NoError(t, err)

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDeflateDecompressedSizeExceeded(t *testing.T) {
	c := NewDeflateCompressor()
	data := bytes.Repeat([]byte{0}, 1<<20)

	compressed, err := c.Compress(data)
	require.NoError(t, err)

	limited := &DeflateCompressor{MaxDecompressedSize: 1024}
	_, err = limited.Decompress(compressed)
	assert.ErrorIs(t, err, ErrDecompressedSizeExceeded)
}

func TestLegacyCodecCompressUnsupported(t *testing.T) {
	c := NewLegacyCodec()
	_, err := c.Compress([]byte("anything"))
	assert.ErrorIs(t, err, ErrLegacyEncodeUnsupported)
}

func TestLegacyCodecDecompressStoreMode(t *testing.T) {
	c := NewLegacyCodec()
	out, err := c.Decompress([]byte{1, 'h', 'i'})
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), out)
}

func TestCreateCodec(t *testing.T) {
	for _, tc := range []struct {
		name string
		typ  format.CompressionType
	}{
		{"none", format.CompressionNone},
		{"deflate", format.CompressionDeflate},
		{"legacy", format.CompressionLegacy},
	} {
		t.Run(tc.name, func(t *testing.T) {
			codec, err := CreateCodec(tc.typ)
			require.NoError(t, err)
			assert.NotNil(t, codec)
		})
	}

	_, err := CreateCodec(format.CompressionType(0xFF))
	assert.Error(t, err)
}
