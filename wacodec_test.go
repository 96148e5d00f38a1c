package wacodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weakauras/wacodec/value"
)

func TestDecodeTopLevelDeflateV1(t *testing.T) {
	v, err := Decode([]byte("!lodJlypsnNCYxN6sO88lkNuumU4aaa"))
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", s)
}

func TestDecodeTopLevelV2(t *testing.T) {
	v, err := Decode([]byte("!WA:2!JXl5rQ5Kt(6Oq55xuoPOiaa"))
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", s)
}

func TestEncodeDecodeRoundTripDeflate(t *testing.T) {
	in := value.String("Hello, world!")
	out, err := Encode(in, OutputDeflate)
	require.NoError(t, err)

	v, err := Decode([]byte(out))
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", s)
}

func TestEncodeDecodeRoundTripV2(t *testing.T) {
	in := value.String("Hello, world!")
	out, err := Encode(in, OutputV2)
	require.NoError(t, err)
	assert.Contains(t, out, "!WA:2!")

	v, err := Decode([]byte(out))
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", s)
}

func TestEncodeUnsupportedVersion(t *testing.T) {
	_, err := Encode(value.Null(), OutputVersion(0xFF))
	assert.ErrorIs(t, err, ErrUnsupportedEncodeVersion)
}

func TestDecodeInvalidPrefix(t *testing.T) {
	_, err := Decode([]byte("not a weakauras string at all"))
	assert.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestDecodeMaxSizeEnforcement(t *testing.T) {
	out, err := Encode(value.String("Hello, world!"), OutputDeflate)
	require.NoError(t, err)

	_, err = Decode([]byte(out), WithMaxSize(1))
	assert.ErrorIs(t, err, ErrDataExceedsMaxSize)
}

func TestDecodeBorrowStringsFalseCopies(t *testing.T) {
	out, err := Encode(value.String("Hello, world!"), OutputDeflate)
	require.NoError(t, err)

	v, err := Decode([]byte(out), WithBorrowStrings(false))
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", s)
}
