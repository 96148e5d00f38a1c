package base64

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodedLenDecodedLen(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0}, {1, 2}, {2, 3}, {3, 4}, {4, 6}, {5, 7}, {6, 8},
	}
	for _, c := range cases {
		got, err := EncodedLen(c.n)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "EncodedLen(%d)", c.n)
	}

	_, err := DecodedLen(5) // remainder 1
	assert.ErrorIs(t, err, ErrInvalidLength)

	got, err := DecodedLen(4)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

// S5 from the governing specification.
func TestEncodeToStringScenario(t *testing.T) {
	got, err := EncodeToString([]byte("Hello, world!"))
	require.NoError(t, err)
	assert.Equal(t, "ivgBS9glGC3BYXgzHa", got)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 13, 100, 257} {
		buf := make([]byte, n)
		rng.Read(buf)

		enc, err := EncodeToString(buf)
		require.NoError(t, err)

		dec, err := DecodeString(enc)
		require.NoError(t, err)
		assert.Equal(t, buf, dec)
	}
}

func TestDecodeInvalidByteOffset(t *testing.T) {
	_, err := DecodeString("aa!a")
	require.Error(t, err)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, 2, decErr.Offset)
}

func TestDecodeInvalidLength(t *testing.T) {
	_, err := DecodeString("a")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestScalarKernelAgreesWithDispatch(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		n := rng.Intn(200)
		buf := make([]byte, n)
		rng.Read(buf)

		encLen, _ := EncodedLen(n)
		scalarOut := make([]byte, encLen)
		EncodeScalar(scalarOut, buf)

		dispatchOut := make([]byte, encLen)
		Encode(dispatchOut, buf)

		assert.Equal(t, scalarOut, dispatchOut)
	}
}
