package text

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weakauras/wacodec/value"
)

// S1 from the governing specification.
func TestDecodeStringScenario(t *testing.T) {
	v, err := Decode([]byte("^1^SHello,~`world!^^"))
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", s)
}

// S7 from the governing specification.
func TestDecodeArrayDetection(t *testing.T) {
	v, err := Decode([]byte("^1^T^N1^SA^N2^SB^N3^SC^t^^"))
	require.NoError(t, err)
	assert.Equal(t, value.KindArray, v.Kind())

	arr, ok := v.Array()
	require.True(t, ok)
	require.Equal(t, 3, arr.Len())
	s0, _ := arr.At(0).Str()
	s1, _ := arr.At(1).Str()
	s2, _ := arr.At(2).Str()
	assert.Equal(t, []string{"A", "B", "C"}, []string{s0, s1, s2})
}

func TestDecodeMapStaysMapWhenKeysArentSequential(t *testing.T) {
	v, err := Decode([]byte("^1^T^N1^SA^N3^SC^t^^"))
	require.NoError(t, err)
	assert.Equal(t, value.KindMap, v.Kind())
}

func TestDecodeEmptyStream(t *testing.T) {
	v, err := Decode([]byte("^1^^"))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecodeNullBoolNumber(t *testing.T) {
	v, err := Decode([]byte("^1^Z^^"))
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = Decode([]byte("^1^B^^"))
	require.NoError(t, err)
	b, ok := v.Bool()
	require.True(t, ok)
	assert.True(t, b)

	v, err = Decode([]byte("^1^N3.5^^"))
	require.NoError(t, err)
	n, ok := v.Number()
	require.True(t, ok)
	assert.InDelta(t, 3.5, n, 1e-12)
}

func TestDecodeMantissaExponent(t *testing.T) {
	v, err := Decode([]byte("^1^F1.5^f4^^"))
	require.NoError(t, err)
	n, ok := v.Number()
	require.True(t, ok)
	assert.InDelta(t, 24.0, n, 1e-12)
}

func TestDecodeMantissaWithoutExponentErrors(t *testing.T) {
	_, err := Decode([]byte("^1^F1.5^^"))
	assert.ErrorIs(t, err, ErrMissingExponent)
}

func TestDecodeMapMissingValue(t *testing.T) {
	_, err := Decode([]byte("^1^T^N1^t^^"))
	assert.ErrorIs(t, err, ErrMapMissingValue)
}

func TestDecodeUnclosedMap(t *testing.T) {
	_, err := Decode([]byte("^1^T^N1^B"))
	assert.ErrorIs(t, err, ErrUnclosedMap)
}

func TestDecodeInvalidIdentifier(t *testing.T) {
	_, err := Decode([]byte("^1^Q^^"))
	var idErr *InvalidIdentifierError
	require.ErrorAs(t, err, &idErr)
}

func TestDecodeRecursionLimit(t *testing.T) {
	var sb []byte
	sb = append(sb, '^', '1')
	for i := 0; i < MaxRecursionDepth+1; i++ {
		sb = append(sb, '^', 'T', '^', 'N', '1')
	}
	sb = append(sb, '^', 'Z')
	for i := 0; i < MaxRecursionDepth+1; i++ {
		sb = append(sb, '^', 't')
	}
	sb = append(sb, '^', '^')

	_, err := Decode(sb)
	assert.ErrorIs(t, err, ErrRecursionLimitExceeded)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := value.NewMap()
	k1, _ := value.NewMapKey(value.String("name"))
	m.Set(k1, value.String("Aura"))
	k2, _ := value.NewMapKey(value.Number(1))
	m.Set(k2, value.Bool(true))

	original := value.FromMap(m)

	encoded, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	decodedMap, ok := decoded.Map()
	require.True(t, ok)
	assert.Equal(t, 2, decodedMap.Len())

	got, ok := decodedMap.Get(k1)
	require.True(t, ok)
	s, _ := got.Str()
	assert.Equal(t, "Aura", s)
}

func TestEncodeArrayRoundTrip(t *testing.T) {
	a := value.NewArray(3)
	a.Append(value.Number(1))
	a.Append(value.Number(2))
	a.Append(value.Number(3))

	encoded, err := Encode(value.FromArray(a))
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, value.KindArray, decoded.Kind())

	arr, _ := decoded.Array()
	assert.Equal(t, 3, arr.Len())
}

func TestEncodeNanFails(t *testing.T) {
	_, err := Encode(value.Number(math.NaN()))
	assert.ErrorIs(t, err, ErrNanEncountered)
}

func TestEscapeStringRoundTrip(t *testing.T) {
	raw := "tab\ttab\nnewline caret^tilde~del\x7fend"
	escaped := escapeString(nil, raw)
	unescaped, err := unescapeString(escaped)
	require.NoError(t, err)
	assert.Equal(t, raw, unescaped)
}
