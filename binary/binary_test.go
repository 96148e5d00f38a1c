package binary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weakauras/wacodec/value"
)

// S2 from the governing specification.
func TestDecodeSmallStringScenario(t *testing.T) {
	v, err := Decode([]byte("\x01\xd2Hello, world!"))
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", s)
}

// S6 from the governing specification.
func TestEncodeBackReferenceScenario(t *testing.T) {
	a := value.NewArray(3)
	a.Append(value.String("hello"))
	a.Append(value.String("hello"))
	a.Append(value.String("hello"))

	out, err := Encode(value.FromArray(a))
	require.NoError(t, err)

	// version byte, embedded-array tag (count=3), embedded-str tag
	// (count=5) + "hello" inline, then two StrRef8 tags with index 1.
	inlineStr := append([]byte{buildEmbedded(embStr, 5)}, []byte("hello")...)
	strRef1 := []byte{buildFullTag(tagStrRef8), 0x01}

	want := []byte{1, buildEmbedded(embArray, 3)}
	want = append(want, inlineStr...)
	want = append(want, strRef1...)
	want = append(want, strRef1...)

	assert.Equal(t, want, out)
}

func TestDecodeEncodeRoundTripBackReference(t *testing.T) {
	a := value.NewArray(3)
	a.Append(value.String("hello"))
	a.Append(value.String("hello"))
	a.Append(value.String("hello"))

	encoded, err := Encode(value.FromArray(a))
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	arr, ok := decoded.Array()
	require.True(t, ok)
	require.Equal(t, 3, arr.Len())
	for i := 0; i < 3; i++ {
		s, ok := arr.At(i).Str()
		require.True(t, ok)
		assert.Equal(t, "hello", s)
	}
}

func TestDecodeInvalidStringReference(t *testing.T) {
	// version, StrRef8 with index 255 against an empty table.
	data := []byte{1, buildFullTag(tagStrRef8), 0xFF}
	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrInvalidStringReference)
}

func TestDecodeNullBoolTrueFalse(t *testing.T) {
	v, err := Decode([]byte{1, buildFullTag(tagNull)})
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	v, err = Decode([]byte{1, buildFullTag(tagTrue)})
	require.NoError(t, err)
	b, _ := v.Bool()
	assert.True(t, b)

	v, err = Decode([]byte{1, buildFullTag(tagFalse)})
	require.NoError(t, err)
	b, _ = v.Bool()
	assert.False(t, b)
}

func TestEncodeDecodeNumberWidths(t *testing.T) {
	cases := []float64{0, 1, 127, 128, 4095, 4096, 65535, 65536, 16777215, 4294967295, -1, -128, -4095, -4096, 3.5, -2.25}
	for _, n := range cases {
		encoded, err := Encode(value.Number(n))
		require.NoError(t, err)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		got, ok := decoded.Number()
		require.True(t, ok)
		assert.Equal(t, n, got, "round trip of %v", n)
	}
}

func TestEncodeNaNUsesCanonicalQuietNaN(t *testing.T) {
	encoded, err := Encode(value.Number(math.NaN()))
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	n, ok := decoded.Number()
	require.True(t, ok)
	assert.True(t, math.IsNaN(n))
	assert.Equal(t, uint64(0x7ff8000000000000), math.Float64bits(n))
}

func TestDecodeRecursionLimit(t *testing.T) {
	data := []byte{1}
	for i := 0; i < MaxRecursionDepth+1; i++ {
		data = append(data, buildEmbedded(embArray, 1))
	}
	data = append(data, buildFullTag(tagNull))

	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrRecursionLimitExceeded)
}

func TestEncodeDecodeMapRoundTrip(t *testing.T) {
	m := value.NewMap()
	k1, _ := value.NewMapKey(value.String("key"))
	m.Set(k1, value.Number(42))

	encoded, err := Encode(value.FromMap(m))
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	decodedMap, ok := decoded.Map()
	require.True(t, ok)

	got, ok := decodedMap.Get(k1)
	require.True(t, ok)
	n, _ := got.Number()
	assert.Equal(t, float64(42), n)
}
