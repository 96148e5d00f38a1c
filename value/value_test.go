package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueVariants(t *testing.T) {
	assert.True(t, Null().IsNull())

	b := Bool(true)
	got, ok := b.Bool()
	assert.True(t, ok)
	assert.True(t, got)

	n := Number(3.5)
	gotN, ok := n.Number()
	assert.True(t, ok)
	assert.InDelta(t, 3.5, gotN, 0)

	s := String("hello")
	gotS, ok := s.Str()
	assert.True(t, ok)
	assert.Equal(t, "hello", gotS)
}

func TestMapKeyRejectsNullAndNaN(t *testing.T) {
	_, err := NewMapKey(Null())
	assert.ErrorIs(t, err, ErrKeyCannotBeNull)

	_, err = NewMapKey(Number(math.NaN()))
	assert.ErrorIs(t, err, ErrKeyCannotBeNaN)

	k, err := NewMapKey(String("ok"))
	require.NoError(t, err)
	s, _ := k.Value().Str()
	assert.Equal(t, "ok", s)
}

func TestCompareTotalOrder(t *testing.T) {
	arr := FromArray(NewArray(0))
	m := FromMap(NewMap())

	assert.Equal(t, -1, Compare(Null(), arr))
	assert.Equal(t, -1, Compare(arr, Bool(false)))
	assert.Equal(t, -1, Compare(Bool(true), String("a")))
	assert.Equal(t, -1, Compare(String("z"), Number(0)))
	assert.Equal(t, 0, Compare(Null(), Null()))
	assert.NotEqual(t, 0, Compare(arr, m)) // distinct identity handles

	nan1 := Number(math.NaN())
	nan2 := Number(math.NaN())
	assert.Equal(t, 0, Compare(nan1, nan2))
	assert.Equal(t, -1, Compare(nan1, Number(-1e300)))
}

func TestArrayIdentityNotStructural(t *testing.T) {
	a1 := FromArray(NewArray(0))
	a2 := FromArray(NewArray(0))
	assert.False(t, Equal(a1, a2))
	assert.True(t, Equal(a1, a1))
}

func TestMapSetGetDeleteRange(t *testing.T) {
	m := NewMap()
	k1, _ := NewMapKey(String("a"))
	k2, _ := NewMapKey(String("b"))
	m.Set(k1, Number(1))
	m.Set(k2, Number(2))

	v, ok := m.Get(k1)
	require.True(t, ok)
	n, _ := v.Number()
	assert.InDelta(t, 1.0, n, 0)

	assert.Equal(t, 2, m.Len())

	var seen []string
	m.Range(func(e Entry) bool {
		s, _ := e.Key.Value().Str()
		seen = append(seen, s)

		return true
	})
	assert.Equal(t, []string{"a", "b"}, seen)

	assert.True(t, m.Delete(k1))
	assert.False(t, m.Delete(k1))
	assert.Equal(t, 1, m.Len())
}

func TestMapIsArrayShaped(t *testing.T) {
	m := NewMap()
	k1, _ := NewMapKey(Number(1))
	k2, _ := NewMapKey(Number(2))
	m.Set(k1, String("x"))
	m.Set(k2, String("y"))

	vals, ok := m.IsArrayShaped()
	require.True(t, ok)
	require.Len(t, vals, 2)
	s0, _ := vals[0].Str()
	s1, _ := vals[1].Str()
	assert.Equal(t, "x", s0)
	assert.Equal(t, "y", s1)

	m2 := NewMap()
	k3, _ := NewMapKey(String("not-a-number"))
	m2.Set(k3, String("z"))
	_, ok = m2.IsArrayShaped()
	assert.False(t, ok)
}

func TestHashByValueAndIdentity(t *testing.T) {
	assert.Equal(t, Hash(String("x")), Hash(String("x")))
	assert.Equal(t, Hash(Number(1.5)), Hash(Number(1.5)))

	a1 := FromArray(NewArray(0))
	a2 := FromArray(NewArray(0))
	assert.NotEqual(t, Hash(a1), Hash(a2))
}
