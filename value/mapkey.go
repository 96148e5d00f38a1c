package value

import "errors"

// ErrKeyCannotBeNull is returned by NewMapKey when given a Null value.
var ErrKeyCannotBeNull = errors.New("value: map key cannot be null")

// ErrKeyCannotBeNaN is returned by NewMapKey when given a NaN-valued
// Number.
var ErrKeyCannotBeNaN = errors.New("value: map key cannot be NaN")

// MapKey is a Value restricted to the subset legal as a map key: it must
// not be Null, and if it is a Number it must not be NaN.
type MapKey struct {
	v *Value
}

// NewMapKey validates v and wraps it as a MapKey.
func NewMapKey(v *Value) (MapKey, error) {
	switch v.Kind() {
	case KindNull:
		return MapKey{}, ErrKeyCannotBeNull
	case KindNumber:
		n, _ := v.Number()
		if n != n { // NaN
			return MapKey{}, ErrKeyCannotBeNaN
		}
	}

	return MapKey{v: v}, nil
}

// Value returns the underlying Value.
func (k MapKey) Value() *Value {
	return k.v
}
