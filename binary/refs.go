package binary

import "github.com/weakauras/wacodec/value"

// cloneValue returns an independent copy of v suitable for resolving a
// back-reference: composites get a fresh identity handle (and so do all
// of their descendants); scalars have no identity to clone so v itself
// is returned unchanged.
func cloneValue(v *value.Value) *value.Value {
	switch v.Kind() {
	case value.KindArray:
		arr, _ := v.Array()
		out := value.NewArray(arr.Len())
		arr.Range(func(_ int, item *value.Value) bool {
			out.Append(cloneValue(item))
			return true
		})
		return value.FromArray(out)

	case value.KindMap:
		m, _ := v.Map()
		out := value.NewMap()
		m.Range(func(e value.Entry) bool {
			clonedKey, err := value.NewMapKey(cloneValue(e.Key.Value()))
			if err != nil {
				// Keys were already validated when the original map was
				// built; cloning a scalar key cannot newly fail.
				return false
			}
			out.Set(clonedKey, cloneValue(e.Value))
			return true
		})
		return value.FromMap(out)

	default:
		return v
	}
}
