package value

// Entry is a single key-value pair as returned by Map.Range, in the
// iteration order of the compiled-in map flavor.
type Entry struct {
	Key   MapKey
	Value *Value
}

// mapImpl is the storage strategy behind Map. Exactly one implementation
// is compiled in, selected by build tag (see flavor_*.go); all three
// expose identical external behavior and differ only in Range order.
type mapImpl interface {
	insert(k MapKey, v *Value)
	get(k MapKey) (*Value, bool)
	del(k MapKey) bool
	len() int
	rangeOrdered(fn func(Entry) bool)
}

// Map is an ordered, identity-compared collection of unique MapKey to
// *Value pairs. The iteration order depends on the compile-time map
// flavor (sorted, insertion-ordered, or insertion-ordered-with-hash-index)
// but is consistent across a single Map's lifetime.
type Map struct {
	handle uint64
	impl   mapImpl
}

// NewMap creates an empty Map using the flavor selected at build time.
func NewMap() *Map {
	return &Map{handle: allocHandle(), impl: newMapImpl()}
}

// Handle returns the identity handle used for identity equality and
// hashing.
func (m *Map) Handle() uint64 {
	return m.handle
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.impl.len()
}

// Set inserts or replaces the value for k.
func (m *Map) Set(k MapKey, v *Value) {
	m.impl.insert(k, v)
}

// Get looks up the value for k.
func (m *Map) Get(k MapKey) (*Value, bool) {
	return m.impl.get(k)
}

// Delete removes k, reporting whether it was present.
func (m *Map) Delete(k MapKey) bool {
	return m.impl.del(k)
}

// Range calls fn for every entry in the flavor's iteration order, stopping
// early if fn returns false.
func (m *Map) Range(fn func(Entry) bool) {
	m.impl.rangeOrdered(fn)
}

// IsArrayShaped reports whether m's keys are exactly the Number keys
//1.0, 2.0, ..., n.0 in ascending insertion order, matching the V1 "a map
// that is really an array" detection rule. It returns the values in that
// order when true.
func (m *Map) IsArrayShaped() ([]*Value, bool) {
	n := m.Len()
	if n == 0 {
		return nil, false
	}

	values := make([]*Value, n)
	seen := 0
	ok := true
	m.Range(func(e Entry) bool {
		kv := e.Key.Value()
		num, isNum := kv.Number()
		idx := int(num)
		if !isNum || num != float64(idx) || idx != seen+1 || idx > n {
			ok = false

			return false
		}
		values[idx-1] = e.Value
		seen++

		return true
	})

	if !ok || seen != n {
		return nil, false
	}

	return values, true
}
