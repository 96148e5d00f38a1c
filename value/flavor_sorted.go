//go:build wa_mapflavor_sorted

package value

import "sort"

// sortedMap keeps entries sorted by the §3 total order at all times, so
// Range visits keys ascending. Insertion is O(n); lookup is O(log n).
type sortedMap struct {
	entries []Entry
}

func newMapImpl() mapImpl {
	return &sortedMap{}
}

func (m *sortedMap) search(k MapKey) (int, bool) {
	kv := k.Value()
	i := sort.Search(len(m.entries), func(i int) bool {
		return Compare(m.entries[i].Key.Value(), kv) >= 0
	})
	if i < len(m.entries) && Equal(m.entries[i].Key.Value(), kv) {
		return i, true
	}

	return i, false
}

func (m *sortedMap) insert(k MapKey, v *Value) {
	i, found := m.search(k)
	if found {
		m.entries[i].Value = v

		return
	}

	m.entries = append(m.entries, Entry{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = Entry{Key: k, Value: v}
}

func (m *sortedMap) get(k MapKey) (*Value, bool) {
	if i, found := m.search(k); found {
		return m.entries[i].Value, true
	}

	return nil, false
}

func (m *sortedMap) del(k MapKey) bool {
	i, found := m.search(k)
	if !found {
		return false
	}

	m.entries = append(m.entries[:i], m.entries[i+1:]...)

	return true
}

func (m *sortedMap) len() int {
	return len(m.entries)
}

func (m *sortedMap) rangeOrdered(fn func(Entry) bool) {
	for _, e := range m.entries {
		if !fn(e) {
			return
		}
	}
}
