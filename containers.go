package structwalk

import "iter"

// Set is an insertion-ordered set of arbitrary values. Membership is by
// shallow equality: == for comparable values (with NaN treated as equal to
// itself), reference identity for arrays, objects and other reference
// values. Deep membership is not a Set concern; DeepEquals compares two
// Sets element-wise with deep equality.
//
// Set is a pointer type on purpose: a *Set has reference identity, so the
// graph walkers can memoize it and a value graph can contain the same Set
// twice, or a Set that (transitively) contains itself.
type Set struct {
	entries []any
	index   map[any]int
	nextUID uint64
}

// NewSet returns a set holding the given values in insertion order,
// duplicates dropped.
func NewSet(values ...any) *Set {
	s := &Set{index: make(map[any]int, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *Set) uid() uint64 {
	s.nextUID++
	return s.nextUID
}

// Add inserts v if it is not already present and reports whether it was
// inserted.
func (s *Set) Add(v any) bool {
	k := insertKey(v, s.uid)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.entries)
	s.entries = append(s.entries, v)
	return true
}

// Has reports membership under the Set's shallow equality.
func (s *Set) Has(v any) bool {
	k, ok := lookupKey(v)
	if !ok {
		return false
	}
	_, ok = s.index[k]
	return ok
}

// Delete removes v and reports whether it was present.
func (s *Set) Delete(v any) bool {
	k, ok := lookupKey(v)
	if !ok {
		return false
	}
	i, ok := s.index[k]
	if !ok {
		return false
	}
	delete(s.index, k)
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	for kk, j := range s.index {
		if j > i {
			s.index[kk] = j - 1
		}
	}
	return true
}

// Len returns the number of elements.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// All iterates elements in insertion order.
func (s *Set) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		if s == nil {
			return
		}
		for _, v := range s.entries {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns the elements as a fresh slice in insertion order.
func (s *Set) Values() []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s.entries))
	copy(out, s.entries)
	return out
}

type mapEntry struct {
	key, val any
}

// Map is an insertion-ordered map with arbitrary keys. Key lookup is
// shallow, exactly like Set membership: == for comparable keys, reference
// identity for container keys. This shallow key rule is deliberately
// asymmetric with Set's deep element comparison under DeepEquals; see the
// DeepEquals documentation.
type Map struct {
	entries []mapEntry
	index   map[any]int
	nextUID uint64
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{index: make(map[any]int)}
}

func (m *Map) uid() uint64 {
	m.nextUID++
	return m.nextUID
}

// Set binds k to v, overwriting in place if k is present (insertion order
// of an existing key is preserved). Returns m for chained construction.
func (m *Map) Set(k, v any) *Map {
	ck := insertKey(k, m.uid)
	if i, ok := m.index[ck]; ok {
		m.entries[i].val = v
		return m
	}
	m.index[ck] = len(m.entries)
	m.entries = append(m.entries, mapEntry{key: k, val: v})
	return m
}

// Get returns the value bound to k.
func (m *Map) Get(k any) (any, bool) {
	if m == nil {
		return nil, false
	}
	ck, ok := lookupKey(k)
	if !ok {
		return nil, false
	}
	i, ok := m.index[ck]
	if !ok {
		return nil, false
	}
	return m.entries[i].val, true
}

// Has reports whether k is bound.
func (m *Map) Has(k any) bool {
	_, ok := m.Get(k)
	return ok
}

// Delete removes k and reports whether it was bound.
func (m *Map) Delete(k any) bool {
	ck, ok := lookupKey(k)
	if !ok {
		return false
	}
	i, ok := m.index[ck]
	if !ok {
		return false
	}
	delete(m.index, ck)
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	for kk, j := range m.index {
		if j > i {
			m.index[kk] = j - 1
		}
	}
	return true
}

// Len returns the number of bindings.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// All iterates key/value pairs in insertion order.
func (m *Map) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
