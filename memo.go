package structwalk

import (
	"math"
	"reflect"
)

// ident is the reference identity of a container value: where it lives, not
// what it contains. Two values can be deep-equal without sharing an ident;
// the memo and visited-set machinery below only ever cares about the
// latter. Slices carry their length alongside the data pointer (the
// encoding/json cycle-check technique) so that re-slices of different
// extent do not collide.
type ident struct {
	ptr uintptr
	len int
}

// identOf extracts the reference identity of v. The second result is false
// for values with no meaningful identity (primitives, time.Time, struct
// values): those can never participate in a cycle and are never memoized.
// Typed nil references count as identity-free too; they hold nothing, and
// every nil map and nil slice sits at address zero, so giving them an
// identity would collide values of different kinds.
func identOf(v any) (ident, bool) {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return ident{}, false
		}
		return ident{ptr: rv.Pointer()}, true
	case reflect.Slice:
		if rv.IsNil() {
			return ident{}, false
		}
		return ident{ptr: rv.Pointer(), len: rv.Len()}, true
	}
	return ident{}, false
}

// identityMemo maps reference identity to the in-progress or final output
// built for that input. Entries are inserted before recursion into the
// input's children so that a cyclic back-reference deeper in the walk
// observes the placeholder; the placeholder is then mutated in place, never
// replaced, since other parts of the output may already point at it.
// One memo per top-level call; never shared, never persisted.
type identityMemo map[ident]any

func (m identityMemo) lookup(v any) (any, bool) {
	id, ok := identOf(v)
	if !ok {
		return nil, false
	}
	out, hit := m[id]
	return out, hit
}

func (m identityMemo) store(v, out any) {
	if id, ok := identOf(v); ok {
		m[id] = out
	}
}

// visitedSet is the degenerate memo used by algorithms that need
// termination but produce no isomorphic output: a value is skipped (or
// replaced by a sentinel) on re-encounter instead of being resolved to a
// prior result.
type visitedSet map[ident]struct{}

func (s visitedSet) enter(v any) bool {
	id, ok := identOf(v)
	if !ok {
		return true
	}
	if _, open := s[id]; open {
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s visitedSet) leave(v any) {
	if id, ok := identOf(v); ok {
		delete(s, id)
	}
}

// lookupKey normalizes a value for indexing into a Set or Map. Comparable
// values index as themselves, with NaN folded to a sentinel so that NaN is
// a findable member (SameValueZero, not ==). Reference values that Go
// cannot hash index by identity. The second result is false for
// non-comparable values with no reference identity: no stored key can ever
// match one, so lookups miss without touching the container.
type nanKey struct{}

func lookupKey(v any) (any, bool) {
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return nanKey{}, true
	}
	if f, ok := v.(float32); ok && math.IsNaN(float64(f)) {
		return nanKey{}, true
	}
	if v == nil || reflect.ValueOf(v).Comparable() {
		return v, true
	}
	if id, ok := identOf(v); ok {
		return id, true
	}
	return nil, false
}

// insertKey is lookupKey plus a fallback for the unmatchable values: each
// insertion mints a fresh key, so the value is stored but never found
// again, which is the only coherent reading of identity lookup for it.
func insertKey(v any, unique func() uint64) any {
	if k, ok := lookupKey(v); ok {
		return k
	}
	return uniqueKey(unique())
}

type uniqueKey uint64
