package structwalk

import "fmt"

// DeepMerge combines plain objects left to right into a freshly allocated
// result; per key, a later argument overrides an earlier one. nil arguments
// are skipped; any other non-object argument fails with ErrNotPlainObject.
//
// Per-key resolution:
//
//   - plain object over a plain-object accumulated value: recursive merge,
//     not replacement;
//   - plain object over anything else: merged into a fresh empty object,
//     which amounts to a deep copy of the incoming subtree;
//   - array: replaces, but as a deep clone; the result never aliases a
//     source array;
//   - any other reference value (Set, Map, *regexp.Regexp, opaque):
//     replaces by reference. The result aliases the source here; that is a
//     deliberate part of the contract, not an oversight;
//   - primitives and time.Time: assigned by value.
//
// A source object that contains itself does not recurse forever: each
// source sub-object is bound to its destination before its keys are
// walked, and a re-encountered source reuses that (possibly still
// incomplete) destination.
func DeepMerge(objects ...any) (map[string]any, error) {
	for i, src := range objects {
		if src == nil {
			continue
		}
		if k := KindOf(src); k != KindObject {
			return nil, fmt.Errorf("deep merge: argument %d is %s: %w", i, k, ErrNotPlainObject)
		}
	}

	out := make(map[string]any)
	memo := make(map[ident]map[string]any)
	for _, src := range objects {
		if src == nil {
			continue
		}
		mergeInto(out, src.(map[string]any), memo)
	}
	return out, nil
}

// mergeInto merges src into dst. memo binds each source object's identity
// to the destination being built for it, inserted before the walk so
// self-referential sources resolve to the in-progress destination.
func mergeInto(dst, src map[string]any, memo map[ident]map[string]any) {
	if id, ok := identOf(src); ok {
		memo[id] = dst
	}
	for k, v := range src {
		switch KindOf(v) {
		case KindObject:
			sub := v.(map[string]any)
			if id, ok := identOf(sub); ok {
				if started, seen := memo[id]; seen {
					dst[k] = started
					continue
				}
			}
			acc, ok := dst[k].(map[string]any)
			if !ok {
				acc = make(map[string]any, len(sub))
			}
			dst[k] = acc
			mergeInto(acc, sub, memo)

		case KindArray:
			dst[k] = cloneValue(v, make(identityMemo))

		default:
			dst[k] = v
		}
	}
}
