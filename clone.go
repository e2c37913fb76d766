package structwalk

import "regexp"

// DeepClone returns a structurally independent copy of v. Primitives and
// nil come back as-is; arrays, plain objects, Sets and Maps are rebuilt
// recursively; time.Time copies by value and *regexp.Regexp is recompiled
// from its source. Every other reference kind is preserved by reference:
// the clone shares it with the input, it is not duplicated.
//
// Sharing and cycles in the input survive in the output: if two paths in v
// reach the same container, the corresponding paths in the clone reach the
// same new container, and a value that contains itself clones to a value
// that contains its own clone. Cost is O(n) in reachable containers.
func DeepClone[T any](v T) T {
	out := cloneValue(any(v), make(identityMemo))
	if out == nil {
		var zero T
		return zero
	}
	return out.(T)
}

func cloneValue(v any, memo identityMemo) any {
	switch KindOf(v) {
	case KindNil, KindBool, KindString, KindNumber, KindTime:
		return v

	case KindRegexp:
		re := v.(*regexp.Regexp)
		if re == nil {
			return re
		}
		// The source compiled once already, so this cannot fail.
		return regexp.MustCompile(re.String())

	case KindArray:
		// A typed nil container holds nothing and cannot close a cycle;
		// it clones to itself, keeping its nil-ness and its kind.
		in := v.([]any)
		if in == nil {
			return v
		}
		if out, hit := memo.lookup(v); hit {
			return out
		}
		out := make([]any, len(in))
		memo.store(v, out)
		for i, e := range in {
			out[i] = cloneValue(e, memo)
		}
		return out

	case KindObject:
		in := v.(map[string]any)
		if in == nil {
			return v
		}
		if out, hit := memo.lookup(v); hit {
			return out
		}
		out := make(map[string]any, len(in))
		memo.store(v, out)
		for k, e := range in {
			out[k] = cloneValue(e, memo)
		}
		return out

	case KindSet:
		in := v.(*Set)
		if in == nil {
			return v
		}
		if out, hit := memo.lookup(v); hit {
			return out
		}
		out := NewSet()
		memo.store(v, out)
		for e := range in.All() {
			out.Add(cloneValue(e, memo))
		}
		return out

	case KindMap:
		in := v.(*Map)
		if in == nil {
			return v
		}
		if out, hit := memo.lookup(v); hit {
			return out
		}
		out := NewMap()
		memo.store(v, out)
		for k, e := range in.All() {
			out.Set(cloneValue(k, memo), cloneValue(e, memo))
		}
		return out

	default:
		// Opaque reference kinds are shared, not reconstructed.
		return v
	}
}
