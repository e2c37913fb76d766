package structwalk

import (
	"math"
	"reflect"
	"regexp"
	"time"
)

// DeepEquals reports whether a and b are structurally equal: equal by
// recursive content comparison, independent of key order and of reference
// identity. The per-kind rules:
//
//   - NaN equals NaN (a deliberate departure from ==).
//   - nil is equal only to nil.
//   - Numbers compare across int/int64/float64 representations.
//   - Arrays: equal length, index-wise DeepEquals.
//   - time.Time by instant, *regexp.Regexp by source text.
//   - Plain objects: identical key sets, DeepEquals per key.
//   - Sets: equal cardinality and a perfect pairing between elements under
//     DeepEquals. Matching is consumption-based: each element of b pairs
//     with at most one element of a, so sets holding several distinct but
//     content-equal elements cannot produce false positives.
//   - Maps: equal cardinality, key sets compared by the Map's own shallow
//     key equality (reference identity for container keys, NOT deep
//     equality; intentionally asymmetric with Set elements), and
//     DeepEquals on the value under each shared key.
//   - Anything else: == when Go can compare it, reference identity
//     otherwise.
//
// Cyclic inputs terminate: comparison keeps a set of in-progress identity
// pairs and treats a re-encountered pair as equal (coinductive equality),
// so two isomorphic cyclic graphs compare equal in O(n) rather than
// exhausting the stack.
func DeepEquals(a, b any) bool {
	return deepEqual(a, b, &eqState{})
}

// eqState carries the in-progress identity pairs of one comparison. The
// open map is allocated lazily: flat comparisons never pay for it.
type eqState struct {
	open map[[2]ident]struct{}
}

func (st *eqState) enter(ia, ib ident) bool {
	p := [2]ident{ia, ib}
	if _, ok := st.open[p]; ok {
		return false
	}
	if st.open == nil {
		st.open = make(map[[2]ident]struct{})
	}
	st.open[p] = struct{}{}
	return true
}

func (st *eqState) leave(ia, ib ident) {
	delete(st.open, [2]ident{ia, ib})
}

func deepEqual(a, b any, st *eqState) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}

	if ka.isContainer() {
		ia, okA := identOf(a)
		ib, okB := identOf(b)
		if okA && okB {
			if ia == ib {
				return true
			}
			// An in-progress pair is assumed equal; the assumption is
			// discharged by the rest of the cycle comparing equal.
			if !st.enter(ia, ib) {
				return true
			}
			defer st.leave(ia, ib)
		}
	}

	switch ka {
	case KindNil:
		return true

	case KindBool:
		return a.(bool) == b.(bool)

	case KindString:
		return a.(string) == b.(string)

	case KindNumber:
		return numberEqual(a, b)

	case KindTime:
		return a.(time.Time).Equal(b.(time.Time))

	case KindRegexp:
		ra, rb := a.(*regexp.Regexp), b.(*regexp.Regexp)
		if ra == nil || rb == nil {
			return ra == rb
		}
		return ra.String() == rb.String()

	case KindArray:
		aa, ba := a.([]any), b.([]any)
		if len(aa) != len(ba) {
			return false
		}
		for i := range aa {
			if !deepEqual(aa[i], ba[i], st) {
				return false
			}
		}
		return true

	case KindObject:
		ao, bo := a.(map[string]any), b.(map[string]any)
		if len(ao) != len(bo) {
			return false
		}
		for k, av := range ao {
			bv, ok := bo[k]
			if !ok || !deepEqual(av, bv, st) {
				return false
			}
		}
		return true

	case KindSet:
		return setEqual(a.(*Set), b.(*Set), st)

	case KindMap:
		am, bm := a.(*Map), b.(*Map)
		if am.Len() != bm.Len() {
			return false
		}
		for k, av := range am.All() {
			bv, ok := bm.Get(k)
			if !ok || !deepEqual(av, bv, st) {
				return false
			}
		}
		return true

	default:
		return opaqueEqual(a, b)
	}
}

// setEqual decides whether a perfect deep-equal pairing exists between the
// elements of a and b. Greedy consumption is not enough: with duplicated
// content an early greedy pick can strand a later element even though a
// full pairing exists, so matches are grown with augmenting paths (the
// standard bipartite matching construction).
func setEqual(a, b *Set, st *eqState) bool {
	if a.Len() != b.Len() {
		return false
	}
	as, bs := a.Values(), b.Values()
	matchOf := make([]int, len(bs)) // index into as, or -1
	for j := range matchOf {
		matchOf[j] = -1
	}

	var assign func(i int, tried []bool) bool
	assign = func(i int, tried []bool) bool {
		for j := range bs {
			if tried[j] || !deepEqual(as[i], bs[j], st) {
				continue
			}
			tried[j] = true
			if matchOf[j] == -1 || assign(matchOf[j], tried) {
				matchOf[j] = i
				return true
			}
		}
		return false
	}

	for i := range as {
		if !assign(i, make([]bool, len(bs))) {
			return false
		}
	}
	return true
}

// numberEqual compares numeric values across representations. Integral
// kinds compare exactly against each other; any float involvement compares
// as float64, with NaN equal to NaN.
func numberEqual(a, b any) bool {
	ai, aIsInt := toInt64(a)
	bi, bIsInt := toInt64(b)
	if aIsInt && bIsInt {
		return ai == bi
	}
	au, aIsBig := toBigUint(a)
	bu, bIsBig := toBigUint(b)
	if aIsBig && bIsBig {
		return au == bu
	}
	// One side above MaxInt64, the other at or below it: never equal.
	if (aIsBig && bIsInt) || (aIsInt && bIsBig) {
		return false
	}
	af := toFloat64(a)
	bf := toFloat64(b)
	if math.IsNaN(af) && math.IsNaN(bf) {
		return true
	}
	return af == bf
}

// toInt64 reports integral values representable as int64. uint values above
// MaxInt64 are rejected here rather than converted with a silent sign
// change; toBigUint picks them up.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// toBigUint catches exactly the uint range toInt64 rejects.
func toBigUint(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		if uint64(n) > math.MaxInt64 {
			return uint64(n), true
		}
	case uint64:
		if n > math.MaxInt64 {
			return n, true
		}
	}
	return 0, false
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	}
	if u, ok := toBigUint(v); ok {
		return float64(u)
	}
	i, _ := toInt64(v)
	return float64(i)
}

// opaqueEqual is the fallback for values outside the closed domain: == when
// the dynamic values support it, reference identity when they do not, false
// otherwise.
func opaqueEqual(a, b any) bool {
	if ia, ok := identOf(a); ok {
		ib, ok := identOf(b)
		return ok && ia == ib
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
