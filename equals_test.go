package structwalk

import (
	"math"
	"regexp"
	"testing"
	"time"
)

func TestDeepEqualsScalars(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil value", nil, "x", false},
		{"bool", true, true, true},
		{"bool mixed", true, false, false},
		{"string", "a", "a", true},
		{"int", 3, 3, true},
		{"int float same", 1, 1.0, true},
		{"int int64", 7, int64(7), true},
		{"float differs", 1.5, 1.25, false},
		{"nan nan", math.NaN(), math.NaN(), true},
		{"uint64 beyond int64", uint64(math.MaxUint64), int64(-1), false},
		{"uint64 high bit", uint64(1) << 63, int64(math.MinInt64), false},
		{"uint64 large equal", uint64(math.MaxUint64), uint64(math.MaxUint64), true},
		{"uint64 large differs", uint64(math.MaxUint64), uint64(math.MaxUint64 - 1), false},
		{"uint64 large float", uint64(1) << 63, float64(1 << 63), true},
		{"uint64 in range", uint64(7), int64(7), true},
		{"nan number", math.NaN(), 1.0, false},
		{"bool vs int", true, 1, false},
		{"time equal", ts, ts.Add(0), true},
		{"time differs", ts, ts.Add(time.Second), false},
		{"regexp same source", regexp.MustCompile(`a+`), regexp.MustCompile(`a+`), true},
		{"regexp differs", regexp.MustCompile(`a+`), regexp.MustCompile(`b+`), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeepEquals(tc.a, tc.b); got != tc.want {
				t.Errorf("DeepEquals(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// Structural equality is symmetric.
			if got := DeepEquals(tc.b, tc.a); got != tc.want {
				t.Errorf("DeepEquals(%v, %v) = %v, want %v (symmetry)", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestDeepEqualsContainers(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"arrays", []any{1, "x", nil}, []any{1, "x", nil}, true},
		{"array length", []any{1}, []any{1, 2}, false},
		{"array order", []any{1, 2}, []any{2, 1}, false},
		{
			"objects key order free",
			map[string]any{"a": 1, "b": []any{2}},
			map[string]any{"b": []any{2}, "a": 1},
			true,
		},
		{"object key missing", map[string]any{"a": 1}, map[string]any{"b": 1}, false},
		{"object extra key", map[string]any{"a": 1}, map[string]any{"a": 1, "b": 2}, false},
		{"nested", map[string]any{"a": map[string]any{"b": []any{1.0}}}, map[string]any{"a": map[string]any{"b": []any{1}}}, true},
		{"array vs object", []any{}, map[string]any{}, false},
		{"sets order free", NewSet(1, 2, 3), NewSet(3, 1, 2), true},
		{"sets cardinality", NewSet(1, 2), NewSet(1, 2, 3), false},
		{"sets deep elements", NewSet(map[string]any{"v": 1}), NewSet(map[string]any{"v": 1}), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeepEquals(tc.a, tc.b); got != tc.want {
				t.Errorf("DeepEquals = %v, want %v", got, tc.want)
			}
			if got := DeepEquals(tc.b, tc.a); got != tc.want {
				t.Errorf("symmetry: DeepEquals = %v, want %v", got, tc.want)
			}
		})
	}
}

// Two distinct but content-equal elements on one side must consume two
// distinct counterparts on the other; matching one counterpart twice would
// wrongly accept these sets.
func TestDeepEqualsSetDuplicateContent(t *testing.T) {
	a := NewSet(map[string]any{"v": 1}, map[string]any{"v": 1})
	b := NewSet(map[string]any{"v": 1}, map[string]any{"v": 2})
	if a.Len() != 2 || b.Len() != 2 {
		t.Fatalf("sets collapsed: %d %d", a.Len(), b.Len())
	}
	if DeepEquals(a, b) {
		t.Error("non-injective match accepted duplicate-content sets")
	}

	c := NewSet(map[string]any{"v": 1}, map[string]any{"v": 1})
	if !DeepEquals(a, c) {
		t.Error("two pairs of content-equal elements should match")
	}
}

func TestDeepEqualsMapShallowKeys(t *testing.T) {
	k := map[string]any{"id": 1}

	sameKey := DeepEquals(
		NewMap().Set(k, "v"),
		NewMap().Set(k, "v"),
	)
	if !sameKey {
		t.Error("identical reference keys should compare equal")
	}

	// Content-equal but distinct key objects: the key sets differ, because
	// Map keys compare by identity, not deep equality.
	distinctKey := DeepEquals(
		NewMap().Set(map[string]any{"id": 1}, "v"),
		NewMap().Set(map[string]any{"id": 1}, "v"),
	)
	if distinctKey {
		t.Error("distinct reference keys compared deep, want shallow")
	}

	deepValues := DeepEquals(
		NewMap().Set("k", map[string]any{"v": 1}),
		NewMap().Set("k", map[string]any{"v": 1}),
	)
	if !deepValues {
		t.Error("map values should compare deep")
	}
}

func TestDeepEqualsCyclicTerminates(t *testing.T) {
	a := map[string]any{}
	a["self"] = a
	b := map[string]any{}
	b["self"] = b

	// Isomorphic cycles compare equal under coinductive pairing.
	if !DeepEquals(a, b) {
		t.Error("isomorphic cyclic graphs should be equal")
	}

	c := map[string]any{"extra": 1}
	c["self"] = c
	if DeepEquals(a, c) {
		t.Error("cyclic graphs with different keys should differ")
	}

	// A two-step cycle against a one-step cycle still unfolds equal.
	d1 := map[string]any{}
	d2 := map[string]any{}
	d1["self"] = d2
	d2["self"] = d1
	if !DeepEquals(a, d1) {
		t.Error("coinductively equal cycles of different period should match")
	}
}

func TestDeepEqualsOpaque(t *testing.T) {
	type widget struct{ n int }
	w1 := &widget{n: 1}
	w2 := &widget{n: 1}

	if !DeepEquals(w1, w1) {
		t.Error("same pointer should be equal")
	}
	if DeepEquals(w1, w2) {
		t.Error("distinct opaque pointers should not be equal")
	}
	if !DeepEquals(widget{n: 1}, widget{n: 1}) {
		t.Error("comparable opaque values should fall back to ==")
	}
	if DeepEquals(widget{n: 1}, "widget") {
		t.Error("opaque value should not equal a different kind")
	}
}
