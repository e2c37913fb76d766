// Package structwalk implements cycle-safe deep-structure algorithms over
// dynamic value graphs: DeepClone, DeepEquals, DeepMerge and FlattenObject.
//
// The value domain is the closed set of kinds produced by decoding JSON or
// YAML documents, plus a pair of insertion-ordered container types:
//
//	nil, bool, string, int/int64/float64   primitives
//	time.Time                              timestamps
//	*regexp.Regexp                         patterns
//	[]any                                  arrays
//	map[string]any                         plain objects
//	*Set, *Map                             ordered set / ordered map
//
// Anything outside this set is treated as an opaque leaf: preserved by
// reference on clone and merge, compared by == on equality. Classification
// happens once per visited value through KindOf; no operation rejects a
// nested value mid-traversal.
//
// Every algorithm that reconstructs output (DeepClone, DeepMerge) follows
// the same pattern to survive reference cycles and preserve sharing: a
// per-call memo from reference identity to output placeholder, populated
// before recursing into a container's children and mutated in place after.
// If two paths in the input reach the same array or object, the two paths
// in the output reach the same clone. Algorithms that only read the input
// (DeepEquals, FlattenObject) carry a visited set instead.
//
// All functions are pure with respect to their inputs and allocate their
// traversal state per call, so independent calls are safe to run
// concurrently.
package structwalk
