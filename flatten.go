package structwalk

import "fmt"

// Circular is the sentinel leaf emitted by FlattenObject when a path
// re-enters an object that is still open higher up the same path.
var Circular = CircularRef{}

// CircularRef is the type of the Circular sentinel.
type CircularRef struct{}

func (CircularRef) String() string { return "[Circular]" }

// FlattenOptions configures FlattenObject.
type FlattenOptions struct {
	// Delimiter joins path segments. Empty means the default ".".
	Delimiter string

	// MaxDepth bounds recursion into nested objects: a value sitting at
	// depth >= MaxDepth is kept as a leaf. Negative means unbounded. Note
	// that MaxDepth 0 is meaningful: every top-level value is a leaf.
	MaxDepth int

	// Logger receives debug traces (cycle sentinels, depth capping).
	// Defaults to a no-op logger.
	Logger Logger
}

// DefaultFlattenOptions returns the default configuration for FlattenObject.
func DefaultFlattenOptions() FlattenOptions {
	return FlattenOptions{
		Delimiter: ".",
		MaxDepth:  -1,
	}
}

// FlattenObject collapses a nested plain object into a single-level object
// mapping delimiter-joined paths to leaf values. A value is a leaf when it
// is not a plain object, or when MaxDepth says to stop: arrays, Sets, Maps,
// times and patterns are always leaves regardless of depth. Leaves are the
// source values themselves, not clones.
//
// Cycles terminate: re-entering an object that is still open on the current
// path emits the Circular sentinel at that path instead of recursing.
func FlattenObject(source any, opts ...FlattenOptions) (map[string]any, error) {
	opt := DefaultFlattenOptions()
	if len(opts) > 0 {
		opt = opts[0]
		if opt.Delimiter == "" {
			opt.Delimiter = "."
		}
	}
	if opt.Logger == nil {
		opt.Logger = NoopLogger()
	}

	if k := KindOf(source); k != KindObject {
		return nil, fmt.Errorf("flatten: source is %s: %w", k, ErrNotPlainObject)
	}

	f := &flattener{
		opt:  opt,
		out:  make(map[string]any),
		open: make(visitedSet),
	}
	f.walk(source.(map[string]any), "", 0)
	return f.out, nil
}

type flattener struct {
	opt  FlattenOptions
	out  map[string]any
	open visitedSet
}

// walk records every value in obj under its joined path. depth is the
// depth of obj's immediate values: the root's values sit at depth 0.
func (f *flattener) walk(obj map[string]any, prefix string, depth int) {
	f.open.enter(obj)
	defer f.open.leave(obj)

	capped := f.opt.MaxDepth >= 0 && depth >= f.opt.MaxDepth
	for k, v := range obj {
		path := k
		if prefix != "" {
			path = prefix + f.opt.Delimiter + k
		}

		if KindOf(v) != KindObject {
			f.out[path] = v
			continue
		}
		if capped {
			f.opt.Logger.Debugf("flatten: depth cap at %q (depth=%d)", path, depth)
			f.out[path] = v
			continue
		}
		sub := v.(map[string]any)
		if !f.isOpen(sub) {
			f.walk(sub, path, depth+1)
			continue
		}
		f.opt.Logger.Debugf("flatten: cycle at %q", path)
		f.out[path] = Circular
	}
}

func (f *flattener) isOpen(obj map[string]any) bool {
	id, ok := identOf(obj)
	if !ok {
		return false
	}
	_, open := f.open[id]
	return open
}
