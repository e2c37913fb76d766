package structwalk

import "errors"

// ErrNotPlainObject marks an input-validation failure: an operation that
// requires plain objects (DeepMerge arguments, the FlattenObject source)
// was handed something else. Only top-level arguments are validated;
// nested values of any kind are handled, never rejected mid-traversal.
var ErrNotPlainObject = errors.New("not a plain object")
