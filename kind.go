package structwalk

import (
	"regexp"
	"time"
)

// Kind classifies a value into exactly one of the domain's categories.
// Classification drives allocation, iteration and the equality/merge rule
// applied to the value, so each algorithm dispatches on it once per visit.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindString
	KindNumber
	KindTime
	KindRegexp
	KindArray
	KindSet
	KindMap
	KindObject
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	case KindRegexp:
		return "regexp"
	case KindArray:
		return "array"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// KindOf classifies v. Values outside the closed domain come back as
// KindOpaque rather than an error; they are handled as reference leaves.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNil
	case bool:
		return KindBool
	case string:
		return KindString
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindNumber
	case time.Time:
		return KindTime
	case *regexp.Regexp:
		return KindRegexp
	case []any:
		return KindArray
	case *Set:
		return KindSet
	case *Map:
		return KindMap
	case map[string]any:
		return KindObject
	default:
		return KindOpaque
	}
}

// isContainer reports whether values of kind k hold child values that the
// walkers recurse into.
func (k Kind) isContainer() bool {
	switch k {
	case KindArray, KindSet, KindMap, KindObject:
		return true
	}
	return false
}
