// Package yamlval bridges YAML documents and the structwalk value domain.
//
// Unlike a plain yaml.Unmarshal into any, Decode walks the yaml.Node tree
// itself so that anchors and aliases become genuinely shared sub-values:
// two aliases of one anchor decode to the same map or slice, and an alias
// referring back to an open ancestor decodes to a cyclic value graph. Both
// are exactly the shapes the structwalk walkers are built to survive.
package yamlval

import (
	"fmt"
	"reflect"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/structwalk/structwalk"
)

// Decode parses a single YAML document into the structwalk value domain:
// mappings to map[string]any, sequences to []any, !!set mappings to
// *structwalk.Set, !!timestamp scalars to time.Time, other scalars to
// string/bool/int/float64, and !!null to nil.
func Decode(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("yamlval: parse: %w", err)
	}
	if root.Kind == 0 {
		return nil, nil
	}
	d := &decoder{resolved: make(map[*yaml.Node]any)}
	return d.value(&root)
}

type decoder struct {
	// resolved memoizes each anchored/structural node's decoded value,
	// registered before its children are decoded so aliases to an open
	// ancestor observe the placeholder and close the cycle.
	resolved map[*yaml.Node]any
}

func (d *decoder) value(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.value(n.Content[0])

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("yamlval: line %d: unresolved alias *%s", n.Line, n.Value)
		}
		if v, ok := d.resolved[n.Alias]; ok {
			return v, nil
		}
		return d.value(n.Alias)

	case yaml.SequenceNode:
		out := make([]any, len(n.Content))
		d.resolved[n] = out
		for i, c := range n.Content {
			v, err := d.value(c)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case yaml.MappingNode:
		if n.Tag == "!!set" {
			return d.set(n)
		}
		return d.mapping(n)

	case yaml.ScalarNode:
		return d.scalar(n)

	default:
		return nil, fmt.Errorf("yamlval: line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func (d *decoder) mapping(n *yaml.Node) (any, error) {
	out := make(map[string]any, len(n.Content)/2)
	d.resolved[n] = out
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]

		if keyNode.Tag == "!!merge" {
			if err := d.merge(out, valNode); err != nil {
				return nil, err
			}
			continue
		}

		key, err := d.scalarKey(keyNode)
		if err != nil {
			return nil, err
		}
		v, err := d.value(valNode)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// merge folds the mapping(s) referenced by a "<<" key into out, never
// overwriting keys out already has (YAML merge-key semantics).
func (d *decoder) merge(out map[string]any, n *yaml.Node) error {
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}
	for _, src := range sources {
		v, err := d.value(src)
		if err != nil {
			return err
		}
		m, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("yamlval: line %d: merge value is not a mapping", src.Line)
		}
		for k, mv := range m {
			if _, exists := out[k]; !exists {
				out[k] = mv
			}
		}
	}
	return nil
}

func (d *decoder) set(n *yaml.Node) (any, error) {
	out := structwalk.NewSet()
	d.resolved[n] = out
	for i := 0; i+1 < len(n.Content); i += 2 {
		v, err := d.value(n.Content[i])
		if err != nil {
			return nil, err
		}
		out.Add(v)
	}
	return out, nil
}

func (d *decoder) scalarKey(n *yaml.Node) (string, error) {
	v, err := d.scalar(n)
	if err != nil {
		return "", err
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

func (d *decoder) scalar(n *yaml.Node) (any, error) {
	switch n.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("yamlval: line %d: %w", n.Line, err)
		}
		return b, nil
	case "!!int":
		var i int
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		// Out of int range; fall through to float.
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("yamlval: line %d: %w", n.Line, err)
		}
		return f, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("yamlval: line %d: %w", n.Line, err)
		}
		return f, nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return nil, fmt.Errorf("yamlval: line %d: %w", n.Line, err)
		}
		return t, nil
	default:
		return n.Value, nil
	}
}

// Plain converts a structwalk value into the plain subset that generic
// JSON/YAML encoders accept: Sets become arrays, Maps become string-keyed
// objects, patterns become their source text, and the Circular sentinel
// becomes its string form. Shared sub-values are re-expanded; a true cycle
// collapses to "[Circular]" at the point of re-entry.
func Plain(v any) any {
	return plainValue(v, make(map[plainIdent]struct{}))
}

// plainIdent is the reference identity used for Plain's cycle guard.
type plainIdent struct {
	ptr uintptr
	len int
}

func plainIdentOf(v any) (plainIdent, bool) {
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Map, reflect.Pointer:
		return plainIdent{ptr: rv.Pointer()}, true
	case reflect.Slice:
		return plainIdent{ptr: rv.Pointer(), len: rv.Len()}, true
	}
	return plainIdent{}, false
}

func plainValue(v any, open map[plainIdent]struct{}) any {
	if id, ok := plainIdentOf(v); ok {
		if _, isOpen := open[id]; isOpen {
			return structwalk.Circular.String()
		}
		open[id] = struct{}{}
		defer delete(open, id)
	}

	switch structwalk.KindOf(v) {
	case structwalk.KindObject:
		m := v.(map[string]any)
		out := make(map[string]any, len(m))
		for k, e := range m {
			out[k] = plainValue(e, open)
		}
		return out

	case structwalk.KindArray:
		a := v.([]any)
		out := make([]any, len(a))
		for i, e := range a {
			out[i] = plainValue(e, open)
		}
		return out

	case structwalk.KindSet:
		s := v.(*structwalk.Set)
		out := make([]any, 0, s.Len())
		for e := range s.All() {
			out = append(out, plainValue(e, open))
		}
		return out

	case structwalk.KindMap:
		m := v.(*structwalk.Map)
		out := make(map[string]any, m.Len())
		for k, e := range m.All() {
			out[fmt.Sprint(plainValue(k, open))] = plainValue(e, open)
		}
		return out

	case structwalk.KindRegexp:
		if re := v.(*regexp.Regexp); re != nil {
			return re.String()
		}
		return nil

	default:
		if _, ok := v.(structwalk.CircularRef); ok {
			return structwalk.Circular.String()
		}
		return v
	}
}
