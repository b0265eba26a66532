package introspect

import (
	"fmt"
	"maps"
	"slices"

	"github.com/erraggy/routemcp/internal/pathutil"
	"github.com/erraggy/routemcp/oaserrors"
	"github.com/erraggy/routemcp/schemadoc"
)

// Keys of the placeholders substituted for references that are not inlined.
const (
	CircularRefKey  = "x-circular-ref"
	TruncatedRefKey = "x-truncated"
)

// dereferencer inlines local references. The chain of references being
// inlined is passed down the recursion and nothing in the document is
// modified.
//
// A reference whose expansion met no cycle and no depth limit expands the same
// way wherever it appears, as long as its nesting still fits under maxDepth.
// Such expansions are cached, so a component used many times is expanded once
// and its uses share one subtree.
type dereferencer struct {
	doc      *schemadoc.Document
	maxDepth int
	problems []*oaserrors.ReferenceError
	missing  []string

	cache map[string]expansion
	// cut counts the placeholders substituted so far.
	cut int
	// height is the deepest reference nesting seen below the current ref.
	height int
}

// expansion is a cached reference target. height is the number of nested
// references along its deepest chain, the ref itself included.
type expansion struct {
	value  any
	height int
}

func newDereferencer(doc *schemadoc.Document, maxDepth int) *dereferencer {
	return &dereferencer{doc: doc, maxDepth: maxDepth, cache: make(map[string]expansion)}
}

// resolve returns a copy of v with references inlined. stack holds the refs
// currently being inlined, outermost first.
func (d *dereferencer) resolve(v any, stack []string) any {
	switch t := v.(type) {
	case map[string]any:
		if ref, ok := t["$ref"].(string); ok {
			return d.resolveRef(ref, t, stack)
		}
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = d.resolve(item, stack)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = d.resolve(item, stack)
		}
		return out
	default:
		return v
	}
}

func (d *dereferencer) resolveRef(ref string, node map[string]any, stack []string) any {
	name := pathutil.ComponentName(ref)

	if slices.Contains(stack, ref) {
		d.problems = append(d.problems, &oaserrors.ReferenceError{Ref: ref, IsCircular: true})
		d.cut++
		target, _ := d.doc.Lookup(ref)
		return d.withSiblings(circularPlaceholder(name, target), node, stack)
	}
	if len(stack) >= d.maxDepth {
		d.problems = append(d.problems, &oaserrors.ReferenceError{
			Ref:     ref,
			Message: fmt.Sprintf("nesting exceeds %d references", d.maxDepth),
		})
		d.cut++
		return d.withSiblings(map[string]any{
			TruncatedRefKey: name,
			"description":   fmt.Sprintf("reference nesting exceeds depth %d", d.maxDepth),
		}, node, stack)
	}

	if e, ok := d.cache[ref]; ok && len(stack)+e.height <= d.maxDepth {
		d.height = max(d.height, e.height)
		return d.withSiblings(e.value, node, stack)
	}

	target, ok := d.doc.Lookup(ref)
	if !ok {
		d.problems = append(d.problems, &oaserrors.ReferenceError{Ref: ref, Message: "target not found"})
		d.missing = append(d.missing, ref)
		// The pointer stays; its siblings are still resolved.
		out := make(map[string]any, len(node))
		for k, item := range node {
			if k == "$ref" {
				out[k] = item
				continue
			}
			out[k] = d.resolve(item, stack)
		}
		return out
	}

	outer, cut := d.height, d.cut
	d.height = 0
	// Full slice expression so sibling branches never share a backing array.
	resolved := d.resolve(target, append(stack[:len(stack):len(stack)], ref))
	height := d.height + 1
	d.height = max(outer, height)
	if d.cut == cut {
		d.cache[ref] = expansion{value: resolved, height: height}
	}
	return d.withSiblings(resolved, node, stack)
}

// withSiblings overlays the keys written next to a $ref onto a copy of the
// inlined target. Siblings of a non-object target are dropped.
func (d *dereferencer) withSiblings(resolved any, node map[string]any, stack []string) any {
	m, ok := resolved.(map[string]any)
	if !ok || len(node) <= 1 {
		return resolved
	}
	out := maps.Clone(m)
	for k, item := range node {
		if k == "$ref" {
			continue
		}
		out[k] = d.resolve(item, stack)
	}
	return out
}

func circularPlaceholder(name string, target any) map[string]any {
	p := map[string]any{
		CircularRefKey: name,
		"description":  "circular reference to " + name,
	}
	if t, ok := target.(map[string]any); ok {
		if typ, ok := t["type"]; ok {
			p["type"] = typ
		}
	}
	return p
}

// unresolved returns the distinct refs whose targets were missing, sorted.
func (d *dereferencer) unresolved() []string {
	refs := slices.Clone(d.missing)
	slices.Sort(refs)
	return slices.Compact(refs)
}
