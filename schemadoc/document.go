package schemadoc

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/routemcp/internal/httputil"
	"github.com/erraggy/routemcp/internal/pathutil"
	"github.com/erraggy/routemcp/oaserrors"
)

// Source formats detected by Parse.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is a decoded OpenAPI document. It is never modified after
// construction, so a single Document may be read from many goroutines.
type Document struct {
	root map[string]any
	// pathOrder is the source order of the keys under "paths", when known.
	pathOrder []string
}

// New wraps a decoded JSON tree. The tree is deep-copied so later changes by the
// caller do not leak into the document.
func New(root map[string]any) *Document {
	if root == nil {
		root = map[string]any{}
	}
	cp, _ := deepCopyJSONValue(root).(map[string]any)
	return &Document{root: cp}
}

// Parse decodes a JSON or YAML OpenAPI document. Input whose first
// non-whitespace byte is '{' is decoded as JSON, everything else as YAML.
func Parse(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &oaserrors.ParseError{Message: "empty document"}
	}

	var (
		raw    any
		format string
		order  []string
	)
	if trimmed[0] == '{' {
		format = FormatJSON
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, &oaserrors.ParseError{Format: format, Message: "decoding document", Cause: err}
		}
		// JSON is YAML, so the node tree recovers the key order the map lost.
		// A document the YAML parser rejects keeps sorted paths.
		var node yaml.Node
		if yaml.Unmarshal(trimmed, &node) == nil {
			order = pathKeys(&node)
		}
	} else {
		format = FormatYAML
		var node yaml.Node
		if err := yaml.Unmarshal(trimmed, &node); err != nil {
			return nil, &oaserrors.ParseError{Format: format, Message: "decoding document", Cause: err}
		}
		if err := node.Decode(&raw); err != nil {
			return nil, &oaserrors.ParseError{Format: format, Message: "decoding document", Cause: err}
		}
		raw = normalizeYAMLValue(raw)
		order = pathKeys(&node)
	}

	root, ok := raw.(map[string]any)
	if !ok {
		return nil, &oaserrors.ParseError{Format: format, Message: fmt.Sprintf("document root must be an object, got %T", raw)}
	}
	return &Document{root: root, pathOrder: order}, nil
}

// Root returns a deep copy of the document tree.
func (d *Document) Root() map[string]any {
	cp, _ := deepCopyJSONValue(d.root).(map[string]any)
	return cp
}

// MarshalJSON encodes the document tree.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.root)
}

// Lookup resolves a local reference ("#/components/schemas/User") against the
// document. Array elements are addressed by index per RFC 6901. Non-local refs
// and missing targets report false.
func (d *Document) Lookup(ref string) (any, bool) {
	if !pathutil.IsLocalRef(ref) {
		return nil, false
	}
	var current any = d.root
	for _, token := range pathutil.SplitPointer(ref) {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[token]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			index, err := strconv.Atoi(token)
			if err != nil || index < 0 || index >= len(v) {
				return nil, false
			}
			current = v[index]
		default:
			return nil, false
		}
	}
	return current, true
}

// Paths returns the document's path templates in the order the source lists
// them. Documents built with New have no source order and list their paths
// sorted.
func (d *Document) Paths() []string {
	paths, _ := d.root["paths"].(map[string]any)
	if len(paths) == 0 {
		return nil
	}
	keys := make([]string, 0, len(paths))
	listed := make(map[string]bool, len(paths))
	for _, k := range d.pathOrder {
		if _, ok := paths[k]; ok && isPathKey(k) && !listed[k] {
			keys = append(keys, k)
			listed[k] = true
		}
	}
	var rest []string
	for k := range paths {
		if isPathKey(k) && !listed[k] {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}

func isPathKey(k string) bool {
	return len(k) > 0 && k[0] == '/'
}

// pathKeys returns the keys of the top-level "paths" mapping in source order.
func pathKeys(n *yaml.Node) []string {
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	paths := mappingValue(n, "paths")
	if paths == nil || paths.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(paths.Content)/2)
	for i := 0; i+1 < len(paths.Content); i += 2 {
		keys = append(keys, paths.Content[i].Value)
	}
	return keys
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// PathItem returns the raw path item for an exact path template.
func (d *Document) PathItem(path string) (map[string]any, bool) {
	paths, _ := d.root["paths"].(map[string]any)
	item, ok := paths[path].(map[string]any)
	return item, ok
}

// Operation returns the raw operation object for a path template and method.
// The method is matched case-insensitively.
func (d *Document) Operation(path, method string) (map[string]any, bool) {
	item, ok := d.PathItem(path)
	if !ok {
		return nil, false
	}
	op, ok := item[httputil.OperationKey(method)].(map[string]any)
	return op, ok
}

// Methods returns the upper-cased methods that have operations under path, in
// canonical order.
func (d *Document) Methods(path string) []string {
	item, ok := d.PathItem(path)
	if !ok {
		return nil
	}
	var methods []string
	for _, key := range httputil.OperationKeys {
		if _, ok := item[key].(map[string]any); ok {
			methods = append(methods, key)
		}
	}
	return httputil.NormalizeMethods(methods)
}

// OpenAPIVersion returns the "openapi" (or "swagger") version string.
func (d *Document) OpenAPIVersion() string {
	if v, ok := d.root["openapi"].(string); ok {
		return v
	}
	v, _ := d.root["swagger"].(string)
	return v
}

// Title returns info.title.
func (d *Document) Title() string {
	return d.infoString("title")
}

// Version returns info.version.
func (d *Document) Version() string {
	return d.infoString("version")
}

func (d *Document) infoString(key string) string {
	info, _ := d.root["info"].(map[string]any)
	s, _ := info[key].(string)
	return s
}

// normalizeYAMLValue converts YAML-decoded values into the shapes produced by
// JSON decoding: mappings with non-string keys (unquoted status codes such as
// 200) become map[string]any.
func normalizeYAMLValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = normalizeYAMLValue(item)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = normalizeYAMLValue(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = normalizeYAMLValue(item)
		}
		return t
	default:
		return v
	}
}

// deepCopyJSONValue recursively copies a decoded JSON value.
func deepCopyJSONValue(v any) any {
	switch t := v.(type) {
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyJSONValue(item)
		}
		return cp
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyJSONValue(item)
		}
		return cp
	default:
		// Primitives copy by value.
		return v
	}
}
