package route

import (
	"strings"

	"github.com/erraggy/routemcp/internal/httputil"
	"github.com/erraggy/routemcp/schemadoc"
)

// Meta is documentation attached to a route registration.
type Meta struct {
	Summary     string
	Description string
	Tags        []string
	OperationID string
	Deprecated  bool
}

// Option configures an adapter.
type Option func(*config)

type metaKey struct {
	method string
	path   string
}

type config struct {
	meta  map[metaKey]Meta
	docs  []*schemadoc.Document
	order *Recorder

	noDefaultSummary bool
}

func newConfig(opts []Option) *config {
	cfg := &config{meta: make(map[metaKey]Meta)}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMeta attaches documentation to the route registered for method and path.
// path uses the brace form ("/users/{user_id}"). Explicit metadata takes
// precedence over metadata from WithMetaFromDocument.
func WithMeta(method, path string, m Meta) Option {
	return func(c *config) {
		c.meta[metaKey{method: strings.ToUpper(method), path: path}] = m
	}
}

// WithMetaFromDocument takes summaries, descriptions, tags, operation IDs and
// deprecation flags from the matching operations of doc.
func WithMetaFromDocument(doc *schemadoc.Document) Option {
	return func(c *config) {
		if doc != nil {
			c.docs = append(c.docs, doc)
		}
	}
}

// WithOrder lists routes in the order rec saw them registered. RecordChi and
// RecordGin supply it automatically; echo hosts feed rec with
// RecordEchoRoutes.
func WithOrder(rec *Recorder) Option {
	return func(c *config) {
		c.order = rec
	}
}

// withoutDefaultSummary stops build from deriving summaries from names, for
// tables whose names are generated operation IDs.
func withoutDefaultSummary() Option {
	return func(c *config) {
		c.noDefaultSummary = true
	}
}

// lookup returns the metadata for the first of methods that has any.
func (c *config) lookup(path string, methods []string) (Meta, bool) {
	for _, m := range methods {
		if meta, ok := c.meta[metaKey{method: m, path: path}]; ok {
			return meta, true
		}
	}
	for _, doc := range c.docs {
		for _, m := range methods {
			if op, ok := doc.Operation(path, m); ok {
				return metaFromOperation(op), true
			}
		}
	}
	return Meta{}, false
}

func metaFromOperation(op map[string]any) Meta {
	m := Meta{}
	m.Summary, _ = op["summary"].(string)
	m.Description, _ = op["description"].(string)
	m.OperationID, _ = op["operationId"].(string)
	m.Deprecated, _ = op["deprecated"].(bool)
	if tags, ok := op["tags"].([]any); ok {
		for _, t := range tags {
			if s, ok := t.(string); ok {
				m.Tags = append(m.Tags, s)
			}
		}
	}
	return m
}

// build turns a registration into a Route, applying metadata and defaults.
func (c *config) build(path, name string, methods []string) Route {
	if name == "" {
		name = UnnamedRoute
	}
	r := Route{
		Path:    path,
		Methods: httputil.NormalizeMethods(methods),
		Name:    name,
	}
	if meta, ok := c.lookup(path, r.Methods); ok {
		r.Summary = meta.Summary
		r.Description = meta.Description
		r.Tags = meta.Tags
		r.OperationID = meta.OperationID
		r.Deprecated = meta.Deprecated
	}
	if r.Summary == "" && name != UnnamedRoute && !c.noDefaultSummary {
		r.Summary = defaultSummary(name)
	}
	return r
}
