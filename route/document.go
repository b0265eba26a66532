package route

import (
	"context"
	"slices"

	"github.com/erraggy/routemcp/schemadoc"
)

// FromDocument returns a Table with one Route per operation of doc, in the
// document's path order with each path's methods in canonical order. Route
// names are operation IDs.
func FromDocument(doc *schemadoc.Document, opts ...Option) Table {
	cfg := newConfig(slices.Concat([]Option{withoutDefaultSummary(), WithMetaFromDocument(doc)}, opts))
	return TableFunc(func() []Route {
		return documentRoutes(doc, cfg)
	})
}

// FromGenerator is FromDocument over a generator that is invoked on every
// Routes call. A failing generator yields an empty table; the same failure
// surfaces to callers of the documentation resolver.
func FromGenerator(gen schemadoc.Generator, opts ...Option) Table {
	return TableFunc(func() []Route {
		doc, err := gen(context.Background())
		if err != nil {
			return nil
		}
		return documentRoutes(doc, newConfig(slices.Concat([]Option{withoutDefaultSummary(), WithMetaFromDocument(doc)}, opts)))
	})
}

func documentRoutes(doc *schemadoc.Document, cfg *config) []Route {
	if doc == nil {
		return nil
	}
	var out []Route
	for _, path := range doc.Paths() {
		for _, method := range doc.Methods(path) {
			op, _ := doc.Operation(path, method)
			name, _ := op["operationId"].(string)
			out = append(out, cfg.build(path, name, []string{method}))
		}
	}
	return out
}
