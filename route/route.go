package route

import (
	"slices"
	"strings"

	"github.com/erraggy/routemcp/internal/httputil"
)

// UnnamedRoute is the name of a route whose handler has no usable name.
const UnnamedRoute = "unnamed"

// Route is one registered host-application operation.
type Route struct {
	// Path is the path template, with parameters in braces ("/users/{user_id}").
	Path string `json:"path" yaml:"path"`
	// Methods are upper-cased and in canonical order.
	Methods     []string `json:"methods" yaml:"methods"`
	Name        string   `json:"name" yaml:"name"`
	Summary     string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	OperationID string   `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// OperationMethods returns the route's methods without HEAD and OPTIONS, which
// routers answer implicitly.
func (r Route) OperationMethods() []string {
	var out []string
	for _, m := range r.Methods {
		if httputil.IsOperationMethod(m) {
			out = append(out, m)
		}
	}
	return out
}

// HasMethod reports whether the route serves method (any case).
func (r Route) HasMethod(method string) bool {
	return slices.Contains(r.Methods, strings.ToUpper(strings.TrimSpace(method)))
}

// Table enumerates a host application's routes. Implementations return a fresh
// slice on every call, in the host's registration order where the host keeps
// one, and must be safe for concurrent use.
type Table interface {
	Routes() []Route
}

// List is a fixed route table.
type List []Route

// Routes returns a copy of the list.
func (l List) Routes() []Route {
	return slices.Clone(l)
}

// TableFunc adapts a function to the Table interface.
type TableFunc func() []Route

// Routes calls f.
func (f TableFunc) Routes() []Route {
	return f()
}
