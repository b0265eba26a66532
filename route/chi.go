package route

import (
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/erraggy/routemcp/internal/httputil"
)

// chiRegexParam matches chi's "{name:regexp}" parameters.
var chiRegexParam = regexp.MustCompile(`\{([^}:]+):[^}]*\}`)

type chiEntry struct {
	path    string
	method  string
	handler http.Handler
}

// FromChi returns a Table over a chi router, including mounted sub-routers.
// A router built with RecordChi is listed in registration order; any other
// router is listed in chi's tree order with each path's methods in canonical
// order.
func FromChi(r chi.Routes, opts ...Option) Table {
	if rec, ok := r.(*ChiRecorder); ok {
		opts = slices.Concat([]Option{WithOrder(rec.rec)}, opts)
	}
	cfg := newConfig(opts)
	return TableFunc(func() []Route {
		var (
			entries []chiEntry
			seen    = map[string]int{}
		)
		// The walk function never fails, so neither does Walk.
		_ = chi.Walk(r, func(method, pattern string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
			path := chiPath(pattern)
			if _, ok := seen[path]; !ok {
				seen[path] = len(seen)
			}
			entries = append(entries, chiEntry{path: path, method: method, handler: chiEndpoint(handler)})
			return nil
		})
		// chi keeps the methods of a path in a map.
		slices.SortStableFunc(entries, func(a, b chiEntry) int {
			if a.path != b.path {
				return seen[a.path] - seen[b.path]
			}
			return httputil.CompareMethods(a.method, b.method)
		})

		c := newCollector(cfg)
		for _, e := range entries {
			c.add(e.path, e.method, handlerName(e.handler), e.handler)
		}
		return c.routes()
	})
}

func chiPath(pattern string) string {
	return chiRegexParam.ReplaceAllString(pattern, "{$1}")
}

// chiEndpoint unwraps handlers registered through With/Group middleware chains.
func chiEndpoint(h http.Handler) http.Handler {
	for {
		ch, ok := h.(*chi.ChainHandler)
		if !ok || ch.Endpoint == nil {
			return h
		}
		h = ch.Endpoint
	}
}

// ChiRecorder is a chi.Router that records the order of its registrations,
// which chi's routing tree does not keep. Register routes through the
// recorder, including inside Route, Group and With, and pass it to FromChi.
type ChiRecorder struct {
	chi.Router
	rec    *Recorder
	prefix string
}

// RecordChi wraps r so that FromChi lists its routes in registration order.
func RecordChi(r chi.Router) *ChiRecorder {
	return &ChiRecorder{Router: r, rec: NewRecorder()}
}

// Recorder returns the recorder shared by c and the routers derived from it.
func (c *ChiRecorder) Recorder() *Recorder {
	return c.rec
}

func (c *ChiRecorder) derive(r chi.Router, prefix string) *ChiRecorder {
	return &ChiRecorder{Router: r, rec: c.rec, prefix: prefix}
}

func (c *ChiRecorder) record(method, pattern string) {
	c.rec.Record(method, strings.TrimSuffix(c.prefix, "/")+pattern)
}

// With returns an inline router with extra middleware that records into c.
func (c *ChiRecorder) With(middlewares ...func(http.Handler) http.Handler) chi.Router {
	return c.derive(c.Router.With(middlewares...), c.prefix)
}

// Group registers fn's routes on an inline router with a fresh middleware stack.
func (c *ChiRecorder) Group(fn func(r chi.Router)) chi.Router {
	im := c.With()
	if fn != nil {
		fn(im)
	}
	return im
}

// Route mounts a sub-router built by fn along pattern.
func (c *ChiRecorder) Route(pattern string, fn func(r chi.Router)) chi.Router {
	if fn == nil {
		return c.Router.Route(pattern, nil)
	}
	prefix := strings.TrimSuffix(c.prefix, "/") + strings.TrimSuffix(pattern, "/")
	var sub *ChiRecorder
	c.Router.Route(pattern, func(r chi.Router) {
		sub = c.derive(r, prefix)
		fn(sub)
	})
	return sub
}

// Mount attaches h along pattern. Routes of a mounted ChiRecorder keep their
// recorded order; everything else below pattern takes the mount's place.
func (c *ChiRecorder) Mount(pattern string, h http.Handler) {
	prefix := strings.TrimSuffix(c.prefix, "/") + pattern
	if sub, ok := h.(*ChiRecorder); ok {
		c.rec.adopt(prefix, sub.rec)
		h = sub.Router
	}
	c.rec.recordMount(prefix)
	c.Router.Mount(pattern, h)
}

// Handle registers h for every method, or for one method when pattern has
// the form "METHOD /path".
func (c *ChiRecorder) Handle(pattern string, h http.Handler) {
	if i := strings.IndexAny(pattern, " \t"); i >= 0 {
		c.record(pattern[:i], strings.TrimLeft(pattern[i+1:], " \t"))
	} else {
		c.record(anyMethod, pattern)
	}
	c.Router.Handle(pattern, h)
}

// HandleFunc is Handle for a handler function.
func (c *ChiRecorder) HandleFunc(pattern string, h http.HandlerFunc) {
	c.Handle(pattern, h)
}

// Method registers h for method along pattern.
func (c *ChiRecorder) Method(method, pattern string, h http.Handler) {
	c.record(method, pattern)
	c.Router.Method(method, pattern, h)
}

// MethodFunc is Method for a handler function.
func (c *ChiRecorder) MethodFunc(method, pattern string, h http.HandlerFunc) {
	c.Method(method, pattern, h)
}

// Connect registers h for CONNECT.
func (c *ChiRecorder) Connect(pattern string, h http.HandlerFunc) {
	c.Method(http.MethodConnect, pattern, h)
}

// Delete registers h for DELETE.
func (c *ChiRecorder) Delete(pattern string, h http.HandlerFunc) {
	c.Method(http.MethodDelete, pattern, h)
}

// Get registers h for GET.
func (c *ChiRecorder) Get(pattern string, h http.HandlerFunc) {
	c.Method(http.MethodGet, pattern, h)
}

// Head registers h for HEAD.
func (c *ChiRecorder) Head(pattern string, h http.HandlerFunc) {
	c.Method(http.MethodHead, pattern, h)
}

// Options registers h for OPTIONS.
func (c *ChiRecorder) Options(pattern string, h http.HandlerFunc) {
	c.Method(http.MethodOptions, pattern, h)
}

// Patch registers h for PATCH.
func (c *ChiRecorder) Patch(pattern string, h http.HandlerFunc) {
	c.Method(http.MethodPatch, pattern, h)
}

// Post registers h for POST.
func (c *ChiRecorder) Post(pattern string, h http.HandlerFunc) {
	c.Method(http.MethodPost, pattern, h)
}

// Put registers h for PUT.
func (c *ChiRecorder) Put(pattern string, h http.HandlerFunc) {
	c.Method(http.MethodPut, pattern, h)
}

// Trace registers h for TRACE.
func (c *ChiRecorder) Trace(pattern string, h http.HandlerFunc) {
	c.Method(http.MethodTrace, pattern, h)
}
