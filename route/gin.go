package route

import (
	"net/http"
	"path"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/erraggy/routemcp/internal/pathutil"
)

// FromGin returns a Table over a gin engine. Paths are reported in the order
// of gin's per-method trees; use RecordGin to list them in registration order.
func FromGin(e *gin.Engine, opts ...Option) Table {
	cfg := newConfig(opts)
	return TableFunc(func() []Route {
		c := newCollector(cfg)
		for _, ri := range e.Routes() {
			c.add(pathutil.ToBraceTemplate(ri.Path), ri.Method, shortFuncName(ri.Handler), ri.HandlerFunc)
		}
		return c.routes()
	})
}

// GinRecorder registers routes on a gin engine or group and records their
// order. It implements gin.IRoutes.
type GinRecorder struct {
	engine *gin.Engine
	group  *gin.RouterGroup
	rec    *Recorder
}

var _ gin.IRoutes = (*GinRecorder)(nil)

// RecordGin returns a recorder over the engine's root group.
func RecordGin(e *gin.Engine) *GinRecorder {
	return &GinRecorder{engine: e, group: &e.RouterGroup, rec: NewRecorder()}
}

// Engine returns the underlying engine.
func (g *GinRecorder) Engine() *gin.Engine {
	return g.engine
}

// Recorder returns the recorder shared by g and its groups.
func (g *GinRecorder) Recorder() *Recorder {
	return g.rec
}

// Table lists the engine's routes in registration order.
func (g *GinRecorder) Table(opts ...Option) Table {
	return FromGin(g.engine, slices.Concat([]Option{WithOrder(g.rec)}, opts)...)
}

// Group creates a recording route group under relativePath.
func (g *GinRecorder) Group(relativePath string, handlers ...gin.HandlerFunc) *GinRecorder {
	return &GinRecorder{engine: g.engine, group: g.group.Group(relativePath, handlers...), rec: g.rec}
}

// record notes a registration under the group's base path, joined the way gin
// joins it.
func (g *GinRecorder) record(method, relativePath string) {
	abs := g.group.BasePath()
	if relativePath != "" {
		joined := path.Join(abs, relativePath)
		if relativePath[len(relativePath)-1] == '/' && joined[len(joined)-1] != '/' {
			joined += "/"
		}
		abs = joined
	}
	g.rec.Record(method, abs)
}

// Use adds middleware to the group.
func (g *GinRecorder) Use(middleware ...gin.HandlerFunc) gin.IRoutes {
	g.group.Use(middleware...)
	return g
}

// Handle registers handlers for httpMethod along relativePath.
func (g *GinRecorder) Handle(httpMethod, relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes {
	g.record(httpMethod, relativePath)
	g.group.Handle(httpMethod, relativePath, handlers...)
	return g
}

// Any registers handlers for every method gin routes.
func (g *GinRecorder) Any(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes {
	g.record(anyMethod, relativePath)
	g.group.Any(relativePath, handlers...)
	return g
}

// Match registers handlers for each of methods.
func (g *GinRecorder) Match(methods []string, relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes {
	for _, m := range methods {
		g.record(m, relativePath)
	}
	g.group.Match(methods, relativePath, handlers...)
	return g
}

// GET registers handlers for GET.
func (g *GinRecorder) GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return g.Handle(http.MethodGet, relativePath, handlers...)
}

// POST registers handlers for POST.
func (g *GinRecorder) POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return g.Handle(http.MethodPost, relativePath, handlers...)
}

// DELETE registers handlers for DELETE.
func (g *GinRecorder) DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return g.Handle(http.MethodDelete, relativePath, handlers...)
}

// PATCH registers handlers for PATCH.
func (g *GinRecorder) PATCH(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return g.Handle(http.MethodPatch, relativePath, handlers...)
}

// PUT registers handlers for PUT.
func (g *GinRecorder) PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return g.Handle(http.MethodPut, relativePath, handlers...)
}

// OPTIONS registers handlers for OPTIONS.
func (g *GinRecorder) OPTIONS(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return g.Handle(http.MethodOptions, relativePath, handlers...)
}

// HEAD registers handlers for HEAD.
func (g *GinRecorder) HEAD(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes {
	return g.Handle(http.MethodHead, relativePath, handlers...)
}

// StaticFile serves a single file at relativePath.
func (g *GinRecorder) StaticFile(relativePath, filepath string) gin.IRoutes {
	g.recordStatic(relativePath)
	g.group.StaticFile(relativePath, filepath)
	return g
}

// StaticFileFS serves a single file of fs at relativePath.
func (g *GinRecorder) StaticFileFS(relativePath, filepath string, fs http.FileSystem) gin.IRoutes {
	g.recordStatic(relativePath)
	g.group.StaticFileFS(relativePath, filepath, fs)
	return g
}

// Static serves the files under root.
func (g *GinRecorder) Static(relativePath, root string) gin.IRoutes {
	return g.StaticFS(relativePath, gin.Dir(root, false))
}

// StaticFS serves the files of fs.
func (g *GinRecorder) StaticFS(relativePath string, fs http.FileSystem) gin.IRoutes {
	g.recordStatic(path.Join(relativePath, "/*filepath"))
	g.group.StaticFS(relativePath, fs)
	return g
}

func (g *GinRecorder) recordStatic(relativePath string) {
	g.record(http.MethodGet, relativePath)
	g.record(http.MethodHead, relativePath)
}
