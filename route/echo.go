package route

import (
	"cmp"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/erraggy/routemcp/internal/httputil"
	"github.com/erraggy/routemcp/internal/pathutil"
)

// echoInternalMethod prefixes the pseudo-methods echo registers for its own
// handlers, such as "echo_route_not_found".
const echoInternalMethod = "echo_"

// FromEcho returns a Table over an echo instance. Echo keeps its routes in a
// map, so they are ordered by path and then method unless WithOrder supplies
// a Recorder fed by RecordEchoRoutes.
func FromEcho(e *echo.Echo, opts ...Option) Table {
	cfg := newConfig(opts)
	return TableFunc(func() []Route {
		entries := e.Routes()
		slices.SortFunc(entries, func(a, b *echo.Route) int {
			return cmp.Or(
				strings.Compare(a.Path, b.Path),
				httputil.CompareMethods(a.Method, b.Method),
			)
		})

		c := newCollector(cfg)
		for _, er := range entries {
			if strings.HasPrefix(er.Method, echoInternalMethod) {
				continue
			}
			c.add(pathutil.ToBraceTemplate(er.Path), er.Method, shortFuncName(er.Name), er.Name)
		}
		return c.routes()
	})
}

// RecordEchoRoutes records the routes returned by echo's registration
// methods, in order:
//
//	rec := route.NewRecorder()
//	route.RecordEchoRoutes(rec, e.GET("/users/:id", getUser))
//	route.RecordEchoRoutes(rec, e.Any("/proxy", proxy)...)
//	table := route.FromEcho(e, route.WithOrder(rec))
func RecordEchoRoutes(rec *Recorder, routes ...*echo.Route) {
	for _, er := range routes {
		if er != nil {
			rec.Record(er.Method, er.Path)
		}
	}
}
