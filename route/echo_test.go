package route

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoGetUser(echo.Context) error    { return nil }
func echoCreateUser(echo.Context) error { return nil }
func echoStatic(echo.Context) error     { return nil }
func echoNotFound(echo.Context) error   { return nil }

func TestFromEcho(t *testing.T) {
	e := echo.New()
	e.GET("/users/:user_id", echoGetUser)
	e.POST("/users", echoCreateUser)
	e.GET("/static/*", echoStatic)
	e.RouteNotFound("/*", echoNotFound)

	routes := FromEcho(e).Routes()

	paths := make([]string, 0, len(routes))
	for _, r := range routes {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{"/static/*", "/users", "/users/{user_id}"}, paths,
		"echo routes are sorted by path and the not-found handler is skipped")

	byID := findRoutes(routes, "/users/{user_id}")
	require.Len(t, byID, 1)
	assert.Equal(t, "echoGetUser", byID[0].Name)
	assert.Equal(t, "Echo Get User", byID[0].Summary)
}

func TestFromEcho_NamedRoute(t *testing.T) {
	e := echo.New()
	e.GET("/health", echoGetUser).Name = "health"

	routes := FromEcho(e).Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, "health", routes[0].Name)
}

func TestFromEcho_RecordedOrder(t *testing.T) {
	e := echo.New()
	rec := NewRecorder()
	RecordEchoRoutes(rec, e.POST("/users", echoCreateUser))
	RecordEchoRoutes(rec, e.GET("/users/:user_id", echoGetUser))
	RecordEchoRoutes(rec, e.GET("/static/*", echoStatic))

	assert.Equal(t, []string{
		"POST /users",
		"GET /users/{user_id}",
		"GET /static/*",
	}, describeRoutes(FromEcho(e, WithOrder(rec)).Routes()))
}
