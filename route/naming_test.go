package route

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type usersHandler struct{}

func (usersHandler) list(http.ResponseWriter, *http.Request) {}

func (*usersHandler) ServeHTTP(http.ResponseWriter, *http.Request) {}

func getUser(http.ResponseWriter, *http.Request) {}

func TestShortFuncName(t *testing.T) {
	tests := []struct {
		full string
		want string
	}{
		{"main.getUser", "getUser"},
		{"github.com/acme/app/api.getUser", "getUser"},
		{"github.com/acme/app/api.(*Users).Get-fm", "Get"},
		{"github.com/acme/app/api.Users.List-fm", "List"},
		{"main.main.func1", ""},
		{"github.com/gin-gonic/gin.WrapF.func1", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			assert.Equal(t, tt.want, shortFuncName(tt.full))
		})
	}
}

func TestHandlerName(t *testing.T) {
	assert.Equal(t, "getUser", handlerName(getUser))
	assert.Equal(t, "getUser", handlerName(http.HandlerFunc(getUser)))
	assert.Equal(t, "list", handlerName(usersHandler{}.list))
	assert.Equal(t, "usersHandler", handlerName(&usersHandler{}))
	assert.Empty(t, handlerName(func(http.ResponseWriter, *http.Request) {}))
	assert.Empty(t, handlerName(nil))

	var nilFunc http.HandlerFunc
	assert.Empty(t, handlerName(nilFunc))
}

func TestDefaultSummary(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"getUser", "Get User"},
		{"get_user", "Get User"},
		{"create-user", "Create User"},
		{"listHTTPRoutes", "List Http Routes"},
		{"Health", "Health"},
		{"", ""},
		{"__", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultSummary(tt.name))
		})
	}
}
