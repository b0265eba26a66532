package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/routemcp/introspect"
	"github.com/erraggy/routemcp/route"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRenderDetail(t *testing.T) {
	node := map[string]any{"path": "/users", "methods": []string{"POST"}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderDetail(&buf, node, FormatJSON))
		assert.JSONEq(t, `{"path":"/users","methods":["POST"]}`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderDetail(&buf, node, FormatYAML))
		assert.Contains(t, buf.String(), "path: /users")
		assert.Contains(t, buf.String(), "- POST")
	})

	t.Run("unsupported", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, RenderDetail(&buf, node, "xml"))
	})
}

func TestRenderTable(t *testing.T) {
	headers := []string{"METHODS", "PATH"}
	rows := [][]string{{"GET", "/users/{user_id}"}, {"POST,PUT", "/users"}}

	t.Run("aligned", func(t *testing.T) {
		var buf bytes.Buffer
		RenderTable(&buf, headers, rows, false)
		assert.Equal(t, "METHODS   PATH\nGET       /users/{user_id}\nPOST,PUT  /users\n", buf.String())
	})

	t.Run("quiet", func(t *testing.T) {
		var buf bytes.Buffer
		RenderTable(&buf, headers, rows, true)
		assert.Equal(t, "GET\t/users/{user_id}\nPOST,PUT\t/users\n", buf.String())
	})

	t.Run("no rows", func(t *testing.T) {
		var buf bytes.Buffer
		RenderTable(&buf, headers, nil, false)
		assert.Empty(t, buf.String())
	})
}

func TestNewLogger(t *testing.T) {
	for _, backend := range []string{"", LogText, LogJSON, LogZap} {
		t.Run("backend "+backend, func(t *testing.T) {
			logger, flush, err := NewLogger(backend, true)
			require.NoError(t, err)
			require.NotNil(t, logger)
			logger.With("component", "test").Debug("logger built")
			flush()
		})
	}

	_, _, err := NewLogger("logrus", false)
	assert.ErrorContains(t, err, "invalid log backend")
}

func TestPrefixFilter(t *testing.T) {
	assert.Nil(t, prefixFilter(nil))

	var keep introspect.Filter = prefixFilter([]string{"/internal", "/admin"})
	assert.True(t, keep(route.Route{Path: "/users"}))
	assert.False(t, keep(route.Route{Path: "/internal/jobs"}))
	assert.False(t, keep(route.Route{Path: "/admin"}))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"/a", "/b"}, splitList(" /a, ,/b,"))
}
