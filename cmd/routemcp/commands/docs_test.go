package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/routemcp/internal/testutil"
	"github.com/erraggy/routemcp/oaserrors"
)

func TestDocs_YAML(t *testing.T) {
	spec := testutil.WriteTempFile(t, "openapi.json", testutil.UsersSpecJSON)

	var buf bytes.Buffer
	require.NoError(t, runDocs(context.Background(), &buf, []string{spec, "/users/{user_id}"}))

	out := buf.String()
	assert.Contains(t, out, "path: /users/{user_id}")
	assert.Contains(t, out, "method: GET")
	assert.Contains(t, out, "summary: Get a user by ID.")
	assert.NotContains(t, out, "$ref")
}

func TestDocs_JSONWithMethod(t *testing.T) {
	spec := testutil.WriteTempFile(t, "openapi.json", testutil.UsersSpecJSON)

	var buf bytes.Buffer
	require.NoError(t, runDocs(context.Background(), &buf, []string{"-format", "json", spec, "/users/", "post"}))

	var detail map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &detail))
	assert.Equal(t, "/users", detail["path"])
	assert.Equal(t, "POST", detail["method"])
	assert.Contains(t, detail, "request_body")
	assert.NotContains(t, buf.String(), "$ref")
}

func TestDocs_NotFound(t *testing.T) {
	spec := testutil.WriteTempFile(t, "openapi.json", testutil.UsersSpecJSON)

	var buf bytes.Buffer
	err := runDocs(context.Background(), &buf, []string{spec, "/nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrNotFound))
	assert.Contains(t, err.Error(), "GET /nope")
	assert.Empty(t, buf.String())
}

func TestDocs_Errors(t *testing.T) {
	spec := testutil.WriteTempFile(t, "openapi.json", testutil.UsersSpecJSON)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no args", []string{}, "requires a spec file"},
		{"no path", []string{spec}, "requires a spec file"},
		{"too many", []string{spec, "/users", "POST", "extra"}, "requires a spec file"},
		{"bad format", []string{"-format", "xml", spec, "/users"}, "invalid format"},
		{"bad depth", []string{"-max-ref-depth", "0", spec, "/users"}, "max ref depth"},
		{"missing spec", []string{spec + ".missing", "/users"}, "docs:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runDocs(context.Background(), &buf, tt.args)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
