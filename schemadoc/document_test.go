package schemadoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/routemcp/internal/testutil"
	"github.com/erraggy/routemcp/oaserrors"
)

func TestParse_JSON(t *testing.T) {
	doc, err := Parse([]byte(testutil.UsersSpecJSON))
	require.NoError(t, err)

	assert.Equal(t, "3.1.0", doc.OpenAPIVersion())
	assert.Equal(t, "Users API", doc.Title())
	assert.Equal(t, "1.0.0", doc.Version())
	assert.Equal(t, []string{"/users/{user_id}", "/users"}, doc.Paths(), "paths keep their source order")
}

func TestPaths_SourceOrder(t *testing.T) {
	doc, err := Parse([]byte(`openapi: 3.0.3
info: {title: Zoo, version: "1"}
paths:
  /zebras:
    get: {responses: {"200": {description: ok}}}
  /ants/{id}:
    get: {responses: {"200": {description: ok}}}
  x-internal: true
  /lions:
    post: {responses: {"201": {description: ok}}}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"/zebras", "/ants/{id}", "/lions"}, doc.Paths(), "extension keys are not paths")

	built := New(map[string]any{"paths": map[string]any{
		"/zebras": map[string]any{},
		"/ants":   map[string]any{},
	}})
	assert.Equal(t, []string{"/ants", "/zebras"}, built.Paths(), "trees without a source sort their paths")
}

func TestParse_YAMLNormalizesKeys(t *testing.T) {
	doc, err := Parse([]byte(testutil.CyclicSpecYAML))
	require.NoError(t, err)

	op, ok := doc.Operation("/tree", "get")
	require.True(t, ok)
	responses, ok := op["responses"].(map[string]any)
	require.True(t, ok, "responses with unquoted status codes should decode to map[string]any, got %T", op["responses"])
	assert.Contains(t, responses, "200")
	assert.Contains(t, responses, "x-internal")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format string
	}{
		{"empty", "   ", ""},
		{"invalid json", `{"openapi": `, FormatJSON},
		{"invalid yaml", "openapi: [unterminated", FormatYAML},
		{"scalar root", "just a string", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.True(t, errors.Is(err, oaserrors.ErrParse))

			var pe *oaserrors.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.format, pe.Format)
		})
	}
}

func TestLookup(t *testing.T) {
	doc, err := Parse([]byte(testutil.UsersSpecJSON))
	require.NoError(t, err)

	tests := []struct {
		name   string
		ref    string
		wantOK bool
	}{
		{"component schema", "#/components/schemas/User", true},
		{"escaped path", "#/paths/~1users~1{user_id}/get", true},
		{"array index", "#/paths/~1users~1{user_id}/get/parameters/0", true},
		{"array index out of range", "#/paths/~1users~1{user_id}/get/parameters/9", false},
		{"array index not a number", "#/paths/~1users~1{user_id}/get/parameters/first", false},
		{"missing component", "#/components/schemas/Gone", false},
		{"through a scalar", "#/openapi/x", false},
		{"external ref", "other.json#/components/schemas/User", false},
		{"root", "#", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := doc.Lookup(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
		})
	}

	v, ok := doc.Lookup("#/paths/~1users~1{user_id}/get/parameters/0")
	require.True(t, ok)
	param, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user_id", param["name"])
}

func TestOperationAndMethods(t *testing.T) {
	doc, err := Parse([]byte(testutil.UsersSpecJSON))
	require.NoError(t, err)

	op, ok := doc.Operation("/users", "POST")
	require.True(t, ok)
	assert.Equal(t, "Create a new user.", op["summary"])

	_, ok = doc.Operation("/users", "GET")
	assert.False(t, ok)
	_, ok = doc.Operation("/nope", "GET")
	assert.False(t, ok)

	assert.Equal(t, []string{"POST"}, doc.Methods("/users"))
	assert.Nil(t, doc.Methods("/nope"))
}

func TestNewAndRootAreCopies(t *testing.T) {
	src := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": "Before"},
	}
	doc := New(src)

	src["info"].(map[string]any)["title"] = "After"
	assert.Equal(t, "Before", doc.Title(), "New should copy its input")

	root := doc.Root()
	root["info"].(map[string]any)["title"] = "Mutated"
	assert.Equal(t, "Before", doc.Title(), "Root should return a copy")

	assert.Empty(t, New(nil).Paths())
}

func TestMarshalJSON(t *testing.T) {
	doc := New(map[string]any{"openapi": "3.1.0"})
	data, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi":"3.1.0"}`, string(data))
}
