package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{"default keyword", "default", true},
		{"extension x-custom", "x-custom", true},
		{"wildcard 2XX", "2XX", true},
		{"wildcard 5XX", "5XX", true},
		{"invalid wildcard 6XX", "6XX", false},
		{"partial wildcard 20X", "20X", false},
		{"numeric 200", "200", true},
		{"numeric 599", "599", true},
		{"below range 099", "099", false},
		{"above range 600", "600", false},
		{"too long", "2000", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateStatusCode(tt.code))
		})
	}
}

func TestIsResponseKey(t *testing.T) {
	assert.True(t, IsResponseKey("200"))
	assert.True(t, IsResponseKey("default"))
	assert.True(t, IsResponseKey("4XX"))
	assert.False(t, IsResponseKey("x-internal"))
	assert.False(t, IsResponseKey("ok"))
}

func TestNormalizeMethods(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"only blanks", []string{"", "  "}, nil},
		{"upper-cases and orders", []string{"delete", "get", "Post"}, []string{"GET", "POST", "DELETE"}},
		{"dedupes", []string{"GET", "get", "GET"}, []string{"GET"}},
		{"unknown methods last", []string{"PROPFIND", "HEAD", "GET"}, []string{"GET", "HEAD", "PROPFIND"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMethods(tt.in))
		})
	}
}

func TestNormalizeMethods_DoesNotModifyInput(t *testing.T) {
	in := []string{"post", "get"}
	_ = NormalizeMethods(in)
	assert.Equal(t, []string{"post", "get"}, in)
}

func TestMethodPredicates(t *testing.T) {
	assert.True(t, IsOperationMethod("get"))
	assert.False(t, IsOperationMethod("HEAD"))
	assert.False(t, IsOperationMethod("options"))
	assert.False(t, IsOperationMethod(""))

	assert.True(t, IsKnownMethod("patch"))
	assert.False(t, IsKnownMethod("echo_route_any"))

	assert.Equal(t, "get", OperationKey(" GET "))
}
