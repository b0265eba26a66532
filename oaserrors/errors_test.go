package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Path: "/nope", Method: "GET"}

	assert.Equal(t, "endpoint not found: GET /nope", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrReference))

	wrapped := fmt.Errorf("get_endpoint_docs: %w", err)
	var nf *NotFoundError
	require.True(t, errors.As(wrapped, &nf))
	assert.Equal(t, "/nope", nf.Path)
	assert.Equal(t, "GET", nf.Method)
}

func TestReferenceError(t *testing.T) {
	tests := []struct {
		name         string
		err          *ReferenceError
		wantMsg      string
		wantCircular bool
	}{
		{
			name:    "missing target",
			err:     &ReferenceError{Ref: "#/components/schemas/Gone", Message: "target not found"},
			wantMsg: "reference error: #/components/schemas/Gone: target not found",
		},
		{
			name:         "circular",
			err:          &ReferenceError{Ref: "#/components/schemas/Node", IsCircular: true},
			wantMsg:      "circular reference: #/components/schemas/Node",
			wantCircular: true,
		},
		{
			name:    "minimal",
			err:     &ReferenceError{},
			wantMsg: "reference error",
		},
		{
			name:    "with cause",
			err:     &ReferenceError{Ref: "#/x", Cause: errors.New("boom")},
			wantMsg: "reference error: #/x: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrReference))
			assert.Equal(t, tt.wantCircular, errors.Is(tt.err, ErrCircularReference))
		})
	}
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("host exploded")
	err := &GenerationError{Source: "openapi.yaml", Cause: cause}

	assert.Equal(t, "schema generation error (openapi.yaml): host exploded", err.Error())
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.True(t, errors.Is(err, cause), "cause should be reachable through Unwrap")
	assert.Equal(t, "schema generation error", (&GenerationError{}).Error())
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ParseError{Format: "yaml", Message: "decoding document", Cause: cause}

	assert.Equal(t, "parse error (yaml): decoding document: unexpected EOF", err.Error())
	assert.True(t, errors.Is(err, ErrParse))
	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, (&ParseError{}).Unwrap())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "mount path", Value: "mcp", Message: "must start with /"}

	assert.Equal(t, "configuration error for mount path (value: mcp): must start with /", err.Error())
	assert.True(t, errors.Is(err, ErrConfig))
	assert.False(t, errors.Is(err, ErrParse))
}
