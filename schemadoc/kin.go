package schemadoc

import (
	"context"
	"errors"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"

	"github.com/erraggy/routemcp/oaserrors"
)

const kinSource = "kin-openapi"

// FromKinOpenAPI converts a kin-openapi document into a Document by encoding it
// to JSON and decoding the result, so $ref fields appear exactly as they would
// in the served openapi.json.
func FromKinOpenAPI(t *openapi3.T) (*Document, error) {
	if t == nil {
		return nil, &oaserrors.ParseError{Format: FormatJSON, Message: "nil kin-openapi document"}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, &oaserrors.ParseError{Format: FormatJSON, Message: "encoding kin-openapi document", Cause: err}
	}
	return Parse(data)
}

// FromKinFunc returns a Generator that builds a fresh kin-openapi document on
// every call, typically the host's own spec builder.
func FromKinFunc(fn func() *openapi3.T) Generator {
	return func(ctx context.Context) (*Document, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t := fn()
		if t == nil {
			return nil, &oaserrors.GenerationError{Source: kinSource, Cause: errors.New("generator returned nil document")}
		}
		doc, err := FromKinOpenAPI(t)
		if err != nil {
			return nil, &oaserrors.GenerationError{Source: kinSource, Cause: err}
		}
		return doc, nil
	}
}
