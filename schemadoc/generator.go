package schemadoc

import (
	"context"
	"errors"
	"os"

	"github.com/erraggy/routemcp/oaserrors"
)

// Generator produces the host application's current schema document. It is
// called once per documentation query; implementations must not cache unless
// the host's document is genuinely static.
type Generator func(ctx context.Context) (*Document, error)

// Static returns a Generator that always yields doc.
func Static(doc *Document) Generator {
	return func(ctx context.Context) (*Document, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, &oaserrors.GenerationError{Source: "static", Cause: errors.New("nil document")}
		}
		return doc, nil
	}
}

// FromBytesFunc returns a Generator that calls fn and parses its output on
// every call. source names the origin in error messages.
func FromBytesFunc(source string, fn func() ([]byte, error)) Generator {
	return func(ctx context.Context) (*Document, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := fn()
		if err != nil {
			return nil, &oaserrors.GenerationError{Source: source, Cause: err}
		}
		doc, err := Parse(data)
		if err != nil {
			return nil, &oaserrors.GenerationError{Source: source, Cause: err}
		}
		return doc, nil
	}
}

// FromFile returns a Generator that re-reads and parses path on every call, so
// edits to the file are visible to the next query.
func FromFile(path string) Generator {
	return FromBytesFunc(path, func() ([]byte, error) {
		return os.ReadFile(path) //nolint:gosec // G304: path is operator-supplied configuration
	})
}
