package introspect

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/erraggy/routemcp/internal/testutil"
	"github.com/erraggy/routemcp/route"
	"github.com/erraggy/routemcp/schemadoc"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler)).With("component", "test")

	logger.Debug("debug message", "k", 1)
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message", "component=test", "k=1"} {
		assert.Contains(t, out, want)
	}

	assert.NotNil(t, NewSlogAdapter(nil))
}

func TestZapAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapAdapter(zap.New(core)).With("component", "test")

	logger.Debug("debug message")
	logger.Info("info message", "count", 2)
	logger.Warn("warn message")
	logger.Error("error message")

	require.Equal(t, 4, logs.Len())
	entry := logs.FilterMessage("info message").All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "test", entry.ContextMap()["component"])
	assert.EqualValues(t, 2, entry.ContextMap()["count"])

	NewZapAdapter(nil).Info("discarded")
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestGetEndpointDocs_LogsUnresolvedReferences(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	doc, err := schemadoc.Parse([]byte(testutil.BrokenRefSpecJSON))
	require.NoError(t, err)

	in, err := New(route.List{}, schemadoc.Static(doc), WithLogger(NewZapAdapter(zap.New(core))))
	require.NoError(t, err)

	_, err = in.GetEndpointDocs(context.Background(), "/items", "GET")
	require.NoError(t, err)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "reference left unresolved", warnings[0].Message)
	assert.Equal(t, "/items", warnings[0].ContextMap()["path"])
	assert.Equal(t, "GET", warnings[0].ContextMap()["method"])
}

func TestGetEndpointDocs_LogsUndocumentedPathParams(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	doc, err := schemadoc.Parse([]byte(`{
  "openapi": "3.1.0",
  "info": {"title": "orders", "version": "1"},
  "paths": {
    "/orgs/{org}/orders/{order_id}": {
      "get": {
        "parameters": [{"name": "org", "in": "path", "required": true, "schema": {"type": "string"}}],
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`))
	require.NoError(t, err)

	in, err := New(route.List{}, schemadoc.Static(doc), WithLogger(NewZapAdapter(zap.New(core))))
	require.NoError(t, err)

	detail, err := in.GetEndpointDocs(context.Background(), "/orgs/{org}/orders/{order_id}", "GET")
	require.NoError(t, err)
	require.Len(t, detail.Parameters, 1)

	warnings := logs.FilterMessage("path parameter not documented").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "order_id", warnings[0].ContextMap()["param"])
}
