package commands

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/routemcp/internal/testutil"
	"github.com/erraggy/routemcp/introspect"
	"github.com/erraggy/routemcp/mcpserver"
)

func clearROUTEMCPEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ROUTEMCP_NAME", "ROUTEMCP_MOUNT_PATH", "ROUTEMCP_ADDR",
		"ROUTEMCP_CORS_ENABLED", "ROUTEMCP_CORS_ORIGINS",
		"ROUTEMCP_MAX_REF_DEPTH", "ROUTEMCP_SYSTEM_PATHS", "ROUTEMCP_STATELESS",
	} {
		t.Setenv(key, "")
	}
}

func TestSetupServeFlags_Defaults(t *testing.T) {
	clearROUTEMCPEnv(t)

	fs, flags := SetupServeFlags()
	require.NoError(t, fs.Parse([]string{"openapi.json"}))

	assert.Equal(t, mcpserver.DefaultAddr, flags.Env.Addr)
	assert.Equal(t, mcpserver.DefaultMountPath, flags.Env.MountPath)
	assert.True(t, flags.Env.CORSEnabled)
	assert.False(t, flags.Stdio)
	assert.Equal(t, LogText, flags.Log)
	assert.Equal(t, "openapi.json", fs.Arg(0))
}

func TestSetupServeFlags_FlagsOverrideEnv(t *testing.T) {
	clearROUTEMCPEnv(t)
	t.Setenv("ROUTEMCP_ADDR", ":9000")
	t.Setenv("ROUTEMCP_MOUNT_PATH", "/agents")
	t.Setenv("ROUTEMCP_CORS_ORIGINS", "http://env.example.com")

	fs, flags := SetupServeFlags()
	require.NoError(t, fs.Parse([]string{"-addr", ":9100", "-cors=false", "openapi.json"}))

	assert.Equal(t, ":9100", flags.Env.Addr)
	assert.Equal(t, "/agents", flags.Env.MountPath)
	assert.False(t, flags.Env.CORSEnabled)
	assert.Equal(t, "http://env.example.com", flags.CORSOrigins)
}

func TestServeFlags_Options(t *testing.T) {
	clearROUTEMCPEnv(t)
	spec := testutil.WriteTempFile(t, "openapi.json", testutil.UsersSpecJSON)

	fs, flags := SetupServeFlags()
	require.NoError(t, fs.Parse([]string{"-mount", "/tools", "-name", "users-api", "-system-paths", "/users", spec}))

	table, gen := specSource(spec)
	srv, err := mcpserver.New(table, gen, flags.Options(introspect.NopLogger{})...)
	require.NoError(t, err)

	info := srv.Info()
	assert.Equal(t, "users-api", info.Server.Name)
	assert.Equal(t, "/tools", info.Server.MountPath)

	endpoints := srv.Introspector().ListEndpoints()
	require.Len(t, endpoints, 1)
	assert.Equal(t, "/users/{user_id}", endpoints[0].Path)
}

func TestHandleServe_Errors(t *testing.T) {
	clearROUTEMCPEnv(t)
	spec := testutil.WriteTempFile(t, "openapi.json", testutil.UsersSpecJSON)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no spec", []string{}, "exactly one spec file"},
		{"bad log backend", []string{"-log", "logrus", spec}, "invalid log backend"},
		{"bad mount", []string{"-mount", "mcp", spec}, "mount path"},
		{"bad depth", []string{"-max-ref-depth", "0", spec}, "max ref depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorContains(t, HandleServe(tt.args), tt.wantErr)
		})
	}
}

func TestListenAndServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ListenAndServe(ctx, "127.0.0.1:0", http.NotFoundHandler(), introspect.NopLogger{})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServe_ListenError(t *testing.T) {
	err := ListenAndServe(context.Background(), "127.0.0.1:-1", http.NotFoundHandler(), introspect.NopLogger{})
	assert.ErrorContains(t, err, "serve:")
}
