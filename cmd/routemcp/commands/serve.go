package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/erraggy/routemcp/introspect"
	"github.com/erraggy/routemcp/mcpserver"
)

const shutdownTimeout = 5 * time.Second

// ServeFlags contains flags for the serve command. Defaults come from the
// ROUTEMCP_* environment variables.
type ServeFlags struct {
	Env         mcpserver.EnvConfig
	Stdio       bool
	CORSOrigins string
	SystemPaths string
	Log         string
	Debug       bool
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
// Returns the FlagSet and a ServeFlags struct with bound flag variables.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{Env: mcpserver.LoadEnvConfig()}

	fs.StringVar(&flags.Env.Addr, "addr", flags.Env.Addr, "HTTP listen address")
	fs.StringVar(&flags.Env.MountPath, "mount", flags.Env.MountPath, "path the MCP endpoint is served at")
	fs.StringVar(&flags.Env.Name, "name", flags.Env.Name, "server name reported to clients")
	fs.BoolVar(&flags.Env.CORSEnabled, "cors", flags.Env.CORSEnabled, "enable CORS handling")
	fs.StringVar(&flags.CORSOrigins, "cors-origins", strings.Join(flags.Env.CORSOrigins, ","), "comma-separated allowed origins (default: all)")
	fs.StringVar(&flags.SystemPaths, "system-paths", strings.Join(flags.Env.SystemPaths, ","), "comma-separated system paths replacing the defaults")
	fs.IntVar(&flags.Env.MaxRefDepth, "max-ref-depth", flags.Env.MaxRefDepth, "maximum depth of inlined references")
	fs.BoolVar(&flags.Env.Stateless, "stateless", flags.Env.Stateless, "serve HTTP without MCP sessions")
	fs.BoolVar(&flags.Stdio, "stdio", false, "serve over stdin/stdout instead of HTTP")
	fs.StringVar(&flags.Log, "log", LogText, "log backend: text, json, zap")
	fs.BoolVar(&flags.Debug, "debug", false, "enable debug logging")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: routemcp serve [flags] <spec>\n\n")
		Writef(output, "Serve the list_endpoints and get_endpoint_docs MCP tools for an OpenAPI document.\n")
		Writef(output, "The document is re-read on every tool call.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nEnvironment:\n")
		Writef(output, "  ROUTEMCP_NAME, ROUTEMCP_ADDR, ROUTEMCP_MOUNT_PATH, ROUTEMCP_CORS_ENABLED,\n")
		Writef(output, "  ROUTEMCP_CORS_ORIGINS, ROUTEMCP_MAX_REF_DEPTH, ROUTEMCP_SYSTEM_PATHS,\n")
		Writef(output, "  ROUTEMCP_STATELESS set the defaults; flags override them.\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  routemcp serve openapi.json\n")
		Writef(output, "  routemcp serve -stdio openapi.yaml\n")
		Writef(output, "  routemcp serve -addr :9000 -cors-origins http://localhost:3000 openapi.yaml\n")
	}

	return fs, flags
}

// Options converts the flags into server options.
func (f *ServeFlags) Options(logger introspect.Logger) []mcpserver.Option {
	env := f.Env
	env.CORSOrigins = splitList(f.CORSOrigins)
	env.SystemPaths = nil
	if f.SystemPaths != "" {
		env.SystemPaths = splitList(f.SystemPaths)
	}
	return append(env.Options(), mcpserver.WithLogger(logger))
}

// HandleServe executes the serve command
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("serve command requires exactly one spec file")
	}

	logger, flush, err := NewLogger(flags.Log, flags.Debug)
	if err != nil {
		return err
	}
	defer flush()

	table, gen := specSource(fs.Arg(0))
	srv, err := mcpserver.New(table, gen, flags.Options(logger)...)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flags.Stdio {
		logger.Info("serving MCP over stdio", "spec", fs.Arg(0))
		return srv.Run(ctx)
	}

	r := chi.NewRouter()
	srv.Mount(r)
	return ListenAndServe(ctx, flags.Env.Addr, r, logger)
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, logger introspect.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("serve: shutdown: %w", err)
	}
	return nil
}
