package mcpserver

import (
	"context"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/routemcp/introspect"
	"github.com/erraggy/routemcp/route"
	"github.com/erraggy/routemcp/schemadoc"
)

const serverInstructions = `Introspection tools for an HTTP API.

- list_endpoints: every user-facing endpoint with its path template, methods, name, summary and tags.
- get_endpoint_docs: one endpoint's parameters, request body and responses with all schema references inlined. Pass endpoint_path exactly as listed (e.g. /users/{user_id}) and optionally method (default GET).

Results always reflect the running application; nothing is cached.`

// Server is an MCP server exposing list_endpoints and get_endpoint_docs for a
// host application. Its configuration is fixed at construction.
type Server struct {
	intro *introspect.Introspector
	mcp   *mcp.Server
	cfg   *config
}

// New creates a server to be mounted into the host application at the mount
// path (default "/mcp").
func New(table route.Table, gen schemadoc.Generator, opts ...Option) (*Server, error) {
	cfg, err := applyOptions(DefaultMountPath, opts...)
	if err != nil {
		return nil, err
	}
	return newServer(table, gen, cfg)
}

// NewStandalone creates a server that runs outside the host application's
// router, so no mount prefix is excluded from listings. WithMountPath is
// ignored.
func NewStandalone(table route.Table, gen schemadoc.Generator, opts ...Option) (*Server, error) {
	cfg, err := applyOptions("", opts...)
	if err != nil {
		return nil, err
	}
	cfg.mountPath = ""
	return newServer(table, gen, cfg)
}

func newServer(table route.Table, gen schemadoc.Generator, cfg *config) (*Server, error) {
	intro, err := introspect.New(table, gen, cfg.introspectOptions()...)
	if err != nil {
		return nil, err
	}
	s := &Server{intro: intro, cfg: cfg}
	s.mcp = mcp.NewServer(
		&mcp.Implementation{Name: cfg.name, Version: cfg.version},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	s.registerTools()
	return s, nil
}

// Introspector returns the lister and resolver behind the tools.
func (s *Server) Introspector() *introspect.Introspector {
	return s.intro
}

// MCPServer returns the underlying MCP server, for callers that connect their
// own transports.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Run serves MCP over stdio and blocks until the client disconnects or ctx
// is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.cfg.logger.Info("serving MCP over stdio", "name", s.cfg.name)
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// ServerInfo identifies the server.
type ServerInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	// MountPath is empty for standalone servers.
	MountPath string `json:"mount_path,omitempty" yaml:"mount_path,omitempty"`
}

// ToolInfo names and describes one tool.
type ToolInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Info describes the server and its tools.
type Info struct {
	Server ServerInfo `json:"server" yaml:"server"`
	Tools  []ToolInfo `json:"tools" yaml:"tools"`
}

// Info returns the server's name, version, mount path and tools.
func (s *Server) Info() Info {
	return Info{
		Server: ServerInfo{
			Name:      s.cfg.name,
			Version:   s.cfg.version,
			MountPath: s.cfg.mountPath,
		},
		Tools: slices.Clone(toolInfos),
	}
}
