package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/routemcp/introspect"
)

// Tool names.
const (
	ToolListEndpoints   = "list_endpoints"
	ToolGetEndpointDocs = "get_endpoint_docs"
)

var toolInfos = []ToolInfo{
	{
		Name:        ToolListEndpoints,
		Description: "List the user-facing HTTP endpoints of the application: path template, methods, name, summary and tags. Internal endpoints (this server, API docs, health checks) are excluded. Takes no arguments.",
	},
	{
		Name:        ToolGetEndpointDocs,
		Description: "Get the OpenAPI documentation of one endpoint: parameters, request body and responses keyed by status code, with every schema reference inlined. endpoint_path must match a listed path template exactly, e.g. /users/{user_id}. method defaults to GET.",
	},
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        toolInfos[0].Name,
		Description: toolInfos[0].Description,
	}, s.handleListEndpoints)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        toolInfos[1].Name,
		Description: toolInfos[1].Description,
	}, s.handleGetEndpointDocs)
}

type listEndpointsInput struct{}

type listEndpointsOutput struct {
	Endpoints  []introspect.EndpointSummary `json:"endpoints"`
	TotalCount int                          `json:"total_count"`
}

func (s *Server) handleListEndpoints(_ context.Context, _ *mcp.CallToolRequest, _ listEndpointsInput) (*mcp.CallToolResult, listEndpointsOutput, error) {
	endpoints := s.intro.ListEndpoints()
	s.cfg.logger.Debug("tool call", "tool", ToolListEndpoints, "endpoints", len(endpoints))
	return nil, listEndpointsOutput{Endpoints: endpoints, TotalCount: len(endpoints)}, nil
}

type endpointDocsInput struct {
	EndpointPath string `json:"endpoint_path"    jsonschema:"Path template of the endpoint exactly as listed, e.g. /users/{user_id}"`
	Method       string `json:"method,omitempty" jsonschema:"HTTP method, case-insensitive (default GET)"`
}

func (s *Server) handleGetEndpointDocs(ctx context.Context, _ *mcp.CallToolRequest, input endpointDocsInput) (*mcp.CallToolResult, introspect.EndpointDetail, error) {
	s.cfg.logger.Debug("tool call", "tool", ToolGetEndpointDocs, "path", input.EndpointPath, "method", input.Method)
	detail, err := s.intro.GetEndpointDocs(ctx, input.EndpointPath, input.Method)
	if err != nil {
		return errResult(err), introspect.EndpointDetail{}, nil
	}
	return nil, *detail, nil
}

// pathPattern matches absolute filesystem paths in error messages so they are
// not leaked to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
