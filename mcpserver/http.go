package mcpserver

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"
)

// Mux is a router that registers handlers by pattern, such as
// *http.ServeMux or chi.Router.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Handler returns the streamable HTTP MCP handler, wrapped for CORS when
// enabled.
func (s *Server) Handler() http.Handler {
	var h http.Handler = mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return s.mcp },
		&mcp.StreamableHTTPOptions{Stateless: s.cfg.stateless},
	)
	return s.withCORS(h)
}

// ToolsHandler serves Info as JSON.
func (s *Server) ToolsHandler() http.Handler {
	return s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		data, err := json.Marshal(s.Info())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
}

// Mount registers the MCP handler at the mount path and the tool listing at
// "<mount path>/tools". Standalone servers mount at DefaultMountPath.
func (s *Server) Mount(mux Mux) {
	base := s.cfg.mountPath
	if base == "" {
		base = DefaultMountPath
	}
	mux.Handle(base, s.Handler())
	mux.Handle(base+"/tools", s.ToolsHandler())
	s.cfg.logger.Info("MCP tools mounted", "path", base, "tools", len(toolInfos))
}

func (s *Server) withCORS(h http.Handler) http.Handler {
	if !s.cfg.corsEnabled {
		return h
	}
	origins := s.cfg.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
	}).Handler(h)
}
