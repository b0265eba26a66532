package mcpserver

import (
	"slices"
	"strings"

	"github.com/erraggy/routemcp"
	"github.com/erraggy/routemcp/introspect"
	"github.com/erraggy/routemcp/oaserrors"
)

// Defaults for a mounted server.
const (
	DefaultMountPath = "/mcp"
	DefaultName      = "routemcp"
)

// Option is a function that configures a Server.
type Option func(*config) error

type config struct {
	mountPath   string
	name        string
	version     string
	filter      introspect.Filter
	systemPaths []string
	// systemPathsSet distinguishes WithSystemPaths() from no option.
	systemPathsSet bool
	corsEnabled    bool
	corsOrigins    []string
	logger         introspect.Logger
	maxRefDepth    int
	stateless      bool
}

func applyOptions(mountPath string, opts ...Option) (*config, error) {
	cfg := &config{
		mountPath:   mountPath,
		name:        DefaultName,
		version:     routemcp.Version(),
		corsEnabled: true,
		logger:      introspect.NopLogger{},
		maxRefDepth: introspect.DefaultMaxRefDepth,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// introspectOptions translates the configuration for introspect.New.
func (c *config) introspectOptions() []introspect.Option {
	opts := []introspect.Option{
		introspect.WithMountPath(c.mountPath),
		introspect.WithLogger(c.logger),
		introspect.WithMaxRefDepth(c.maxRefDepth),
	}
	if c.systemPathsSet {
		opts = append(opts, introspect.WithSystemPaths(c.systemPaths...))
	}
	if c.filter != nil {
		opts = append(opts, introspect.WithFilter(c.filter))
	}
	return opts
}

// WithMountPath sets the path the server is mounted at (default "/mcp").
// Routes under it are excluded from listings. It is ignored by NewStandalone.
func WithMountPath(p string) Option {
	return func(cfg *config) error {
		if !strings.HasPrefix(p, "/") || len(p) < 2 {
			return &oaserrors.ConfigError{Option: "mount path", Value: p, Message: "must start with / and name a path"}
		}
		cfg.mountPath = strings.TrimRight(p, "/")
		return nil
	}
}

// WithName sets the MCP implementation name (default "routemcp").
func WithName(name string) Option {
	return func(cfg *config) error {
		if strings.TrimSpace(name) == "" {
			return &oaserrors.ConfigError{Option: "name", Message: "must not be empty"}
		}
		cfg.name = name
		return nil
	}
}

// WithVersion sets the MCP implementation version (default routemcp.Version()).
func WithVersion(version string) Option {
	return func(cfg *config) error {
		cfg.version = version
		return nil
	}
}

// WithFilter sets a predicate applied after the built-in exclusions; routes
// for which it returns false are not listed.
func WithFilter(f introspect.Filter) Option {
	return func(cfg *config) error {
		cfg.filter = f
		return nil
	}
}

// WithSystemPaths replaces introspect.DefaultSystemPaths.
func WithSystemPaths(paths ...string) Option {
	return func(cfg *config) error {
		cfg.systemPaths = slices.Clone(paths)
		cfg.systemPathsSet = true
		return nil
	}
}

// WithCORS enables or disables CORS handling for the HTTP handler. With no
// origins, every origin is allowed. CORS is enabled by default.
func WithCORS(enabled bool, origins ...string) Option {
	return func(cfg *config) error {
		cfg.corsEnabled = enabled
		cfg.corsOrigins = slices.Clone(origins)
		return nil
	}
}

// WithLogger sets the logger used by the server and the resolver.
func WithLogger(l introspect.Logger) Option {
	return func(cfg *config) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}

// WithMaxRefDepth limits how deeply nested references are inlined.
func WithMaxRefDepth(depth int) Option {
	return func(cfg *config) error {
		cfg.maxRefDepth = depth
		return nil
	}
}

// WithStateless serves HTTP without MCP sessions: every request is handled
// on its own, which suits load-balanced deployments.
func WithStateless(stateless bool) Option {
	return func(cfg *config) error {
		cfg.stateless = stateless
		return nil
	}
}
