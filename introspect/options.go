package introspect

import (
	"slices"
	"strings"

	"github.com/erraggy/routemcp/oaserrors"
	"github.com/erraggy/routemcp/route"
)

// DefaultMaxRefDepth is the maximum nesting of component references inlined
// into one endpoint's documentation before a truncation placeholder is used.
const DefaultMaxRefDepth = 64

// DefaultSystemPaths are the well-known documentation, schema and health
// endpoints excluded from endpoint listings.
var DefaultSystemPaths = []string{
	"/docs",
	"/docs/oauth2-redirect",
	"/redoc",
	"/openapi.json",
	"/openapi.yaml",
	"/favicon.ico",
	"/health",
	"/healthz",
	"/ready",
	"/metrics",
}

// Filter decides whether a route is listed. Routes for which it returns false
// are excluded.
type Filter func(route.Route) bool

// Option is a function that configures an Introspector.
type Option func(*config) error

type config struct {
	mountPath   string
	systemPaths []string
	filter      Filter
	logger      Logger
	maxRefDepth int
}

func applyOptions(opts ...Option) (*config, error) {
	cfg := &config{
		systemPaths: slices.Clone(DefaultSystemPaths),
		logger:      NopLogger{},
		maxRefDepth: DefaultMaxRefDepth,
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

// WithMountPath excludes routes whose path starts with mountPath, the path the
// introspection endpoint itself is served under. An empty mountPath disables
// the check, for servers that run outside the host application.
func WithMountPath(mountPath string) Option {
	return func(cfg *config) error {
		if mountPath != "" && !strings.HasPrefix(mountPath, "/") {
			return &oaserrors.ConfigError{
				Option:  "mount path",
				Value:   mountPath,
				Message: "must be empty or start with /",
			}
		}
		cfg.mountPath = mountPath
		return nil
	}
}

// WithSystemPaths replaces DefaultSystemPaths. Passing no paths lists system
// endpoints too.
func WithSystemPaths(paths ...string) Option {
	return func(cfg *config) error {
		cfg.systemPaths = slices.Clone(paths)
		return nil
	}
}

// WithFilter sets a predicate applied after the built-in exclusions.
func WithFilter(f Filter) Option {
	return func(cfg *config) error {
		cfg.filter = f
		return nil
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l Logger) Option {
	return func(cfg *config) error {
		if l != nil {
			cfg.logger = l
		}
		return nil
	}
}

// WithMaxRefDepth limits how deeply nested component references are inlined.
func WithMaxRefDepth(depth int) Option {
	return func(cfg *config) error {
		if depth < 1 {
			return &oaserrors.ConfigError{
				Option:  "max ref depth",
				Value:   depth,
				Message: "must be at least 1",
			}
		}
		cfg.maxRefDepth = depth
		return nil
	}
}
