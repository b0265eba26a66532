package introspect

import (
	"slices"

	"github.com/erraggy/routemcp/oaserrors"
	"github.com/erraggy/routemcp/route"
	"github.com/erraggy/routemcp/schemadoc"
)

// Introspector lists a host application's endpoints and resolves their
// documentation. Its configuration is fixed at construction.
type Introspector struct {
	table       route.Table
	generate    schemadoc.Generator
	rules       []Rule
	mountPath   string
	logger      Logger
	maxRefDepth int
}

// New creates an Introspector over a route table and a schema document
// generator.
func New(table route.Table, gen schemadoc.Generator, opts ...Option) (*Introspector, error) {
	if table == nil {
		return nil, &oaserrors.ConfigError{Option: "route table", Message: "must not be nil"}
	}
	if gen == nil {
		return nil, &oaserrors.ConfigError{Option: "schema generator", Message: "must not be nil"}
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Introspector{
		table:       table,
		generate:    gen,
		rules:       buildRules(cfg),
		mountPath:   cfg.mountPath,
		logger:      cfg.logger,
		maxRefDepth: cfg.maxRefDepth,
	}, nil
}

// Rules returns the exclusion rules in the order they are applied.
func (in *Introspector) Rules() []Rule {
	return slices.Clone(in.rules)
}

// MountPath returns the excluded mount path; empty in standalone mode.
func (in *Introspector) MountPath() string {
	return in.mountPath
}
