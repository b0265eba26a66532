package introspect

import (
	"slices"

	"github.com/erraggy/routemcp/route"
)

// EndpointSummary is the listing view of one route.
type EndpointSummary struct {
	Path string `json:"path" yaml:"path"`
	// Methods excludes HEAD and OPTIONS.
	Methods []string `json:"methods" yaml:"methods"`
	Name    string   `json:"name" yaml:"name"`
	Summary string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Tags    []string `json:"tags" yaml:"tags"`
}

// ListResult is a listing with the number of routes each rule excluded.
// len(Endpoints) plus the sum of Excluded always equals Total.
type ListResult struct {
	Endpoints []EndpointSummary `json:"endpoints" yaml:"endpoints"`
	Total     int               `json:"total" yaml:"total"`
	Excluded  map[string]int    `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}

// ListEndpoints returns the application's user-facing endpoints in the route
// table's order. It never fails; an application with no matching routes
// yields an empty slice.
func (in *Introspector) ListEndpoints() []EndpointSummary {
	return in.List().Endpoints
}

// List is ListEndpoints with exclusion counts.
func (in *Introspector) List() ListResult {
	routes := in.table.Routes()
	res := ListResult{
		Endpoints: make([]EndpointSummary, 0, len(routes)),
		Total:     len(routes),
	}
	for _, r := range routes {
		if rule := excludedBy(in.rules, r); rule != "" {
			if res.Excluded == nil {
				res.Excluded = make(map[string]int)
			}
			res.Excluded[rule]++
			continue
		}
		res.Endpoints = append(res.Endpoints, summarize(r))
	}
	in.logger.Debug("listed endpoints", "listed", len(res.Endpoints), "total", res.Total)
	return res
}

func summarize(r route.Route) EndpointSummary {
	tags := slices.Clone(r.Tags)
	if tags == nil {
		tags = []string{}
	}
	return EndpointSummary{
		Path:    r.Path,
		Methods: r.OperationMethods(),
		Name:    r.Name,
		Summary: r.Summary,
		Tags:    tags,
	}
}
