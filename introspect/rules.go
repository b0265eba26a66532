package introspect

import (
	"slices"
	"strings"

	"github.com/erraggy/routemcp/route"
)

// Names of the exclusion rules, in the order they are applied.
const (
	RuleMountPrefix = "mount-prefix"
	RuleSystemPath  = "system-path"
	RuleNoMethods   = "no-methods"
	RuleFilter      = "filter"
)

// Rule excludes routes from endpoint listings.
type Rule struct {
	Name    string
	Exclude func(route.Route) bool
}

// buildRules turns the configuration into the ordered exclusion rules. A rule
// whose configuration is empty is left out.
func buildRules(cfg *config) []Rule {
	var rules []Rule
	if mount := cfg.mountPath; mount != "" {
		rules = append(rules, Rule{
			Name:    RuleMountPrefix,
			Exclude: func(r route.Route) bool { return strings.HasPrefix(r.Path, mount) },
		})
	}
	if len(cfg.systemPaths) > 0 {
		system := make(map[string]struct{}, len(cfg.systemPaths))
		for _, p := range cfg.systemPaths {
			system[p] = struct{}{}
		}
		rules = append(rules, Rule{
			Name: RuleSystemPath,
			Exclude: func(r route.Route) bool {
				_, ok := system[r.Path]
				return ok
			},
		})
	}
	rules = append(rules, Rule{
		Name:    RuleNoMethods,
		Exclude: func(r route.Route) bool { return len(r.OperationMethods()) == 0 },
	})
	if keep := cfg.filter; keep != nil {
		rules = append(rules, Rule{
			Name:    RuleFilter,
			Exclude: func(r route.Route) bool { return !keep(r) },
		})
	}
	return rules
}

// excludedBy returns the name of the first rule that excludes r, or "".
func excludedBy(rules []Rule, r route.Route) string {
	i := slices.IndexFunc(rules, func(rule Rule) bool { return rule.Exclude(r) })
	if i < 0 {
		return ""
	}
	return rules[i].Name
}
