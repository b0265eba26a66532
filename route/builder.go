package route

import (
	"cmp"
	"math"
	"reflect"
	"slices"
)

// registration is one handler bound to a path under one or more methods.
type registration struct {
	path    string
	name    string
	methods []string
	rank    int
}

type registrationKey struct {
	path    string
	handler any
}

// collector groups framework route entries, one per method, into Routes.
// Entries for the same path and the same handler value merge into one Route.
type collector struct {
	cfg   *config
	regs  []*registration
	byKey map[registrationKey]*registration
}

func newCollector(cfg *config) *collector {
	return &collector{cfg: cfg, byKey: make(map[registrationKey]*registration)}
}

// add records that handler serves method on path. name is the handler's
// display name; identity decides merging.
func (c *collector) add(path, method, name string, handler any) {
	key := registrationKey{path: path, handler: handlerKey(handler)}
	if reg, ok := c.byKey[key]; ok {
		reg.methods = append(reg.methods, method)
		return
	}
	reg := &registration{path: path, name: name, methods: []string{method}}
	c.byKey[key] = reg
	c.regs = append(c.regs, reg)
}

// routes builds the table in collection order, or in recorded registration
// order when the config carries a Recorder. Entries the Recorder never saw
// keep their relative order after the recorded ones.
func (c *collector) routes() []Route {
	regs := c.regs
	if c.cfg.order != nil {
		regs = slices.Clone(regs)
		for _, reg := range regs {
			reg.rank = math.MaxInt
			for _, m := range reg.methods {
				if r, ok := c.cfg.order.rank(m, reg.path); ok {
					reg.rank = min(reg.rank, r)
				}
			}
		}
		slices.SortStableFunc(regs, func(a, b *registration) int {
			return cmp.Compare(a.rank, b.rank)
		})
	}
	out := make([]Route, 0, len(regs))
	for _, reg := range regs {
		out = append(out, c.cfg.build(reg.path, reg.name, reg.methods))
	}
	return out
}

// handlerKey returns a comparable identity for a handler value. Funcs compare
// by code pointer, so two function literals are distinct even though neither
// has a usable name.
func handlerKey(h any) any {
	if h == nil {
		return nil
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return v.Pointer()
	case reflect.String:
		return v.String()
	default:
		// Struct values may hold uncomparable fields; their type stands in.
		return v.Type()
	}
}
