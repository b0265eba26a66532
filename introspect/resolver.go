package introspect

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/erraggy/routemcp/internal/httputil"
	"github.com/erraggy/routemcp/internal/pathutil"
	"github.com/erraggy/routemcp/oaserrors"
	"github.com/erraggy/routemcp/route"
	"github.com/erraggy/routemcp/schemadoc"
)

// GetEndpointDocs resolves the operation for path and method into an
// EndpointDetail. An empty method means GET; methods match case-insensitively.
//
// path should be the route's path template ("/users/{user_id}"); a path that
// differs only by a trailing slash or percent-encoding also matches. When the
// document has no such operation the error is a *oaserrors.NotFoundError.
// Generator failures are returned unchanged. A reference whose target is
// missing is left in place and listed in UnresolvedRefs; it never fails the
// call.
func (in *Introspector) GetEndpointDocs(ctx context.Context, path, method string) (*EndpointDetail, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = httputil.MethodGet
	}
	log := in.logger.With("path", path, "method", method)

	doc, err := in.generate(ctx)
	if err != nil {
		log.Error("schema generation failed", "error", err)
		return nil, err
	}
	if doc == nil {
		err := &oaserrors.GenerationError{Source: "generator", Cause: errNilDocument}
		log.Error("schema generation failed", "error", err)
		return nil, err
	}

	docPath, item, ok := findPathItem(doc, path)
	if !ok {
		return nil, &oaserrors.NotFoundError{Path: path, Method: method}
	}

	d := newDereferencer(doc, in.maxRefDepth)
	item = d.followPathItem(item)
	op, ok := item[httputil.OperationKey(method)].(map[string]any)
	if !ok {
		return nil, &oaserrors.NotFoundError{Path: path, Method: method}
	}

	detail := in.assemble(d, docPath, method, item, op)
	for _, p := range d.problems {
		if p.IsCircular {
			log.Debug("circular reference replaced", "ref", p.Ref)
			continue
		}
		log.Warn("reference left unresolved", "error", p)
	}
	for _, name := range undocumentedPathParams(docPath, detail.Parameters) {
		log.Warn("path parameter not documented", "param", name)
	}
	log.Debug("resolved endpoint documentation",
		"parameters", len(detail.Parameters),
		"responses", len(detail.Responses))
	return detail, nil
}

var errNilDocument = errors.New("generator returned no document")

// undocumentedPathParams lists the template parameters of path that have no
// matching "in: path" parameter.
func undocumentedPathParams(path string, params []Parameter) []string {
	var out []string
	for _, name := range pathutil.PathParams(path) {
		if !slices.ContainsFunc(params, func(p Parameter) bool {
			return p.In == "path" && p.Name == name
		}) {
			out = append(out, name)
		}
	}
	return out
}

// findPathItem looks up path exactly, then by normalized form.
func findPathItem(doc *schemadoc.Document, path string) (string, map[string]any, bool) {
	if item, ok := doc.PathItem(path); ok {
		return path, item, true
	}
	want := pathutil.NormalizePath(path)
	for _, p := range doc.Paths() {
		if pathutil.NormalizePath(p) == want {
			item, ok := doc.PathItem(p)
			return p, item, ok
		}
	}
	return "", nil, false
}

// followPathItem replaces a path item that is itself a reference with its
// target, keeping any keys written beside the $ref. Operations are not
// inlined here.
func (d *dereferencer) followPathItem(item map[string]any) map[string]any {
	var seen []string
	for {
		ref, ok := item["$ref"].(string)
		if !ok || len(seen) >= d.maxDepth {
			return item
		}
		if slices.Contains(seen, ref) {
			d.problems = append(d.problems, &oaserrors.ReferenceError{Ref: ref, IsCircular: true})
			return item
		}
		target, ok := d.doc.Lookup(ref)
		targetItem, isMap := target.(map[string]any)
		if !ok || !isMap {
			d.problems = append(d.problems, &oaserrors.ReferenceError{Ref: ref, Message: "path item target not found"})
			d.missing = append(d.missing, ref)
			return item
		}
		seen = append(seen, ref)
		merged := make(map[string]any, len(targetItem)+len(item))
		for k, v := range targetItem {
			merged[k] = v
		}
		for k, v := range item {
			if k != "$ref" {
				merged[k] = v
			}
		}
		item = merged
	}
}

func (in *Introspector) assemble(d *dereferencer, path, method string, item, op map[string]any) *EndpointDetail {
	detail := &EndpointDetail{
		Path:       path,
		Method:     method,
		Tags:       []string{},
		Parameters: []Parameter{},
		Responses:  map[string]Response{},
	}
	detail.Summary, _ = op["summary"].(string)
	detail.Description, _ = op["description"].(string)
	detail.Deprecated, _ = op["deprecated"].(bool)
	if tags, ok := op["tags"].([]any); ok {
		for _, t := range tags {
			if s, ok := t.(string); ok {
				detail.Tags = append(detail.Tags, s)
			}
		}
	}

	if r, ok := in.findRoute(path, method); ok {
		detail.Name = r.Name
		if detail.Summary == "" {
			detail.Summary = r.Summary
		}
		if detail.Description == "" {
			detail.Description = r.Description
		}
		if len(detail.Tags) == 0 && len(r.Tags) > 0 {
			detail.Tags = append(detail.Tags, r.Tags...)
		}
	}

	detail.Parameters = d.parameters(item["parameters"], op["parameters"])
	if body, ok := op["requestBody"]; ok {
		detail.RequestBody = d.requestBody(body)
	}
	if responses, ok := op["responses"].(map[string]any); ok {
		for code, raw := range responses {
			if !httputil.IsResponseKey(code) {
				continue
			}
			detail.Responses[code] = d.response(raw)
		}
	}
	detail.UnresolvedRefs = d.unresolved()
	return detail
}

// findRoute returns the route table entry for a document path and method.
func (in *Introspector) findRoute(path, method string) (route.Route, bool) {
	want := pathutil.NormalizePath(path)
	for _, r := range in.table.Routes() {
		if pathutil.NormalizePath(r.Path) == want && r.HasMethod(method) {
			return r, true
		}
	}
	return route.Route{}, false
}

// parameters merges path-level and operation-level parameters. An operation
// parameter replaces a path-level one with the same name and location.
func (d *dereferencer) parameters(pathLevel, opLevel any) []Parameter {
	ops := d.parameterList(opLevel)
	overridden := make(map[[2]string]bool, len(ops))
	for _, p := range ops {
		if p.Ref == "" {
			overridden[[2]string{p.Name, p.In}] = true
		}
	}

	out := []Parameter{}
	for _, p := range d.parameterList(pathLevel) {
		if p.Ref == "" && overridden[[2]string{p.Name, p.In}] {
			continue
		}
		out = append(out, p)
	}
	return append(out, ops...)
}

func (d *dereferencer) parameterList(raw any) []Parameter {
	list, _ := raw.([]any)
	out := make([]Parameter, 0, len(list))
	for _, item := range list {
		m, ok := d.resolve(item, nil).(map[string]any)
		if !ok {
			continue
		}
		p := Parameter{}
		p.Ref, _ = m["$ref"].(string)
		p.Name, _ = m["name"].(string)
		p.In, _ = m["in"].(string)
		p.Required, _ = m["required"].(bool)
		p.Description, _ = m["description"].(string)
		p.Deprecated, _ = m["deprecated"].(bool)
		p.Schema, _ = m["schema"].(map[string]any)
		p.Content, _ = m["content"].(map[string]any)
		if p.Schema == nil && p.In != "body" {
			// OAS 2.0 parameters carry their type inline.
			p.Schema = inlineParameterSchema(m)
		}
		out = append(out, p)
	}
	return out
}

// inlineParameterSchema collects the schema keywords of an OAS 2.0 non-body
// parameter.
func inlineParameterSchema(m map[string]any) map[string]any {
	var schema map[string]any
	for _, k := range []string{"type", "format", "items", "enum", "default", "minimum", "maximum", "pattern"} {
		if v, ok := m[k]; ok {
			if schema == nil {
				schema = make(map[string]any)
			}
			schema[k] = v
		}
	}
	return schema
}

func (d *dereferencer) requestBody(raw any) *RequestBody {
	m, ok := d.resolve(raw, nil).(map[string]any)
	if !ok {
		return nil
	}
	rb := &RequestBody{}
	rb.Ref, _ = m["$ref"].(string)
	rb.Description, _ = m["description"].(string)
	rb.Required, _ = m["required"].(bool)
	rb.Content, _ = m["content"].(map[string]any)
	return rb
}

func (d *dereferencer) response(raw any) Response {
	m, ok := d.resolve(raw, nil).(map[string]any)
	if !ok {
		return Response{}
	}
	r := Response{}
	r.Ref, _ = m["$ref"].(string)
	r.Description, _ = m["description"].(string)
	r.Content, _ = m["content"].(map[string]any)
	r.Headers, _ = m["headers"].(map[string]any)
	r.Schema, _ = m["schema"].(map[string]any)
	return r
}
