package introspect

// EndpointDetail is one operation with every resolvable component reference
// inlined. It can be serialized and handed to a consumer that has no access to
// the schema document.
type EndpointDetail struct {
	// Path is the document's path template for the operation.
	Path   string `json:"path" yaml:"path"`
	Method string `json:"method" yaml:"method"`
	// Name is the route name from the route table, when the table has a route
	// for the path and method.
	Name        string              `json:"name,omitempty" yaml:"name,omitempty"`
	Summary     string              `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string            `json:"tags" yaml:"tags"`
	Deprecated  bool                `json:"deprecated" yaml:"deprecated"`
	Parameters  []Parameter         `json:"parameters" yaml:"parameters"`
	RequestBody *RequestBody        `json:"request_body,omitempty" yaml:"request_body,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
	// UnresolvedRefs lists references whose targets are missing from the
	// document. Each one is left in place as a "$ref" where it occurred.
	UnresolvedRefs []string `json:"unresolved_refs,omitempty" yaml:"unresolved_refs,omitempty"`
}

// Parameter is a path, query, header or cookie parameter.
type Parameter struct {
	// Ref is set only when the parameter itself could not be resolved.
	Ref         string         `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	In          string         `json:"in,omitempty" yaml:"in,omitempty"`
	Required    bool           `json:"required" yaml:"required"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Deprecated  bool           `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Schema      map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
	// Content is used instead of Schema by parameters with complex
	// serialization.
	Content map[string]any `json:"content,omitempty" yaml:"content,omitempty"`
}

// RequestBody is an operation's request body.
type RequestBody struct {
	Ref         string         `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool           `json:"required" yaml:"required"`
	Content     map[string]any `json:"content,omitempty" yaml:"content,omitempty"`
}

// Response is one entry of an operation's responses, keyed by status code.
type Response struct {
	Ref         string         `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Content     map[string]any `json:"content,omitempty" yaml:"content,omitempty"`
	Headers     map[string]any `json:"headers,omitempty" yaml:"headers,omitempty"`
	// Schema is the response body schema of OAS 2.0 documents.
	Schema map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
}
