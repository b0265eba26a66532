// Package schemadoc holds the host application's OpenAPI document as an
// immutable JSON tree and resolves local JSON pointers into it.
//
// Documents are decoded from JSON or YAML with [Parse], or converted from a
// kin-openapi document with [FromKinOpenAPI]. Hosts hand the introspector a
// [Generator] rather than a document, and the generator is called once per
// query so results always reflect the live application:
//
//	gen := schemadoc.FromFile("openapi.yaml")
//	doc, err := gen(ctx)
//	if err != nil {
//		return err
//	}
//	op, ok := doc.Operation("/users/{user_id}", "GET")
//
// Values returned by lookups are shared with the document and must be treated
// as read-only. [Document.Root] returns a deep copy for callers that need to
// modify the tree.
package schemadoc
