// Package routemcp exposes a running web application's route table and OpenAPI
// document to agents over the Model Context Protocol (MCP).
//
// Two read-only tools are offered:
//
//   - list_endpoints: the application's user-facing routes with their methods,
//     handler names, summaries and tags. The MCP mount path, documentation and
//     health endpoints are filtered out.
//   - get_endpoint_docs: one operation from the OpenAPI document with every local
//     $ref inlined, so the result can be read without the rest of the document.
//
// # Packages
//
//   - route: a uniform Route record and adapters for chi, gin, echo and OpenAPI documents
//   - schemadoc: an immutable OpenAPI document tree and per-call generators
//   - introspect: the endpoint lister and the endpoint documentation resolver
//   - mcpserver: the MCP server, its HTTP handler and mounting helpers
//   - oaserrors: structured error types for errors.Is and errors.As
//
// # Quick Start
//
// Mount the tools on a chi router whose OpenAPI document is produced by kin-openapi:
//
//	r := route.RecordChi(chi.NewRouter())
//	r.Get("/users/{user_id}", getUser)
//
//	srv, err := mcpserver.New(
//		route.FromChi(r, route.WithMetaFromDocument(doc)),
//		schemadoc.FromKinFunc(buildSpec),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	srv.Mount(r)
//
// Every call reads the live route table and regenerates the document; nothing is
// cached between calls.
package routemcp
