// Package mcpserver exposes a host application's endpoints to MCP clients.
//
// A Server registers two tools on an MCP server from
// github.com/modelcontextprotocol/go-sdk:
//
//   - list_endpoints lists the application's user-facing endpoints.
//   - get_endpoint_docs returns one endpoint's operation with every component
//     reference inlined.
//
// Mount the server into the host's own router so it serves the live
// application:
//
//	r := chi.NewRouter()
//	r.Get("/users/{user_id}", getUser)
//
//	srv, err := mcpserver.New(
//		route.FromChi(r, route.WithMetaFromDocument(doc)),
//		schemadoc.FromKinFunc(buildSpec),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	srv.Mount(r) // MCP at /mcp, tool listing at /mcp/tools
//
// NewStandalone builds a server for a separate process or port. It does not
// exclude any mount prefix from listings. Run serves over stdio.
package mcpserver
