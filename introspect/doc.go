// Package introspect answers questions about a host application's HTTP API
// from its route table and its OpenAPI document.
//
// An Introspector combines a [route.Table] with a [schemadoc.Generator]. It
// lists the application's endpoints, skipping its own mount path and common
// system endpoints, and resolves one endpoint's operation into a
// self-contained EndpointDetail with every component reference inlined.
//
//	in, err := introspect.New(
//		route.FromChi(r),
//		schemadoc.FromKinFunc(buildSpec),
//		introspect.WithMountPath("/mcp"),
//		introspect.WithFilter(func(r route.Route) bool {
//			return !strings.HasPrefix(r.Path, "/internal")
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, ep := range in.ListEndpoints() {
//		fmt.Println(ep.Methods, ep.Path, ep.Summary)
//	}
//	detail, err := in.GetEndpointDocs(ctx, "/users/{user_id}", "GET")
//
// Nothing is cached. Every call reads the route table again, and every
// documentation query invokes the generator, so results always reflect the
// live application. An Introspector is safe for concurrent use.
package introspect
