// Package route decodes a host application's router into a uniform table of
// Route records.
//
// Go routers carry no documentation metadata, so each adapter derives a Route's
// name from the registered handler and lets callers attach summaries,
// descriptions and tags with WithMeta or WithMetaFromDocument.
//
// # Adapters
//
//	r := route.RecordChi(chi.NewRouter())
//	r.Get("/users/{user_id}", getUser)
//	table := route.FromChi(r, route.WithMetaFromDocument(doc))
//
// FromGin and FromEcho do the same for gin and echo engines, converting
// ":param" and "*param" segments to "{param}". FromDocument builds a table from
// an OpenAPI document alone, in the document's path order.
//
// # Registration order
//
// Routers index their routes in trees and maps and forget the order they were
// registered in. RecordChi and RecordGin wrap a router and record each
// registration so the table lists routes in that order. For echo, pass the
// *echo.Route values to RecordEchoRoutes and give the Recorder to FromEcho with
// WithOrder.
//
// Every adapter reads the router again on each Routes call, so routes added
// after construction are visible to the next query.
package route
