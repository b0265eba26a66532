// Package oaserrors provides structured error types for routemcp.
//
// Import path: github.com/erraggy/routemcp/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish a missing endpoint from a broken schema document
// or a failing host generator.
//
// # Error Types
//
//   - [NotFoundError]: no operation exists for the requested path and method
//   - [ReferenceError]: a $ref that could not be inlined (missing or circular target)
//   - [GenerationError]: the host's schema document generator failed
//   - [ParseError]: a schema document could not be decoded from JSON or YAML
//   - [ConfigError]: invalid construction options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrNotFound]: Matches any [NotFoundError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrGeneration]: Matches any [GenerationError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	detail, err := in.GetEndpointDocs(ctx, "/users/{user_id}", "GET")
//	if errors.Is(err, oaserrors.ErrNotFound) {
//	    // report to the caller, nothing crashed
//	}
package oaserrors
