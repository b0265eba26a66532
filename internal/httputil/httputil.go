// Package httputil provides HTTP method and status-code helpers shared by the
// route adapters and the endpoint documentation resolver.
package httputil

import (
	"slices"
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength     = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode        = 100 // Minimum valid HTTP status code
	MaxStatusCode        = 599 // Maximum valid HTTP status code
	WildcardChar         = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
	MinWildcardFirstChar = '1' // Minimum first digit for wildcard patterns
	MaxWildcardFirstChar = '5' // Maximum first digit for wildcard patterns
)

// HTTP Method Constants, as used for route methods.
const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodTrace   = "TRACE"
	MethodConnect = "CONNECT"
)

// canonicalOrder is the display order for route methods. Methods not listed
// sort after these, alphabetically.
var canonicalOrder = []string{
	MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete,
	MethodHead, MethodOptions, MethodTrace, MethodConnect,
}

// OperationKeys are the path item keys that hold operations in an OpenAPI
// document, in the order the resolver and document-derived tables use.
var OperationKeys = []string{"get", "post", "put", "patch", "delete", "head", "options", "trace"}

// NormalizeMethods upper-cases, trims and de-duplicates methods and returns
// them in canonical order. Empty entries are dropped. The input is not modified.
func NormalizeMethods(methods []string) []string {
	if len(methods) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(methods))
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	slices.SortStableFunc(out, CompareMethods)
	if len(out) == 0 {
		return nil
	}
	return out
}

// CompareMethods orders upper-cased methods canonically, unknown methods last
// and alphabetically.
func CompareMethods(a, b string) int {
	ia, ib := methodRank(a), methodRank(b)
	if ia != ib {
		return ia - ib
	}
	return strings.Compare(a, b)
}

func methodRank(m string) int {
	if i := slices.Index(canonicalOrder, m); i >= 0 {
		return i
	}
	return len(canonicalOrder)
}

// IsKnownMethod reports whether m (any case) is a standard HTTP method.
func IsKnownMethod(m string) bool {
	return slices.Contains(canonicalOrder, strings.ToUpper(m))
}

// IsOperationMethod reports whether m describes an application operation.
// HEAD and OPTIONS are answered by routers implicitly and are not listed.
func IsOperationMethod(m string) bool {
	m = strings.ToUpper(m)
	return m != "" && m != MethodHead && m != MethodOptions
}

// OperationKey returns the OpenAPI path item key for a method ("GET" -> "get").
func OperationKey(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}

// ValidateStatusCode checks if a status code string is valid according to OpenAPI spec.
// Valid values are:
//   - "default" for default response
//   - Extension fields starting with "x-"
//   - Wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX
//   - Numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}

	if strings.HasPrefix(code, "x-") {
		return true
	}

	if len(code) == StatusCodeLength {
		// Check for wildcard patterns (e.g., "2XX", "4XX")
		if code[1] == WildcardChar && code[2] == WildcardChar {
			firstChar := code[0]
			if firstChar >= MinWildcardFirstChar && firstChar <= MaxWildcardFirstChar {
				return true
			}
		}

		// Check for numeric codes
		if code[0] >= '0' && code[0] <= '9' &&
			code[1] >= '0' && code[1] <= '9' &&
			code[2] >= '0' && code[2] <= '9' {
			statusCode, err := strconv.Atoi(code)
			if err == nil && statusCode >= MinStatusCode && statusCode <= MaxStatusCode {
				return true
			}
		}
	}

	return false
}

// IsResponseKey reports whether a responses-map key names a response rather
// than an extension.
func IsResponseKey(code string) bool {
	return !strings.HasPrefix(code, "x-") && ValidateStatusCode(code)
}
