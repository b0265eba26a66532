package pathutil

import (
	"net/url"
	"regexp"
	"strings"
)

// pathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var pathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// colonParamRegex matches router-style segments like :id or *filepath.
var colonParamRegex = regexp.MustCompile(`(^|/)[:*]([^/]+)`)

// ToBraceTemplate converts a colon-style router pattern to an OpenAPI path
// template: "/users/:id/*rest" becomes "/users/{id}/{rest}". Patterns that
// already use braces are returned unchanged.
func ToBraceTemplate(pattern string) string {
	return colonParamRegex.ReplaceAllString(pattern, "$1{$2}")
}

// PathParams returns the parameter names of a path template in order.
func PathParams(template string) []string {
	matches := pathParamRegex.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// NormalizePath trims a trailing slash (except for the root) and decodes
// percent-escapes so that "/users/" and "/users%2F" style inputs compare equal
// to their template. Undecodable input is returned trimmed but otherwise as is.
func NormalizePath(p string) string {
	if decoded, err := url.PathUnescape(p); err == nil {
		p = decoded
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}
