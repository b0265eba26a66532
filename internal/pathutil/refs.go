// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

// IsLocalRef reports whether ref points into the same document.
func IsLocalRef(ref string) bool {
	return strings.HasPrefix(ref, "#")
}

// SplitPointer splits a local ref into unescaped JSON pointer tokens.
// "#" and "#/" yield no tokens (the document root).
func SplitPointer(ref string) []string {
	ref = strings.TrimPrefix(ref, "#")
	ref = strings.TrimPrefix(ref, "/")
	if ref == "" {
		return nil
	}
	parts := strings.Split(ref, "/")
	for i, p := range parts {
		parts[i] = UnescapePointerToken(p)
	}
	return parts
}

// ComponentName returns the last token of a local ref, e.g. "User" for
// "#/components/schemas/User". Non-local refs are returned unchanged.
func ComponentName(ref string) string {
	if !IsLocalRef(ref) {
		return ref
	}
	tokens := SplitPointer(ref)
	if len(tokens) == 0 {
		return ref
	}
	return tokens[len(tokens)-1]
}

// UnescapePointerToken unescapes a JSON pointer token.
// Per RFC 6901, ~1 represents / and ~0 represents ~
func UnescapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}
