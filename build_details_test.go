package routemcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVersion verifies that Version() returns the version variable.
// In development, it defaults to "dev".
func TestVersion(t *testing.T) {
	result := Version()

	assert.NotEmpty(t, result, "Version() should not return empty string")
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}
