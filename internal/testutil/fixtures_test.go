package testutil

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestFixturesDecode(t *testing.T) {
	var users map[string]any
	require.NoError(t, json.Unmarshal([]byte(UsersSpecJSON), &users))
	assert.Equal(t, "3.1.0", users["openapi"])

	var broken map[string]any
	require.NoError(t, json.Unmarshal([]byte(BrokenRefSpecJSON), &broken))

	var cyclic map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(CyclicSpecYAML), &cyclic))
	assert.Contains(t, cyclic, "components")
}

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "spec.json", UsersSpecJSON)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, UsersSpecJSON, string(data))
}
