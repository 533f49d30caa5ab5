package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dockflow/dockflow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInventory = `
defaults:
  user: deploy
  port: 2222

environments:
  all:
    TZ: UTC
  production:
    APP_ENV: production
  staging:
    APP_ENV: staging

servers:
  - name: main
    role: manager
    tags: [production]
    host: 203.0.113.10
    env:
      APP_DEBUG: "false"
  - name: backup
    tags: [production]
  - name: worker-1
    role: worker
    tags: [production, staging]
`

// TestParse tests parsing a complete inventory
func TestParse(t *testing.T) {
	inv, err := Parse([]byte(sampleInventory))
	require.NoError(t, err)

	assert.Equal(t, "deploy", inv.Defaults.User)
	assert.Equal(t, 2222, inv.Defaults.Port)

	assert.Equal(t, map[string]string{"TZ": "UTC"}, inv.Tiers.All)
	assert.Equal(t, map[string]string{"APP_ENV": "production"}, inv.Tiers.TierFor("production"))
	assert.Nil(t, inv.Tiers.TierFor("unknown"))

	require.Len(t, inv.Servers, 3)
	assert.Equal(t, "main", inv.Servers[0].Name)
	assert.Equal(t, types.ServerRoleManager, inv.Servers[0].Role)
	assert.Equal(t, "203.0.113.10", inv.Servers[0].Host)

	// Role defaults to manager when omitted
	assert.Equal(t, types.ServerRoleManager, inv.Servers[1].Role)

	assert.Equal(t, types.ServerRoleWorker, inv.Servers[2].Role)
	assert.Equal(t, []string{"production", "staging"}, inv.Servers[2].Tags)
}

// TestParseValidation tests declaration validation failures
func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing name",
			yaml: "servers:\n  - tags: [production]\n",
		},
		{
			name: "duplicate name",
			yaml: "servers:\n  - name: main\n    tags: [a]\n  - name: main\n    tags: [b]\n",
		},
		{
			name: "no tags",
			yaml: "servers:\n  - name: main\n",
		},
		{
			name: "empty tag",
			yaml: "servers:\n  - name: main\n    tags: [\"\"]\n",
		},
		{
			name: "unknown role",
			yaml: "servers:\n  - name: main\n    role: primary\n    tags: [a]\n",
		},
		{
			name: "port out of range",
			yaml: "servers:\n  - name: main\n    tags: [a]\n    port: 70000\n",
		},
		{
			name: "not yaml",
			yaml: "{{nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

// TestParseEmpty tests that an empty document yields an empty inventory
func TestParseEmpty(t *testing.T) {
	inv, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, inv.Servers)
	assert.Nil(t, inv.Tiers.All)
}

// TestLoad tests reading an inventory from disk
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servers.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleInventory), 0o644))

	inv, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, inv.Servers, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
