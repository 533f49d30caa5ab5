package executor

import (
	"context"
	"testing"

	"github.com/dockflow/dockflow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResultSuccess tests exit-code classification
func TestResultSuccess(t *testing.T) {
	assert.True(t, (&Result{ExitCode: 0}).Success())
	assert.False(t, (&Result{ExitCode: 1}).Success())
	assert.False(t, (*Result)(nil).Success())
}

// TestFuncAdapter tests the closure adapter
func TestFuncAdapter(t *testing.T) {
	var gotCommand string
	exec := Func(func(ctx context.Context, cred *types.ConnectionCredential, command string) (*Result, error) {
		gotCommand = command
		return &Result{Stdout: "ok"}, nil
	})

	result, err := exec.Run(context.Background(), &types.ConnectionCredential{}, "docker info")
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Stdout)
	assert.Equal(t, "docker info", gotCommand)
}

// TestSSHRejectsBadKey tests that unparseable key material fails before
// any connection attempt
func TestSSHRejectsBadKey(t *testing.T) {
	exec := NewSSH()
	cred := &types.ConnectionCredential{
		Host:       "198.51.100.1",
		Port:       22,
		User:       "root",
		PrivateKey: "not a key",
	}

	_, err := exec.Run(context.Background(), cred, "true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private key")
}
