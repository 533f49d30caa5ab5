package failover

import (
	"context"
	"testing"

	"github.com/dockflow/dockflow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCreds maps server names to credential availability
type fakeCreds map[string]bool

func (f fakeCreds) CredentialFor(tag string, server *types.ResolvedServer) (*types.ConnectionCredential, bool) {
	if !f[server.Name] {
		return nil, false
	}
	return &types.ConnectionCredential{
		Host: server.Host,
		Port: server.Port,
		User: server.User,
	}, true
}

// fakeProber returns a scripted status per host and records probe order
type fakeProber struct {
	statuses map[string]types.ManagerStatus
	probed   []string
}

func (f *fakeProber) Probe(ctx context.Context, cred *types.ConnectionCredential) types.ManagerStatus {
	f.probed = append(f.probed, cred.Host)
	return f.statuses[cred.Host]
}

func manager(name string) *types.ResolvedServer {
	return &types.ResolvedServer{
		Name: name,
		Role: types.ServerRoleManager,
		Host: name + ".example.com",
		Port: 22,
		User: "root",
	}
}

func allCreds(managers ...*types.ResolvedServer) fakeCreds {
	f := make(fakeCreds)
	for _, m := range managers {
		f[m.Name] = true
	}
	return f
}

// TestSelectActivePrefersLeader tests the unreachable/reachable/leader mix
func TestSelectActivePrefersLeader(t *testing.T) {
	m1, m2, m3 := manager("m1"), manager("m2"), manager("m3")
	prober := &fakeProber{statuses: map[string]types.ManagerStatus{
		"m1.example.com": types.ManagerStatusUnreachable,
		"m2.example.com": types.ManagerStatusReachable,
		"m3.example.com": types.ManagerStatusLeader,
	}}

	s := NewSelector(allCreds(m1, m2, m3), prober)
	result := s.SelectActive(context.Background(), "production", []*types.ResolvedServer{m1, m2, m3})

	require.NotNil(t, result)
	assert.Same(t, m3, result.Manager)
	assert.Equal(t, types.ManagerStatusLeader, result.Status)
	// m2 was passed over, not failed; probing continued past it to find m3
	assert.Equal(t, []string{"m1 (unreachable)"}, result.FailedManagers)
	assert.Equal(t, []string{"m1.example.com", "m2.example.com", "m3.example.com"}, prober.probed)
}

// TestSelectActiveLeaderShortCircuit tests that an early leader stops the scan
func TestSelectActiveLeaderShortCircuit(t *testing.T) {
	m1, m2 := manager("m1"), manager("m2")
	prober := &fakeProber{statuses: map[string]types.ManagerStatus{
		"m1.example.com": types.ManagerStatusLeader,
		"m2.example.com": types.ManagerStatusUnreachable,
	}}

	s := NewSelector(allCreds(m1, m2), prober)
	result := s.SelectActive(context.Background(), "production", []*types.ResolvedServer{m1, m2})

	require.NotNil(t, result)
	assert.Same(t, m1, result.Manager)
	assert.Equal(t, types.ManagerStatusLeader, result.Status)
	assert.Empty(t, result.FailedManagers)
	assert.Equal(t, []string{"m1.example.com"}, prober.probed, "m2 is never probed")
}

// TestSelectActiveFirstReachableFallback tests selection without any leader
func TestSelectActiveFirstReachableFallback(t *testing.T) {
	m1, m2, m3 := manager("m1"), manager("m2"), manager("m3")
	prober := &fakeProber{statuses: map[string]types.ManagerStatus{
		"m1.example.com": types.ManagerStatusUnreachable,
		"m2.example.com": types.ManagerStatusReachable,
		"m3.example.com": types.ManagerStatusReachable,
	}}

	s := NewSelector(allCreds(m1, m2, m3), prober)
	result := s.SelectActive(context.Background(), "production", []*types.ResolvedServer{m1, m2, m3})

	require.NotNil(t, result)
	assert.Same(t, m2, result.Manager, "first reachable wins without a leader")
	assert.Equal(t, types.ManagerStatusReachable, result.Status)
	assert.Equal(t, []string{"m1 (unreachable)"}, result.FailedManagers)
}

// TestSelectActiveNoCredential tests the no-SSH-key diagnostic
func TestSelectActiveNoCredential(t *testing.T) {
	m1, m2 := manager("m1"), manager("m2")
	creds := fakeCreds{"m2": true}
	prober := &fakeProber{statuses: map[string]types.ManagerStatus{
		"m2.example.com": types.ManagerStatusReachable,
	}}

	s := NewSelector(creds, prober)
	result := s.SelectActive(context.Background(), "production", []*types.ResolvedServer{m1, m2})

	require.NotNil(t, result)
	assert.Same(t, m2, result.Manager)
	assert.Equal(t, []string{"m1 (no SSH key)"}, result.FailedManagers)
	assert.Equal(t, []string{"m2.example.com"}, prober.probed, "keyless manager is never probed")
}

// TestSelectActiveNothingUsable tests the absent result
func TestSelectActiveNothingUsable(t *testing.T) {
	m1, m2 := manager("m1"), manager("m2")
	creds := fakeCreds{"m1": true}
	prober := &fakeProber{statuses: map[string]types.ManagerStatus{
		"m1.example.com": types.ManagerStatusUnreachable,
	}}

	s := NewSelector(creds, prober)
	result := s.SelectActive(context.Background(), "production", []*types.ResolvedServer{m1, m2})

	assert.Nil(t, result)
}

// TestSelectActiveWithoutLeaderPreference tests the exhaustive scan mode
func TestSelectActiveWithoutLeaderPreference(t *testing.T) {
	m1, m2, m3 := manager("m1"), manager("m2"), manager("m3")
	prober := &fakeProber{statuses: map[string]types.ManagerStatus{
		"m1.example.com": types.ManagerStatusLeader,
		"m2.example.com": types.ManagerStatusReachable,
		"m3.example.com": types.ManagerStatusLeader,
	}}

	s := NewSelector(allCreds(m1, m2, m3), prober)
	s.PreferLeader = false
	result := s.SelectActive(context.Background(), "production", []*types.ResolvedServer{m1, m2, m3})

	require.NotNil(t, result)
	assert.Same(t, m3, result.Manager, "latest leader wins in exhaustive mode")
	assert.Equal(t, types.ManagerStatusLeader, result.Status)
	assert.Len(t, prober.probed, 3, "every manager probed")
}

// TestSelectActiveEmptyManagerList tests the degenerate input
func TestSelectActiveEmptyManagerList(t *testing.T) {
	s := NewSelector(fakeCreds{}, &fakeProber{})
	assert.Nil(t, s.SelectActive(context.Background(), "production", nil))
}
