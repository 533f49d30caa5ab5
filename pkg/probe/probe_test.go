package probe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dockflow/dockflow/pkg/executor"
	"github.com/dockflow/dockflow/pkg/types"
	"github.com/stretchr/testify/assert"
)

// scriptedExecutor answers the control and leader checks independently
func scriptedExecutor(t *testing.T, control func() (*executor.Result, error), leader func() (*executor.Result, error)) executor.Executor {
	t.Helper()
	return executor.Func(func(ctx context.Context, cred *types.ConnectionCredential, command string) (*executor.Result, error) {
		switch {
		case strings.Contains(command, "docker info"):
			return control()
		case strings.Contains(command, "docker node inspect"):
			return leader()
		default:
			t.Fatalf("unexpected command: %s", command)
			return nil, nil
		}
	})
}

func ok(stdout string) func() (*executor.Result, error) {
	return func() (*executor.Result, error) {
		return &executor.Result{Stdout: stdout}, nil
	}
}

func failExit(code int) func() (*executor.Result, error) {
	return func() (*executor.Result, error) {
		return &executor.Result{ExitCode: code, Stderr: "boom"}, nil
	}
}

func failErr() (*executor.Result, error) {
	return nil, errors.New("connection refused")
}

var cred = &types.ConnectionCredential{Host: "203.0.113.10", Port: 22, User: "root"}

// TestProbeClassification tests the status matrix
func TestProbeClassification(t *testing.T) {
	tests := []struct {
		name    string
		control func() (*executor.Result, error)
		leader  func() (*executor.Result, error)
		want    types.ManagerStatus
	}{
		{
			name:    "leader",
			control: ok("true\n"),
			leader:  ok("true\n"),
			want:    types.ManagerStatusLeader,
		},
		{
			name:    "reachable non-leader",
			control: ok("true\n"),
			leader:  ok("false\n"),
			want:    types.ManagerStatusReachable,
		},
		{
			name:    "no swarm control",
			control: ok("false\n"),
			want:    types.ManagerStatusUnreachable,
		},
		{
			name:    "control check transport error",
			control: failErr,
			want:    types.ManagerStatusUnreachable,
		},
		{
			name:    "control check non-zero exit",
			control: failExit(1),
			want:    types.ManagerStatusUnreachable,
		},
		{
			name:    "unparseable control output",
			control: ok("template parsing error"),
			want:    types.ManagerStatusUnreachable,
		},
		{
			name:    "leader check fails softly",
			control: ok("true"),
			leader:  failErr,
			want:    types.ManagerStatusReachable,
		},
		{
			name:    "leader check garbage output",
			control: ok("true"),
			leader:  ok("<no value>"),
			want:    types.ManagerStatusReachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leader := tt.leader
			if leader == nil {
				leader = func() (*executor.Result, error) {
					t.Fatal("leader check should not run when control is unavailable")
					return nil, nil
				}
			}
			p := NewSwarmProber(scriptedExecutor(t, tt.control, leader))
			assert.Equal(t, tt.want, p.Probe(context.Background(), cred))
		})
	}
}

// TestProbeSingleControlRoundTrip tests that an unreachable manager costs
// exactly one remote command
func TestProbeSingleControlRoundTrip(t *testing.T) {
	calls := 0
	exec := executor.Func(func(ctx context.Context, cred *types.ConnectionCredential, command string) (*executor.Result, error) {
		calls++
		return nil, errors.New("connection refused")
	})

	p := NewSwarmProber(exec)
	p.Probe(context.Background(), cred)
	assert.Equal(t, 1, calls)
}
