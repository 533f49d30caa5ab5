package probe

import (
	"context"
	"strings"

	"github.com/dockflow/dockflow/pkg/executor"
	"github.com/dockflow/dockflow/pkg/log"
	"github.com/dockflow/dockflow/pkg/metrics"
	"github.com/dockflow/dockflow/pkg/types"
	"github.com/rs/zerolog"
)

// Remote status commands, run as two separate round-trips. The second
// runs only after the first reported swarm control available.
const (
	swarmControlCommand = `docker info --format '{{.Swarm.ControlAvailable}}'`
	nodeLeaderCommand   = `docker node inspect self --format '{{.ManagerStatus.Leader}}'`
)

// Prober classifies a manager's live status
type Prober interface {
	Probe(ctx context.Context, cred *types.ConnectionCredential) types.ManagerStatus
}

// SwarmProber probes Docker Swarm managers through a remote executor
type SwarmProber struct {
	exec   executor.Executor
	logger zerolog.Logger
}

// NewSwarmProber creates a prober over the given executor
func NewSwarmProber(exec executor.Executor) *SwarmProber {
	return &SwarmProber{
		exec:   exec,
		logger: log.WithComponent("probe"),
	}
}

// Probe checks swarm control availability and, when available, this
// node's leadership flag. Any execution failure, non-zero exit, or
// unexpected output classifies as unreachable; Probe never returns an
// error and never retries.
func (p *SwarmProber) Probe(ctx context.Context, cred *types.ConnectionCredential) types.ManagerStatus {
	timer := metrics.NewTimer()
	status := p.probe(ctx, cred)
	timer.ObserveDuration(metrics.ProbeDuration)
	metrics.ProbesTotal.WithLabelValues(string(status)).Inc()
	return status
}

func (p *SwarmProber) probe(ctx context.Context, cred *types.ConnectionCredential) types.ManagerStatus {
	logger := p.logger.With().Str("host", cred.Host).Logger()

	if !p.remoteFlag(ctx, cred, swarmControlCommand, logger) {
		return types.ManagerStatusUnreachable
	}

	if p.remoteFlag(ctx, cred, nodeLeaderCommand, logger) {
		return types.ManagerStatusLeader
	}
	return types.ManagerStatusReachable
}

// remoteFlag runs a command expected to print a boolean and reports
// whether it printed true. Everything else, including transport errors,
// is false.
func (p *SwarmProber) remoteFlag(ctx context.Context, cred *types.ConnectionCredential, command string, logger zerolog.Logger) bool {
	result, err := p.exec.Run(ctx, cred, command)
	if err != nil {
		logger.Debug().Err(err).Str("command", command).Msg("remote check failed")
		return false
	}
	if !result.Success() {
		logger.Debug().
			Int("exit_code", result.ExitCode).
			Str("stderr", strings.TrimSpace(result.Stderr)).
			Str("command", command).
			Msg("remote check exited non-zero")
		return false
	}
	return strings.TrimSpace(result.Stdout) == "true"
}
