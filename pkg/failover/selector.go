package failover

import (
	"context"
	"fmt"

	"github.com/dockflow/dockflow/pkg/log"
	"github.com/dockflow/dockflow/pkg/metrics"
	"github.com/dockflow/dockflow/pkg/probe"
	"github.com/dockflow/dockflow/pkg/types"
	"github.com/rs/zerolog"
)

// CredentialSource assembles the SSH credential for one resolved server.
// The resolver implements it; tests inject scripted sources.
type CredentialSource interface {
	CredentialFor(tag string, server *types.ResolvedServer) (*types.ConnectionCredential, bool)
}

// Selector drives the manager probe across an environment's declared
// managers, strictly sequentially and in declaration order, and picks
// the active deployment target.
type Selector struct {
	creds  CredentialSource
	prober probe.Prober
	logger zerolog.Logger

	// PreferLeader short-circuits the scan on the first leader found.
	// With it disabled every manager is probed and the latest leader
	// wins. Defaults to true.
	PreferLeader bool
}

// NewSelector creates a selector with leader preference enabled
func NewSelector(creds CredentialSource, prober probe.Prober) *Selector {
	return &Selector{
		creds:        creds,
		prober:       prober,
		logger:       log.WithComponent("failover"),
		PreferLeader: true,
	}
}

// SelectActive returns the manager to deploy through, or nil when no
// manager is usable. Managers that cannot be used contribute one
// diagnostic each, in probe order:
//
//	"{name} (no SSH key)"    credential could not be assembled
//	"{name} (unreachable)"   probe classified the manager unreachable
//
// A reachable non-leader is an acceptable fallback — Swarm forwards
// manager commands from any reachable manager — so it is kept as the
// best candidate unless a leader turns up later. Probing is one pass:
// no retries, no parallel fan-out.
func (s *Selector) SelectActive(ctx context.Context, tag string, managers []*types.ResolvedServer) *types.ActiveManagerResult {
	logger := s.logger.With().Str("environment", tag).Logger()

	var best *types.ResolvedServer
	var bestStatus types.ManagerStatus
	var failed []string

	for _, manager := range managers {
		cred, ok := s.creds.CredentialFor(tag, manager)
		if !ok {
			logger.Warn().Str("manager", manager.Name).Msg("no credential, skipping manager")
			failed = append(failed, fmt.Sprintf("%s (no SSH key)", manager.Name))
			continue
		}

		status := s.prober.Probe(ctx, cred)
		logger.Debug().Str("manager", manager.Name).Str("status", string(status)).Msg("probed manager")

		switch status {
		case types.ManagerStatusUnreachable:
			failed = append(failed, fmt.Sprintf("%s (unreachable)", manager.Name))

		case types.ManagerStatusLeader:
			if s.PreferLeader {
				logger.Info().Str("manager", manager.Name).Msg("selected leader")
				return s.result(manager, types.ManagerStatusLeader, failed)
			}
			// Latest leader beats any earlier candidate
			best, bestStatus = manager, types.ManagerStatusLeader

		case types.ManagerStatusReachable:
			// First reachable manager is kept only while no leader has
			// been seen
			if best == nil {
				best, bestStatus = manager, types.ManagerStatusReachable
			}
		}
	}

	if best == nil {
		logger.Warn().Strs("failed", failed).Msg("no reachable manager")
		metrics.SelectionsTotal.WithLabelValues("none").Inc()
		return nil
	}

	logger.Info().Str("manager", best.Name).Str("status", string(bestStatus)).Msg("selected manager")
	return s.result(best, bestStatus, failed)
}

func (s *Selector) result(manager *types.ResolvedServer, status types.ManagerStatus, failed []string) *types.ActiveManagerResult {
	metrics.SelectionsTotal.WithLabelValues(string(status)).Inc()
	return &types.ActiveManagerResult{
		Manager:        manager,
		Status:         status,
		FailedManagers: failed,
	}
}
