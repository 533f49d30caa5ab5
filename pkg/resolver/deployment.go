package resolver

import (
	"github.com/dockflow/dockflow/pkg/types"
)

// ResolveDeployment partitions the resolved servers of an environment by
// role. Returns false when zero managers resolved: every environment
// needs at least one declared and resolvable manager before deployment
// can proceed, and the caller treats that absence as a fatal
// configuration error.
func (r *Resolver) ResolveDeployment(tag string) (*types.ResolvedDeployment, bool) {
	servers := r.ResolveForEnvironment(tag)

	var managers, workers []*types.ResolvedServer
	for _, s := range servers {
		switch s.Role {
		case types.ServerRoleWorker:
			workers = append(workers, s)
		default:
			managers = append(managers, s)
		}
	}

	if len(managers) == 0 {
		return nil, false
	}

	return &types.ResolvedDeployment{
		Environment: tag,
		Manager:     managers[0],
		Managers:    managers,
		Workers:     workers,
	}, true
}
