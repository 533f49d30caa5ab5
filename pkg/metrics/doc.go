/*
Package metrics provides Prometheus instrumentation for Dockflow.

Collectors cover the three phases of target resolution:

Resolution:
  - dockflow_servers_resolved_total{environment}
  - dockflow_servers_skipped_total{environment}

Probing:
  - dockflow_probes_total{status}  (unreachable, reachable, leader)
  - dockflow_probe_duration_seconds

Failover:
  - dockflow_failover_selections_total{outcome}  (leader, reachable, none)

The watch command additionally publishes per-manager gauges:
  - dockflow_manager_up{environment,server}
  - dockflow_manager_leader{environment,server}

All collectors are registered in init(). Handler() exposes the standard
promhttp handler; only the long-running watch command serves it, since a
one-shot resolution run has nowhere to scrape from.

Timing uses the Timer helper:

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.ProbeDuration)
*/
package metrics
