package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Resolution metrics
	ServersResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dockflow_servers_resolved_total",
			Help: "Servers successfully resolved, by environment",
		},
		[]string{"environment"},
	)

	ServersSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dockflow_servers_skipped_total",
			Help: "Declared servers dropped during resolution, by environment",
		},
		[]string{"environment"},
	)

	// Probe metrics
	ProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dockflow_probes_total",
			Help: "Manager probes by resulting status",
		},
		[]string{"status"},
	)

	ProbeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dockflow_probe_duration_seconds",
			Help:    "Wall time of a single manager probe in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Failover metrics
	SelectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dockflow_failover_selections_total",
			Help: "Failover selection outcomes: leader, reachable, or none",
		},
		[]string{"outcome"},
	)

	// Watch metrics
	ManagerUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dockflow_manager_up",
			Help: "1 when the manager answered its last probe, 0 otherwise",
		},
		[]string{"environment", "server"},
	)

	ManagerLeader = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dockflow_manager_leader",
			Help: "1 when the manager was the Swarm leader at its last probe",
		},
		[]string{"environment", "server"},
	)
)

func init() {
	prometheus.MustRegister(ServersResolved)
	prometheus.MustRegister(ServersSkipped)
	prometheus.MustRegister(ProbesTotal)
	prometheus.MustRegister(ProbeDuration)
	prometheus.MustRegister(SelectionsTotal)
	prometheus.MustRegister(ManagerUp)
	prometheus.MustRegister(ManagerLeader)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
