package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dockflow/dockflow/pkg/executor"
	"github.com/dockflow/dockflow/pkg/log"
	"github.com/dockflow/dockflow/pkg/metrics"
	"github.com/dockflow/dockflow/pkg/probe"
	"github.com/dockflow/dockflow/pkg/resolver"
	"github.com/dockflow/dockflow/pkg/types"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <environment>",
	Short: "Continuously probe an environment's managers and serve metrics",
	Long: `Continuously probe an environment's managers and serve metrics.

Every interval each declared manager is probed over SSH and its
reachability and leadership are published as Prometheus gauges on the
metrics endpoint. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("interval", 30*time.Second, "Time between probe cycles")
	watchCmd.Flags().String("metrics-addr", ":9090", "Address for the Prometheus metrics endpoint")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	tag := args[0]

	r, err := newResolver(cmd)
	if err != nil {
		return err
	}

	interval, _ := cmd.Flags().GetDuration("interval")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	logger := log.WithComponent("watch")

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	server := &http.Server{Addr: metricsAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("metrics server failed")
		}
	}()
	logger.Info().Str("addr", metricsAddr).Msg("serving metrics")

	prober := probe.NewSwarmProber(executor.NewSSH())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Probe immediately on start
	probeCycle(cmd, tag, r, prober)

	for {
		select {
		case <-ticker.C:
			probeCycle(cmd, tag, r, prober)
		case sig := <-sigCh:
			logger.Info().Str("signal", sig.String()).Msg("shutting down")
			return server.Close()
		case <-cmd.Context().Done():
			return server.Close()
		}
	}
}

func probeCycle(cmd *cobra.Command, tag string, r *resolver.Resolver, prober probe.Prober) {
	logger := log.WithEnvironment(tag)

	dep, ok := r.ResolveDeployment(tag)
	if !ok {
		logger.Warn().Msg("no manager resolved, skipping cycle")
		return
	}

	for _, manager := range dep.Managers {
		cred, ok := r.CredentialFor(tag, manager)
		if !ok {
			metrics.ManagerUp.WithLabelValues(tag, manager.Name).Set(0)
			metrics.ManagerLeader.WithLabelValues(tag, manager.Name).Set(0)
			continue
		}

		status := prober.Probe(cmd.Context(), cred)
		metrics.ManagerUp.WithLabelValues(tag, manager.Name).Set(boolGauge(status != types.ManagerStatusUnreachable))
		metrics.ManagerLeader.WithLabelValues(tag, manager.Name).Set(boolGauge(status == types.ManagerStatusLeader))

		logger.Debug().Str("manager", manager.Name).Str("status", string(status)).Msg("probed manager")
	}
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
