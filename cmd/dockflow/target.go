package main

import (
	"fmt"

	"github.com/dockflow/dockflow/pkg/ansible"
	"github.com/dockflow/dockflow/pkg/executor"
	"github.com/dockflow/dockflow/pkg/failover"
	"github.com/dockflow/dockflow/pkg/probe"
	"github.com/dockflow/dockflow/pkg/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target <environment>",
	Short: "Resolve the active deployment target for an environment",
	Long: `Resolve the active deployment target for an environment.

With a single declared manager the target is used directly. With peer
managers each one is probed over SSH in declaration order: the first
leader wins, a reachable non-leader is kept as fallback, and unreachable
managers are reported.

Examples:
  # Resolve the production target
  dockflow target production

  # Pin a specific server instead of probing
  dockflow target production --server backup

  # Write the Ansible hand-off files for the selected target
  dockflow target production --write-context`,
	Args: cobra.ExactArgs(1),
	RunE: runTarget,
}

func init() {
	targetCmd.Flags().String("server", "", "Use this server instead of probing for one")
	targetCmd.Flags().Bool("no-prefer-leader", false, "Probe every manager instead of stopping at the first leader")
	targetCmd.Flags().Bool("write-context", false, "Write the Ansible context and key files for the target")
	targetCmd.Flags().String("context-path", ansible.DefaultContextPath, "Ansible context file path")
	targetCmd.Flags().String("key-path", ansible.DefaultKeyPath, "SSH key file path")

	rootCmd.AddCommand(targetCmd)
}

func runTarget(cmd *cobra.Command, args []string) error {
	tag := args[0]

	r, err := newResolver(cmd)
	if err != nil {
		return err
	}

	pinned, _ := cmd.Flags().GetString("server")
	noPreferLeader, _ := cmd.Flags().GetBool("no-prefer-leader")

	var manager *types.ResolvedServer
	var status types.ManagerStatus
	var failed []string

	switch {
	case pinned != "":
		server, ok := r.ResolveByName(pinned, tag)
		if !ok {
			return fmt.Errorf("server %q did not resolve for environment %q", pinned, tag)
		}
		manager = server
		status = types.ManagerStatusReachable

	default:
		dep, ok := r.ResolveDeployment(tag)
		if !ok {
			return fmt.Errorf("no manager resolved for environment %q (available: %s)",
				tag, availableEnvironments(r))
		}

		if !dep.HasPeers() {
			manager = dep.Manager
			status = types.ManagerStatusReachable
		} else {
			selector := failover.NewSelector(r, probe.NewSwarmProber(executor.NewSSH()))
			selector.PreferLeader = !noPreferLeader

			result := selector.SelectActive(cmd.Context(), tag, dep.Managers)
			if result == nil {
				return fmt.Errorf("no reachable manager for environment %q", tag)
			}
			manager = result.Manager
			status = result.Status
			failed = result.FailedManagers
		}
	}

	fmt.Printf("Target: %s (%s) %s@%s:%d\n", manager.Name, status, manager.User, manager.Host, manager.Port)
	for _, diag := range failed {
		fmt.Printf("  skipped: %s\n", diag)
	}

	writeContext, _ := cmd.Flags().GetBool("write-context")
	if writeContext {
		return writeHandoff(cmd, tag, r, manager)
	}
	return nil
}

func writeHandoff(cmd *cobra.Command, tag string, r credentialResolver, manager *types.ResolvedServer) error {
	cred, ok := r.CredentialFor(tag, manager)
	if !ok {
		return fmt.Errorf("no SSH key resolved for server %q", manager.Name)
	}

	contextPath, _ := cmd.Flags().GetString("context-path")
	keyPath, _ := cmd.Flags().GetString("key-path")
	runID := uuid.New().String()[:8]

	ctx := ansible.NewContext(tag, manager, cred, runID)
	if err := ctx.Write(contextPath); err != nil {
		return err
	}
	if err := ansible.WriteKeyFile(keyPath, cred.PrivateKey); err != nil {
		return err
	}

	fmt.Printf("✓ Context written: %s (run %s)\n", contextPath, runID)
	fmt.Printf("✓ Key written: %s\n", keyPath)
	return nil
}

// credentialResolver is the slice of the resolver the hand-off needs
type credentialResolver interface {
	CredentialFor(tag string, server *types.ResolvedServer) (*types.ConnectionCredential, bool)
}
