package main

import (
	"fmt"
	"os"

	"github.com/dockflow/dockflow/pkg/inventory"
	"github.com/dockflow/dockflow/pkg/log"
	"github.com/dockflow/dockflow/pkg/resolver"
	"github.com/dockflow/dockflow/pkg/secrets"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dockflow",
	Short: "Dockflow - deployment target resolution for Docker Swarm over SSH",
	Long: `Dockflow resolves a declarative server inventory plus layered
credential overrides into a concrete, authenticated, currently-reachable
deployment target: a Swarm manager, optionally with peer managers and
workers.

Connection secrets come from the process environment using the
{ENV}_{SERVER}_{VAR} / {ENV}_{VAR} naming scheme, so CI systems can
override any value without touching the checked-in inventory file.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		jsonOut, _ := cmd.Flags().GetBool("log-json")
		log.Init(log.Config{
			Level:      log.Level(level),
			JSONOutput: jsonOut,
		})
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Dockflow version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().StringP("inventory", "i", "servers.yml", "Path to the server inventory file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log in JSON format")

	rootCmd.AddCommand(environmentsCmd)
	rootCmd.AddCommand(serversCmd)
}

// newResolver loads the inventory and wires it to the process
// environment as the override source
func newResolver(cmd *cobra.Command) (*resolver.Resolver, error) {
	path, _ := cmd.Flags().GetString("inventory")
	inv, err := inventory.Load(path)
	if err != nil {
		return nil, err
	}
	return resolver.New(inv, secrets.FromEnviron(os.Environ())), nil
}

var environmentsCmd = &cobra.Command{
	Use:   "environments",
	Short: "List environments declared in the inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver(cmd)
		if err != nil {
			return err
		}
		for _, name := range r.EnvironmentNames() {
			fmt.Println(name)
		}
		return nil
	},
}

var serversCmd = &cobra.Command{
	Use:   "servers <environment>",
	Short: "List resolved servers for an environment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newResolver(cmd)
		if err != nil {
			return err
		}

		tag := args[0]
		servers := r.ResolveForEnvironment(tag)
		if len(servers) == 0 {
			return fmt.Errorf("no servers resolved for environment %q (available: %s)",
				tag, availableEnvironments(r))
		}

		for _, s := range servers {
			fmt.Printf("%-20s %-8s %s@%s:%d\n", s.Name, s.Role, s.User, s.Host, s.Port)
		}
		return nil
	},
}

func availableEnvironments(r *resolver.Resolver) string {
	names := r.EnvironmentNames()
	if len(names) == 0 {
		return "none declared"
	}
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}
