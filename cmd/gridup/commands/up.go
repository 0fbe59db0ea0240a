package commands

import (
	"github.com/spf13/cobra"

	"github.com/mattgen/gridup/cmd/gridup/handlers"
)

// Up returns the up command.
//
// Up creates every master host, then every execution host, embedding the
// bootstrap metadata each node needs to join the shared filesystem. With
// --full it also creates the per-host disks first; without it, the
// instances attach disks that already exist from a previous full run.
func Up() *cobra.Command {
	var (
		configPath string
		full       bool
	)

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Create the cluster's master and execution hosts",
		Long: `Up creates the cluster hosts in dependency order: master hosts
first, then execution hosts. Each instance is created with its disk set
attached and metadata naming the cluster master, which the node's boot
agent uses to form or join the shared volume.

Creation is fail-fast: the first provider error aborts the run. A
partially-created cluster is cleaned up with a down pass.

Example:
  gridup up -c gridup.yaml
  gridup up --full -c gridup.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), configPath, full)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "gridup.yaml", "Path to cluster configuration file")
	cmd.Flags().BoolVar(&full, "full", false, "Also create boot, data and resource disks")

	return cmd
}

// UpFull returns the up-full command, the operation-token spelling of
// `up --full`.
func UpFull() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:    "up-full",
		Short:  "Create the cluster hosts and their disks",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Up(cmd.Context(), configPath, true)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "gridup.yaml", "Path to cluster configuration file")

	return cmd
}
