package commands

import (
	"github.com/spf13/cobra"

	"github.com/mattgen/gridup/cmd/gridup/handlers"
)

// Down returns the down command.
//
// Down deletes every execution host before any master host: the shared
// resource disk stays attached read-only to execution hosts, and the
// provider cannot release it while any attachment is live. Without
// --full all disks are preserved, so a later plain up reuses them;
// disks are the costly resource and destroying them is always explicit.
func Down() *cobra.Command {
	var (
		configPath string
		full       bool
	)

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Delete the cluster's hosts, preserving disks",
		Long: `Down deletes the cluster hosts in reverse dependency order:
execution hosts first, then master hosts. Disks are preserved unless
--full is given.

Teardown is fail-soft: resources that are already gone are reported as
warnings and the run continues, so down can be re-run safely against a
partially-torn-down cluster.

Example:
  gridup down -c gridup.yaml
  gridup down --full -c gridup.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Down(cmd.Context(), configPath, full)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "gridup.yaml", "Path to cluster configuration file")
	cmd.Flags().BoolVar(&full, "full", false, "Also delete boot, data and resource disks")

	return cmd
}

// DownFull returns the down-full command, the operation-token spelling
// of `down --full`.
func DownFull() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:    "down-full",
		Short:  "Delete the cluster hosts and their disks",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Down(cmd.Context(), configPath, true)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "gridup.yaml", "Path to cluster configuration file")

	return cmd
}
