// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the gridup CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridup",
		Short: "Provision and tear down a compute cluster with a shared distributed filesystem",
	}

	cmd.AddCommand(Up())
	cmd.AddCommand(UpFull())
	cmd.AddCommand(Down())
	cmd.AddCommand(DownFull())
	cmd.AddCommand(Version())

	return cmd
}
