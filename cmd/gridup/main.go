// Package main is the entry point for the gridup CLI.
//
// gridup provisions and tears down a compute cluster of master and
// execution hosts, with optional full lifecycles that also create or
// destroy the underlying disks. Each created host bootstraps itself into
// the shared distributed filesystem on first boot.
//
// Commands: up, down, version.
package main

import (
	"fmt"
	"os"

	"github.com/mattgen/gridup/cmd/gridup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
