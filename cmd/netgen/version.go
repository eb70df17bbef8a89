package main

import (
	"github.com/spf13/cobra"

	"go.eggybyte.com/netgen/internal/ui"
	"go.eggybyte.com/netgen/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show netgen version information",
		Long: `Display version information for netgen.

This command shows:
  • CLI version, git commit hash, and build timestamp
  • Targeted .NET Framework version
  • Go runtime version`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if ui.JSONOutput() {
				ui.Result(version.Get())
				return
			}
			ui.Raw(version.GetFullVersionInfo() + "\n")
		},
	}
}
