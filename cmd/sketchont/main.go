// Package main provides the sketchont command line: resolve diagram model
// files into ontology models from a shell or a build step.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "sketchont"
)

// BuildTime is set by the linker.
var BuildTime = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Resolve hand-drawn ontology diagrams",
		Long: `sketchont turns the shapes of a parsed ontology diagram into a resolved
model: attribute blocks anchored on their classes, edges attached to their
owners, individuals typed, and property characteristics applied.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(resolveCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})
	return cmd
}
