// Package main provides the skinweights CLI: it generates a grid mesh, runs
// the weight kernels over a falloff selection and verifies the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "skinweights",
		Short: "Skinning weight smoothing and editing kernels",
		Long: `skinweights runs the vertex weight kernels over a generated grid mesh.

Operations:
  • smooth    edge-weighted diffusion toward neighbor weights
  • smear     interpolate one group toward a target value
  • harden    push one group away from 0.5
  • add       offset one group and rescale the others around it
  • binarize  keep only the strongest group per vertex`,
		SilenceUsage: true,
	}

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "skinweights v%s (%s)\n", version, commit)
		},
	})

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one operation on the centre of a generated grid",
		RunE:  runRun,
	}
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Run every operation once and verify storage invariants",
		RunE:  runCheck,
	}
	addRunFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)

	return rootCmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "YAML config file (SKINWEIGHTS_* variables override it)")
	cmd.Flags().Int("rows", 0, "Grid rows")
	cmd.Flags().Int("cols", 0, "Grid columns")
	cmd.Flags().Float64("spacing", 0, "Distance between neighboring grid vertices")
	cmd.Flags().Int("groups", 0, "Influence groups in the generated gradient")
	cmd.Flags().Float64("jitter", 0, "Random z offset amplitude")
	cmd.Flags().String("op", "", "Operation: smooth, smear, harden, add or binarize")
	cmd.Flags().Float64("factor", 0, "Smoothing or edit factor")
	cmd.Flags().Int("iterations", 0, "Smoothing passes")
	cmd.Flags().Int("group", 0, "Active group for smear, harden and add")
	cmd.Flags().Float64("target", 0, "Smear target or add offset")
	cmd.Flags().Int("falloff-steps", 0, "Falloff rings around the selected vertex")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")
}
