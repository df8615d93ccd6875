package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "buildgen",
		Short: "Tabular-data-driven virtual building generator",
	}

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "structured log output on stderr")

	rootCmd.AddCommand(generateCmd(&verbose))
	rootCmd.AddCommand(validateCmd(&verbose))
	rootCmd.AddCommand(estimateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Run the full pipeline and emit the building data model",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], *verbose)
		},
	}
}

func validateCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Run the pipeline for its diagnostics only",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], *verbose)
		},
	}
}

func estimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate [project-path]",
		Short: "Estimate archetype envelope geometry without zoning rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEstimate(args[0])
		},
	}
}
