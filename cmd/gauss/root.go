package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gauss",
		Short: "Gauss - arithmetic on one-dimensional Gaussian distributions",
		Long: `Gauss evaluates, combines and samples one-dimensional Gaussian
distributions.

Distributions are written as N(mean, variance), for example "N(0, 1)".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newQueryCommand(queryPDF))
	cmd.AddCommand(newQueryCommand(queryCDF))
	cmd.AddCommand(newQueryCommand(queryPPF))
	cmd.AddCommand(newCombineCommand())
	cmd.AddCommand(newSampleCommand())
	cmd.AddCommand(newDescribeCommand())
	cmd.AddCommand(newEvalCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
