package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wavelink-comms/wavelink-auth/cmd/wavelink-auth/common"
	"github.com/wavelink-comms/wavelink-auth/cmd/wavelink-auth/signature"
	"github.com/wavelink-comms/wavelink-auth/cmd/wavelink-auth/token"
	"github.com/wavelink-comms/wavelink-auth/cmd/wavelink-auth/version"
)

func newRootCmd() *cobra.Command {
	// Shared flags struct
	flags := &common.Flags{}

	rootCmd := &cobra.Command{
		Use:   "wavelink-auth",
		Short: "Wavelink API credential and signing tool",
		Long: `Wavelink Auth generates application JWTs and request signatures
for the Wavelink communications API from locally held credentials.

Credentials come from a config file, environment variables, or flags,
with later sources taking precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", "json", "Log format (json, console)")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.APIKey, "api-key", "", "Wavelink API key")
	rootCmd.PersistentFlags().StringVar(&flags.APISecret, "api-secret", "", "Wavelink API secret")

	// Subcommands
	rootCmd.AddCommand(version.NewCommand())
	rootCmd.AddCommand(token.NewCommand(flags))
	rootCmd.AddCommand(signature.NewCommand(flags))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
