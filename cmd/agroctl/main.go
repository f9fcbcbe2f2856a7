package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "agroctl",
		Short:         "AgroRent admin tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "config/config.dev.yaml", "Path to configuration file")

	rootCmd.AddCommand(
		migrateCmd(),
		rebuildRatingsCmd(),
		issueTokenCmd(),
	)
	return rootCmd
}
