package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "./configs/configs.yml"

func main() {
	rootCmd := &cobra.Command{
		Use:   "logbaseline",
		Short: "Compare daily log counts against their historical baselines",
		Long: `logbaseline counts logs on the observability platform over the last 24 hours
and compares them with business-day and weekend averages over the past weeks.

Credentials are read from <PREFIX>_API_KEY and <PREFIX>_APP_KEY for each
environment's credentials_prefix.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", defaultConfigPath, "config file path")

	rootCmd.AddCommand(
		fetchCmd(),
		reportCmd(),
		heatmapCmd(),
		breakdownCmd(),
		podLogsCmd(),
		historyCmd(),
		serveCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
