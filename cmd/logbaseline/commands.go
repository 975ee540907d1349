package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log-baseline/internal/app"
	"log-baseline/internal/pipelines"
	"log-baseline/internal/shared/configs"
	"log-baseline/internal/timeranges"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// withApp loads the config, builds the app and closes it once run returns.
func withApp(cmd *cobra.Command, run func(ctx context.Context, application *app.App) error) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()
	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := application.Close(closeCtx); err != nil {
			closeLogger := application.Logger()
			closeLogger.Warn().Err(err).Msg("failed to close app")
		}
	}()

	logger := application.Logger()
	if err := run(logger.WithContext(ctx), application); err != nil {
		logger.Error().Err(err).Str("command", cmd.Name()).Msg("command failed")
		return err
	}
	return nil
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("env", "e", nil, "environments to include (default all)")
	cmd.Flags().StringSliceP("metrics", "m", nil, "metric name glob patterns to include (default all)")
	cmd.Flags().Bool("saved", false, "use the latest saved snapshot instead of querying the platform")
}

func runOptions(cmd *cobra.Command) pipelines.RunOptions {
	envs, _ := cmd.Flags().GetStringSlice("env")
	metrics, _ := cmd.Flags().GetStringSlice("metrics")
	saved, _ := cmd.Flags().GetBool("saved")
	return pipelines.RunOptions{Environments: envs, Metrics: metrics, Saved: saved}
}

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Query current counts and baselines and save them as a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, application *app.App) error {
				_, err := application.Fetch(ctx, cmd.OutOrStdout(), runOptions(cmd))
				return err
			})
		},
	}
	addRunFlags(cmd)
	return cmd
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the markdown daily report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, application *app.App) error {
				path, err := application.Report(ctx, runOptions(cmd))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}
	addRunFlags(cmd)
	return cmd
}

func heatmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Print environments against metrics coloured by deviation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, application *app.App) error {
				return application.Heatmap(ctx, cmd.OutOrStdout(), runOptions(cmd))
			})
		},
	}
	addRunFlags(cmd)
	return cmd
}

func breakdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown <environment> <metric>",
		Short: "Chart the per-day counts of one metric over the lookback window",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, application *app.App) error {
				return application.Breakdown(ctx, cmd.OutOrStdout(), args[0], args[1])
			})
		},
	}
}

func podLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pod-logs <environment> <pod>",
		Short: "Dump every log of one pod and write a text report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("lookback")
			lookback, err := timeranges.ParseLookback(raw)
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, application *app.App) error {
				result, err := application.PodLogs(ctx, args[0], args[1], lookback)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d entries\ndump: %s\nreport: %s\n", result.Entries, result.DumpKey, result.ReportPath)
				return nil
			})
		},
	}
	cmd.Flags().String("lookback", "6h", "how far back to fetch, e.g. 90m, 6h or 2d")
	return cmd
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history <environment> [metric]",
		Short: "List recorded baseline summaries",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			metric := ""
			if len(args) == 2 {
				metric = args[1]
			}
			return withApp(cmd, func(ctx context.Context, application *app.App) error {
				return application.History(ctx, cmd.OutOrStdout(), args[0], metric, limit)
			})
		},
	}
	cmd.Flags().Int("limit", 50, "maximum rows")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the read API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := configs.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			application, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			serverErr := make(chan error, 1)
			go func() {
				serverErr <- application.Start()
			}()

			select {
			case err := <-serverErr:
				_ = application.Close(context.Background())
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server failed: %w", err)
			case <-cmd.Context().Done():
			}

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := application.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			return nil
		},
	}
}
