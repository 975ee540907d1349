package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"log-baseline/internal/models"
	"log-baseline/internal/pipelines"
	"log-baseline/internal/reports"
	"log-baseline/internal/shared/filestorages"
	"log-baseline/internal/shared/loggers"
)

const componentPipeline = "pipeline"

// Fetch runs (or loads) a snapshot and prints every current count with its baselines.
func (app *App) Fetch(ctx context.Context, w io.Writer, opts pipelines.RunOptions) (*models.Snapshot, error) {
	ctx = app.withComponent(ctx, componentPipeline)
	snapshot, err := app.reportPipeline.Run(ctx, opts)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "run %s at %s\n", snapshot.RunID, snapshot.GeneratedAt.UTC().Format(time.RFC3339))
	for _, env := range snapshot.Environments {
		for _, metric := range env.Metrics() {
			current, _ := env.CurrentCount(metric)
			fmt.Fprintf(w, "%s %s: 24h=%d business_avg=%s weekend_avg=%s\n",
				env.Environment, metric, current,
				averageOf(env.BusinessSummary(metric)), averageOf(env.WeekendSummary(metric)))
		}
		for _, id := range env.SyntheticTests() {
			s := env.Synthetics[id]
			fmt.Fprintf(w, "%s synthetic %s: passed=%d failed=%d\n", env.Environment, id, s.Passed, s.Failed)
		}
	}
	for _, s := range snapshot.Skipped {
		fmt.Fprintf(w, "%s skipped: %s\n", s.Environment, s.Reason)
	}
	return snapshot, nil
}

// Report writes the markdown daily report into the output directory and returns its path.
func (app *App) Report(ctx context.Context, opts pipelines.RunOptions) (string, error) {
	ctx = app.withComponent(ctx, componentPipeline)
	snapshot, devs, err := app.runWithDeviations(ctx, opts)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := app.markdown.Render(&buf, &reports.DailyReport{Date: app.now(), Snapshot: snapshot, Deviations: devs}); err != nil {
		return "", err
	}
	return app.writeOutput(ctx, reports.ReportFileName(app.now()), &buf)
}

// Heatmap renders environments against metrics. Configured heatmap metrics restrict the columns.
func (app *App) Heatmap(ctx context.Context, w io.Writer, opts pipelines.RunOptions) error {
	ctx = app.withComponent(ctx, componentPipeline)
	snapshot, devs, err := app.runWithDeviations(ctx, opts)
	if err != nil {
		return err
	}

	metrics := app.config.Report.HeatmapMetrics
	if len(metrics) == 0 {
		metrics = snapshot.Metrics()
	}
	return app.heatmap.Render(w, snapshot, devs, metrics)
}

// Breakdown renders the per-day counts of one metric over the lookback window.
func (app *App) Breakdown(ctx context.Context, w io.Writer, environment, metric string) error {
	ctx = app.withComponent(ctx, componentPipeline)
	breakdown, err := app.reportPipeline.Breakdown(ctx, environment, metric)
	if err != nil {
		return err
	}
	return app.breakdown.Render(w, breakdown)
}

// PodLogResult locates the outputs of a pod log dump.
type PodLogResult struct {
	DumpKey    string
	ReportPath string
	Entries    int
}

// PodLogs dumps the logs of one pod and writes the text report next to the other outputs.
func (app *App) PodLogs(ctx context.Context, environment, pod string, lookback time.Duration) (*PodLogResult, error) {
	ctx = app.withComponent(ctx, componentPipeline)
	result, err := app.podLogPipeline.Run(ctx, environment, pod, lookback)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := app.podLogs.Render(&buf, result.Dump.Entries); err != nil {
		return nil, err
	}
	path, err := app.writeOutput(ctx, reports.PodLogFileName(result.Dump.Pod, app.now()), &buf)
	if err != nil {
		return nil, err
	}
	return &PodLogResult{DumpKey: result.Key, ReportPath: path, Entries: len(result.Dump.Entries)}, nil
}

// History prints the recorded window summaries of one environment, optionally one metric.
func (app *App) History(ctx context.Context, w io.Writer, environment, metric string, limit int) error {
	records, err := app.history.List(ctx, environment, metric, limit)
	if err != nil {
		return err
	}
	return app.histories.Render(w, records)
}

func (app *App) runWithDeviations(ctx context.Context, opts pipelines.RunOptions) (*models.Snapshot, []models.EnvironmentDeviations, error) {
	snapshot, err := app.reportPipeline.Run(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	devs, err := app.reportPipeline.Deviations(snapshot, app.deviationOpts)
	if err != nil {
		return nil, nil, err
	}
	return snapshot, devs, nil
}

func (app *App) writeOutput(ctx context.Context, name string, r io.Reader) (string, error) {
	res, err := app.outputs.Put(ctx, name, r, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	path := filepath.Join(app.config.Report.OutputDir, filepath.FromSlash(res.FileKey))
	loggers.Ctx(ctx).Info().Str("path", path).Msg("wrote output")
	return path, nil
}

func averageOf(s models.WindowSummary, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%d", s.Average)
}
