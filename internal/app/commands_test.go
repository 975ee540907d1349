package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"log-baseline/internal/models"
	"log-baseline/internal/pipelines"
	pipelinemocks "log-baseline/internal/pipelines/mocks"
	"log-baseline/internal/reports"
	"log-baseline/internal/shared/configs"
	"log-baseline/internal/shared/filestorages"
	"log-baseline/internal/shared/loggers"
	storemocks "log-baseline/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var commandNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

type appFixture struct {
	app       *App
	outputDir string
	reports   *pipelinemocks.MockReportPipeline
	podLogs   *pipelinemocks.MockPodLogPipeline
	history   *storemocks.MockHistoryStore
}

func newAppFixture(t *testing.T) *appFixture {
	ctrl := gomock.NewController(t)
	outputDir := t.TempDir()
	outputs, err := filestorages.NewFileStorage(outputDir)
	require.NoError(t, err)

	f := &appFixture{
		outputDir: outputDir,
		reports:   pipelinemocks.NewMockReportPipeline(ctrl),
		podLogs:   pipelinemocks.NewMockPodLogPipeline(ctrl),
		history:   storemocks.NewMockHistoryStore(ctrl),
	}
	f.app = &App{
		config:         &configs.Config{Report: configs.ReportConfig{OutputDir: outputDir}},
		appLogger:      loggers.Nop(),
		now:            func() time.Time { return commandNow },
		outputs:        outputs,
		history:        f.history,
		reportPipeline: f.reports,
		podLogPipeline: f.podLogs,
		deviationOpts:  pipelines.DeviationOptions{Mode: models.DeviationPercent, Alpha: 1, Baseline: pipelines.BaselineBusiness},
		markdown:       reports.NewMarkdownRenderer(),
		heatmap:        reports.NewHeatmapRenderer(),
		breakdown:      reports.NewBreakdownRenderer(),
		podLogs:        reports.NewPodLogRenderer(),
		histories:      reports.NewHistoryRenderer(),
	}
	return f
}

func commandSnapshot() *models.Snapshot {
	prod := models.NewEnvironmentReport("prod")
	prod.Current["los_504"] = models.AggregateResult{MetricName: "los_504", Count: 15}
	prod.Business["los_504"] = models.WindowSummary{MetricName: "los_504", Total: 100, DayCount: 10, Average: 10}
	prod.Synthetics["abc-123"] = models.SyntheticSummary{TestID: "abc-123", Total: 3, Passed: 2, Failed: 1}
	return &models.Snapshot{
		RunID:        "01JABCDEF0123456789ABCDEFG",
		GeneratedAt:  commandNow,
		WeeksBack:    2,
		Environments: []*models.EnvironmentReport{prod},
		Skipped:      []models.SkippedEnvironment{{Environment: "staging", Reason: "missing credentials"}},
	}
}

func commandDeviations() []models.EnvironmentDeviations {
	return []models.EnvironmentDeviations{{
		Environment: "prod",
		Baseline:    models.DayBusiness,
		Results:     []models.DeviationResult{{MetricName: "los_504", Current: 15, Baseline: 10, Mode: models.DeviationPercent, Deviation: 50}},
	}}
}

func TestApp_Fetch(t *testing.T) {
	t.Parallel()

	f := newAppFixture(t)
	opts := pipelines.RunOptions{Environments: []string{"prod"}}
	f.reports.EXPECT().Run(gomock.Any(), opts).Return(commandSnapshot(), nil)

	var buf bytes.Buffer
	snapshot, err := f.app.Fetch(context.Background(), &buf, opts)
	require.NoError(t, err)
	assert.Equal(t, "01JABCDEF0123456789ABCDEFG", snapshot.RunID)

	out := buf.String()
	assert.Contains(t, out, "prod los_504: 24h=15 business_avg=10 weekend_avg=n/a")
	assert.Contains(t, out, "prod synthetic abc-123: passed=2 failed=1")
	assert.Contains(t, out, "staging skipped: missing credentials")
}

func TestApp_Report(t *testing.T) {
	t.Parallel()

	f := newAppFixture(t)
	snapshot := commandSnapshot()
	f.reports.EXPECT().Run(gomock.Any(), pipelines.RunOptions{}).Return(snapshot, nil)
	f.reports.EXPECT().Deviations(snapshot, f.app.deviationOpts).Return(commandDeviations(), nil)

	path, err := f.app.Report(context.Background(), pipelines.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.outputDir, "report-2026-10-19.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Daily Log Report 2026-10-19")
	assert.Contains(t, string(content), "+50%")
}

func TestApp_Report_RunFailureWritesNothing(t *testing.T) {
	t.Parallel()

	f := newAppFixture(t)
	f.reports.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	_, err := f.app.Report(context.Background(), pipelines.RunOptions{})
	assert.ErrorIs(t, err, assert.AnError)

	entries, err := os.ReadDir(f.outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApp_Heatmap_UsesConfiguredMetrics(t *testing.T) {
	t.Parallel()

	f := newAppFixture(t)
	f.app.config.Report.HeatmapMetrics = []string{"los_504", "los_502"}
	snapshot := commandSnapshot()
	f.reports.EXPECT().Run(gomock.Any(), gomock.Any()).Return(snapshot, nil)
	f.reports.EXPECT().Deviations(snapshot, gomock.Any()).Return(commandDeviations(), nil)

	var buf bytes.Buffer
	require.NoError(t, f.app.Heatmap(context.Background(), &buf, pipelines.RunOptions{}))
	assert.Contains(t, buf.String(), "los_502")
	assert.Contains(t, buf.String(), "15 (+50%)")
}

func TestApp_Breakdown(t *testing.T) {
	t.Parallel()

	f := newAppFixture(t)
	breakdown := models.NewDailyBreakdown("los_504")
	breakdown.Add("2026-10-19", 7)
	f.reports.EXPECT().Breakdown(gomock.Any(), "prod", "los_504").Return(breakdown, nil)

	var buf bytes.Buffer
	require.NoError(t, f.app.Breakdown(context.Background(), &buf, "prod", "los_504"))
	assert.Contains(t, buf.String(), "los_504 per day (1 days, total 7)")
}

func TestApp_PodLogs(t *testing.T) {
	t.Parallel()

	f := newAppFixture(t)
	dump := &models.PodLogDump{
		RunID:       "01JABCDEF0123456789ABCDEFG",
		Environment: "prod",
		Pod:         "api-7f9c",
		Entries: []models.LogEntry{{
			ID:         "a",
			Timestamp:  commandNow.Add(-time.Minute),
			Attributes: map[string]any{"status": "error", "message": "upstream timed out"},
		}},
	}
	f.podLogs.EXPECT().Run(gomock.Any(), "prod", "api-7f9c", 6*time.Hour).
		Return(&pipelines.PodLogResult{Dump: dump, Key: "pod-logs/prod/api-7f9c/01JABCDEF0123456789ABCDEFG.json"}, nil)

	result, err := f.app.PodLogs(context.Background(), "prod", "api-7f9c", 6*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Entries)
	assert.Equal(t, "pod-logs/prod/api-7f9c/01JABCDEF0123456789ABCDEFG.json", result.DumpKey)
	assert.Equal(t, filepath.Join(f.outputDir, "pod-logs-api-7f9c-20261019T150000Z.txt"), result.ReportPath)

	content, err := os.ReadFile(result.ReportPath)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19T14:59:00.000Z - error - upstream timed out\n", string(content))
}

func TestApp_History(t *testing.T) {
	t.Parallel()

	f := newAppFixture(t)
	f.history.EXPECT().List(gomock.Any(), "prod", "los_504", 20).Return([]models.HistoryRecord{{
		RunID:       "01JABCDEF0123456789ABCDEFG",
		Environment: "prod",
		MetricName:  "los_504",
		Category:    models.DayBusiness,
		Total:       100,
		DayCount:    10,
		Average:     10,
		RecordedAt:  commandNow,
	}}, nil)

	var buf bytes.Buffer
	require.NoError(t, f.app.History(context.Background(), &buf, "prod", "los_504", 20))
	assert.Contains(t, buf.String(), "01JABCDEF0123456789ABCDEFG")
}
