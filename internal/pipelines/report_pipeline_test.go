package pipelines_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"log-baseline/internal/credentials"
	credentialmocks "log-baseline/internal/credentials/mocks"
	"log-baseline/internal/deviations"
	"log-baseline/internal/models"
	"log-baseline/internal/pipelines"
	"log-baseline/internal/platforms"
	platformmocks "log-baseline/internal/platforms/mocks"
	"log-baseline/internal/shared/configs"
	"log-baseline/internal/shared/svcerrors"
	"log-baseline/internal/stores"
	storemocks "log-baseline/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Monday 2026-10-19, mid-afternoon.
var pipelineNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return pipelineNow }

var currentRange = models.TimeRange{
	StartMs: pipelineNow.Add(-24 * time.Hour).UnixMilli(),
	EndMs:   pipelineNow.UnixMilli(),
}

var testCreds = &credentials.Credentials{APIKey: "api", AppKey: "app"}

func newTestConfig() *configs.Config {
	return &configs.Config{
		Platform: configs.PlatformConfig{Site: "datadoghq.com", PageSize: 1000},
		Lookback: configs.LookbackConfig{WeeksBack: 1},
		Environments: []configs.EnvironmentConfig{
			{
				Name:              "prod",
				CredentialsPrefix: "PROD",
				Queries: map[string]string{
					"los_504": "service:los status:504",
					"los_502": "service:los status:502",
				},
				SyntheticTests: []string{"abc-123"},
			},
			{
				Name:              "staging",
				CredentialsPrefix: "STAGING",
				Queries:           map[string]string{"los_504": "env:staging status:504"},
			},
		},
	}
}

func missingCredentials(env string) error {
	return fmt.Errorf("%w: %s", credentials.ErrMissingCredentials, env)
}

func clientFactory(client platforms.Client) pipelines.ClientFactory {
	return func(configs.EnvironmentConfig, *credentials.Credentials) platforms.Client { return client }
}

// dailyCounts answers 20 for the current 24h range and 5 for every calendar day.
func dailyCounts(_ context.Context, _ string, r models.TimeRange) (int64, error) {
	if r == currentRange {
		return 20, nil
	}
	return 5, nil
}

func TestReportPipeline_Run_SkipsMissingCredentials(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := credentialmocks.NewMockProvider(ctrl)
	client := platformmocks.NewMockClient(ctrl)
	snapshots := storemocks.NewMockSnapshotStore(ctrl)
	history := storemocks.NewMockHistoryStore(ctrl)

	cfg := newTestConfig()
	pipeline := pipelines.NewReportPipeline(cfg, provider, clientFactory(client), nil, snapshots, history, fixedClock)

	provider.EXPECT().Load(cfg.Environments[0]).Return(testCreds, nil)
	provider.EXPECT().Load(cfg.Environments[1]).Return(nil, missingCredentials("staging"))

	// One 24h count plus 5 business and 2 weekend days per metric.
	client.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(dailyCounts).Times(16)
	client.EXPECT().TestResults(gomock.Any(), "abc-123", currentRange.StartMs, currentRange.EndMs).
		Return(&platforms.SyntheticPage{
			Results: []models.SyntheticResult{
				{ResultID: "r3", Passed: true, CheckTime: currentRange.EndMs - 1000},
				{ResultID: "r2", Passed: false, CheckTime: currentRange.EndMs - 2000},
				{ResultID: "r1", Passed: true, CheckTime: currentRange.EndMs - 3000},
			},
			LastTimestampFetched: currentRange.StartMs,
		}, nil)

	var saved *models.Snapshot
	snapshots.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *models.Snapshot) error {
		saved = s
		return nil
	})
	history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(4, nil)

	snapshot, err := pipeline.Run(context.Background(), pipelines.RunOptions{})
	require.NoError(t, err)
	assert.Same(t, saved, snapshot)
	assert.NotEmpty(t, snapshot.RunID)
	assert.Equal(t, pipelineNow, snapshot.GeneratedAt)
	assert.Equal(t, 1, snapshot.WeeksBack)

	require.Len(t, snapshot.Skipped, 1)
	assert.Equal(t, "staging", snapshot.Skipped[0].Environment)

	prod, ok := snapshot.Environment("prod")
	require.True(t, ok)
	assert.Equal(t, []string{"los_502", "los_504"}, prod.Metrics())

	count, _ := prod.CurrentCount("los_504")
	assert.Equal(t, int64(20), count)
	business, _ := prod.BusinessSummary("los_504")
	assert.Equal(t, models.WindowSummary{MetricName: "los_504", Total: 25, DayCount: 5, Average: 5}, business)
	weekend, _ := prod.WeekendSummary("los_502")
	assert.Equal(t, models.WindowSummary{MetricName: "los_502", Total: 10, DayCount: 2, Average: 5}, weekend)

	synthetic := prod.Synthetics["abc-123"]
	assert.Equal(t, int64(3), synthetic.Total)
	assert.Equal(t, int64(2), synthetic.Passed)
	assert.Equal(t, int64(1), synthetic.Failed)
	assert.Equal(t, currentRange.EndMs-1000, synthetic.LastCheckTime)
}

func TestReportPipeline_Run_MetricAndEnvironmentFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := credentialmocks.NewMockProvider(ctrl)
	client := platformmocks.NewMockClient(ctrl)
	snapshots := storemocks.NewMockSnapshotStore(ctrl)

	cfg := newTestConfig()
	pipeline := pipelines.NewReportPipeline(cfg, provider, clientFactory(client), nil, snapshots, nil, fixedClock)

	provider.EXPECT().Load(cfg.Environments[0]).Return(testCreds, nil)
	client.EXPECT().Aggregate(gomock.Any(), "service:los status:504", gomock.Any()).DoAndReturn(dailyCounts).Times(8)
	client.EXPECT().TestResults(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&platforms.SyntheticPage{LastTimestampFetched: currentRange.StartMs}, nil)
	snapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := pipeline.Run(context.Background(), pipelines.RunOptions{
		Environments: []string{"prod"},
		Metrics:      []string{"*_504"},
	})
	require.NoError(t, err)
	require.Len(t, snapshot.Environments, 1)
	assert.Equal(t, []string{"los_504"}, snapshot.Environments[0].Metrics())
	assert.Empty(t, snapshot.Skipped)
}

func TestReportPipeline_Run_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     pipelines.RunOptions
		wantErr  error
		wantCode string
	}{
		{
			name:     "unknown environment",
			opts:     pipelines.RunOptions{Environments: []string{"qa"}},
			wantErr:  pipelines.ErrUnknownEnvironment,
			wantCode: "PIPE_1001",
		},
		{
			name:     "malformed glob",
			opts:     pipelines.RunOptions{Metrics: []string{"los_[504"}},
			wantErr:  pipelines.ErrInvalidMetricPattern,
			wantCode: "PIPE_1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			pipeline := pipelines.NewReportPipeline(newTestConfig(), credentialmocks.NewMockProvider(ctrl),
				clientFactory(platformmocks.NewMockClient(ctrl)), nil, storemocks.NewMockSnapshotStore(ctrl), nil, fixedClock)

			_, err := pipeline.Run(context.Background(), tt.opts)
			require.ErrorIs(t, err, tt.wantErr)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.Equal(t, "invalid_argument", svcErr.Category)
		})
	}
}

func TestReportPipeline_Run_UpstreamFailureAbortsRun(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := credentialmocks.NewMockProvider(ctrl)
	client := platformmocks.NewMockClient(ctrl)
	snapshots := storemocks.NewMockSnapshotStore(ctrl)

	cfg := newTestConfig()
	pipeline := pipelines.NewReportPipeline(cfg, provider, clientFactory(client), nil, snapshots, nil, fixedClock)

	provider.EXPECT().Load(gomock.Any()).Return(testCreds, nil)
	client.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), &platforms.APIError{StatusCode: 500})

	snapshot, err := pipeline.Run(context.Background(), pipelines.RunOptions{})
	require.Error(t, err)
	assert.Nil(t, snapshot)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "AGG_9000", svcErr.Code)
}

func TestReportPipeline_Run_HistoryFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := credentialmocks.NewMockProvider(ctrl)
	client := platformmocks.NewMockClient(ctrl)
	snapshots := storemocks.NewMockSnapshotStore(ctrl)
	history := storemocks.NewMockHistoryStore(ctrl)

	cfg := newTestConfig()
	cfg.Environments = cfg.Environments[1:]
	pipeline := pipelines.NewReportPipeline(cfg, provider, clientFactory(client), nil, snapshots, history, fixedClock)

	provider.EXPECT().Load(gomock.Any()).Return(testCreds, nil)
	client.EXPECT().Aggregate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(dailyCounts).Times(8)
	snapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(0, errors.New("database is locked"))

	snapshot, err := pipeline.Run(context.Background(), pipelines.RunOptions{})
	require.NoError(t, err)
	assert.Len(t, snapshot.Environments, 1)
}

func TestReportPipeline_Run_SnapshotSaveFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := credentialmocks.NewMockProvider(ctrl)
	snapshots := storemocks.NewMockSnapshotStore(ctrl)

	cfg := newTestConfig()
	pipeline := pipelines.NewReportPipeline(cfg, provider, clientFactory(platformmocks.NewMockClient(ctrl)), nil, snapshots, nil, fixedClock)

	provider.EXPECT().Load(gomock.Any()).Return(nil, missingCredentials("any")).Times(2)
	snapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := pipeline.Run(context.Background(), pipelines.RunOptions{})
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "PIPE_9000", svcErr.Code)
}

func TestReportPipeline_Run_Saved(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	snapshots := storemocks.NewMockSnapshotStore(ctrl)
	pipeline := pipelines.NewReportPipeline(newTestConfig(), credentialmocks.NewMockProvider(ctrl),
		clientFactory(platformmocks.NewMockClient(ctrl)), nil, snapshots, nil, fixedClock)

	prod := models.NewEnvironmentReport("prod")
	prod.Current["los_504"] = models.AggregateResult{MetricName: "los_504", Count: 1}
	prod.Current["los_502"] = models.AggregateResult{MetricName: "los_502", Count: 2}
	prod.Business["los_504"] = models.NewWindowSummary("los_504", 10, 5)
	staging := models.NewEnvironmentReport("staging")
	staging.Current["los_504"] = models.AggregateResult{MetricName: "los_504", Count: 3}

	snapshots.EXPECT().Load(gomock.Any(), stores.LatestRun).Return(&models.Snapshot{
		RunID:        "run-1",
		Environments: []*models.EnvironmentReport{prod, staging},
	}, nil)

	snapshot, err := pipeline.Run(context.Background(), pipelines.RunOptions{
		Saved:        true,
		Environments: []string{"prod"},
		Metrics:      []string{"los_504"},
	})
	require.NoError(t, err)
	assert.Equal(t, "run-1", snapshot.RunID)
	require.Len(t, snapshot.Environments, 1)
	assert.Equal(t, []string{"los_504"}, snapshot.Environments[0].Metrics())
	assert.Equal(t, int64(2), snapshot.Environments[0].Business["los_504"].Average)
}

func TestReportPipeline_Run_SavedNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	snapshots := storemocks.NewMockSnapshotStore(ctrl)
	pipeline := pipelines.NewReportPipeline(newTestConfig(), credentialmocks.NewMockProvider(ctrl),
		clientFactory(platformmocks.NewMockClient(ctrl)), nil, snapshots, nil, fixedClock)

	snapshots.EXPECT().Load(gomock.Any(), stores.LatestRun).Return(nil, fmt.Errorf("%w: latest", stores.ErrSnapshotNotFound))

	_, err := pipeline.Run(context.Background(), pipelines.RunOptions{Saved: true})
	assert.ErrorIs(t, err, stores.ErrSnapshotNotFound)
}

func deviationSnapshot(generatedAt time.Time) *models.Snapshot {
	prod := models.NewEnvironmentReport("prod")
	prod.Current["los_504"] = models.AggregateResult{MetricName: "los_504", Count: 150}
	prod.Current["los_502"] = models.AggregateResult{MetricName: "los_502", Count: 4}
	prod.Current["los_500"] = models.AggregateResult{MetricName: "los_500", Count: 9}
	prod.Business["los_504"] = models.NewWindowSummary("los_504", 1000, 10)
	prod.Business["los_502"] = models.NewWindowSummary("los_502", 0, 10)
	prod.Weekend["los_504"] = models.NewWindowSummary("los_504", 800, 4)
	prod.Weekend["los_502"] = models.NewWindowSummary("los_502", 8, 4)
	return &models.Snapshot{RunID: "run-1", GeneratedAt: generatedAt, Environments: []*models.EnvironmentReport{prod}}
}

func TestReportPipeline_Deviations(t *testing.T) {
	t.Parallel()

	sunday := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		generatedAt   time.Time
		opts          pipelines.DeviationOptions
		wantBaseline  models.DayCategory
		want504       float64
		wantUndefined []string
	}{
		{
			name:          "business percent",
			generatedAt:   pipelineNow,
			opts:          pipelines.DeviationOptions{Mode: models.DeviationPercent, Baseline: "business"},
			wantBaseline:  models.DayBusiness,
			want504:       50,
			wantUndefined: []string{"los_500", "los_502"},
		},
		{
			name:          "weekend percent",
			generatedAt:   pipelineNow,
			opts:          pipelines.DeviationOptions{Mode: models.DeviationPercent, Baseline: "weekend"},
			wantBaseline:  models.DayWeekend,
			want504:       -25,
			wantUndefined: []string{"los_500"},
		},
		{
			name:          "auto on a monday uses business days",
			generatedAt:   pipelineNow,
			opts:          pipelines.DeviationOptions{Mode: models.DeviationPercent, Baseline: "auto"},
			wantBaseline:  models.DayBusiness,
			want504:       50,
			wantUndefined: []string{"los_500", "los_502"},
		},
		{
			name:          "auto on a sunday uses weekend days",
			generatedAt:   sunday,
			opts:          pipelines.DeviationOptions{Mode: models.DeviationPercent, Baseline: "auto"},
			wantBaseline:  models.DayWeekend,
			want504:       -25,
			wantUndefined: []string{"los_500"},
		},
		{
			name:          "log ratio handles zero baseline",
			generatedAt:   pipelineNow,
			opts:          pipelines.DeviationOptions{Mode: models.DeviationLogRatio, Alpha: 1, Baseline: "business"},
			wantBaseline:  models.DayBusiness,
			want504:       math.Log10(151.0 / 101.0),
			wantUndefined: []string{"los_500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			pipeline := pipelines.NewReportPipeline(newTestConfig(), credentialmocks.NewMockProvider(ctrl),
				clientFactory(platformmocks.NewMockClient(ctrl)), nil, storemocks.NewMockSnapshotStore(ctrl), nil, fixedClock)

			devs, err := pipeline.Deviations(deviationSnapshot(tt.generatedAt), tt.opts)
			require.NoError(t, err)
			require.Len(t, devs, 1)
			assert.Equal(t, "prod", devs[0].Environment)
			assert.Equal(t, tt.wantBaseline, devs[0].Baseline)
			assert.Equal(t, tt.wantUndefined, devs[0].Undefined)

			res, ok := devs[0].Result("los_504")
			require.True(t, ok)
			assert.InDelta(t, tt.want504, res.Deviation, 1e-9)
			assert.Equal(t, tt.opts.Mode, res.Mode)
		})
	}
}

func TestReportPipeline_Deviations_Errors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	pipeline := pipelines.NewReportPipeline(newTestConfig(), credentialmocks.NewMockProvider(ctrl),
		clientFactory(platformmocks.NewMockClient(ctrl)), nil, storemocks.NewMockSnapshotStore(ctrl), nil, fixedClock)
	snapshot := deviationSnapshot(pipelineNow)

	_, err := pipeline.Deviations(snapshot, pipelines.DeviationOptions{Mode: models.DeviationPercent, Baseline: "holiday"})
	assert.ErrorIs(t, err, pipelines.ErrInvalidBaseline)

	_, err = pipeline.Deviations(snapshot, pipelines.DeviationOptions{Mode: models.DeviationLogRatio, Alpha: 0, Baseline: "business"})
	assert.ErrorIs(t, err, deviations.ErrInvalidAlpha)

	_, err = pipeline.Deviations(snapshot, pipelines.DeviationOptions{Mode: "median", Baseline: "business"})
	assert.ErrorIs(t, err, deviations.ErrUnknownMode)
}

func TestReportPipeline_Breakdown(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := credentialmocks.NewMockProvider(ctrl)
	client := platformmocks.NewMockClient(ctrl)

	cfg := newTestConfig()
	pipeline := pipelines.NewReportPipeline(cfg, provider, clientFactory(client), nil, storemocks.NewMockSnapshotStore(ctrl), nil, fixedClock)

	provider.EXPECT().Load(cfg.Environments[0]).Return(testCreds, nil)
	client.EXPECT().Aggregate(gomock.Any(), "service:los status:504", gomock.Any()).Return(int64(3), nil).Times(7)

	breakdown, err := pipeline.Breakdown(context.Background(), "prod", "los_504")
	require.NoError(t, err)
	assert.Equal(t, "los_504", breakdown.MetricName)
	assert.Equal(t, []string{
		"2026-10-13", "2026-10-14", "2026-10-15", "2026-10-16", "2026-10-17", "2026-10-18", "2026-10-19",
	}, breakdown.Dates())
	assert.Equal(t, int64(21), breakdown.Total())
}

func TestReportPipeline_Breakdown_Errors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := credentialmocks.NewMockProvider(ctrl)
	cfg := newTestConfig()
	pipeline := pipelines.NewReportPipeline(cfg, provider, clientFactory(platformmocks.NewMockClient(ctrl)), nil, storemocks.NewMockSnapshotStore(ctrl), nil, fixedClock)

	_, err := pipeline.Breakdown(context.Background(), "qa", "los_504")
	assert.ErrorIs(t, err, pipelines.ErrUnknownEnvironment)

	_, err = pipeline.Breakdown(context.Background(), "prod", "los_999")
	assert.ErrorIs(t, err, pipelines.ErrUnknownMetric)

	provider.EXPECT().Load(cfg.Environments[1]).Return(nil, missingCredentials("staging"))
	_, err = pipeline.Breakdown(context.Background(), "staging", "los_504")
	assert.ErrorIs(t, err, credentials.ErrMissingCredentials)
}
