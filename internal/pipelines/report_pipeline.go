package pipelines

import (
	"context"
	"errors"
	"time"

	"log-baseline/internal/aggregators"
	"log-baseline/internal/calendars"
	"log-baseline/internal/credentials"
	"log-baseline/internal/deviations"
	"log-baseline/internal/fetchers"
	"log-baseline/internal/models"
	"log-baseline/internal/platforms"
	"log-baseline/internal/shared/caches"
	"log-baseline/internal/shared/configs"
	"log-baseline/internal/shared/loggers"
	"log-baseline/internal/shared/tracing"
	"log-baseline/internal/shared/ulid"
	"log-baseline/internal/stores"
	"log-baseline/internal/timeranges"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	currentFrom = "now-24h"
	currentTo   = "now"

	BaselineBusiness = "business"
	BaselineWeekend  = "weekend"
	BaselineAuto     = "auto"
)

// ClientFactory builds the platform client bound to one environment's site and credentials.
type ClientFactory func(env configs.EnvironmentConfig, creds *credentials.Credentials) platforms.Client

// RunOptions selects what a report run covers.
type RunOptions struct {
	// Environments restricts the run to these names. Empty means every configured environment.
	Environments []string
	// Metrics are glob patterns over metric names. Empty means every metric.
	Metrics []string
	// Saved loads the latest saved snapshot instead of querying the platform.
	Saved bool
}

// DeviationOptions controls how current counts are compared with their baselines.
type DeviationOptions struct {
	Mode     models.DeviationMode
	Alpha    float64
	Baseline string // business, weekend or auto
}

//go:generate mockgen -source=report_pipeline.go -destination=./mocks/report_pipeline_mock.go -package=mocks
type ReportPipeline interface {
	// Run computes, saves and records a snapshot, or loads the latest one when opts.Saved is set.
	// Environments without credentials are skipped and listed in Snapshot.Skipped; any other failure aborts the run.
	Run(ctx context.Context, opts RunOptions) (*models.Snapshot, error)
	// Deviations compares every current count of snapshot with the selected baseline average.
	Deviations(snapshot *models.Snapshot, opts DeviationOptions) ([]models.EnvironmentDeviations, error)
	// Breakdown returns the per-day counts of one metric over the whole lookback window.
	Breakdown(ctx context.Context, environment, metric string) (*models.DailyBreakdown, error)
}

type reportPipeline struct {
	cfg       *configs.Config
	provider  credentials.Provider
	clients   ClientFactory
	cache     caches.CountCache
	snapshots stores.SnapshotStore
	history   stores.HistoryStore
	now       func() time.Time
}

func NewReportPipeline(
	cfg *configs.Config,
	provider credentials.Provider,
	clients ClientFactory,
	cache caches.CountCache,
	snapshots stores.SnapshotStore,
	history stores.HistoryStore,
	now func() time.Time,
) ReportPipeline {
	if cache == nil {
		cache = caches.NewNopCountCache()
	}
	if history == nil {
		history = stores.NewNopHistoryStore()
	}
	if now == nil {
		now = time.Now
	}
	return &reportPipeline{
		cfg:       cfg,
		provider:  provider,
		clients:   clients,
		cache:     cache,
		snapshots: snapshots,
		history:   history,
		now:       now,
	}
}

func (p *reportPipeline) Run(ctx context.Context, opts RunOptions) (snapshot *models.Snapshot, err error) {
	started := time.Now()
	defer func() {
		metricRunDurationSeconds.WithLabelValues(errorCode(err)).Observe(time.Since(started).Seconds())
	}()

	filter, err := newMetricFilter(opts.Metrics)
	if err != nil {
		return nil, err
	}
	envs, err := p.selectEnvironments(opts.Environments)
	if err != nil {
		return nil, err
	}

	if opts.Saved {
		return p.loadSaved(ctx, envs, filter)
	}

	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldRunID, runID).Logger()
	ctx = logger.WithContext(ctx)

	now := p.now()
	weeksBack := p.cfg.Lookback.WeeksBack
	current, err := timeranges.ResolveRange(currentFrom, currentTo, now.UnixMilli())
	if err != nil {
		return nil, err
	}
	business, weekend, err := calendars.Split(now, weeksBack)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("environments", len(envs)).Int("weeks_back", weeksBack).Msg("started report run")

	snapshot = &models.Snapshot{
		RunID:        runID,
		GeneratedAt:  now.UTC(),
		WeeksBack:    weeksBack,
		Environments: []*models.EnvironmentReport{},
	}
	for _, env := range envs {
		report, err := p.runEnvironment(ctx, env, filter, current, business, weekend)
		if err != nil {
			if errors.Is(err, credentials.ErrMissingCredentials) {
				logger.Warn().Err(err).Str(loggers.FieldEnvironment, env.Name).Msg("skipping environment without credentials")
				metricEnvironmentsTotal.WithLabelValues(statusSkipped).Inc()
				snapshot.Skipped = append(snapshot.Skipped, models.SkippedEnvironment{Environment: env.Name, Reason: err.Error()})
				continue
			}
			metricEnvironmentsTotal.WithLabelValues(statusFailed).Inc()
			return nil, err
		}
		metricEnvironmentsTotal.WithLabelValues(statusOK).Inc()
		snapshot.Environments = append(snapshot.Environments, report)
	}

	if err := p.snapshots.Save(ctx, snapshot); err != nil {
		return nil, errInternalSnapshotStoreFailed(err)
	}
	if n, err := p.history.Record(ctx, snapshot); err != nil {
		metricHistoryErrorsTotal.WithLabelValues().Inc()
		logger.Warn().Err(err).Msg("failed to record history")
	} else {
		logger.Debug().Int("rows", n).Msg("recorded history")
	}

	logger.Info().Int("skipped", len(snapshot.Skipped)).Msg("finished report run")
	return snapshot, nil
}

func (p *reportPipeline) runEnvironment(
	ctx context.Context,
	env configs.EnvironmentConfig,
	filter *metricFilter,
	current models.TimeRange,
	business, weekend []models.DayBucket,
) (report *models.EnvironmentReport, err error) {
	ctx, span := tracing.Tracer.Start(ctx, "pipeline.environment", trace.WithAttributes(attribute.String("environment", env.Name)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	logger := loggers.Ctx(ctx).With().Str(loggers.FieldEnvironment, env.Name).Logger()
	ctx = logger.WithContext(ctx)

	creds, err := p.provider.Load(env)
	if err != nil {
		return nil, err
	}
	client := p.clients(env, creds)
	engine := aggregators.NewQueryEngine(client, p.cache, env.Name, p.now, p.settle())

	report = models.NewEnvironmentReport(env.Name)
	for _, spec := range filter.Apply(models.QuerySpecsFrom(env.Queries)) {
		metricLogger := logger.With().Str(loggers.FieldMetric, spec.MetricName).Logger()

		metricLogger.Info().Msg("fetching 24h value")
		count, err := engine.Count(ctx, current, spec)
		if err != nil {
			return nil, err
		}
		report.Current[spec.MetricName] = models.AggregateResult{MetricName: spec.MetricName, Count: count}
		metricCurrentCount.WithLabelValues(env.Name, spec.MetricName).Set(float64(count))

		metricLogger.Info().Msg("fetching business day values")
		businessSummary, err := engine.SummarizeOver(ctx, business, spec)
		if err != nil {
			return nil, err
		}
		report.Business[spec.MetricName] = *businessSummary
		metricLogger.Info().Msgf("business day average is %d", businessSummary.Average)

		metricLogger.Info().Msg("fetching weekend day values")
		weekendSummary, err := engine.SummarizeOver(ctx, weekend, spec)
		if err != nil {
			return nil, err
		}
		report.Weekend[spec.MetricName] = *weekendSummary
		metricLogger.Info().Msgf("weekend day average is %d", weekendSummary.Average)
	}

	synthetics := fetchers.NewSyntheticFetcher(client)
	for _, testID := range env.SyntheticTests {
		results, err := synthetics.LatestResults(ctx, testID, current)
		if err != nil {
			return nil, err
		}
		summary := models.NewSyntheticSummary(testID, results)
		report.Synthetics[testID] = summary
		logger.Info().Str("test_id", testID).Int64("passed", summary.Passed).Int64("failed", summary.Failed).Msg("summarised synthetic test")
	}
	return report, nil
}

func (p *reportPipeline) Deviations(snapshot *models.Snapshot, opts DeviationOptions) ([]models.EnvironmentDeviations, error) {
	category, err := p.baselineCategory(snapshot, opts.Baseline)
	if err != nil {
		return nil, err
	}

	all := make([]models.EnvironmentDeviations, 0, len(snapshot.Environments))
	for _, env := range snapshot.Environments {
		devs := models.EnvironmentDeviations{
			Environment: env.Environment,
			Baseline:    category,
			Results:     []models.DeviationResult{},
		}
		for _, metric := range env.Metrics() {
			current, _ := env.CurrentCount(metric)
			summary, ok := env.Summary(category, metric)
			if !ok {
				devs.Undefined = append(devs.Undefined, metric)
				continue
			}
			res, err := deviations.Compute(metric, current, summary.Average, opts.Mode, opts.Alpha)
			if err != nil {
				if errors.Is(err, deviations.ErrDivisionByZero) {
					devs.Undefined = append(devs.Undefined, metric)
					continue
				}
				return nil, err
			}
			devs.Results = append(devs.Results, *res)
		}
		all = append(all, devs)
	}
	return all, nil
}

func (p *reportPipeline) Breakdown(ctx context.Context, environment, metric string) (*models.DailyBreakdown, error) {
	env, ok := p.cfg.Environment(environment)
	if !ok {
		return nil, errUnknownEnvironment(environment)
	}
	query, ok := env.Queries[metric]
	if !ok {
		return nil, errUnknownMetric(environment, metric)
	}

	logger := loggers.Ctx(ctx).With().Str(loggers.FieldEnvironment, env.Name).Str(loggers.FieldMetric, metric).Logger()
	ctx = logger.WithContext(ctx)

	creds, err := p.provider.Load(env)
	if err != nil {
		return nil, err
	}
	buckets, err := calendars.BucketDays(p.now(), p.cfg.Lookback.WeeksBack, models.AllDayCategories...)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("days", len(buckets)).Msg("fetching daily breakdown")
	engine := aggregators.NewQueryEngine(p.clients(env, creds), p.cache, env.Name, p.now, p.settle())
	return engine.BreakdownOver(ctx, buckets, models.QuerySpec{MetricName: metric, QueryString: query})
}

func (p *reportPipeline) settle() aggregators.QueryEngineOption {
	return aggregators.WithSettle(time.Duration(p.cfg.Cache.SettleMinutes) * time.Minute)
}

// baselineCategory resolves auto to the category of the day the snapshot was generated,
// in the pipeline clock's location.
func (p *reportPipeline) baselineCategory(snapshot *models.Snapshot, baseline string) (models.DayCategory, error) {
	switch baseline {
	case BaselineBusiness, "":
		return models.DayBusiness, nil
	case BaselineWeekend:
		return models.DayWeekend, nil
	case BaselineAuto:
		return models.CategoryOf(snapshot.GeneratedAt.In(p.now().Location()).Weekday()), nil
	default:
		return "", errInvalidBaseline(baseline)
	}
}

func (p *reportPipeline) selectEnvironments(names []string) ([]configs.EnvironmentConfig, error) {
	if len(names) == 0 {
		return p.cfg.Environments, nil
	}
	envs := make([]configs.EnvironmentConfig, 0, len(names))
	for _, name := range names {
		env, ok := p.cfg.Environment(name)
		if !ok {
			return nil, errUnknownEnvironment(name)
		}
		envs = append(envs, env)
	}
	return envs, nil
}

// loadSaved returns the latest saved snapshot restricted to the selected environments and metrics.
func (p *reportPipeline) loadSaved(ctx context.Context, envs []configs.EnvironmentConfig, filter *metricFilter) (*models.Snapshot, error) {
	saved, err := p.snapshots.Load(ctx, stores.LatestRun)
	if err != nil {
		if errors.Is(err, stores.ErrSnapshotNotFound) {
			return nil, err
		}
		return nil, errInternalSnapshotStoreFailed(err)
	}
	loggers.Ctx(ctx).Info().Str(loggers.FieldRunID, saved.RunID).Time("generated_at", saved.GeneratedAt).Msg("loaded saved snapshot")

	selected := make(map[string]bool, len(envs))
	for _, env := range envs {
		selected[env.Name] = true
	}

	restricted := *saved
	restricted.Environments = make([]*models.EnvironmentReport, 0, len(saved.Environments))
	for _, env := range saved.Environments {
		if !selected[env.Environment] {
			continue
		}
		restricted.Environments = append(restricted.Environments, restrictMetrics(env, filter))
	}
	return &restricted, nil
}

func restrictMetrics(env *models.EnvironmentReport, filter *metricFilter) *models.EnvironmentReport {
	out := models.NewEnvironmentReport(env.Environment)
	for _, metric := range env.Metrics() {
		if !filter.Match(metric) {
			continue
		}
		out.Current[metric] = env.Current[metric]
		if s, ok := env.Business[metric]; ok {
			out.Business[metric] = s
		}
		if s, ok := env.Weekend[metric]; ok {
			out.Weekend[metric] = s
		}
	}
	for id, s := range env.Synthetics {
		out.Synthetics[id] = s
	}
	return out
}
