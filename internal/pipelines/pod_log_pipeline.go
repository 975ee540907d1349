package pipelines

import (
	"context"
	"strings"
	"time"

	"log-baseline/internal/credentials"
	"log-baseline/internal/fetchers"
	"log-baseline/internal/models"
	"log-baseline/internal/shared/configs"
	"log-baseline/internal/shared/loggers"
	"log-baseline/internal/shared/ulid"
	"log-baseline/internal/stores"
	"log-baseline/internal/timeranges"
)

// PodLogResult is a stored pod dump and its storage key.
type PodLogResult struct {
	Dump *models.PodLogDump
	Key  string
}

//go:generate mockgen -source=pod_log_pipeline.go -destination=./mocks/pod_log_pipeline_mock.go -package=mocks
type PodLogPipeline interface {
	// Run fetches every log of pod over the lookback ending now, newest first, and stores them.
	Run(ctx context.Context, environment, pod string, lookback time.Duration) (*PodLogResult, error)
}

type podLogPipeline struct {
	cfg      *configs.Config
	provider credentials.Provider
	clients  ClientFactory
	dumps    stores.LogDumpStore
	now      func() time.Time
}

func NewPodLogPipeline(cfg *configs.Config, provider credentials.Provider, clients ClientFactory, dumps stores.LogDumpStore, now func() time.Time) PodLogPipeline {
	if now == nil {
		now = time.Now
	}
	return &podLogPipeline{cfg: cfg, provider: provider, clients: clients, dumps: dumps, now: now}
}

func (p *podLogPipeline) Run(ctx context.Context, environment, pod string, lookback time.Duration) (*PodLogResult, error) {
	pod = strings.TrimSpace(pod)
	if pod == "" || strings.ContainsAny(pod, `/\ `) {
		return nil, errInvalidPod(pod)
	}
	env, ok := p.cfg.Environment(environment)
	if !ok {
		return nil, errUnknownEnvironment(environment)
	}

	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldEnvironment, env.Name).
		Str("pod", pod).
		Logger()
	ctx = logger.WithContext(ctx)

	creds, err := p.provider.Load(env)
	if err != nil {
		return nil, err
	}

	r := timeranges.Last(lookback, p.now())
	logger.Info().Str("from", r.Start().Format(time.RFC3339)).Str("to", r.End().Format(time.RFC3339)).Msg("fetching pod logs")

	entries, err := fetchers.NewLogFetcher(p.clients(env, creds)).FetchAll(ctx, r, "pod_name:"+pod, p.cfg.Platform.PageSize)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("entries", len(entries)).Msg("retrieved pod logs")

	dump := &models.PodLogDump{
		RunID:       runID,
		Environment: env.Name,
		Pod:         pod,
		Range:       r,
		Entries:     entries,
	}
	key, err := p.dumps.Put(ctx, dump)
	if err != nil {
		return nil, errInternalLogDumpStoreFailed(err)
	}
	logger.Info().Str("key", key).Msg("stored pod logs")

	return &PodLogResult{Dump: dump, Key: key}, nil
}
