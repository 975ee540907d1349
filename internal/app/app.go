package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log-baseline/internal/credentials"
	internalhttp "log-baseline/internal/http"
	"log-baseline/internal/models"
	"log-baseline/internal/pipelines"
	"log-baseline/internal/reports"
	"log-baseline/internal/shared/caches"
	"log-baseline/internal/shared/configs"
	"log-baseline/internal/shared/filestorages"
	"log-baseline/internal/shared/loggers"
	"log-baseline/internal/shared/tracing"
	"log-baseline/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	now       func() time.Time

	outputs         filestorages.FileStorage
	snapshots       stores.SnapshotStore
	cache           caches.CountCache
	history         stores.HistoryStore
	shutdownTracing tracing.ShutdownFunc

	reportPipeline pipelines.ReportPipeline
	podLogPipeline pipelines.PodLogPipeline
	deviationOpts  pipelines.DeviationOptions

	markdown  reports.MarkdownRenderer
	heatmap   reports.HeatmapRenderer
	breakdown reports.BreakdownRenderer
	podLogs   reports.PodLogRenderer
	histories reports.HistoryRenderer

	server *http.Server
}

// New creates and initializes a new App instance. Close releases what it opens.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().Str(loggers.FieldApp, "log-baseline").Logger()

	deviationOpts, err := deviationOptions(config.Deviation)
	if err != nil {
		return nil, err
	}

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	outputs, err := filestorages.NewFileStorage(config.Report.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report output: %w", err)
	}

	shutdownTracing, err := tracing.Setup(ctx, config.Tracing.Enabled, config.Tracing.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	cache, err := newCountCache(config.Cache)
	if err != nil {
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("failed to initialize count cache: %w", err)
	}

	history, err := newHistoryStore(config.History)
	if err != nil {
		_ = cache.Close()
		_ = shutdownTracing(ctx)
		return nil, fmt.Errorf("failed to initialize history store: %w", err)
	}

	snapshots := stores.NewSnapshotStore(fileStorage)
	provider := credentials.NewEnvProvider()
	clients := newClientFactory(config.Platform)

	reportPipeline := pipelines.NewReportPipeline(config, provider, clients, cache, snapshots, history, time.Now)
	podLogPipeline := pipelines.NewPodLogPipeline(config, provider, clients, stores.NewLogDumpStore(fileStorage), time.Now)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(snapshots, reportPipeline, deviationOpts, httpLogger)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		now:             time.Now,
		outputs:         outputs,
		snapshots:       snapshots,
		cache:           cache,
		history:         history,
		shutdownTracing: shutdownTracing,
		reportPipeline:  reportPipeline,
		podLogPipeline:  podLogPipeline,
		deviationOpts:   deviationOpts,
		markdown:        reports.NewMarkdownRenderer(),
		heatmap:         reports.NewHeatmapRenderer(),
		breakdown:       reports.NewBreakdownRenderer(),
		podLogs:         reports.NewPodLogRenderer(),
		histories:       reports.NewHistoryRenderer(),
		server:          server,
	}, nil
}

// Logger returns the root application logger.
func (app *App) Logger() loggers.Logger {
	return app.appLogger
}

// Start starts the read API in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-baseline read API on port %d (log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown stops the read API and releases every resource.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return app.Close(ctx)
}

// Close releases the cache, history store and tracer provider.
func (app *App) Close(ctx context.Context) error {
	var errs []error
	if app.cache != nil {
		errs = append(errs, app.cache.Close())
	}
	if app.history != nil {
		errs = append(errs, app.history.Close())
	}
	if app.shutdownTracing != nil {
		errs = append(errs, app.shutdownTracing(ctx))
	}
	return errors.Join(errs...)
}

func (app *App) withComponent(ctx context.Context, component string) context.Context {
	return app.appLogger.With().Str(loggers.FieldComponent, component).Logger().WithContext(ctx)
}

func deviationOptions(cfg configs.DeviationConfig) (pipelines.DeviationOptions, error) {
	mode, err := models.ParseDeviationMode(cfg.Mode)
	if err != nil {
		return pipelines.DeviationOptions{}, fmt.Errorf("failed to initialize deviation options: %w", err)
	}
	return pipelines.DeviationOptions{Mode: mode, Alpha: cfg.Alpha, Baseline: cfg.Baseline}, nil
}
