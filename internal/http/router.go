package http

import (
	"net/http"

	"log-baseline/internal/pipelines"
	"log-baseline/internal/shared/loggers"
	"log-baseline/internal/shared/metrics"
	"log-baseline/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter builds the read API over saved snapshots and the report pipeline.
func NewRouter(
	snapshots stores.SnapshotStore,
	pipeline pipelines.ReportPipeline,
	deviationDefaults pipelines.DeviationOptions,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Get("/snapshots/latest", errorHandlingAdapter(NewLatestSnapshotHandler(snapshots)))
	router.Get("/environments/{env}/deviations", errorHandlingAdapter(NewDeviationHandler(snapshots, pipeline, deviationDefaults)))
	router.Post("/runs", errorHandlingAdapter(NewRunHandler(pipeline)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
