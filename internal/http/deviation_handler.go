package http

import (
	"errors"
	"net/http"
	"strconv"

	"log-baseline/internal/models"
	"log-baseline/internal/pipelines"
	"log-baseline/internal/stores"

	"github.com/go-chi/chi/v5"
)

const (
	queryMode     = "mode"
	queryAlpha    = "alpha"
	queryBaseline = "baseline"
)

type deviationHandler struct {
	snapshots stores.SnapshotStore
	pipeline  pipelines.ReportPipeline
	defaults  pipelines.DeviationOptions
}

// NewDeviationHandler serves deviations of the latest snapshot. The mode, alpha and baseline
// query parameters override defaults.
func NewDeviationHandler(snapshots stores.SnapshotStore, pipeline pipelines.ReportPipeline, defaults pipelines.DeviationOptions) AppHttpHandler {
	return &deviationHandler{snapshots: snapshots, pipeline: pipeline, defaults: defaults}
}

// Handle processes GET /environments/{env}/deviations requests.
func (h *deviationHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	opts, err := h.options(r)
	if err != nil {
		return err
	}

	snapshot, err := h.snapshots.Load(r.Context(), stores.LatestRun)
	if err != nil {
		if errors.Is(err, stores.ErrSnapshotNotFound) {
			return errSnapshotNotFound(err)
		}
		return err
	}

	env := chi.URLParam(r, "env")
	report, ok := snapshot.Environment(env)
	if !ok {
		return errEnvironmentNotFound(env)
	}

	devs, err := h.pipeline.Deviations(&models.Snapshot{
		RunID:        snapshot.RunID,
		GeneratedAt:  snapshot.GeneratedAt,
		WeeksBack:    snapshot.WeeksBack,
		Environments: []*models.EnvironmentReport{report},
	}, opts)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, devs[0])
}

func (h *deviationHandler) options(r *http.Request) (pipelines.DeviationOptions, error) {
	opts := h.defaults
	q := r.URL.Query()

	if v := q.Get(queryMode); v != "" {
		mode, err := models.ParseDeviationMode(v)
		if err != nil {
			return opts, errInvalidQueryParam(queryMode, v, err)
		}
		opts.Mode = mode
	}
	if v := q.Get(queryAlpha); v != "" {
		alpha, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errInvalidQueryParam(queryAlpha, v, err)
		}
		opts.Alpha = alpha
	}
	if v := q.Get(queryBaseline); v != "" {
		opts.Baseline = v
	}
	return opts, nil
}
