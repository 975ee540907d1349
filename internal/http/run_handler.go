package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"log-baseline/internal/pipelines"
)

// RunRequest is the optional body of POST /runs.
type RunRequest struct {
	Environments []string `json:"environments"`
	Metrics      []string `json:"metrics"`
}

type runHandler struct {
	pipeline pipelines.ReportPipeline
}

func NewRunHandler(pipeline pipelines.ReportPipeline) AppHttpHandler {
	return &runHandler{pipeline: pipeline}
}

// Handle processes POST /runs requests. The run is synchronous; the saved snapshot is returned.
func (h *runHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidRequestBody(err)
	}

	snapshot, err := h.pipeline.Run(r.Context(), pipelines.RunOptions{
		Environments: req.Environments,
		Metrics:      req.Metrics,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, snapshot)
}
