package http

import (
	"errors"
	"net/http"

	"log-baseline/internal/stores"
)

type latestSnapshotHandler struct {
	snapshots stores.SnapshotStore
}

func NewLatestSnapshotHandler(snapshots stores.SnapshotStore) AppHttpHandler {
	return &latestSnapshotHandler{snapshots: snapshots}
}

// Handle processes GET /snapshots/latest requests.
func (h *latestSnapshotHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot, err := h.snapshots.Load(r.Context(), stores.LatestRun)
	if err != nil {
		if errors.Is(err, stores.ErrSnapshotNotFound) {
			return errSnapshotNotFound(err)
		}
		return err
	}
	return writeJSON(w, http.StatusOK, snapshot)
}
