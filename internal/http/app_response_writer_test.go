package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"log-baseline/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	w := newAppResponseWriter(httptest.NewRecorder(), 1)
	assert.Empty(t, w.ErrorCode())

	w.SetServiceError(svcerrors.NewNotFoundError("API_1002", "missing", nil))
	assert.Equal(t, "API_1002", w.ErrorCode())

	w.SetServiceError(nil)
	assert.Empty(t, w.ErrorCode())
}

func TestAppResponseWriter_StatusOrOK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		write  func(w *appResponseWriter)
		status int
	}{
		{name: "nothing written", write: func(*appResponseWriter) {}, status: http.StatusOK},
		{name: "body only", write: func(w *appResponseWriter) { _, _ = w.Write([]byte("ok")) }, status: http.StatusOK},
		{name: "explicit header", write: func(w *appResponseWriter) { w.WriteHeader(http.StatusCreated) }, status: http.StatusCreated},
		{
			name: "header then body",
			write: func(w *appResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("missing"))
			},
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			w := newAppResponseWriter(rr, 1)
			tt.write(w)

			assert.Equal(t, tt.status, w.StatusOrOK())
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}
