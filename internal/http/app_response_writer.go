package http

import (
	"net/http"

	"log-baseline/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the service error of a response so later middleware can label it.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor)}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError == nil {
		return ""
	}
	return w.svcError.Code
}

// StatusOrOK is the written status, or 200 when the handler never called WriteHeader.
func (w *appResponseWriter) StatusOrOK() int {
	if s := w.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
