package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
)

// requestLogger attaches a logger carrying the request ID to the request context
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.From(ctx)
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			logger = logger.With("request_id", reqID)
		}
		next.ServeHTTP(w, r.WithContext(logging.With(ctx, logger)))
	})
}
