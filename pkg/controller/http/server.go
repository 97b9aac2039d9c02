package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
)

// AlertFeed provides recently emitted alerts
type AlertFeed interface {
	Recent() []model.Alert
}

type Server struct {
	router    *chi.Mux
	reminders ReminderUseCase
	feed      AlertFeed
}

type Options func(*Server)

func WithAlertFeed(feed AlertFeed) Options {
	return func(s *Server) {
		s.feed = feed
	}
}

func New(reminders ReminderUseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:    r,
		reminders: reminders,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", listRemindersHandler(s.reminders))
			r.Post("/", createReminderHandler(s.reminders))
			r.Post("/{id}/toggle", toggleReminderHandler(s.reminders))
			r.Delete("/{id}", deleteReminderHandler(s.reminders))
		})

		if s.feed != nil {
			r.Get("/alerts", alertsHandler(s.feed))
		}
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.From(r.Context()).Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
