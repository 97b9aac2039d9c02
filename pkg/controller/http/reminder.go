package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/usecase"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/errutil"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/safe"
)

// ReminderUseCase is the reminder collection served by the API
type ReminderUseCase interface {
	List() []*model.Reminder
	EnabledCount() int
	Create(ctx context.Context, title, at, reminderType, frequency string) (*model.Reminder, error)
	Toggle(ctx context.Context, id model.ReminderID) (*model.Reminder, error)
	Delete(ctx context.Context, id model.ReminderID) error
}

const maxRequestBody = 64 * 1024

type reminderResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Time      string    `json:"time"`
	Time12h   string    `json:"time_12h"`
	Type      string    `json:"type"`
	Enabled   bool      `json:"enabled"`
	Days      []string  `json:"days"`
	CreatedAt time.Time `json:"created_at"`
}

func toReminderResponse(r *model.Reminder) reminderResponse {
	return reminderResponse{
		ID:        r.ID.String(),
		Title:     r.Title,
		Time:      r.Time.String(),
		Time12h:   r.Time.Format12h(),
		Type:      r.Type.String(),
		Enabled:   r.Enabled,
		Days:      r.Days.Strings(),
		CreatedAt: r.CreatedAt,
	}
}

type createReminderRequest struct {
	Title     string `json:"title"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Frequency string `json:"frequency"`
}

func listRemindersHandler(uc ReminderUseCase) http.HandlerFunc {
	type response struct {
		Reminders    []reminderResponse `json:"reminders"`
		EnabledCount int                `json:"enabled_count"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		reminders := uc.List()
		resp := response{
			Reminders:    make([]reminderResponse, len(reminders)),
			EnabledCount: uc.EnabledCount(),
		}
		for i, rem := range reminders {
			resp.Reminders[i] = toReminderResponse(rem)
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}

func createReminderHandler(uc ReminderUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReminderRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		created, err := uc.Create(r.Context(), req.Title, req.Time, req.Type, req.Frequency)
		if err != nil {
			handleReminderError(r.Context(), w, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, toReminderResponse(created))
	}
}

func toggleReminderHandler(uc ReminderUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := model.ReminderID(chi.URLParam(r, "id"))

		updated, err := uc.Toggle(r.Context(), id)
		if err != nil {
			handleReminderError(r.Context(), w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, toReminderResponse(updated))
	}
}

func deleteReminderHandler(uc ReminderUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := model.ReminderID(chi.URLParam(r, "id"))

		if err := uc.Delete(r.Context(), id); err != nil {
			handleReminderError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func alertsHandler(feed AlertFeed) http.HandlerFunc {
	type alertResponse struct {
		ReminderID string    `json:"reminder_id"`
		Title      string    `json:"title"`
		Severity   string    `json:"severity"`
		Minute     string    `json:"minute"`
		FiredAt    time.Time `json:"fired_at"`
	}
	type response struct {
		Alerts []alertResponse `json:"alerts"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		alerts := feed.Recent()
		resp := response{
			Alerts: make([]alertResponse, len(alerts)),
		}
		for i, a := range alerts {
			resp.Alerts[i] = alertResponse{
				ReminderID: a.ReminderID.String(),
				Title:      a.Title,
				Severity:   a.Severity.String(),
				Minute:     a.Minute.String(),
				FiredAt:    a.FiredAt,
			}
		}
		writeJSON(w, r, http.StatusOK, resp)
	}
}

// handleReminderError maps use case errors to HTTP status codes
func handleReminderError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReminderNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}
