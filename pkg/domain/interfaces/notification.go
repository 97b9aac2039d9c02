package interfaces

import (
	"context"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
)

// AlertPresenter renders an alert to the user. It is called once per emitted alert.
type AlertPresenter interface {
	Present(ctx context.Context, alert model.Alert)
}

// AlertPresenterFunc adapts a function to AlertPresenter
type AlertPresenterFunc func(ctx context.Context, alert model.Alert)

func (f AlertPresenterFunc) Present(ctx context.Context, alert model.Alert) {
	f(ctx, alert)
}

// AudioPlayer attempts to play a notification sound for the given severity.
// Callers treat errors as non-fatal.
type AudioPlayer interface {
	Play(ctx context.Context, severity types.Severity) error
}

// ReminderSource provides the current reminder snapshot
type ReminderSource interface {
	List() []*model.Reminder
}
