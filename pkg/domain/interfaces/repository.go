package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
)

// ErrNotFound is returned by every backend when a key has never been written
var ErrNotFound = goerr.New("not found")

// Repository defines the interface for data persistence
type Repository interface {
	Reminder() ReminderRepository
	Close() error
}

// ReminderRepository is a per-user key-value store of whole reminder sets
type ReminderRepository interface {
	// ReadAll returns the reminder set stored under key in insertion order.
	// It returns ErrNotFound if nothing was ever written for key.
	ReadAll(ctx context.Context, key model.StorageKey) ([]*model.Reminder, error)

	// WriteAll replaces the reminder set stored under key
	WriteAll(ctx context.Context, key model.StorageKey, reminders []*model.Reminder) error

	// ListRecent returns summaries of stored sets, most recently written first.
	// Sets written at the same instant are ordered by key, descending.
	// A non-positive limit returns every set.
	ListRecent(ctx context.Context, limit int) ([]*model.ReminderSetSummary, error)
}
