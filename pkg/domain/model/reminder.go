package model

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
)

// ReminderID is an opaque, time-ordered identifier for a Reminder
type ReminderID string

// NewReminderID generates a new UUID v7 ReminderID. IDs sort by creation time.
func NewReminderID() ReminderID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		return ReminderID(uuid.New().String())
	}
	return ReminderID(id.String())
}

// String returns the string representation of the ID
func (id ReminderID) String() string {
	return string(id)
}

// UserID identifies the owner of a reminder set
type UserID string

// Validate checks that the user ID can be used as part of a storage key
func (u UserID) Validate() error {
	if u == "" {
		return goerr.New("user ID is required")
	}
	if strings.ContainsAny(string(u), "/\\") {
		return goerr.New("user ID must not contain path separators", goerr.V("user_id", u))
	}
	return nil
}

// StorageKey is the per-user key under which a full reminder set is persisted
type StorageKey string

const storageKeyPrefix = "reminders_"

// StorageKeyFor returns the persistence key of a user's reminder set
func StorageKeyFor(user UserID) StorageKey {
	return StorageKey(storageKeyPrefix + string(user))
}

// String returns the string representation of the key
func (k StorageKey) String() string {
	return string(k)
}

// ReminderSetSummary describes one stored reminder set without its reminders
type ReminderSetSummary struct {
	Key       StorageKey
	Count     int
	UpdatedAt time.Time
}

// SortRecent orders summaries by UpdatedAt then Key, both descending
func SortRecent(summaries []*ReminderSetSummary) {
	slices.SortFunc(summaries, func(a, b *ReminderSetSummary) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return strings.Compare(string(b.Key), string(a.Key))
	})
}

// Reminder represents a user-defined recurring alert.
// Disabled reminders are retained but never matched by the scheduler.
type Reminder struct {
	ID        ReminderID
	Title     string
	Time      types.ClockTime
	Type      types.ReminderType
	Enabled   bool
	Days      types.Days
	CreatedAt time.Time
}

// Clone returns a deep copy of the reminder
func (r *Reminder) Clone() *Reminder {
	if r == nil {
		return nil
	}
	copied := *r
	copied.Days = slices.Clone(r.Days)
	return &copied
}

// Validate checks the reminder invariants
func (r *Reminder) Validate() error {
	if r.ID == "" {
		return goerr.New("reminder ID is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return goerr.New("reminder title is required", goerr.V("reminder_id", r.ID))
	}
	if err := r.Time.Validate(); err != nil {
		return goerr.Wrap(err, "invalid reminder time", goerr.V("reminder_id", r.ID))
	}
	if !r.Type.IsValid() {
		return goerr.New("invalid reminder type", goerr.V("reminder_id", r.ID), goerr.V("type", r.Type))
	}
	if _, err := types.ParseDays(r.Days.Strings()); err != nil {
		return goerr.Wrap(err, "invalid reminder days", goerr.V("reminder_id", r.ID))
	}
	return nil
}

// CloneReminders deep-copies a slice of reminders, preserving order
func CloneReminders(src []*Reminder) []*Reminder {
	out := make([]*Reminder, len(src))
	for i, r := range src {
		out[i] = r.Clone()
	}
	return out
}
