package model

import (
	"time"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
)

// Alert is emitted once when an enabled reminder's time arrives.
// It is consumed by presentation and audio side effects and never persisted.
type Alert struct {
	ReminderID ReminderID
	Title      string
	Severity   types.Severity
	Minute     types.ClockTime // matched "HH:MM"
	FiredAt    time.Time
}

// NewAlert builds the alert for a reminder matched at the given instant
func NewAlert(r *Reminder, minute types.ClockTime, at time.Time) Alert {
	return Alert{
		ReminderID: r.ID,
		Title:      r.Title,
		Severity:   r.Type.Severity(),
		Minute:     minute,
		FiredAt:    at,
	}
}
