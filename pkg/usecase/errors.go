package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	// ErrValidation is returned when reminder input is malformed. Nothing is created.
	ErrValidation = goerr.New("invalid reminder input")

	// ErrReminderNotFound is returned when an operation references an unknown reminder ID
	ErrReminderNotFound = goerr.New("reminder not found")

	// ErrPersistence is returned when the durable write failed. The in-memory change stands.
	ErrPersistence = goerr.New("failed to persist reminders")
)

// Context keys for error values
const (
	ReminderIDKey = "reminder_id"
	UserIDKey     = "user_id"
)
