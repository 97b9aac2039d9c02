package types

import "fmt"

// ReminderType controls how urgently a reminder is presented. It has no effect on scheduling.
type ReminderType string

const (
	ReminderTypeRoutine ReminderType = "routine"
	ReminderTypeVital   ReminderType = "vital"
)

// AllReminderTypes returns all valid reminder types
func AllReminderTypes() []ReminderType {
	return []ReminderType{
		ReminderTypeRoutine,
		ReminderTypeVital,
	}
}

// IsValid checks if the reminder type is valid
func (t ReminderType) IsValid() bool {
	switch t {
	case ReminderTypeRoutine, ReminderTypeVital:
		return true
	default:
		return false
	}
}

// String returns the string representation of the reminder type
func (t ReminderType) String() string {
	return string(t)
}

// Severity returns the alert severity for reminders of this type
func (t ReminderType) Severity() Severity {
	if t == ReminderTypeVital {
		return SeverityCritical
	}
	return SeverityInfo
}

// ParseReminderType parses a string into a ReminderType. An empty string means routine.
func ParseReminderType(s string) (ReminderType, error) {
	if s == "" {
		return ReminderTypeRoutine, nil
	}
	t := ReminderType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid reminder type: %s", s)
	}
	return t, nil
}

// Severity is the presentation severity carried by an alert
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityCritical Severity = "critical"
)

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}
