package config

import (
	"time"
)

// NewSchedulerForTest creates a Scheduler config for testing purposes
func NewSchedulerForTest(interval time.Duration, enforceDays bool, timezone string) *Scheduler {
	return &Scheduler{
		interval:    interval,
		enforceDays: enforceDays,
		timezone:    timezone,
	}
}

// Resolve is exported for testing
func (s *Scheduler) Resolve(isSet func(name string) bool, app *AppConfig) (SchedulerSettings, error) {
	return s.resolve(isSet, app)
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, dataDir string) *Repository {
	return &Repository{
		backend: backend,
		dataDir: dataDir,
	}
}

// NewStoreForTest creates a Store config for testing purposes
func NewStoreForTest(userID string) *Store {
	return &Store{userID: userID}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
