package memory

import (
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	reminder *reminderRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		reminder: newReminderRepository(),
	}
}

func (m *Memory) Reminder() interfaces.ReminderRepository {
	return m.reminder
}

func (m *Memory) Close() error {
	return nil
}
