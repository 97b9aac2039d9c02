package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
)

type reminderSet struct {
	reminders []*model.Reminder
	updatedAt time.Time
}

type reminderRepository struct {
	mu   sync.RWMutex
	sets map[model.StorageKey]*reminderSet
}

var _ interfaces.ReminderRepository = &reminderRepository{}

func newReminderRepository() *reminderRepository {
	return &reminderRepository{
		sets: make(map[model.StorageKey]*reminderSet),
	}
}

func (r *reminderRepository) ReadAll(ctx context.Context, key model.StorageKey) ([]*model.Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, exists := r.sets[key]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "reminder set not found", goerr.V("key", key))
	}

	return model.CloneReminders(set.reminders), nil
}

func (r *reminderRepository) WriteAll(ctx context.Context, key model.StorageKey, reminders []*model.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sets[key] = &reminderSet{
		reminders: model.CloneReminders(reminders),
		updatedAt: time.Now().UTC(),
	}
	return nil
}

func (r *reminderRepository) ListRecent(ctx context.Context, limit int) ([]*model.ReminderSetSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]*model.ReminderSetSummary, 0, len(r.sets))
	for key, set := range r.sets {
		summaries = append(summaries, &model.ReminderSetSummary{
			Key:       key,
			Count:     len(set.reminders),
			UpdatedAt: set.updatedAt,
		})
	}

	model.SortRecent(summaries)
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}
