package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/safe"
)

// reminderJSON is the on-disk representation of model.Reminder
type reminderJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Time      string    `json:"time"`
	Type      string    `json:"type"`
	Enabled   bool      `json:"enabled"`
	Days      []string  `json:"days"`
	CreatedAt time.Time `json:"created_at"`
}

type reminderSetJSON struct {
	Reminders []reminderJSON `json:"reminders"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func toReminderJSON(r *model.Reminder) reminderJSON {
	return reminderJSON{
		ID:        string(r.ID),
		Title:     r.Title,
		Time:      string(r.Time),
		Type:      string(r.Type),
		Enabled:   r.Enabled,
		Days:      r.Days.Strings(),
		CreatedAt: r.CreatedAt,
	}
}

func fromReminderJSON(j reminderJSON) *model.Reminder {
	days := make(types.Days, len(j.Days))
	for i, d := range j.Days {
		days[i] = types.DayTag(d)
	}
	return &model.Reminder{
		ID:        model.ReminderID(j.ID),
		Title:     j.Title,
		Time:      types.ClockTime(j.Time),
		Type:      types.ReminderType(j.Type),
		Enabled:   j.Enabled,
		Days:      days,
		CreatedAt: j.CreatedAt,
	}
}

type reminderRepository struct {
	dir string
	mu  sync.Mutex
}

var _ interfaces.ReminderRepository = &reminderRepository{}

func newReminderRepository(dir string) *reminderRepository {
	return &reminderRepository{dir: dir}
}

func (r *reminderRepository) path(key model.StorageKey) string {
	return filepath.Join(r.dir, filepath.Base(string(key))+".json")
}

func (r *reminderRepository) ReadAll(ctx context.Context, key model.StorageKey) ([]*model.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// #nosec G304 - file name is derived from a validated storage key
	data, err := os.ReadFile(r.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "reminder set not found", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to read reminder set", goerr.V("key", key))
	}

	var set reminderSetJSON
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, goerr.Wrap(err, "failed to decode reminder set", goerr.V("key", key))
	}

	reminders := make([]*model.Reminder, len(set.Reminders))
	for i, j := range set.Reminders {
		reminders[i] = fromReminderJSON(j)
	}
	return reminders, nil
}

func (r *reminderRepository) WriteAll(ctx context.Context, key model.StorageKey, reminders []*model.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := reminderSetJSON{
		Reminders: make([]reminderJSON, len(reminders)),
		UpdatedAt: time.Now().UTC(),
	}
	for i, rem := range reminders {
		set.Reminders[i] = toReminderJSON(rem)
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode reminder set", goerr.V("key", key))
	}

	// write to a sibling temp file then rename so readers never see a partial document
	tmp, err := os.CreateTemp(r.dir, ".reminders-*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("key", key))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		safe.Close(ctx, tmp)
		safe.Remove(ctx, tmpName)
		return goerr.Wrap(err, "failed to write reminder set", goerr.V("key", key))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(ctx, tmpName)
		return goerr.Wrap(err, "failed to flush reminder set", goerr.V("key", key))
	}
	if err := os.Rename(tmpName, r.path(key)); err != nil {
		safe.Remove(ctx, tmpName)
		return goerr.Wrap(err, "failed to replace reminder set", goerr.V("key", key))
	}

	return nil
}

func (r *reminderRepository) ListRecent(ctx context.Context, limit int) ([]*model.ReminderSetSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reminder sets", goerr.V("dir", r.dir))
	}

	var summaries []*model.ReminderSetSummary
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		key := model.StorageKey(strings.TrimSuffix(name, ".json"))

		// #nosec G304 - file name comes from the repository directory listing
		data, err := os.ReadFile(filepath.Join(r.dir, name))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read reminder set", goerr.V("key", key))
		}

		var set reminderSetJSON
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, goerr.Wrap(err, "failed to decode reminder set", goerr.V("key", key))
		}

		summaries = append(summaries, &model.ReminderSetSummary{
			Key:       key,
			Count:     len(set.Reminders),
			UpdatedAt: set.UpdatedAt,
		})
	}

	model.SortRecent(summaries)
	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}
