package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/jmhodges/clock"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
)

// Seed describes a reminder installed for a user whose reminder set has never been written
type Seed struct {
	Title string
	Time  types.ClockTime
	Type  types.ReminderType
	Days  types.Days
}

// ReminderStore is the authoritative in-memory collection of one user's reminders.
// Every mutation writes the full collection through the repository before returning.
type ReminderStore struct {
	repo   interfaces.Repository
	userID model.UserID
	key    model.StorageKey
	clock  clock.Clock
	seeds  []Seed

	mu        sync.RWMutex
	reminders []*model.Reminder
}

type ReminderStoreOption func(*ReminderStore)

// WithClock sets the clock used for CreatedAt timestamps
func WithClock(clk clock.Clock) ReminderStoreOption {
	return func(s *ReminderStore) {
		s.clock = clk
	}
}

// WithSeeds sets reminders installed when the user has no stored reminder set
func WithSeeds(seeds ...Seed) ReminderStoreOption {
	return func(s *ReminderStore) {
		s.seeds = append(s.seeds, seeds...)
	}
}

// NewReminderStore loads the reminder set of userID from repo
func NewReminderStore(ctx context.Context, repo interfaces.Repository, userID model.UserID, opts ...ReminderStoreOption) (*ReminderStore, error) {
	if err := userID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid user ID")
	}

	s := &ReminderStore{
		repo:   repo,
		userID: userID,
		key:    model.StorageKeyFor(userID),
		clock:  clock.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	reminders, err := repo.Reminder().ReadAll(ctx, s.key)
	switch {
	case err == nil:
		s.reminders = loadable(ctx, userID, reminders)
		logging.From(ctx).Debug("reminders loaded", "user_id", userID, "count", len(s.reminders))

	case errors.Is(err, interfaces.ErrNotFound):
		s.reminders = []*model.Reminder{}
		if len(s.seeds) > 0 {
			if err := s.installSeeds(ctx); err != nil {
				logging.From(ctx).Warn("failed to persist seed reminders", "user_id", userID, "error", err)
			}
		}

	default:
		return nil, goerr.Wrap(err, "failed to load reminders", goerr.V(UserIDKey, userID))
	}

	return s, nil
}

// loadable drops stored reminders that violate reminder invariants or repeat an earlier ID.
// Dropped entries are removed from storage by the next successful write.
func loadable(ctx context.Context, userID model.UserID, stored []*model.Reminder) []*model.Reminder {
	logger := logging.From(ctx)
	seen := make(map[model.ReminderID]bool, len(stored))
	reminders := make([]*model.Reminder, 0, len(stored))

	for i, r := range stored {
		if err := r.Validate(); err != nil {
			logger.Warn("skipping invalid stored reminder", "user_id", userID, "index", i, "error", err)
			continue
		}
		if seen[r.ID] {
			logger.Warn("skipping duplicate stored reminder", "user_id", userID, "index", i, "reminder_id", r.ID)
			continue
		}
		seen[r.ID] = true
		reminders = append(reminders, r)
	}
	return reminders
}

func (s *ReminderStore) installSeeds(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for _, seed := range s.seeds {
		r := &model.Reminder{
			ID:        s.newID(),
			Title:     seed.Title,
			Time:      seed.Time,
			Type:      seed.Type,
			Enabled:   true,
			Days:      slices.Clone(seed.Days),
			CreatedAt: now,
		}
		if err := r.Validate(); err != nil {
			logging.From(ctx).Warn("skipping invalid seed reminder", "title", seed.Title, "error", err)
			continue
		}
		s.reminders = append(s.reminders, r)
	}

	logging.From(ctx).Info("seed reminders installed", "user_id", s.userID, "count", len(s.reminders))
	return s.persist(ctx)
}

// newID returns an ID not used by any reminder in the set. Caller holds the lock.
func (s *ReminderStore) newID() model.ReminderID {
	for {
		id := model.NewReminderID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

// indexOf returns the position of id, or -1. Caller holds the lock.
func (s *ReminderStore) indexOf(id model.ReminderID) int {
	return slices.IndexFunc(s.reminders, func(r *model.Reminder) bool {
		return r.ID == id
	})
}

// persist writes the full collection. Caller holds the write lock.
func (s *ReminderStore) persist(ctx context.Context) error {
	if err := s.repo.Reminder().WriteAll(ctx, s.key, s.reminders); err != nil {
		return goerr.Wrap(ErrPersistence, err.Error(),
			goerr.V(UserIDKey, s.userID),
			goerr.V("key", s.key))
	}
	return nil
}

// UserID returns the owner of the reminder set
func (s *ReminderStore) UserID() model.UserID {
	return s.userID
}

// List returns a snapshot of all reminders in insertion order
func (s *ReminderStore) List() []*model.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneReminders(s.reminders)
}

// Get returns a copy of the reminder with the given ID
func (s *ReminderStore) Get(id model.ReminderID) (*model.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, goerr.Wrap(ErrReminderNotFound, "reminder not found", goerr.V(ReminderIDKey, id))
	}
	return s.reminders[idx].Clone(), nil
}

// EnabledCount returns the number of reminders currently armed
func (s *ReminderStore) EnabledCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.reminders {
		if r.Enabled {
			n++
		}
	}
	return n
}

// Create appends a new enabled reminder. frequency "Daily" (or empty) yields {Daily};
// any other value yields the default custom days {Mon, Wed, Fri}.
// When only the durable write fails, the created reminder is returned together with an
// error wrapping ErrPersistence.
func (s *ReminderStore) Create(ctx context.Context, title, at, reminderType, frequency string) (*model.Reminder, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, goerr.Wrap(ErrValidation, "reminder title is required")
	}

	clockTime, err := types.ParseClockTime(at)
	if err != nil {
		return nil, goerr.Wrap(ErrValidation, err.Error(), goerr.V("time", at))
	}

	rt, err := types.ParseReminderType(reminderType)
	if err != nil {
		return nil, goerr.Wrap(ErrValidation, err.Error(), goerr.V("type", reminderType))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := &model.Reminder{
		ID:        s.newID(),
		Title:     title,
		Time:      clockTime,
		Type:      rt,
		Enabled:   true,
		Days:      types.Frequency(frequency).Days(),
		CreatedAt: s.clock.Now(),
	}
	s.reminders = append(s.reminders, r)

	logging.From(ctx).Info("reminder created",
		"user_id", s.userID,
		"reminder_id", r.ID,
		"time", r.Time,
		"type", r.Type,
		"days", r.Days.Strings())

	if err := s.persist(ctx); err != nil {
		return r.Clone(), err
	}
	return r.Clone(), nil
}

// Toggle flips the enabled flag of the reminder and returns its updated copy
func (s *ReminderStore) Toggle(ctx context.Context, id model.ReminderID) (*model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, goerr.Wrap(ErrReminderNotFound, "cannot toggle unknown reminder", goerr.V(ReminderIDKey, id))
	}

	updated := s.reminders[idx]
	updated.Enabled = !updated.Enabled

	logging.From(ctx).Info("reminder toggled",
		"user_id", s.userID,
		"reminder_id", id,
		"enabled", updated.Enabled)

	if err := s.persist(ctx); err != nil {
		return updated.Clone(), err
	}
	return updated.Clone(), nil
}

// Delete removes the reminder. Deleting an absent ID is not an error and writes nothing.
func (s *ReminderStore) Delete(ctx context.Context, id model.ReminderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		logging.From(ctx).Debug("reminder already absent", "user_id", s.userID, "reminder_id", id)
		return nil
	}

	s.reminders = slices.Delete(s.reminders, idx, idx+1)

	logging.From(ctx).Info("reminder deleted", "user_id", s.userID, "reminder_id", id)

	return s.persist(ctx)
}
