package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmhodges/clock"
	"github.com/m-mizutani/gt"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
	"github.com/Anuja-3248/VitaGaurd/pkg/repository/memory"
	"github.com/Anuja-3248/VitaGaurd/pkg/usecase"
)

// flakyRepository wraps a memory repository and fails writes while failWrites is set
type flakyRepository struct {
	*memory.Memory
	failWrites atomic.Bool
	writes     atomic.Int32
	failReads  error
}

func (r *flakyRepository) Reminder() interfaces.ReminderRepository {
	return &flakyReminderRepository{parent: r, inner: r.Memory.Reminder()}
}

type flakyReminderRepository struct {
	parent *flakyRepository
	inner  interfaces.ReminderRepository
}

func (r *flakyReminderRepository) ReadAll(ctx context.Context, key model.StorageKey) ([]*model.Reminder, error) {
	if r.parent.failReads != nil {
		return nil, r.parent.failReads
	}
	return r.inner.ReadAll(ctx, key)
}

func (r *flakyReminderRepository) WriteAll(ctx context.Context, key model.StorageKey, reminders []*model.Reminder) error {
	r.parent.writes.Add(1)
	if r.parent.failWrites.Load() {
		return errors.New("disk full")
	}
	return r.inner.WriteAll(ctx, key, reminders)
}

func (r *flakyReminderRepository) ListRecent(ctx context.Context, limit int) ([]*model.ReminderSetSummary, error) {
	return r.inner.ListRecent(ctx, limit)
}

func newFlakyRepository() *flakyRepository {
	return &flakyRepository{Memory: memory.New()}
}

func newStore(t *testing.T, repo interfaces.Repository, opts ...usecase.ReminderStoreOption) *usecase.ReminderStore {
	t.Helper()
	store, err := usecase.NewReminderStore(context.Background(), repo, "alice", opts...)
	gt.NoError(t, err).Required()
	return store
}

func TestReminderStore_Create(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake()
	clk.Set(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))
	repo := memory.New()
	store := newStore(t, repo, usecase.WithClock(clk))

	r, err := store.Create(ctx, "Checkup", "09:00", "routine", "Daily")
	gt.NoError(t, err).Required()
	gt.Value(t, r.Title).Equal("Checkup")
	gt.Value(t, r.Time).Equal(types.ClockTime("09:00"))
	gt.Value(t, r.Type).Equal(types.ReminderTypeRoutine)
	gt.Bool(t, r.Enabled).True()
	gt.Value(t, r.Days).Equal(types.Days{types.DayDaily})
	gt.Value(t, r.ID).NotEqual(model.ReminderID(""))
	gt.Bool(t, r.CreatedAt.Equal(clk.Now())).True()

	r2, err := store.Create(ctx, "Vitals", "21:00", "vital", "Custom")
	gt.NoError(t, err).Required()
	gt.Value(t, r2.Days).Equal(types.Days{types.DayMon, types.DayWed, types.DayFri})
	gt.Value(t, r2.ID).NotEqual(r.ID)

	list := store.List()
	gt.Array(t, list).Length(2).Required()
	gt.Value(t, list[0].ID).Equal(r.ID)
	gt.Value(t, list[1].ID).Equal(r2.ID)

	// persisted immediately
	stored, err := repo.Reminder().ReadAll(ctx, model.StorageKeyFor("alice"))
	gt.NoError(t, err).Required()
	gt.Array(t, stored).Length(2)
}

func TestReminderStore_CreateDefaults(t *testing.T) {
	store := newStore(t, memory.New())

	r, err := store.Create(context.Background(), "  Water  ", "07:05", "", "")
	gt.NoError(t, err).Required()
	gt.Value(t, r.Title).Equal("Water")
	gt.Value(t, r.Type).Equal(types.ReminderTypeRoutine)
	gt.Value(t, r.Days).Equal(types.Days{types.DayDaily})
}

func TestReminderStore_CreateValidation(t *testing.T) {
	testCases := []struct {
		name     string
		title    string
		at       string
		typ      string
	}{
		{name: "empty title", title: "", at: "09:00", typ: "routine"},
		{name: "blank title", title: "   ", at: "09:00", typ: "routine"},
		{name: "hour out of range", title: "x", at: "24:00", typ: "routine"},
		{name: "minute out of range", title: "x", at: "09:60", typ: "routine"},
		{name: "missing padding", title: "x", at: "9:00", typ: "routine"},
		{name: "seconds", title: "x", at: "09:00:00", typ: "routine"},
		{name: "empty time", title: "x", at: "", typ: "routine"},
		{name: "unknown type", title: "x", at: "09:00", typ: "urgent"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFlakyRepository()
			store := newStore(t, repo)

			r, err := store.Create(context.Background(), tc.title, tc.at, tc.typ, "Daily")
			gt.Error(t, err).Is(usecase.ErrValidation)
			gt.Bool(t, r == nil).True()
			gt.Array(t, store.List()).Length(0)
			gt.Value(t, repo.writes.Load()).Equal(int32(0))
		})
	}
}

func TestReminderStore_Toggle(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	store := newStore(t, repo)

	r, err := store.Create(ctx, "Checkup", "09:00", "routine", "Daily")
	gt.NoError(t, err).Required()

	toggled, err := store.Toggle(ctx, r.ID)
	gt.NoError(t, err).Required()
	gt.Bool(t, toggled.Enabled).False()
	gt.Value(t, store.EnabledCount()).Equal(0)

	stored, err := repo.Reminder().ReadAll(ctx, model.StorageKeyFor("alice"))
	gt.NoError(t, err).Required()
	gt.Bool(t, stored[0].Enabled).False()

	toggled, err = store.Toggle(ctx, r.ID)
	gt.NoError(t, err).Required()
	gt.Bool(t, toggled.Enabled).True()
	gt.Value(t, store.EnabledCount()).Equal(1)

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Toggle(ctx, "missing")
		gt.Error(t, err).Is(usecase.ErrReminderNotFound)
	})
}

func TestReminderStore_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	store := newStore(t, repo)

	a, err := store.Create(ctx, "A", "09:00", "routine", "Daily")
	gt.NoError(t, err).Required()
	b, err := store.Create(ctx, "B", "10:00", "vital", "Daily")
	gt.NoError(t, err).Required()

	gt.NoError(t, store.Delete(ctx, a.ID)).Required()
	list := store.List()
	gt.Array(t, list).Length(1).Required()
	gt.Value(t, list[0].ID).Equal(b.ID)

	_, err = store.Get(a.ID)
	gt.Error(t, err).Is(usecase.ErrReminderNotFound)

	t.Run("deleting an absent id is a no-op", func(t *testing.T) {
		before := repo.writes.Load()
		gt.NoError(t, store.Delete(ctx, a.ID))
		gt.Value(t, repo.writes.Load()).Equal(before)
		gt.Array(t, store.List()).Length(1)
	})
}

func TestReminderStore_ListIsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, memory.New())

	r, err := store.Create(ctx, "Checkup", "09:00", "routine", "Daily")
	gt.NoError(t, err).Required()

	list := store.List()
	list[0].Enabled = false
	list[0].Title = "changed"

	got, err := store.Get(r.ID)
	gt.NoError(t, err).Required()
	gt.Bool(t, got.Enabled).True()
	gt.Value(t, got.Title).Equal("Checkup")
}

func TestReminderStore_PersistenceFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepository()
	store := newStore(t, repo)

	ok, err := store.Create(ctx, "Persisted", "08:00", "routine", "Daily")
	gt.NoError(t, err).Required()

	repo.failWrites.Store(true)

	t.Run("create keeps the reminder in memory", func(t *testing.T) {
		r, err := store.Create(ctx, "Volatile", "09:00", "routine", "Daily")
		gt.Error(t, err).Is(usecase.ErrPersistence)
		gt.Bool(t, r != nil).True()
		gt.Array(t, store.List()).Length(2)
	})

	t.Run("toggle keeps the flip in memory", func(t *testing.T) {
		r, err := store.Toggle(ctx, ok.ID)
		gt.Error(t, err).Is(usecase.ErrPersistence)
		gt.Bool(t, r.Enabled).False()

		got, err := store.Get(ok.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, got.Enabled).False()
	})

	t.Run("delete keeps the removal in memory", func(t *testing.T) {
		err := store.Delete(ctx, ok.ID)
		gt.Error(t, err).Is(usecase.ErrPersistence)
		_, err = store.Get(ok.ID)
		gt.Error(t, err).Is(usecase.ErrReminderNotFound)
	})

	// durable image still holds only the last successful write
	stored, err := repo.Memory.Reminder().ReadAll(ctx, model.StorageKeyFor("alice"))
	gt.NoError(t, err).Required()
	gt.Array(t, stored).Length(1).Required()
	gt.Value(t, stored[0].Title).Equal("Persisted")
}

func TestNewReminderStore(t *testing.T) {
	ctx := context.Background()

	t.Run("loads an existing set", func(t *testing.T) {
		repo := memory.New()
		existing := &model.Reminder{
			ID:      model.NewReminderID(),
			Title:   "Stored",
			Time:    "06:30",
			Type:    types.ReminderTypeVital,
			Enabled: false,
			Days:    types.Days{types.DayTue},
		}
		gt.NoError(t, repo.Reminder().WriteAll(ctx, model.StorageKeyFor("alice"), []*model.Reminder{existing})).Required()

		store := newStore(t, repo, usecase.WithSeeds(usecase.Seed{Title: "ignored", Time: "09:00", Type: types.ReminderTypeRoutine, Days: types.Days{types.DayDaily}}))
		list := store.List()
		gt.Array(t, list).Length(1).Required()
		gt.Value(t, list[0].ID).Equal(existing.ID)
		gt.Value(t, store.EnabledCount()).Equal(0)
	})

	t.Run("seeds a set never written", func(t *testing.T) {
		repo := memory.New()
		store := newStore(t, repo, usecase.WithSeeds(
			usecase.Seed{Title: "Daily Medical Checkup", Time: "09:00", Type: types.ReminderTypeRoutine, Days: types.DefaultCustomDays()},
			usecase.Seed{Title: "Health Analysis Sync", Time: "21:00", Type: types.ReminderTypeVital, Days: types.Days{types.DayDaily}},
			usecase.Seed{Title: "", Time: "10:00", Type: types.ReminderTypeRoutine, Days: types.Days{types.DayDaily}},
		))

		list := store.List()
		gt.Array(t, list).Length(2).Required()
		gt.Value(t, list[0].Title).Equal("Daily Medical Checkup")
		gt.Value(t, list[1].Title).Equal("Health Analysis Sync")
		gt.Value(t, store.EnabledCount()).Equal(2)

		stored, err := repo.Reminder().ReadAll(ctx, model.StorageKeyFor("alice"))
		gt.NoError(t, err).Required()
		gt.Array(t, stored).Length(2)
	})

	t.Run("skips invalid and duplicate stored reminders", func(t *testing.T) {
		repo := memory.New()
		valid := &model.Reminder{
			ID:      "r1",
			Title:   "Checkup",
			Time:    "09:00",
			Type:    types.ReminderTypeRoutine,
			Enabled: true,
			Days:    types.Days{types.DayDaily},
		}
		badTime := valid.Clone()
		badTime.ID = "r2"
		badTime.Time = "9:00"
		badType := valid.Clone()
		badType.ID = "r3"
		badType.Type = "urgent"
		duplicate := valid.Clone()
		duplicate.Title = "Checkup again"
		gt.NoError(t, repo.Reminder().WriteAll(ctx, model.StorageKeyFor("alice"),
			[]*model.Reminder{valid, badTime, badType, duplicate})).Required()

		store := newStore(t, repo)
		list := store.List()
		gt.Array(t, list).Length(1).Required()
		gt.Value(t, list[0].ID).Equal(model.ReminderID("r1"))
		gt.Value(t, list[0].Title).Equal("Checkup")
		gt.Value(t, store.EnabledCount()).Equal(1)
	})

	t.Run("starts empty without seeds", func(t *testing.T) {
		repo := memory.New()
		store := newStore(t, repo)
		gt.Array(t, store.List()).Length(0)

		_, err := repo.Reminder().ReadAll(ctx, model.StorageKeyFor("alice"))
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})

	t.Run("read failure is returned", func(t *testing.T) {
		repo := newFlakyRepository()
		repo.failReads = errors.New("unavailable")
		_, err := usecase.NewReminderStore(ctx, repo, "alice")
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := usecase.NewReminderStore(ctx, memory.New(), "")
		gt.Value(t, err).NotNil()
		_, err = usecase.NewReminderStore(ctx, memory.New(), "a/b")
		gt.Value(t, err).NotNil()
	})
}
