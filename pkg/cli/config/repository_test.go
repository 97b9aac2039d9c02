package config_test

import (
	"context"
	"testing"

	"github.com/jmhodges/clock"
	"github.com/m-mizutani/gt"

	"github.com/Anuja-3248/VitaGaurd/pkg/cli/config"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
	"github.com/Anuja-3248/VitaGaurd/pkg/repository/file"
	"github.com/Anuja-3248/VitaGaurd/pkg/repository/memory"
)

func TestRepositoryConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		repo, err := config.NewRepositoryForTest("memory", "").Configure(ctx)
		gt.NoError(t, err).Required()
		_, ok := repo.(*memory.Memory)
		gt.Bool(t, ok).True()
	})

	t.Run("file", func(t *testing.T) {
		repo, err := config.NewRepositoryForTest("file", t.TempDir()).Configure(ctx)
		gt.NoError(t, err).Required()
		_, ok := repo.(*file.File)
		gt.Bool(t, ok).True()
	})

	t.Run("firestore requires project id", func(t *testing.T) {
		_, err := config.NewRepositoryForTest("firestore", "").Configure(ctx)
		gt.Value(t, err).NotNil()
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := config.NewRepositoryForTest("redis", "").Configure(ctx)
		gt.Value(t, err).NotNil()
	})
}

func TestStoreConfigure(t *testing.T) {
	ctx := context.Background()
	app := &config.AppConfig{
		Seeds: []config.Seed{
			{Title: "Daily Medical Checkup", Time: "09:00", Type: "routine", Days: []string{"Mon", "Wed", "Fri"}},
			{Title: "Health Analysis Sync", Time: "21:00", Type: "vital", Frequency: "Daily"},
		},
	}
	repo := memory.New()

	store, err := config.NewStoreForTest("bob").Configure(ctx, repo, app, clock.NewFake())
	gt.NoError(t, err).Required()
	gt.Value(t, store.UserID()).Equal(model.UserID("bob"))

	list := store.List()
	gt.Array(t, list).Length(2).Required()
	gt.Value(t, list[1].Type).Equal(types.ReminderTypeVital)

	// seeds are not reinstalled once the set exists
	_, err = store.Toggle(ctx, list[0].ID)
	gt.NoError(t, err).Required()
	gt.NoError(t, store.Delete(ctx, list[1].ID)).Required()

	again, err := config.NewStoreForTest("bob").Configure(ctx, repo, app, clock.NewFake())
	gt.NoError(t, err).Required()
	gt.Array(t, again.List()).Length(1)
	gt.Value(t, again.EnabledCount()).Equal(0)
}
