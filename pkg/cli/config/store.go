package config

import (
	"context"

	"github.com/jmhodges/clock"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/usecase"
)

// Store holds CLI flags selecting whose reminders are served
type Store struct {
	userID string
}

// Flags returns CLI flags for reminder store configuration
func (s *Store) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "user-id",
			Aliases:     []string{"u"},
			Usage:       "Owner of the reminder set",
			Value:       "default",
			Sources:     cli.EnvVars("VITAGUARD_USER_ID"),
			Destination: &s.userID,
		},
	}
}

// UserID returns the configured user
func (s *Store) UserID() model.UserID {
	return model.UserID(s.userID)
}

// Configure loads the user's reminder store, seeding it from app when the set was never written
func (s *Store) Configure(ctx context.Context, repo interfaces.Repository, app *AppConfig, clk clock.Clock) (*usecase.ReminderStore, error) {
	opts := []usecase.ReminderStoreOption{
		usecase.WithClock(clk),
	}
	if app != nil {
		opts = append(opts, usecase.WithSeeds(app.UseCaseSeeds()...))
	}

	store, err := usecase.NewReminderStore(ctx, repo, s.UserID(), opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open reminder store", goerr.V(usecase.UserIDKey, s.userID))
	}
	return store, nil
}
