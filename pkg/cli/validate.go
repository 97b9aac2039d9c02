package cli

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Anuja-3248/VitaGaurd/pkg/cli/config"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/safe"
)

// ErrInconsistentStore is returned when a stored reminder set violates reminder invariants
var ErrInconsistentStore = goerr.New("stored reminder set is inconsistent")

func cmdValidate() *cli.Command {
	var cfgFile config.ConfigFile
	var repoCfg config.Repository
	var storeCfg config.Store
	var checkStore bool

	var flags []cli.Flag
	flags = append(flags, cfgFile.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "check-store",
		Usage:       "Also check the stored reminder set of --user-id",
		Destination: &checkStore,
	})
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, storeCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the configuration file and optionally the stored reminders",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			// Step 1: Load and validate configuration file
			app, err := cfgFile.Configure()
			if err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			logger.Info("Configuration validation passed",
				"seed_count", len(app.Seeds),
				"poll_interval", app.Scheduler.PollInterval,
				"timezone", app.Scheduler.Timezone,
			)

			// Step 2: Optionally check the stored reminder set
			if !checkStore {
				return nil
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			return checkReminderSet(ctx, repo, storeCfg.UserID())
		},
	}
}

// checkReminderSet verifies every stored reminder is valid and IDs are unique
func checkReminderSet(ctx context.Context, repo interfaces.Repository, userID model.UserID) error {
	logger := logging.From(ctx)
	key := model.StorageKeyFor(userID)

	reminders, err := repo.Reminder().ReadAll(ctx, key)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			logger.Info("No reminder set stored yet", "user_id", userID)
			return nil
		}
		return goerr.Wrap(err, "failed to read reminder set", goerr.V("user_id", userID))
	}

	var problems int
	seen := make(map[model.ReminderID]bool, len(reminders))
	for i, r := range reminders {
		if err := r.Validate(); err != nil {
			problems++
			logger.Warn("Invalid stored reminder", "index", i, "reminder_id", r.ID, "error", err)
		}
		if seen[r.ID] {
			problems++
			logger.Warn("Duplicate reminder ID", "index", i, "reminder_id", r.ID)
		}
		seen[r.ID] = true
	}

	if problems > 0 {
		return goerr.Wrap(ErrInconsistentStore, "reminder set check failed",
			goerr.V("user_id", userID),
			goerr.V("problems", problems))
	}

	logger.Info("Reminder set check passed", "user_id", userID, "count", len(reminders))
	return nil
}
