package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/jmhodges/clock"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Anuja-3248/VitaGaurd/pkg/cli/config"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
	"github.com/Anuja-3248/VitaGaurd/pkg/usecase"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/safe"
)

// output returns the writer commands print results to
func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func cmdReminder() *cli.Command {
	var cfgFile config.ConfigFile
	var repoCfg config.Repository
	var storeCfg config.Store

	flags := cfgFile.Flags()
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, storeCfg.Flags()...)

	// withStore opens the configured reminder store for the duration of action
	withStore := func(action func(ctx context.Context, c *cli.Command, store *usecase.ReminderStore) error) cli.ActionFunc {
		return func(ctx context.Context, c *cli.Command) error {
			app, err := cfgFile.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			store, err := storeCfg.Configure(ctx, repo, app, clock.New())
			if err != nil {
				return err
			}
			return action(ctx, c, store)
		}
	}

	return &cli.Command{
		Name:    "reminder",
		Aliases: []string{"r"},
		Usage:   "Manage reminders",
		Flags:   flags,
		Commands: []*cli.Command{
			cmdReminderList(withStore),
			cmdReminderAdd(withStore),
			cmdReminderToggle(withStore),
			cmdReminderDelete(withStore),
			cmdReminderSets(func(ctx context.Context) (interfaces.Repository, error) {
				return repoCfg.Configure(ctx)
			}),
		},
	}
}

type storeAction func(action func(ctx context.Context, c *cli.Command, store *usecase.ReminderStore) error) cli.ActionFunc

func cmdReminderList(withStore storeAction) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List reminders in creation order",
		Action: withStore(func(ctx context.Context, c *cli.Command, store *usecase.ReminderStore) error {
			w := output(c)
			printReminders(w, store.List())
			_, _ = fmt.Fprintf(w, "%d ONLINE\n", store.EnabledCount())
			return nil
		}),
	}
}

func printReminders(w io.Writer, reminders []*model.Reminder) {
	vital := color.New(color.FgRed)
	routine := color.New(color.FgCyan)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTIME\tTYPE\tSTATE\tDAYS\tTITLE")
	for _, r := range reminders {
		state := "off"
		if r.Enabled {
			state = "on"
		}
		c := routine
		if r.Type == types.ReminderTypeVital {
			c = vital
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Time.Format12h(),
			c.Sprint(r.Type),
			state,
			strings.Join(r.Days.Strings(), ","),
			r.Title,
		)
	}
	_ = tw.Flush()
}

func cmdReminderAdd(withStore storeAction) *cli.Command {
	var title, at, reminderType, frequency string

	return &cli.Command{
		Name:  "add",
		Usage: "Create an enabled reminder",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Usage:       "Reminder title",
				Required:    true,
				Destination: &title,
			},
			&cli.StringFlag{
				Name:        "time",
				Usage:       "Time of day as HH:MM (24-hour)",
				Required:    true,
				Destination: &at,
			},
			&cli.StringFlag{
				Name:        "type",
				Usage:       "Reminder type (routine, vital)",
				Value:       string(types.ReminderTypeRoutine),
				Destination: &reminderType,
			},
			&cli.StringFlag{
				Name:        "frequency",
				Usage:       "Daily, or Custom for Mon/Wed/Fri",
				Value:       string(types.FrequencyDaily),
				Destination: &frequency,
			},
		},
		Action: withStore(func(ctx context.Context, c *cli.Command, store *usecase.ReminderStore) error {
			created, err := store.Create(ctx, title, at, reminderType, frequency)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(output(c), created.ID)
			return nil
		}),
	}
}

func cmdReminderToggle(withStore storeAction) *cli.Command {
	return &cli.Command{
		Name:      "toggle",
		Usage:     "Enable or disable a reminder",
		ArgsUsage: "<id>",
		Action: withStore(func(ctx context.Context, c *cli.Command, store *usecase.ReminderStore) error {
			id := c.Args().First()
			if id == "" {
				return goerr.New("reminder ID is required")
			}

			updated, err := store.Toggle(ctx, model.ReminderID(id))
			if err != nil {
				return err
			}

			state := "off"
			if updated.Enabled {
				state = "on"
			}
			_, _ = fmt.Fprintf(output(c), "%s %s\n", updated.ID, state)
			return nil
		}),
	}
}

func cmdReminderDelete(withStore storeAction) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a reminder (no error if it does not exist)",
		ArgsUsage: "<id>",
		Action: withStore(func(ctx context.Context, c *cli.Command, store *usecase.ReminderStore) error {
			id := c.Args().First()
			if id == "" {
				return goerr.New("reminder ID is required")
			}
			return store.Delete(ctx, model.ReminderID(id))
		}),
	}
}

func cmdReminderSets(openRepo func(ctx context.Context) (interfaces.Repository, error)) *cli.Command {
	var limit int

	return &cli.Command{
		Name:  "sets",
		Usage: "List stored reminder sets of all users, most recently modified first",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "Maximum number of sets to show (0 for all)",
				Value:       20,
				Destination: &limit,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := openRepo(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			summaries, err := repo.Reminder().ListRecent(ctx, limit)
			if err != nil {
				return goerr.Wrap(err, "failed to list reminder sets")
			}

			tw := tabwriter.NewWriter(output(c), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "KEY\tREMINDERS\tUPDATED")
			for _, sum := range summaries {
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\n", sum.Key, sum.Count, sum.UpdatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}
