package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/jmhodges/clock"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Anuja-3248/VitaGaurd/pkg/cli/config"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/service/alert"
	"github.com/Anuja-3248/VitaGaurd/pkg/service/audio"
	"github.com/Anuja-3248/VitaGaurd/pkg/service/worker"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/safe"
)

func cmdWatch() *cli.Command {
	var enableAudio bool
	var cfgFile config.ConfigFile
	var repoCfg config.Repository
	var storeCfg config.Store
	var schedCfg config.Scheduler

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "audio",
			Usage:       "Play a tone when an alert fires",
			Value:       true,
			Sources:     cli.EnvVars("VITAGUARD_AUDIO"),
			Destination: &enableAudio,
		},
	}
	flags = append(flags, cfgFile.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, storeCfg.Flags()...)
	flags = append(flags, schedCfg.Flags()...)

	return &cli.Command{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Print alerts to the terminal as reminders come due",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			app, err := cfgFile.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load configuration")
			}

			settings, err := schedCfg.Configure(c, app)
			if err != nil {
				return goerr.Wrap(err, "failed to configure scheduler")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			clk := clock.New()
			store, err := storeCfg.Configure(ctx, repo, app, clk)
			if err != nil {
				return err
			}

			w := output(c)
			presenter := alert.NewConsolePresenter(alert.WithWriter(w))

			var player interfaces.AudioPlayer = audio.Nop{}
			if enableAudio {
				player = audio.NewTonePlayer()
			}

			schedOpts := append(settings.Options(),
				worker.WithPresenter(presenter),
				worker.WithAudio(player),
			)
			scheduler := worker.NewAlertScheduler(store, clk, schedOpts...)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, _ = color.New(color.FgGreen, color.Bold).Fprintf(w, "%d ONLINE", store.EnabledCount())
			_, _ = fmt.Fprintf(w, " watching %d reminders of %s (Ctrl+C to stop)\n", len(store.List()), store.UserID())

			if err := scheduler.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start alert scheduler")
			}
			<-ctx.Done()
			scheduler.Stop()

			return nil
		},
	}
}
