package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmhodges/clock"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Anuja-3248/VitaGaurd/pkg/cli/config"
	httpctrl "github.com/Anuja-3248/VitaGaurd/pkg/controller/http"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/service/alert"
	"github.com/Anuja-3248/VitaGaurd/pkg/service/audio"
	"github.com/Anuja-3248/VitaGaurd/pkg/service/worker"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var feedSize int
	var enableAudio bool
	var cfgFile config.ConfigFile
	var repoCfg config.Repository
	var storeCfg config.Store
	var schedCfg config.Scheduler

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       "127.0.0.1:8080",
			Sources:     cli.EnvVars("VITAGUARD_ADDR"),
			Destination: &addr,
		},
		&cli.IntFlag{
			Name:        "feed-size",
			Usage:       "Number of recent alerts served by /api/alerts",
			Value:       alert.DefaultFeedSize,
			Sources:     cli.EnvVars("VITAGUARD_FEED_SIZE"),
			Destination: &feedSize,
		},
		&cli.BoolFlag{
			Name:        "audio",
			Usage:       "Play a tone on the server host when an alert fires",
			Sources:     cli.EnvVars("VITAGUARD_AUDIO"),
			Destination: &enableAudio,
		},
	}

	// Add shared config flags
	flags = append(flags, cfgFile.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, storeCfg.Flags()...)
	flags = append(flags, schedCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the reminder API and run the alert scheduler",
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

			feed := alert.NewFeed(feedSize)

			var player interfaces.AudioPlayer = audio.Nop{}
			if enableAudio {
				player = audio.NewTonePlayer()
			}

			schedOpts := append(settings.Options(),
				worker.WithPresenter(feed),
				worker.WithAudio(player),
			)
			scheduler := worker.NewAlertScheduler(store, clk, schedOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(store, httpctrl.WithAlertFeed(feed)),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)

			if err := scheduler.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start alert scheduler")
			}
			defer scheduler.Stop()

			eg.Go(func() error {
				logging.From(ctx).Info("Starting HTTP server",
					"addr", addr,
					"user_id", store.UserID(),
					"reminders", len(store.List()),
					"online", store.EnabledCount())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server", goerr.V("addr", addr))
				}
				return nil
			})

			eg.Go(func() error {
				<-ctx.Done()
				logging.From(ctx).Info("Shutting down")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.From(ctx).Info("Server shutdown completed")
				return nil
			})

			return eg.Wait()
		},
	}
}
