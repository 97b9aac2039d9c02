package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Anuja-3248/VitaGaurd/pkg/cli/config"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
)

func Run(ctx context.Context, args []string, version string) error {
	app := newApp(version)

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}

func newApp(version string) *cli.Command {
	var loggerCfg config.Logger
	var sentryCfg config.Sentry
	var closers []func()

	flags := loggerCfg.Flags()
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "vitaguard",
		Usage:   "VitaGuard reminder scheduling and alert engine",
		Version: version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logCloser, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closers = append(closers, logCloser)

			sentryCloser, err := sentryCfg.Configure(version)
			if err != nil {
				return ctx, err
			}
			closers = append(closers, sentryCloser)

			logging.Default().Debug("Starting vitaguard",
				"version", version,
				"logger", loggerCfg,
				"sentry", sentryCfg)
			return logging.With(ctx, logging.Default()), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// reverse order: the log file must outlive the Sentry flush
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
			closers = nil
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdWatch(),
			cmdReminder(),
			cmdValidate(),
			cmdMigrate(),
		},
	}
}
