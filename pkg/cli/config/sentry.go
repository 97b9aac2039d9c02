package config

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Sentry holds CLI flags for error reporting
type Sentry struct {
	dsn string
	env string
}

// Flags returns CLI flags for Sentry configuration
func (s *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN. Error reporting is disabled when empty",
			Category:    "Sentry",
			Sources:     cli.EnvVars("VITAGUARD_SENTRY_DSN"),
			Destination: &s.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Value:       "development",
			Category:    "Sentry",
			Sources:     cli.EnvVars("VITAGUARD_SENTRY_ENV"),
			Destination: &s.env,
		},
	}
}

// IsEnabled reports whether a DSN was given
func (s *Sentry) IsEnabled() bool {
	return s.dsn != ""
}

// Configure initializes the global Sentry client. The returned closer flushes pending events.
func (s *Sentry) Configure(release string) (func(), error) {
	if !s.IsEnabled() {
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         s.dsn,
		Environment: s.env,
		Release:     release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry", goerr.V("env", s.env))
	}

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}

type sentryLogValue struct {
	DSN         string `masq:"secret"`
	Environment string
}

// LogValue returns the configuration with the DSN tagged for redaction
func (s Sentry) LogValue() slog.Value {
	return slog.AnyValue(sentryLogValue{
		DSN:         s.dsn,
		Environment: s.env,
	})
}
