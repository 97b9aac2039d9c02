package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Anuja-3248/VitaGaurd/pkg/service/worker"
)

const minPollInterval = time.Second

// Scheduler holds CLI flags for the alert scheduler
type Scheduler struct {
	interval    time.Duration
	enforceDays bool
	timezone    string
}

// SchedulerSettings is the resolved scheduler configuration
type SchedulerSettings struct {
	Interval    time.Duration
	EnforceDays bool
	Location    *time.Location
}

// Options converts the settings to scheduler options
func (s SchedulerSettings) Options() []worker.SchedulerOption {
	return []worker.SchedulerOption{
		worker.WithInterval(s.Interval),
		worker.WithDayFilter(s.EnforceDays),
		worker.WithLocation(s.Location),
	}
}

// Flags returns CLI flags for scheduler configuration
func (s *Scheduler) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "Interval between two reminder matching passes (must be under one minute)",
			Value:       worker.DefaultPollInterval,
			Category:    "Scheduler",
			Sources:     cli.EnvVars("VITAGUARD_POLL_INTERVAL"),
			Destination: &s.interval,
		},
		&cli.BoolFlag{
			Name:        "enforce-days",
			Usage:       "Fire reminders only on their configured days",
			Value:       true,
			Category:    "Scheduler",
			Sources:     cli.EnvVars("VITAGUARD_ENFORCE_DAYS"),
			Destination: &s.enforceDays,
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "IANA time zone used to match reminder times (default: local)",
			Category:    "Scheduler",
			Sources:     cli.EnvVars("VITAGUARD_TIMEZONE"),
			Destination: &s.timezone,
		},
	}
}

// Configure resolves the scheduler settings from flags and the configuration file
func (s *Scheduler) Configure(c *cli.Command, app *AppConfig) (SchedulerSettings, error) {
	return s.resolve(c.IsSet, app)
}

func (s *Scheduler) resolve(isSet func(name string) bool, app *AppConfig) (SchedulerSettings, error) {
	if app == nil {
		app = &AppConfig{}
	}
	section := app.Scheduler

	interval := s.interval
	if !isSet("poll-interval") && section.PollInterval != "" {
		d, err := parsePollInterval(section.PollInterval)
		if err != nil {
			return SchedulerSettings{}, err
		}
		interval = d
	}
	if err := validatePollInterval(interval); err != nil {
		return SchedulerSettings{}, err
	}

	enforceDays := s.enforceDays
	if !isSet("enforce-days") && section.EnforceDays != nil {
		enforceDays = *section.EnforceDays
	}

	tz := s.timezone
	if !isSet("timezone") && section.Timezone != "" {
		tz = section.Timezone
	}
	loc, err := loadLocation(tz)
	if err != nil {
		return SchedulerSettings{}, err
	}

	return SchedulerSettings{
		Interval:    interval,
		EnforceDays: enforceDays,
		Location:    loc,
	}, nil
}

func parsePollInterval(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid poll interval", goerr.V("poll_interval", s))
	}
	if err := validatePollInterval(d); err != nil {
		return 0, err
	}
	return d, nil
}

// a poll period of a minute or more could skip a whole matching minute
func validatePollInterval(d time.Duration) error {
	if d < minPollInterval || d >= time.Minute {
		return goerr.New("poll interval must be at least 1s and under 1m", goerr.V("poll_interval", d))
	}
	return nil
}

func loadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid timezone", goerr.V("timezone", tz))
	}
	return loc, nil
}
