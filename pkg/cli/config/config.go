package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
	"github.com/Anuja-3248/VitaGaurd/pkg/usecase"
)

// AppConfig represents the application configuration file
type AppConfig struct {
	Scheduler SchedulerSection `toml:"scheduler"`
	Seeds     []Seed           `toml:"seed"`
}

// SchedulerSection configures the alert scheduler. Command line flags take precedence.
type SchedulerSection struct {
	PollInterval string `toml:"poll_interval"`
	EnforceDays  *bool  `toml:"enforce_days"`
	Timezone     string `toml:"timezone"`
}

// Seed is a reminder installed for a user whose reminder set has never been written.
// Days, when given, takes precedence over Frequency.
type Seed struct {
	Title     string   `toml:"title"`
	Time      string   `toml:"time"`
	Type      string   `toml:"type"`
	Frequency string   `toml:"frequency"`
	Days      []string `toml:"days"`
}

// ToUseCase validates the seed and converts it
func (s *Seed) ToUseCase() (usecase.Seed, error) {
	if strings.TrimSpace(s.Title) == "" {
		return usecase.Seed{}, goerr.Wrap(ErrInvalidSeed, "seed title is required")
	}

	at, err := types.ParseClockTime(s.Time)
	if err != nil {
		return usecase.Seed{}, goerr.Wrap(ErrInvalidSeed, err.Error(), goerr.V("title", s.Title))
	}

	rt, err := types.ParseReminderType(s.Type)
	if err != nil {
		return usecase.Seed{}, goerr.Wrap(ErrInvalidSeed, err.Error(), goerr.V("title", s.Title))
	}

	days := types.Frequency(s.Frequency).Days()
	if len(s.Days) > 0 {
		days, err = types.ParseDays(s.Days)
		if err != nil {
			return usecase.Seed{}, goerr.Wrap(ErrInvalidSeed, err.Error(), goerr.V("title", s.Title))
		}
	}

	return usecase.Seed{
		Title: strings.TrimSpace(s.Title),
		Time:  at,
		Type:  rt,
		Days:  days,
	}, nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if a.Scheduler.PollInterval != "" {
		if _, err := parsePollInterval(a.Scheduler.PollInterval); err != nil {
			return goerr.Wrap(ErrInvalidConfig, err.Error())
		}
	}
	if a.Scheduler.Timezone != "" {
		if _, err := loadLocation(a.Scheduler.Timezone); err != nil {
			return goerr.Wrap(ErrInvalidConfig, err.Error())
		}
	}

	for i := range a.Seeds {
		if _, err := a.Seeds[i].ToUseCase(); err != nil {
			return goerr.Wrap(err, "invalid seed", goerr.V(SeedIndexKey, i))
		}
	}

	return nil
}

// UseCaseSeeds converts all seeds. The config must have been validated.
func (a *AppConfig) UseCaseSeeds() []usecase.Seed {
	seeds := make([]usecase.Seed, 0, len(a.Seeds))
	for i := range a.Seeds {
		if seed, err := a.Seeds[i].ToUseCase(); err == nil {
			seeds = append(seeds, seed)
		}
	}
	return seeds
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, err.Error(), goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}

// ConfigFile holds the CLI flag pointing at the configuration file
type ConfigFile struct {
	path string
}

// Flags returns CLI flags for the configuration file
func (c *ConfigFile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Sources:     cli.EnvVars("VITAGUARD_CONFIG"),
			Destination: &c.path,
		},
	}
}

// Configure loads the configuration file. Without --config an empty configuration is returned.
func (c *ConfigFile) Configure() (*AppConfig, error) {
	if c.path == "" {
		return &AppConfig{}, nil
	}
	return LoadAppConfiguration(c.path)
}
