package worker

import (
	"context"
	"sync"
	"time"

	"github.com/jmhodges/clock"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
)

// DefaultPollInterval is the period between two matching passes
const DefaultPollInterval = 10 * time.Second

// AlertScheduler polls the reminder snapshot and emits at most one Alert per reminder
// per matching minute. A minute that is never sampled is skipped, not caught up.
//
// Architecture assumptions:
// - One scheduler per reminder source; the ledger is not shared between processes
// - Passes run on a single goroutine and never overlap
type AlertScheduler struct {
	source    interfaces.ReminderSource
	clock     clock.Clock
	interval  time.Duration
	presenter interfaces.AlertPresenter
	audio     interfaces.AudioPlayer
	location  *time.Location
	dayFilter bool

	// tickMu serializes passes and guards ledger
	tickMu sync.Mutex
	// ledger holds the absolute minute an alert was emitted, per reminder.
	// Only entries for the current minute survive a pass.
	ledger map[model.ReminderID]time.Time

	lifecycleMu sync.Mutex
	started     bool
	stopOnce    sync.Once
	stopCh      chan struct{}
	doneCh      chan struct{}
}

type SchedulerOption func(*AlertScheduler)

// WithInterval sets the poll period. Non-positive values are ignored.
func WithInterval(d time.Duration) SchedulerOption {
	return func(s *AlertScheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithPresenter sets the presentation callback
func WithPresenter(p interfaces.AlertPresenter) SchedulerOption {
	return func(s *AlertScheduler) {
		s.presenter = p
	}
}

// WithAudio sets the audio callback
func WithAudio(a interfaces.AudioPlayer) SchedulerOption {
	return func(s *AlertScheduler) {
		s.audio = a
	}
}

// WithLocation sets the time zone used to derive the current minute and weekday
func WithLocation(loc *time.Location) SchedulerOption {
	return func(s *AlertScheduler) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithDayFilter controls whether a reminder fires only on its configured days.
// When disabled, every enabled reminder fires every day.
func WithDayFilter(enabled bool) SchedulerOption {
	return func(s *AlertScheduler) {
		s.dayFilter = enabled
	}
}

// NewAlertScheduler creates a scheduler reading reminders from source
func NewAlertScheduler(source interfaces.ReminderSource, clk clock.Clock, opts ...SchedulerOption) *AlertScheduler {
	s := &AlertScheduler{
		source:    source,
		clock:     clk,
		interval:  DefaultPollInterval,
		presenter: interfaces.AlertPresenterFunc(func(context.Context, model.Alert) {}),
		location:  time.Local,
		dayFilter: true,
		ledger:    make(map[model.ReminderID]time.Time),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs a first pass immediately and then one per interval in a background goroutine.
// The interval is measured on the scheduler's clock.
func (s *AlertScheduler) Start(ctx context.Context) error {
	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if s.started {
		return goerr.New("alert scheduler already started")
	}
	s.started = true

	logging.From(ctx).Info("alert scheduler starting",
		"interval", s.interval.String(),
		"day_filter", s.dayFilter,
		"location", s.location.String())

	go s.run(ctx)

	return nil
}

// Stop signals the loop to exit and waits for the current pass to finish.
// It is safe to call more than once, and before Start.
func (s *AlertScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})

	s.lifecycleMu.Lock()
	started := s.started
	s.lifecycleMu.Unlock()

	if started {
		<-s.doneCh
	}
}

func (s *AlertScheduler) run(ctx context.Context) {
	defer close(s.doneCh)

	select {
	case <-s.stopCh:
		return
	default:
	}

	s.Tick(ctx)

	for {
		select {
		case <-s.clock.After(s.interval):
			s.Tick(ctx)

		case <-s.stopCh:
			logging.From(ctx).Info("alert scheduler stopped")
			return

		case <-ctx.Done():
			logging.From(ctx).Info("alert scheduler context cancelled")
			return
		}
	}
}

// Tick runs one matching pass against the current snapshot and returns the alerts it emitted
func (s *AlertScheduler) Tick(ctx context.Context) []model.Alert {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	now := s.clock.Now().In(s.location)
	minute := types.ClockTimeOf(now)
	current := now.Truncate(time.Minute)
	snapshot := s.source.List()

	present := make(map[model.ReminderID]struct{}, len(snapshot))
	var alerts []model.Alert

	for _, r := range snapshot {
		present[r.ID] = struct{}{}

		if !r.Enabled || r.Time != minute {
			continue
		}
		if s.dayFilter && !r.Days.Includes(now.Weekday()) {
			continue
		}
		if last, ok := s.ledger[r.ID]; ok && last.Equal(current) {
			continue
		}

		s.ledger[r.ID] = current
		alerts = append(alerts, model.NewAlert(r, minute, now))
	}

	// deleted reminders and past minutes can never suppress a future alert
	for id, last := range s.ledger {
		if _, ok := present[id]; !ok || !last.Equal(current) {
			delete(s.ledger, id)
		}
	}

	for _, alert := range alerts {
		s.emit(ctx, alert)
	}

	return alerts
}

func (s *AlertScheduler) emit(ctx context.Context, alert model.Alert) {
	logger := logging.From(ctx)
	logger.Info("reminder alert emitted",
		"reminder_id", alert.ReminderID,
		"title", alert.Title,
		"severity", alert.Severity,
		"minute", alert.Minute)

	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("alert presenter panicked", "reminder_id", alert.ReminderID, "panic", r)
			}
		}()
		s.presenter.Present(ctx, alert)
	}()

	if s.audio == nil {
		return
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Debug("audio playback panicked", "reminder_id", alert.ReminderID, "panic", r)
			}
		}()
		if err := s.audio.Play(ctx, alert.Severity); err != nil {
			logger.Debug("audio playback failed", "reminder_id", alert.ReminderID, "error", err)
		}
	}()
}
