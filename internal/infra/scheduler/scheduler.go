// Package scheduler runs the in-process clock that drives the daily
// rotation when no external scheduler is pointed at the worker endpoint.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"spotlight/config"
	"spotlight/internal/domain/entity"
	"spotlight/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// triggerPollInterval is the cadence on which the daily timers are checked.
// It bounds how late a transition can fire after its configured minute,
// independent of the aggregation interval.
const triggerPollInterval = time.Minute

// Scheduler fires the rollover, auction-open and auction-close transitions
// at their configured wall-clock times, and the shard aggregation on its
// fixed cadence. Transitions are idempotent downstream, so firing alongside
// an external scheduler is safe.
type Scheduler struct {
	lifecycle    usecase.LifecycleUsecase
	aggregation  usecase.AggregationUsecase
	cfg          *config.SchedulerConfig
	interval     time.Duration
	pollInterval time.Duration
	logger       *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Lifecycle   usecase.LifecycleUsecase
	Aggregation usecase.AggregationUsecase
	Logger      *slog.Logger
}

// New builds the scheduler and hooks it into the application lifecycle.
// When the scheduler section is absent or disabled it registers nothing.
func New(params Params) *Scheduler {
	if params.Config.Scheduler == nil || !params.Config.Scheduler.Enabled {
		params.Logger.Info("In-process scheduler disabled")

		return nil
	}

	s := &Scheduler{
		lifecycle:    params.Lifecycle,
		aggregation:  params.Aggregation,
		cfg:          params.Config.Scheduler,
		interval:     params.Config.Rotation.AggregateInterval,
		pollInterval: triggerPollInterval,
		logger:       params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.start()
		},
		OnStop: func(ctx context.Context) error {
			return s.stop(ctx)
		},
	})

	return s
}

func (s *Scheduler) start() error {
	triggers := []struct {
		name string
		at   string
		run  func(context.Context) error
	}{
		{"daily-rollover", s.cfg.RolloverAt, s.lifecycle.RolloverDay},
		{"auction-open", s.cfg.AuctionOpenAt, s.lifecycle.OpenAuction},
		{"auction-close", s.cfg.AuctionCloseAt, s.lifecycle.CloseAuction},
	}

	for _, trigger := range triggers {
		if _, err := parseWallClock(trigger.at); err != nil {
			return errors.Wrapf(err, "invalid %s time %q", trigger.name, trigger.at)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		aggTicker := time.NewTicker(s.interval)
		defer aggTicker.Stop()

		// The daily timers get their own cadence: transition latency is
		// bounded by pollInterval, never by the aggregation interval.
		triggerTicker := time.NewTicker(s.pollInterval)
		defer triggerTicker.Stop()

		timers := make([]*dailyTimer, 0, len(triggers))
		for _, trigger := range triggers {
			at, _ := parseWallClock(trigger.at)
			timers = append(timers, newDailyTimer(trigger.name, at, trigger.run))
		}

		s.logger.Info("Scheduler started",
			slog.String("rolloverAt", s.cfg.RolloverAt),
			slog.String("auctionOpenAt", s.cfg.AuctionOpenAt),
			slog.String("auctionCloseAt", s.cfg.AuctionCloseAt),
			slog.Duration("aggregateInterval", s.interval),
			slog.Duration("triggerPollInterval", s.pollInterval),
		)

		for {
			select {
			case <-ctx.Done():
				return
			case <-aggTicker.C:
				if err := s.aggregation.AggregateCurrent(ctx); err != nil {
					s.logger.Warn("Scheduled aggregation failed", slog.Any("error", err))
				}
			case <-triggerTicker.C:
				now := time.Now().In(entity.DayTimeZone)
				for _, timer := range timers {
					if !timer.due(now) {
						continue
					}

					s.logger.Info("Firing scheduled trigger", slog.String("trigger", timer.name))
					if err := timer.run(ctx); err != nil {
						s.logger.Error("Scheduled trigger failed",
							slog.String("trigger", timer.name),
							slog.Any("error", err),
						)
					}
				}
			}
		}
	}()

	return nil
}

func (s *Scheduler) stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}

	s.cancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler shutdown timed out")
	}
}

// wallClock is a minute-of-day in the rotation zone.
type wallClock int

func parseWallClock(s string) (wallClock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return wallClock(t.Hour()*60 + t.Minute()), nil
}

// dailyTimer fires its trigger once per rotation day, the first time the
// clock is observed at or past the configured minute. The per-day latch is
// only an in-process debounce; the transitions themselves tolerate
// duplicate firings.
type dailyTimer struct {
	name      string
	at        wallClock
	run       func(context.Context) error
	firedDay  entity.DayKey
	firedOnce bool
}

func newDailyTimer(name string, at wallClock, run func(context.Context) error) *dailyTimer {
	return &dailyTimer{name: name, at: at, run: run}
}

func (t *dailyTimer) due(now time.Time) bool {
	day := entity.DayKeyFromTime(now)
	minute := wallClock(now.Hour()*60 + now.Minute())

	if minute < t.at {
		return false
	}
	if t.firedOnce && t.firedDay == day {
		return false
	}

	t.firedDay = day
	t.firedOnce = true

	return true
}

// Module provides the scheduler FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Invoke(New),
)
