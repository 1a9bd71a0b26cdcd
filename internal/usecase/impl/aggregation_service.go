package impl

import (
	"context"
	"log/slog"

	"spotlight/internal/domain/entity"
	"spotlight/internal/domain/repository"
	"spotlight/internal/errors"
	"spotlight/internal/usecase"
)

// aggregationService implements the AggregationUsecase interface.
type aggregationService struct {
	shardRepo   repository.ShardRepository
	profileRepo repository.ProfileRepository
	stateRepo   repository.StateRepository
	logger      *slog.Logger
}

// NewAggregationService is the constructor for aggregationService.
func NewAggregationService(
	shardRepo repository.ShardRepository,
	profileRepo repository.ProfileRepository,
	stateRepo repository.StateRepository,
	logger *slog.Logger,
) usecase.AggregationUsecase {
	return &aggregationService{
		shardRepo:   shardRepo,
		profileRepo: profileRepo,
		stateRepo:   stateRepo,
		logger:      logger,
	}
}

// AggregateCurrent aggregates whichever day the pointer record names.
func (srv *aggregationService) AggregateCurrent(ctx context.Context) error {
	state, err := srv.stateRepo.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotSeeded) {
			// Nothing has ever rolled over; nothing to aggregate.
			srv.logger.Debug("Aggregation skipped, no current day yet")

			return nil
		}

		return errors.Wrap(err, "failed to resolve current day")
	}

	return srv.AggregateDay(ctx, state.ProfileDay)
}

// AggregateDay folds the day's shard values into the profile's canonical
// totals. The shard read and the totals write are deliberately not one
// transaction with concurrent increments: a sum may trail a still-landing
// delta, and the next cycle picks it up. Overwriting (rather than adding)
// is what makes re-runs idempotent.
func (srv *aggregationService) AggregateDay(ctx context.Context, day entity.DayKey) error {
	sums, err := srv.shardRepo.SumByMetric(ctx, day)
	if err != nil {
		return errors.Wrapf(err, "failed to sum shards for %s", day)
	}

	totals := entity.TotalsFromSums(sums)
	if err := srv.profileRepo.UpdateTotals(ctx, day, totals); err != nil {
		return errors.Wrapf(err, "failed to write totals for %s", day)
	}

	srv.logger.Debug("Aggregated engagement totals",
		slog.String("day", day.String()),
		slog.Int64("views", totals.Views),
		slog.Int64("hearts", totals.Hearts),
		slog.Int64("crosses", totals.Crosses),
	)

	return nil
}
