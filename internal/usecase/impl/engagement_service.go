// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"spotlight/config"
	"spotlight/internal/domain/repository"
	"spotlight/internal/domain/service"
	"spotlight/internal/errors"
	"spotlight/internal/usecase"

	"spotlight/internal/domain/entity"
)

// engagementService implements the EngagementUsecase interface.
type engagementService struct {
	shardRepo  repository.ShardRepository
	clock      service.Clock
	shardCount int
	pickShard  func(n int) int
	logger     *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(
	shardRepo repository.ShardRepository,
	clock service.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EngagementUsecase {
	return &engagementService{
		shardRepo:  shardRepo,
		clock:      clock,
		shardCount: cfg.Rotation.ShardCount,
		pickShard:  rand.IntN,
		logger:     logger,
	}
}

// IncrementMetric lands one engagement event on a uniformly random shard of
// today's metric. Random selection is stateless: no shared cursor, so any
// number of concurrent pings coordinate on nothing at all, and the single
// shard row they do touch absorbs the delta atomically in the database.
//
// Every failure path returns false instead of an error. Losing an
// occasional ping (most commonly one racing the midnight rollover before
// the new day's shards exist) is an accepted loss, not a fault to surface.
func (srv *engagementService) IncrementMetric(ctx context.Context, metric entity.Metric) bool {
	day := srv.clock.Today()
	index := srv.pickShard(srv.shardCount)

	err := srv.shardRepo.Increment(ctx, day, metric, index, 1)
	if err == nil {
		return true
	}

	if errors.Is(err, repository.ErrShardNotFound) {
		srv.logger.Debug("Engagement ping before day provisioned, dropped",
			slog.String("day", day.String()),
			slog.String("metric", string(metric)),
		)

		return false
	}

	srv.logger.Warn("Engagement increment failed, dropped",
		slog.String("day", day.String()),
		slog.String("metric", string(metric)),
		slog.Int("shard", index),
		slog.Any("error", err),
	)

	return false
}
