package postgres

import (
	"context"

	"spotlight/internal/domain/entity"
	domainerrors "spotlight/internal/domain/errors"
	"spotlight/internal/domain/repository"
	"spotlight/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shardRepository implements the repository.ShardRepository interface.
type shardRepository struct {
	db *gorm.DB
}

// NewShardRepository is the constructor for shardRepository.
func NewShardRepository(db *gorm.DB) repository.ShardRepository {
	return &shardRepository{
		db: db,
	}
}

// Provision creates the zeroed shard rows for every metric of the day.
// ON CONFLICT DO NOTHING makes re-provisioning (at-least-once rollover
// triggers) leave live counters untouched.
func (repo *shardRepository) Provision(ctx context.Context, day entity.DayKey, count int) error {
	if count <= 0 {
		return errors.Errorf("invalid shard count %d", count)
	}

	shards := make([]model.MetricShardModel, 0, count*len(entity.Metrics))
	for _, metric := range entity.Metrics {
		for i := 0; i < count; i++ {
			shards = append(shards, model.MetricShardModel{
				Day:        day.String(),
				Metric:     string(metric),
				ShardIndex: i,
			})
		}
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&shards).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to provision shards")
	}

	return nil
}

// Increment applies a single-statement atomic add to one shard row. The
// database serializes the add itself, so concurrent increments on the same
// shard never lose updates and there is no read-modify-write window.
func (repo *shardRepository) Increment(ctx context.Context, day entity.DayKey, metric entity.Metric, index int, delta int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MetricShardModel{}).
		Where("day = ? AND metric = ? AND shard_index = ?", day.String(), string(metric), index).
		Update("value", gorm.Expr("value + ?", delta))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment shard")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShardNotFound
	}

	return nil
}

// SumByMetric folds all shard values of a day into per-metric sums.
func (repo *shardRepository) SumByMetric(ctx context.Context, day entity.DayKey) (map[entity.Metric]int64, error) {
	type metricSum struct {
		Metric string
		Total  int64
	}

	var rows []metricSum
	if err := repo.db.WithContext(ctx).
		Model(&model.MetricShardModel{}).
		Select("metric, COALESCE(SUM(value), 0) AS total").
		Where("day = ?", day.String()).
		Group("metric").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum shards")
	}

	if len(rows) == 0 {
		return nil, repository.ErrShardNotFound
	}

	sums := make(map[entity.Metric]int64, len(rows))
	for _, row := range rows {
		sums[entity.Metric(row.Metric)] = row.Total
	}

	return sums, nil
}
