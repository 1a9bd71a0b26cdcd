package repository

import (
	"context"

	"spotlight/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrShardNotFound is returned when an increment targets a day whose shards
// were never provisioned. Engagement callers treat it as a tolerable no-op:
// pings arriving around the rollover boundary are allowed to be lost.
var ErrShardNotFound = errors.New("metric shard not found")

// ShardRepository defines the interface for the sharded engagement counters.
type ShardRepository interface {
	// Provision creates `count` zeroed shards for every metric of the day.
	// Provisioning an already provisioned day must not reset live counters.
	Provision(ctx context.Context, day entity.DayKey, count int) error

	// Increment atomically adds delta to one shard. The add must be a
	// single-statement atomic operation with no read-modify-write, so any
	// number of concurrent callers on the same metric never lose updates.
	// Returns ErrShardNotFound if the shard row does not exist.
	Increment(ctx context.Context, day entity.DayKey, metric entity.Metric, index int, delta int64) error

	// SumByMetric returns the per-metric sums over all shards of a day.
	// The read is not transactional with concurrent increments; a sum may
	// trail in-flight deltas, which the aggregation cadence self-heals.
	SumByMetric(ctx context.Context, day entity.DayKey) (map[entity.Metric]int64, error)
}
