// Package usecase defines the application-level interfaces (ports) that the
// delivery layer drives and the impl package implements.
package usecase

import (
	"context"

	"spotlight/internal/domain/entity"
)

// EngagementUsecase absorbs high-frequency engagement pings into the
// sharded counters.
type EngagementUsecase interface {
	// IncrementMetric adds one engagement event to a random shard of the
	// current day's metric. It is explicitly fire-and-forget: the boolean
	// reports whether the delta landed, and callers are contractually
	// allowed to ignore it. Errors are swallowed and logged; a lost ping
	// around the rollover boundary is an accepted loss, never a failure.
	IncrementMetric(ctx context.Context, metric entity.Metric) bool
}

// AggregationUsecase periodically folds shard values into canonical totals.
type AggregationUsecase interface {
	// AggregateCurrent aggregates the current profile day. Invoked on a
	// fixed cadence; failures are logged and self-heal on the next cycle.
	AggregateCurrent(ctx context.Context) error

	// AggregateDay aggregates a specific day. Idempotent: re-running with
	// no intervening increments produces identical totals.
	AggregateDay(ctx context.Context, day entity.DayKey) error
}
