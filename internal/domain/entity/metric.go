package entity

import "github.com/pkg/errors"

// Metric is one of the three engagement counters tracked per day.
type Metric string

const (
	MetricView  Metric = "view"
	MetricHeart Metric = "heart"
	MetricCross Metric = "cross"
)

// Metrics lists every tracked metric in a stable order, used when
// provisioning shards and when aggregating.
var Metrics = []Metric{MetricView, MetricHeart, MetricCross}

// ParseMetric converts client input into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricView, MetricHeart, MetricCross:
		return Metric(s), nil
	default:
		return "", errors.Errorf("unknown metric %q", s)
	}
}

// MetricShard is one of N independent counters whose sum is the canonical
// value of a metric for a day. A single shard value carries no standalone
// meaning; sharding only exists so concurrent increments never serialize on
// one row.
type MetricShard struct {
	Day    DayKey
	Metric Metric
	Index  int
	Value  int64
}

// EngagementTotals holds the aggregated canonical totals for one day.
// Totals are only ever overwritten from shard sums, never incremented
// directly.
type EngagementTotals struct {
	Views   int64 `json:"views"`
	Hearts  int64 `json:"hearts"`
	Crosses int64 `json:"crosses"`
}

// TotalsFromSums maps per-metric shard sums into EngagementTotals. Metrics
// missing from the map aggregate to zero.
func TotalsFromSums(sums map[Metric]int64) EngagementTotals {
	return EngagementTotals{
		Views:   sums[MetricView],
		Hearts:  sums[MetricHeart],
		Crosses: sums[MetricCross],
	}
}
