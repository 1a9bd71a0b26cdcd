package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"rotation": map[string]any{
			"shardCount":        10,
			"aggregateInterval": "5m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ROTATION_SHARDCOUNT", want: "rotation.shardCount"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestRotationConfig_ApplyDefaults(t *testing.T) {
	var r RotationConfig
	r.applyDefaults()

	if r.ShardCount != defaultShardCount {
		t.Fatalf("ShardCount = %d, want %d", r.ShardCount, defaultShardCount)
	}
	if r.AggregateInterval != defaultAggregateInterval {
		t.Fatalf("AggregateInterval = %s, want %s", r.AggregateInterval, defaultAggregateInterval)
	}
	if r.BidRetryBudget != defaultBidRetryBudget {
		t.Fatalf("BidRetryBudget = %d, want %d", r.BidRetryBudget, defaultBidRetryBudget)
	}
	if r.DefaultTitle == "" {
		t.Fatal("DefaultTitle not defaulted")
	}

	// Explicit values survive.
	r = RotationConfig{ShardCount: 4, AggregateInterval: time.Minute, BidRetryBudget: 1, DefaultTitle: "x"}
	r.applyDefaults()
	if r.ShardCount != 4 || r.AggregateInterval != time.Minute || r.BidRetryBudget != 1 || r.DefaultTitle != "x" {
		t.Fatalf("explicit values were overridden: %+v", r)
	}
}
