package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"spotlight/config"
	"spotlight/internal/domain/repository"
	mockRepo "spotlight/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(shardCount, bidRetryBudget int) *config.Config {
	cfg := &config.Config{}
	cfg.Rotation = config.RotationConfig{
		ShardCount:        shardCount,
		AggregateInterval: 5 * time.Minute,
		BidRetryBudget:    bidRetryBudget,
		DefaultTitle:      "Profile of the Day",
	}

	return cfg
}

// expectTransaction makes the transaction manager run callbacks directly
// against the given factory, standing in for a real transaction.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
