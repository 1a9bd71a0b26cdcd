package impl

import (
	"context"
	"testing"

	"spotlight/internal/domain/entity"
	domainerrors "spotlight/internal/domain/errors"
	"spotlight/internal/domain/repository"
	mockRepo "spotlight/internal/mocks/repository"
	"spotlight/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAuctionDay = entity.DayKey("8-30-2026")

// auctionServiceFixtures holds all test dependencies for auction service tests.
type auctionServiceFixtures struct {
	service     usecase.AuctionUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	auctionRepo *mockRepo.MockAuctionRepository
	stateRepo   *mockRepo.MockStateRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestAuctionService(t *testing.T, retryBudget int) auctionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	auctionRepo := mockRepo.NewMockAuctionRepository(t)
	stateRepo := mockRepo.NewMockStateRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewAuctionService(txManager, auctionRepo, stateRepo, newTestConfig(10, retryBudget), newDiscardLogger())

	return auctionServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		auctionRepo: auctionRepo,
		stateRepo:   stateRepo,
		userRepo:    userRepo,
	}
}

func (fx auctionServiceFixtures) expectBidFactory() {
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewStateRepository().Return(fx.stateRepo)
	fx.factory.EXPECT().NewAuctionRepository().Return(fx.auctionRepo)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
}

func openAuction(topBid int64, bidCount int) *entity.Auction {
	target, _ := testAuctionDay.Next()

	return &entity.Auction{
		Day:        testAuctionDay,
		Target:     target,
		Status:     entity.AuctionStatusOpen,
		Resolution: entity.AuctionUnresolved,
		TopBid:     topBid,
		BidCount:   bidCount,
	}
}

func TestAuctionService_PlaceBid_FirstBid(t *testing.T) {
	fx := createTestAuctionService(t, 3)
	fx.expectBidFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		Find(ctx, testAuctionDay).
		Return(openAuction(0, 0), nil)

	fx.auctionRepo.EXPECT().
		AdvanceTop(ctx, testAuctionDay, int64(0), 0, int64(10)).
		Return(nil)

	fx.auctionRepo.EXPECT().
		AppendBid(ctx, &entity.Bid{Day: testAuctionDay, Index: 0, Amount: 10, BidderID: "user-a"}).
		Return(nil)

	fx.userRepo.EXPECT().
		UpsertEntry(ctx, &entity.AuctionEntry{UserID: "user-a", Day: testAuctionDay, LatestBid: 10}).
		Return(nil)

	receipt, err := fx.service.PlaceBid(ctx, "user-a", &usecase.PlaceBidInput{Amount: 10})
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, testAuctionDay, receipt.Day)
	assert.Equal(t, int64(10), receipt.Amount)
	assert.Equal(t, 0, receipt.Index)
	assert.Equal(t, 1, receipt.BidCount)
}

func TestAuctionService_PlaceBid_InvalidAmount(t *testing.T) {
	fx := createTestAuctionService(t, 3)

	ctx := context.Background()

	receipt, err := fx.service.PlaceBid(ctx, "user-a", &usecase.PlaceBidInput{Amount: 0})
	assert.Nil(t, receipt)
	assert.Equal(t, domainerrors.ErrInvalidBid, err)

	receipt, err = fx.service.PlaceBid(ctx, "user-a", &usecase.PlaceBidInput{Amount: -5})
	assert.Nil(t, receipt)
	assert.Equal(t, domainerrors.ErrInvalidBid, err)

	receipt, err = fx.service.PlaceBid(ctx, "user-a", nil)
	assert.Nil(t, receipt)
	assert.Equal(t, domainerrors.ErrInvalidBid, err)
}

func TestAuctionService_PlaceBid_EqualToTopRejected(t *testing.T) {
	fx := createTestAuctionService(t, 3)
	fx.expectBidFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		Find(ctx, testAuctionDay).
		Return(openAuction(50, 2), nil)

	// Matching the top exactly is a rejection, and nothing may be written.
	receipt, err := fx.service.PlaceBid(ctx, "user-b", &usecase.PlaceBidInput{Amount: 50})
	assert.Nil(t, receipt)
	assert.Equal(t, domainerrors.ErrBidTooLow, err)
	fx.auctionRepo.AssertNotCalled(t, "AdvanceTop")
	fx.auctionRepo.AssertNotCalled(t, "AppendBid")
	fx.userRepo.AssertNotCalled(t, "UpsertEntry")
}

func TestAuctionService_PlaceBid_ClosedAuction(t *testing.T) {
	fx := createTestAuctionService(t, 3)
	fx.expectBidFactory()

	ctx := context.Background()

	closed := openAuction(40, 3)
	closed.Status = entity.AuctionStatusClosed

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		Find(ctx, testAuctionDay).
		Return(closed, nil)

	receipt, err := fx.service.PlaceBid(ctx, "user-b", &usecase.PlaceBidInput{Amount: 100})
	assert.Nil(t, receipt)
	assert.Equal(t, domainerrors.ErrAuctionClosed, err)
}

func TestAuctionService_PlaceBid_NoAuctionYet(t *testing.T) {
	fx := createTestAuctionService(t, 3)
	fx.expectBidFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(nil, repository.ErrStateNotSeeded)

	receipt, err := fx.service.PlaceBid(ctx, "user-a", &usecase.PlaceBidInput{Amount: 10})
	assert.Nil(t, receipt)
	assert.Equal(t, domainerrors.ErrAuctionClosed, err)
}

// Two bidders race the same observed top of 50: the 60 bid loses the
// conditional advance to a concurrent 60, re-reads the fresh top, and is now
// too low instead of silently overwriting an equal bid.
func TestAuctionService_PlaceBid_ConflictThenTooLow(t *testing.T) {
	fx := createTestAuctionService(t, 3)
	fx.expectBidFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		Find(ctx, testAuctionDay).
		Return(openAuction(50, 1), nil).
		Once()

	fx.auctionRepo.EXPECT().
		AdvanceTop(ctx, testAuctionDay, int64(50), 1, int64(60)).
		Return(repository.ErrBidConflict).
		Once()

	// Retry sees the winner of the race already at 60.
	fx.auctionRepo.EXPECT().
		Find(ctx, testAuctionDay).
		Return(openAuction(60, 2), nil).
		Once()

	receipt, err := fx.service.PlaceBid(ctx, "user-b", &usecase.PlaceBidInput{Amount: 60})
	assert.Nil(t, receipt)
	assert.Equal(t, domainerrors.ErrBidTooLow, err)
}

func TestAuctionService_PlaceBid_ConflictThenAccepted(t *testing.T) {
	fx := createTestAuctionService(t, 3)
	fx.expectBidFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		Find(ctx, testAuctionDay).
		Return(openAuction(50, 1), nil).
		Once()

	fx.auctionRepo.EXPECT().
		AdvanceTop(ctx, testAuctionDay, int64(50), 1, int64(75)).
		Return(repository.ErrBidConflict).
		Once()

	fx.auctionRepo.EXPECT().
		Find(ctx, testAuctionDay).
		Return(openAuction(60, 2), nil).
		Once()

	fx.auctionRepo.EXPECT().
		AdvanceTop(ctx, testAuctionDay, int64(60), 2, int64(75)).
		Return(nil).
		Once()

	fx.auctionRepo.EXPECT().
		AppendBid(ctx, &entity.Bid{Day: testAuctionDay, Index: 2, Amount: 75, BidderID: "user-b"}).
		Return(nil)

	fx.userRepo.EXPECT().
		UpsertEntry(ctx, &entity.AuctionEntry{UserID: "user-b", Day: testAuctionDay, LatestBid: 75}).
		Return(nil)

	receipt, err := fx.service.PlaceBid(ctx, "user-b", &usecase.PlaceBidInput{Amount: 75})
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, 2, receipt.Index)
	assert.Equal(t, 3, receipt.BidCount)
}

func TestAuctionService_PlaceBid_RetryBudgetExhausted(t *testing.T) {
	fx := createTestAuctionService(t, 1)
	fx.expectBidFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		Find(ctx, testAuctionDay).
		Return(openAuction(50, 1), nil)

	fx.auctionRepo.EXPECT().
		AdvanceTop(ctx, testAuctionDay, int64(50), 1, int64(100)).
		Return(repository.ErrBidConflict)

	receipt, err := fx.service.PlaceBid(ctx, "user-b", &usecase.PlaceBidInput{Amount: 100})
	assert.Nil(t, receipt)
	assert.Equal(t, domainerrors.ErrBidConflict, err)
}

func TestAuctionService_PlaceBid_RepositoryError(t *testing.T) {
	fx := createTestAuctionService(t, 3)
	fx.expectBidFactory()

	ctx := context.Background()
	expectedErr := errors.New("database error")

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(nil, expectedErr)

	receipt, err := fx.service.PlaceBid(ctx, "user-a", &usecase.PlaceBidInput{Amount: 10})
	assert.Nil(t, receipt)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve current auction day")
}

func TestAuctionService_CurrentAuction_Success(t *testing.T) {
	fx := createTestAuctionService(t, 3)

	ctx := context.Background()
	expected := openAuction(25, 2)

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		Find(ctx, testAuctionDay).
		Return(expected, nil)

	auction, err := fx.service.CurrentAuction(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, auction)
}

func TestAuctionService_CurrentAuction_NotSeeded(t *testing.T) {
	fx := createTestAuctionService(t, 3)

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(nil, repository.ErrStateNotSeeded)

	auction, err := fx.service.CurrentAuction(ctx)
	assert.Nil(t, auction)
	assert.Equal(t, domainerrors.ErrNotFound, err)
}
