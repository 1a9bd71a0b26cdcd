package impl

import (
	"context"
	"testing"

	"spotlight/internal/domain/entity"
	"spotlight/internal/domain/repository"
	"spotlight/internal/domain/service"
	mockRepo "spotlight/internal/mocks/repository"
	mockService "spotlight/internal/mocks/service"
	"spotlight/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// lifecycleServiceFixtures holds all test dependencies for lifecycle service tests.
type lifecycleServiceFixtures struct {
	service     usecase.LifecycleUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	profileRepo *mockRepo.MockProfileRepository
	shardRepo   *mockRepo.MockShardRepository
	auctionRepo *mockRepo.MockAuctionRepository
	userRepo    *mockRepo.MockUserRepository
	stateRepo   *mockRepo.MockStateRepository
	clock       *mockService.MockClock
	publisher   *mockService.MockEventPublisher
}

func createTestLifecycleService(t *testing.T) lifecycleServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	shardRepo := mockRepo.NewMockShardRepository(t)
	auctionRepo := mockRepo.NewMockAuctionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	stateRepo := mockRepo.NewMockStateRepository(t)
	clock := mockService.NewMockClock(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewLifecycleService(txManager, clock, publisher, newTestConfig(10, 3), newDiscardLogger())

	return lifecycleServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		profileRepo: profileRepo,
		shardRepo:   shardRepo,
		auctionRepo: auctionRepo,
		userRepo:    userRepo,
		stateRepo:   stateRepo,
		clock:       clock,
		publisher:   publisher,
	}
}

func TestLifecycleService_RolloverDay_FirstRun(t *testing.T) {
	fx := createTestLifecycleService(t)
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo)
	fx.factory.EXPECT().NewShardRepository().Return(fx.shardRepo)
	fx.factory.EXPECT().NewStateRepository().Return(fx.stateRepo)

	ctx := context.Background()

	fx.clock.EXPECT().Today().Return(testAuctionDay)

	fx.profileRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.Day == testAuctionDay && !p.IsSet && p.Content.Title == "Profile of the Day"
		})).
		Return(nil)

	fx.shardRepo.EXPECT().
		Provision(ctx, testAuctionDay, 10).
		Return(nil)

	fx.stateRepo.EXPECT().
		SetProfileDay(ctx, testAuctionDay).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLifecycleEvent(ctx, &service.LifecycleEvent{
			Type: service.EventDayRolledOver,
			Day:  testAuctionDay.String(),
		}).
		Return(nil)

	require.NoError(t, fx.service.RolloverDay(ctx))
}

// A re-delivered rollover trigger must not reset live counters: the
// duplicate create is skipped, provisioning is a no-op on existing shards,
// and the pointer repoint is harmless.
func TestLifecycleService_RolloverDay_Redelivered(t *testing.T) {
	fx := createTestLifecycleService(t)
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo)
	fx.factory.EXPECT().NewShardRepository().Return(fx.shardRepo)
	fx.factory.EXPECT().NewStateRepository().Return(fx.stateRepo)

	ctx := context.Background()

	fx.clock.EXPECT().Today().Return(testAuctionDay)

	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(repository.ErrDuplicateProfile)

	fx.shardRepo.EXPECT().
		Provision(ctx, testAuctionDay, 10).
		Return(nil)

	fx.stateRepo.EXPECT().
		SetProfileDay(ctx, testAuctionDay).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLifecycleEvent(ctx, mock.AnythingOfType("*service.LifecycleEvent")).
		Return(nil)

	require.NoError(t, fx.service.RolloverDay(ctx))
}

func TestLifecycleService_RolloverDay_PublishFailureSwallowed(t *testing.T) {
	fx := createTestLifecycleService(t)
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo)
	fx.factory.EXPECT().NewShardRepository().Return(fx.shardRepo)
	fx.factory.EXPECT().NewStateRepository().Return(fx.stateRepo)

	ctx := context.Background()

	fx.clock.EXPECT().Today().Return(testAuctionDay)
	fx.profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	fx.shardRepo.EXPECT().Provision(ctx, testAuctionDay, 10).Return(nil)
	fx.stateRepo.EXPECT().SetProfileDay(ctx, testAuctionDay).Return(nil)

	fx.publisher.EXPECT().
		PublishLifecycleEvent(ctx, mock.AnythingOfType("*service.LifecycleEvent")).
		Return(errors.New("broker unavailable"))

	// The transition committed; publishing is best-effort.
	require.NoError(t, fx.service.RolloverDay(ctx))
}

func TestLifecycleService_OpenAuction_Success(t *testing.T) {
	fx := createTestLifecycleService(t)
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAuctionRepository().Return(fx.auctionRepo)
	fx.factory.EXPECT().NewStateRepository().Return(fx.stateRepo)

	ctx := context.Background()
	target, err := testAuctionDay.Next()
	require.NoError(t, err)

	fx.clock.EXPECT().Today().Return(testAuctionDay)

	fx.auctionRepo.EXPECT().
		CreateAuction(ctx, &entity.Auction{
			Day:        testAuctionDay,
			Target:     target,
			Status:     entity.AuctionStatusOpen,
			Resolution: entity.AuctionUnresolved,
		}).
		Return(nil)

	fx.stateRepo.EXPECT().
		SetAuctionDay(ctx, testAuctionDay).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLifecycleEvent(ctx, &service.LifecycleEvent{
			Type:      service.EventAuctionOpened,
			Day:       testAuctionDay.String(),
			TargetDay: target.String(),
		}).
		Return(nil)

	require.NoError(t, fx.service.OpenAuction(ctx))
}

func TestLifecycleService_OpenAuction_Redelivered(t *testing.T) {
	fx := createTestLifecycleService(t)
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAuctionRepository().Return(fx.auctionRepo)
	fx.factory.EXPECT().NewStateRepository().Return(fx.stateRepo)

	ctx := context.Background()

	fx.clock.EXPECT().Today().Return(testAuctionDay)

	fx.auctionRepo.EXPECT().
		CreateAuction(ctx, mock.AnythingOfType("*entity.Auction")).
		Return(repository.ErrDuplicateAuction)

	fx.stateRepo.EXPECT().
		SetAuctionDay(ctx, testAuctionDay).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLifecycleEvent(ctx, mock.AnythingOfType("*service.LifecycleEvent")).
		Return(nil)

	require.NoError(t, fx.service.OpenAuction(ctx))
}

func (fx lifecycleServiceFixtures) expectCloseFactory() {
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewStateRepository().Return(fx.stateRepo)
	fx.factory.EXPECT().NewAuctionRepository().Return(fx.auctionRepo)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
}

// closedAuction is the post-flip state the guarded close hands back.
func closedAuction(topBid int64, bidCount int) *entity.Auction {
	auction := openAuction(topBid, bidCount)
	auction.Status = entity.AuctionStatusClosed

	return auction
}

func TestLifecycleService_CloseAuction_NoBids(t *testing.T) {
	fx := createTestLifecycleService(t)
	fx.expectCloseFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		CloseAuction(ctx, testAuctionDay).
		Return(closedAuction(0, 0), nil)

	fx.publisher.EXPECT().
		PublishLifecycleEvent(ctx, &service.LifecycleEvent{
			Type: service.EventAuctionResolved,
			Day:  testAuctionDay.String(),
		}).
		Return(nil)

	require.NoError(t, fx.service.CloseAuction(ctx))
	fx.userRepo.AssertNotCalled(t, "MarkWinner")
	fx.auctionRepo.AssertNotCalled(t, "Resolve")
}

// Bids of 10, 25 and 90 land in acceptance order; only the final log entry
// wins, and only its bidder is marked.
func TestLifecycleService_CloseAuction_LastBidWins(t *testing.T) {
	fx := createTestLifecycleService(t)
	fx.expectCloseFactory()

	ctx := context.Background()
	target, err := testAuctionDay.Next()
	require.NoError(t, err)

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		CloseAuction(ctx, testAuctionDay).
		Return(closedAuction(90, 3), nil)

	fx.auctionRepo.EXPECT().
		BidAt(ctx, testAuctionDay, 2).
		Return(&entity.Bid{Day: testAuctionDay, Index: 2, Amount: 90, BidderID: "user-c"}, nil)

	fx.userRepo.EXPECT().
		MarkWinner(ctx, "user-c", testAuctionDay).
		Return(nil)

	fx.auctionRepo.EXPECT().
		Resolve(ctx, testAuctionDay, entity.AuctionResolved).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLifecycleEvent(ctx, &service.LifecycleEvent{
			Type:      service.EventAuctionResolved,
			Day:       testAuctionDay.String(),
			TargetDay: target.String(),
			WinnerID:  "user-c",
			TopBid:    90,
			BidCount:  3,
		}).
		Return(nil)

	require.NoError(t, fx.service.CloseAuction(ctx))
}

// A bid accepted while the close trigger is in flight must still win. The
// guarded flip settles the count before the winner is read, so an earlier
// snapshot of (topBid 90, bidCount 3) is irrelevant: the close sees the
// fourth bid of 100 and marks its bidder, never the stale index-2 one.
func TestLifecycleService_CloseAuction_BidDuringCloseStillWins(t *testing.T) {
	fx := createTestLifecycleService(t)
	fx.expectCloseFactory()

	ctx := context.Background()
	target, err := testAuctionDay.Next()
	require.NoError(t, err)

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		CloseAuction(ctx, testAuctionDay).
		Return(closedAuction(100, 4), nil)

	fx.auctionRepo.EXPECT().
		BidAt(ctx, testAuctionDay, 3).
		Return(&entity.Bid{Day: testAuctionDay, Index: 3, Amount: 100, BidderID: "user-d"}, nil).
		Once()

	fx.userRepo.EXPECT().
		MarkWinner(ctx, "user-d", testAuctionDay).
		Return(nil).
		Once()

	fx.auctionRepo.EXPECT().
		Resolve(ctx, testAuctionDay, entity.AuctionResolved).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLifecycleEvent(ctx, &service.LifecycleEvent{
			Type:      service.EventAuctionResolved,
			Day:       testAuctionDay.String(),
			TargetDay: target.String(),
			WinnerID:  "user-d",
			TopBid:    100,
			BidCount:  4,
		}).
		Return(nil)

	require.NoError(t, fx.service.CloseAuction(ctx))
}

func TestLifecycleService_CloseAuction_AlreadyClosed(t *testing.T) {
	fx := createTestLifecycleService(t)
	fx.expectCloseFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		CloseAuction(ctx, testAuctionDay).
		Return(nil, repository.ErrAuctionAlreadyClosed)

	require.NoError(t, fx.service.CloseAuction(ctx))
	fx.userRepo.AssertNotCalled(t, "MarkWinner")
	fx.auctionRepo.AssertNotCalled(t, "Resolve")
	fx.publisher.AssertNotCalled(t, "PublishLifecycleEvent")
}

func TestLifecycleService_CloseAuction_NotSeeded(t *testing.T) {
	fx := createTestLifecycleService(t)
	fx.expectCloseFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(nil, repository.ErrStateNotSeeded)

	require.NoError(t, fx.service.CloseAuction(ctx))
	fx.auctionRepo.AssertNotCalled(t, "CloseAuction")
}

func TestLifecycleService_CloseAuction_RepositoryError(t *testing.T) {
	fx := createTestLifecycleService(t)
	fx.expectCloseFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testAuctionDay, AuctionDay: testAuctionDay}, nil)

	fx.auctionRepo.EXPECT().
		CloseAuction(ctx, testAuctionDay).
		Return(nil, errors.New("database error"))

	err := fx.service.CloseAuction(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to close auction")
}
