package impl

import (
	"context"
	"testing"

	"spotlight/internal/domain/entity"
	domainerrors "spotlight/internal/domain/errors"
	"spotlight/internal/domain/repository"
	mockRepo "spotlight/internal/mocks/repository"
	"spotlight/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	profileRepo *mockRepo.MockProfileRepository
	auctionRepo *mockRepo.MockAuctionRepository
	userRepo    *mockRepo.MockUserRepository
	stateRepo   *mockRepo.MockStateRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	auctionRepo := mockRepo.NewMockAuctionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	stateRepo := mockRepo.NewMockStateRepository(t)

	service := NewProfileService(txManager, profileRepo, stateRepo, newDiscardLogger())

	return profileServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		profileRepo: profileRepo,
		auctionRepo: auctionRepo,
		userRepo:    userRepo,
		stateRepo:   stateRepo,
	}
}

func (fx profileServiceFixtures) expectSetContentFactory() {
	expectTransaction(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewStateRepository().Return(fx.stateRepo)
	fx.factory.EXPECT().NewProfileRepository().Return(fx.profileRepo)
	fx.factory.EXPECT().NewAuctionRepository().Return(fx.auctionRepo)
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
}

const testProfileDay = entity.DayKey("8-31-2026")

// resolvedAuctionTargeting returns a closed, resolved auction whose winner
// edits the given day. The auction itself ran the day before.
func resolvedAuctionTargeting(target entity.DayKey) *entity.Auction {
	day, _ := target.Prev()

	return &entity.Auction{
		Day:        day,
		Target:     target,
		Status:     entity.AuctionStatusClosed,
		Resolution: entity.AuctionResolved,
		TopBid:     90,
		BidCount:   3,
	}
}

func TestProfileService_CurrentProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	expected := &entity.Profile{
		Day:     testProfileDay,
		Content: entity.ProfileContent{Title: "Profile of the Day"},
		Totals:  entity.EngagementTotals{Views: 120, Hearts: 14, Crosses: 3},
	}

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testProfileDay, AuctionDay: testProfileDay}, nil)

	fx.profileRepo.EXPECT().
		Find(ctx, testProfileDay).
		Return(expected, nil)

	profile, err := fx.service.CurrentProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_CurrentProfile_NotSeeded(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(nil, repository.ErrStateNotSeeded)

	profile, err := fx.service.CurrentProfile(ctx)
	assert.Nil(t, profile)
	assert.Equal(t, domainerrors.ErrProfileNotFound, err)
}

func TestProfileService_SetContent_Winner(t *testing.T) {
	fx := createTestProfileService(t)
	fx.expectSetContentFactory()

	ctx := context.Background()
	auction := resolvedAuctionTargeting(testProfileDay)

	input := &usecase.SetContentInput{
		Title:    "Winner's pick",
		MediaURL: "https://cdn.example.com/pick.jpg",
		Links: []entity.FeaturedLink{
			{Label: "My page", LinkURL: "https://example.com/me"},
		},
	}

	updated := &entity.Profile{
		Day:   testProfileDay,
		IsSet: true,
		Content: entity.ProfileContent{
			Title:    input.Title,
			MediaURL: input.MediaURL,
			Links:    input.Links,
		},
	}

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testProfileDay, AuctionDay: testProfileDay}, nil)

	fx.auctionRepo.EXPECT().
		FindByTarget(ctx, testProfileDay).
		Return(auction, nil)

	fx.userRepo.EXPECT().
		FindEntry(ctx, "user-c", auction.Day).
		Return(&entity.AuctionEntry{UserID: "user-c", Day: auction.Day, LatestBid: 90, IsWinner: true}, nil)

	fx.profileRepo.EXPECT().
		UpdateContent(ctx, testProfileDay, entity.ProfileContent{
			Title:    input.Title,
			MediaURL: input.MediaURL,
			Links:    input.Links,
		}).
		Return(nil)

	fx.profileRepo.EXPECT().
		Find(ctx, testProfileDay).
		Return(updated, nil)

	profile, err := fx.service.SetContent(ctx, "user-c", input)
	require.NoError(t, err)
	assert.Equal(t, updated, profile)
}

func TestProfileService_SetContent_Loser(t *testing.T) {
	fx := createTestProfileService(t)
	fx.expectSetContentFactory()

	ctx := context.Background()
	auction := resolvedAuctionTargeting(testProfileDay)

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testProfileDay, AuctionDay: testProfileDay}, nil)

	fx.auctionRepo.EXPECT().
		FindByTarget(ctx, testProfileDay).
		Return(auction, nil)

	fx.userRepo.EXPECT().
		FindEntry(ctx, "user-a", auction.Day).
		Return(&entity.AuctionEntry{UserID: "user-a", Day: auction.Day, LatestBid: 25, IsWinner: false}, nil)

	profile, err := fx.service.SetContent(ctx, "user-a", &usecase.SetContentInput{Title: "Nope"})
	assert.Nil(t, profile)
	assert.Equal(t, domainerrors.ErrNotAuctionWinner, err)
	fx.profileRepo.AssertNotCalled(t, "UpdateContent")
}

func TestProfileService_SetContent_NeverBid(t *testing.T) {
	fx := createTestProfileService(t)
	fx.expectSetContentFactory()

	ctx := context.Background()
	auction := resolvedAuctionTargeting(testProfileDay)

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testProfileDay, AuctionDay: testProfileDay}, nil)

	fx.auctionRepo.EXPECT().
		FindByTarget(ctx, testProfileDay).
		Return(auction, nil)

	fx.userRepo.EXPECT().
		FindEntry(ctx, "user-z", auction.Day).
		Return(nil, repository.ErrEntryNotFound)

	profile, err := fx.service.SetContent(ctx, "user-z", &usecase.SetContentInput{Title: "Nope"})
	assert.Nil(t, profile)
	assert.Equal(t, domainerrors.ErrNotAuctionWinner, err)
}

func TestProfileService_SetContent_NoAuctionTargetedToday(t *testing.T) {
	fx := createTestProfileService(t)
	fx.expectSetContentFactory()

	ctx := context.Background()

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testProfileDay, AuctionDay: testProfileDay}, nil)

	fx.auctionRepo.EXPECT().
		FindByTarget(ctx, testProfileDay).
		Return(nil, repository.ErrAuctionNotFound)

	profile, err := fx.service.SetContent(ctx, "user-c", &usecase.SetContentInput{Title: "Nope"})
	assert.Nil(t, profile)
	assert.Equal(t, domainerrors.ErrNotAuctionWinner, err)
}

func TestProfileService_SetContent_UnresolvedAuction(t *testing.T) {
	fx := createTestProfileService(t)
	fx.expectSetContentFactory()

	ctx := context.Background()
	auction := resolvedAuctionTargeting(testProfileDay)
	auction.Resolution = entity.AuctionUnresolved
	auction.TopBid = 0
	auction.BidCount = 0

	fx.stateRepo.EXPECT().
		Current(ctx).
		Return(&entity.CurrentState{ProfileDay: testProfileDay, AuctionDay: testProfileDay}, nil)

	fx.auctionRepo.EXPECT().
		FindByTarget(ctx, testProfileDay).
		Return(auction, nil)

	// Nobody won a no-bid auction; the edit permission exists for no one.
	profile, err := fx.service.SetContent(ctx, "user-c", &usecase.SetContentInput{Title: "Nope"})
	assert.Nil(t, profile)
	assert.Equal(t, domainerrors.ErrNotAuctionWinner, err)
	fx.userRepo.AssertNotCalled(t, "FindEntry")
}

func TestProfileService_SetContent_TooManyLinks(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	links := make([]entity.FeaturedLink, entity.MaxFeaturedLinks+1)
	for i := range links {
		links[i] = entity.FeaturedLink{Label: "link"}
	}

	profile, err := fx.service.SetContent(ctx, "user-c", &usecase.SetContentInput{Title: "Too much", Links: links})
	assert.Nil(t, profile)
	assert.Equal(t, domainerrors.ErrValidationFailed, err)
}
