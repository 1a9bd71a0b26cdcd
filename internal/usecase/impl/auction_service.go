package impl

import (
	"context"
	"log/slog"

	"spotlight/config"
	"spotlight/internal/domain/entity"
	domainerrors "spotlight/internal/domain/errors"
	"spotlight/internal/domain/repository"
	"spotlight/internal/errors"
	"spotlight/internal/usecase"
)

// auctionService implements the AuctionUsecase interface.
type auctionService struct {
	txManager   repository.TransactionManager
	auctionRepo repository.AuctionRepository
	stateRepo   repository.StateRepository
	retryBudget int
	logger      *slog.Logger
}

// NewAuctionService is the constructor for auctionService.
func NewAuctionService(
	txManager repository.TransactionManager,
	auctionRepo repository.AuctionRepository,
	stateRepo repository.StateRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuctionUsecase {
	return &auctionService{
		txManager:   txManager,
		auctionRepo: auctionRepo,
		stateRepo:   stateRepo,
		retryBudget: cfg.Rotation.BidRetryBudget,
		logger:      logger,
	}
}

// PlaceBid runs the five-step accept sequence as one transaction: re-read
// the open auction, enforce strict increase, advance the guarded top,
// append to the bid log at the reserved index, upsert the bidder's
// participation record. The guard in AdvanceTop is what makes two racing
// bids impossible to both accept against the same stale top: the second
// transaction's guard misses, everything it did rolls back, and the attempt
// is retried here against the fresh top until the retry budget runs out.
func (srv *auctionService) PlaceBid(ctx context.Context, userID string, input *usecase.PlaceBidInput) (*usecase.BidReceipt, error) {
	// Reject junk before touching storage at all.
	if input == nil || input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidBid
	}

	for attempt := 0; ; attempt++ {
		receipt, err := srv.tryPlaceBid(ctx, userID, input.Amount)
		if err == nil {
			return receipt, nil
		}

		if !errors.Is(err, repository.ErrBidConflict) {
			return nil, err
		}

		if attempt >= srv.retryBudget {
			srv.logger.Warn("Bid exhausted conflict retries",
				slog.String("userID", userID),
				slog.Int64("amount", input.Amount),
				slog.Int("attempts", attempt+1),
			)

			return nil, domainerrors.ErrBidConflict
		}

		srv.logger.Debug("Bid lost a race, retrying against fresh top",
			slog.String("userID", userID),
			slog.Int64("amount", input.Amount),
			slog.Int("attempt", attempt+1),
		)
	}
}

func (srv *auctionService) tryPlaceBid(ctx context.Context, userID string, amount int64) (*usecase.BidReceipt, error) {
	var receipt *usecase.BidReceipt

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stateRepo := repoFactory.NewStateRepository()
		auctionRepo := repoFactory.NewAuctionRepository()
		userRepo := repoFactory.NewUserRepository()

		state, err := stateRepo.Current(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrStateNotSeeded) {
				return domainerrors.ErrAuctionClosed
			}

			return errors.Wrap(err, "failed to resolve current auction day")
		}
		if state.AuctionDay == "" {
			return domainerrors.ErrAuctionClosed
		}

		auction, err := auctionRepo.Find(ctx, state.AuctionDay)
		if err != nil {
			if errors.Is(err, repository.ErrAuctionNotFound) {
				return domainerrors.ErrAuctionClosed
			}

			return errors.Wrap(err, "failed to load auction")
		}
		if !auction.IsOpen() {
			return domainerrors.ErrAuctionClosed
		}

		// Strict increase: an equal bid is rejected, never tie-broken.
		// This is also what lets close() trust the last log entry to be
		// the unique maximum.
		if amount <= auction.TopBid {
			return domainerrors.ErrBidTooLow
		}

		if err := auctionRepo.AdvanceTop(ctx, auction.Day, auction.TopBid, auction.BidCount, amount); err != nil {
			return err
		}

		bid := &entity.Bid{
			Day:      auction.Day,
			Index:    auction.BidCount,
			Amount:   amount,
			BidderID: userID,
		}
		if err := auctionRepo.AppendBid(ctx, bid); err != nil {
			return err
		}

		entry := &entity.AuctionEntry{
			UserID:    userID,
			Day:       auction.Day,
			LatestBid: amount,
			IsWinner:  false,
		}
		if err := userRepo.UpsertEntry(ctx, entry); err != nil {
			return err
		}

		receipt = &usecase.BidReceipt{
			Day:      auction.Day,
			Amount:   amount,
			Index:    bid.Index,
			BidCount: auction.BidCount + 1,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Bid accepted",
		slog.String("day", receipt.Day.String()),
		slog.String("userID", userID),
		slog.Int64("amount", receipt.Amount),
		slog.Int("index", receipt.Index),
	)

	return receipt, nil
}

// CurrentAuction returns the auction the pointer record names.
func (srv *auctionService) CurrentAuction(ctx context.Context) (*entity.Auction, error) {
	state, err := srv.stateRepo.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotSeeded) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve current auction day")
	}
	if state.AuctionDay == "" {
		return nil, domainerrors.ErrNotFound
	}

	auction, err := srv.auctionRepo.Find(ctx, state.AuctionDay)
	if err != nil {
		if errors.Is(err, repository.ErrAuctionNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load auction")
	}

	return auction, nil
}
