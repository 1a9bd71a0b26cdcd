package postgres

import (
	"context"

	"spotlight/internal/domain/entity"
	domainerrors "spotlight/internal/domain/errors"
	"spotlight/internal/domain/repository"
	"spotlight/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// auctionRepository implements the repository.AuctionRepository interface.
type auctionRepository struct {
	db *gorm.DB
}

// NewAuctionRepository is the constructor for auctionRepository.
func NewAuctionRepository(db *gorm.DB) repository.AuctionRepository {
	return &auctionRepository{
		db: db,
	}
}

// Find retrieves the auction for a day key.
func (repo *auctionRepository) Find(ctx context.Context, day entity.DayKey) (*entity.Auction, error) {
	var auctionM model.AuctionModel

	if err := repo.db.WithContext(ctx).
		Where("day = ?", day.String()).
		First(&auctionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuctionNotFound
		}

		return nil, errors.Wrap(err, "failed to find auction")
	}

	return toAuctionDomain(&auctionM)
}

// FindByTarget retrieves the auction whose winner edits the given day.
func (repo *auctionRepository) FindByTarget(ctx context.Context, target entity.DayKey) (*entity.Auction, error) {
	var auctionM model.AuctionModel

	if err := repo.db.WithContext(ctx).
		Where("target_day = ?", target.String()).
		First(&auctionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuctionNotFound
		}

		return nil, errors.Wrap(err, "failed to find auction by target")
	}

	return toAuctionDomain(&auctionM)
}

// CreateAuction persists a freshly opened auction with zero bid state.
func (repo *auctionRepository) CreateAuction(ctx context.Context, auction *entity.Auction) error {
	auctionM := fromAuctionDomain(auction)

	if err := repo.db.WithContext(ctx).Create(auctionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAuction
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create auction")
	}

	auction.CreatedAt = auctionM.CreatedAt
	auction.UpdatedAt = auctionM.UpdatedAt

	return nil
}

// AdvanceTop is the guarded write that serializes concurrent bidders. The
// UPDATE only matches while the row still carries the (prevTop, prevCount)
// the caller observed and the auction is still open; a concurrent bid that
// committed first changes the pair, the guard matches zero rows and the
// loser gets ErrBidConflict instead of silently overwriting the top.
func (repo *auctionRepository) AdvanceTop(ctx context.Context, day entity.DayKey, prevTop int64, prevCount int, amount int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuctionModel{}).
		Where("day = ? AND top_bid = ? AND bid_count = ? AND status = ?",
			day.String(), prevTop, prevCount, string(entity.AuctionStatusOpen)).
		Updates(map[string]any{
			"top_bid":   amount,
			"bid_count": gorm.Expr("bid_count + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to advance top bid")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBidConflict
	}

	return nil
}

// AppendBid appends one accepted bid to the append-only log.
func (repo *auctionRepository) AppendBid(ctx context.Context, bid *entity.Bid) error {
	bidM := &model.AuctionBidModel{
		Day:      bid.Day.String(),
		BidIndex: bid.Index,
		Amount:   bid.Amount,
		BidderID: bid.BidderID,
	}

	if err := repo.db.WithContext(ctx).Create(bidM).Error; err != nil {
		// A duplicate (day, index) means another bidder claimed the slot in
		// between; surface it as the same conflict the guard reports.
		if isUniqueConstraintViolation(err) {
			return repository.ErrBidConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append bid")
	}

	bid.CreatedAt = bidM.CreatedAt

	return nil
}

// BidAt reads the bid-log entry at the given index.
func (repo *auctionRepository) BidAt(ctx context.Context, day entity.DayKey, index int) (*entity.Bid, error) {
	var bidM model.AuctionBidModel

	if err := repo.db.WithContext(ctx).
		Where("day = ? AND bid_index = ?", day.String(), index).
		First(&bidM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBidNotFound
		}

		return nil, errors.Wrap(err, "failed to read bid log")
	}

	bidDay, err := entity.ParseDayKey(bidM.Day)
	if err != nil {
		return nil, err
	}

	return &entity.Bid{
		Day:       bidDay,
		Index:     bidM.BidIndex,
		Amount:    bidM.Amount,
		BidderID:  bidM.BidderID,
		CreatedAt: bidM.CreatedAt,
	}, nil
}

// CloseAuction is the guarded counterpart of AdvanceTop on the closing side.
// The UPDATE only matches while the auction is still open and takes the row
// lock before any bid state is read: a bid racing this transaction either
// committed first and is in the count read back below, or waits on the lock
// and then fails its own open-status guard. The count this returns can
// therefore never miss a concurrently accepted bid.
func (repo *auctionRepository) CloseAuction(ctx context.Context, day entity.DayKey) (*entity.Auction, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AuctionModel{}).
		Where("day = ? AND status = ?", day.String(), string(entity.AuctionStatusOpen)).
		Update("status", string(entity.AuctionStatusClosed))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to close auction")
	}
	if result.RowsAffected == 0 {
		if _, err := repo.Find(ctx, day); err != nil {
			return nil, err
		}

		return nil, repository.ErrAuctionAlreadyClosed
	}

	return repo.Find(ctx, day)
}

// Resolve records the terminal resolution of a closed auction.
func (repo *auctionRepository) Resolve(ctx context.Context, day entity.DayKey, resolution entity.AuctionResolution) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuctionModel{}).
		Where("day = ?", day.String()).
		Update("resolution", string(resolution))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to record auction resolution")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuctionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAuctionDomain converts a GORM AuctionModel to a domain Auction entity.
func toAuctionDomain(data *model.AuctionModel) (*entity.Auction, error) {
	day, err := entity.ParseDayKey(data.Day)
	if err != nil {
		return nil, err
	}
	target, err := entity.ParseDayKey(data.TargetDay)
	if err != nil {
		return nil, err
	}

	return &entity.Auction{
		Day:        day,
		Target:     target,
		Status:     entity.AuctionStatus(data.Status),
		Resolution: entity.AuctionResolution(data.Resolution),
		TopBid:     data.TopBid,
		BidCount:   data.BidCount,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}, nil
}

// fromAuctionDomain converts a domain Auction entity to a GORM AuctionModel.
func fromAuctionDomain(data *entity.Auction) *model.AuctionModel {
	return &model.AuctionModel{
		Day:        data.Day.String(),
		TargetDay:  data.Target.String(),
		Status:     string(data.Status),
		Resolution: string(data.Resolution),
		TopBid:     data.TopBid,
		BidCount:   data.BidCount,
	}
}
