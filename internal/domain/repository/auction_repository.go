package repository

import (
	"context"

	"spotlight/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for auction persistence.
var (
	// ErrAuctionNotFound is returned when no auction exists for a day key.
	ErrAuctionNotFound = errors.New("auction not found")
	// ErrDuplicateAuction is returned when opening a day that already has an
	// auction; the open trigger treats it as "already done".
	ErrDuplicateAuction = errors.New("auction already exists")
	// ErrBidConflict is returned when the conditional top-bid update lost a
	// race against a concurrent bidder. The caller re-reads the new top and
	// retries or rejects; it must never be swallowed.
	ErrBidConflict = errors.New("concurrent bid conflict")
	// ErrBidNotFound is returned when a bid-log index does not exist.
	ErrBidNotFound = errors.New("bid not found")
	// ErrAuctionAlreadyClosed is returned when the guarded close matched no
	// open auction; a re-delivered close trigger treats it as "already done".
	ErrAuctionAlreadyClosed = errors.New("auction already closed")
)

// AuctionRepository defines the interface for auction-related database operations.
type AuctionRepository interface {
	// Find retrieves the auction for a day key.
	// Returns ErrAuctionNotFound if no auction was opened for that day.
	Find(ctx context.Context, day entity.DayKey) (*entity.Auction, error)

	// FindByTarget retrieves the auction whose winner edits the given day.
	FindByTarget(ctx context.Context, target entity.DayKey) (*entity.Auction, error)

	// Create persists a freshly opened auction with zero bid state.
	// Returns ErrDuplicateAuction if the day already has one.
	CreateAuction(ctx context.Context, auction *entity.Auction) error

	// AdvanceTop conditionally moves the auction to a new top bid: it sets
	// topBid = amount and increments bidCount, guarded on the previously
	// observed (prevTop, prevCount) pair and on the auction still being
	// open. If the guard no longer matches, nothing is written and
	// ErrBidConflict is returned.
	AdvanceTop(ctx context.Context, day entity.DayKey, prevTop int64, prevCount int, amount int64) error

	// AppendBid appends one accepted bid to the append-only bid log at
	// bid.Index. Indexes are assigned in acceptance order.
	AppendBid(ctx context.Context, bid *entity.Bid) error

	// BidAt reads the bid-log entry at the given index.
	BidAt(ctx context.Context, day entity.DayKey, index int) (*entity.Bid, error)

	// CloseAuction flips the auction from open to closed and returns its
	// post-close state. The flip is guarded on the auction still being open
	// and must take the row lock before any bid state is read, so every
	// concurrent AdvanceTop either committed before the flip or fails its
	// own open-status guard; the returned BidCount is final. Returns
	// ErrAuctionAlreadyClosed when an earlier delivery closed the auction,
	// ErrAuctionNotFound when the day has none.
	CloseAuction(ctx context.Context, day entity.DayKey) (*entity.Auction, error)

	// Resolve records the terminal resolution of a closed auction.
	Resolve(ctx context.Context, day entity.DayKey, resolution entity.AuctionResolution) error
}
