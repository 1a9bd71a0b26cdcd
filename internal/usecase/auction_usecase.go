package usecase

import (
	"context"

	"spotlight/internal/domain/entity"
)

// PlaceBidInput carries one bid attempt from the delivery layer.
type PlaceBidInput struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// BidReceipt reports an accepted bid back to the caller.
type BidReceipt struct {
	Day      entity.DayKey `json:"day"`
	Amount   int64         `json:"amount"`
	Index    int           `json:"index"`
	BidCount int           `json:"bidCount"`
}

// AuctionUsecase drives the daily auction state machine.
type AuctionUsecase interface {
	// PlaceBid attempts to outbid the current top of today's open auction.
	// The strict-increase check, bid-log append, participation upsert and
	// top-bid advance execute as one atomic unit; a lost race against a
	// concurrent bidder is retried a bounded number of times against the
	// fresh top before surfacing a reason code.
	PlaceBid(ctx context.Context, userID string, input *PlaceBidInput) (*BidReceipt, error)

	// CurrentAuction returns today's auction entity.
	CurrentAuction(ctx context.Context) (*entity.Auction, error)
}
