package entity

import "time"

// AuctionStatus tracks the auction state machine for one day:
// Pending (no entity yet) -> Open -> Closed.
type AuctionStatus string

const (
	AuctionStatusOpen   AuctionStatus = "open"
	AuctionStatusClosed AuctionStatus = "closed"
)

// AuctionResolution records how a closed auction ended.
type AuctionResolution string

const (
	// AuctionUnresolved means the auction closed without a single accepted
	// bid; the target profile keeps its defaults.
	AuctionUnresolved AuctionResolution = "unresolved"

	// AuctionResolved means the final bid-log entry was granted the
	// content-edit permission on the target day.
	AuctionResolved AuctionResolution = "resolved"
)

// Auction is the bidding state for one day. TopBid is strictly increasing
// across accepted bids, so the bid log entry at index BidCount-1 is always
// the unique highest bid. BidCount doubles as the next bid's log index.
type Auction struct {
	Day        DayKey
	Target     DayKey
	Status     AuctionStatus
	Resolution AuctionResolution
	TopBid     int64
	BidCount   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the auction still accepts bids.
func (a *Auction) IsOpen() bool {
	return a != nil && a.Status == AuctionStatusOpen
}

// Bid is one accepted entry in an auction's append-only bid log, keyed by
// (Day, Index) with Index assigned in acceptance order.
type Bid struct {
	Day      DayKey
	Index    int
	Amount   int64
	BidderID string

	CreatedAt time.Time
}
