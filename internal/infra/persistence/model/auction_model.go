package model

import "time"

// AuctionModel mirrors the 'auctions' table, one row per rotation day.
// TopBid/BidCount only move through the guarded conditional update in the
// auction repository, which is what serializes concurrent bidders.
type AuctionModel struct {
	Day        string `gorm:"type:varchar(16);primaryKey"`
	TargetDay  string `gorm:"type:varchar(16);not null;uniqueIndex"`
	Status     string `gorm:"type:varchar(8);not null"`
	Resolution string `gorm:"type:varchar(12)"`
	TopBid     int64  `gorm:"not null;default:0"`
	BidCount   int    `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuctionModel) TableName() string {
	return "auctions"
}

// AuctionBidModel mirrors the 'auction_bids' table: the append-only bid log,
// keyed by (day, index) in acceptance order.
type AuctionBidModel struct {
	Day      string `gorm:"type:varchar(16);primaryKey"`
	BidIndex int    `gorm:"primaryKey;autoIncrement:false"`
	Amount   int64  `gorm:"not null"`
	BidderID string `gorm:"type:varchar(128);not null;index"`

	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuctionBidModel) TableName() string {
	return "auction_bids"
}
