package model

import "time"

// UserModel mirrors the 'users' table. IDs are the identity provider's
// opaque UID strings, not locally generated.
type UserModel struct {
	ID        string `gorm:"type:varchar(128);primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Entries []AuctionEntryModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AuctionEntryModel mirrors the 'auction_entries' table: one row per user
// per auction day, holding their latest accepted bid and the winner flag.
type AuctionEntryModel struct {
	UserID    string `gorm:"type:varchar(128);primaryKey"`
	Day       string `gorm:"type:varchar(16);primaryKey"`
	LatestBid int64  `gorm:"not null"`
	IsWinner  bool   `gorm:"not null;default:false"`

	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuctionEntryModel) TableName() string {
	return "auction_entries"
}
