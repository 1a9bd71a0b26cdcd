// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User mirrors one identity-provider account. IDs are the provider's opaque
// UID strings; accounts are created on signup and removed on deletion.
type User struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuctionEntry is a user's per-day auction participation record: their
// latest accepted bid on that day's auction and whether they won it. The
// IsWinner flag is the one-time content-edit permission for the auction's
// target day.
type AuctionEntry struct {
	UserID    string
	Day       DayKey
	LatestBid int64
	IsWinner  bool

	UpdatedAt time.Time
}

// CurrentState is the process-wide pointer record naming which day's
// profile and auction are live. A single pointer row, flipped inside the
// rollover transaction, means there is never a window with zero or two
// "current" entities the way per-entity boolean flags would allow.
type CurrentState struct {
	ProfileDay DayKey
	AuctionDay DayKey

	UpdatedAt time.Time
}
