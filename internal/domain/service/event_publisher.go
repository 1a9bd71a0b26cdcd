package service

import "context"

// Lifecycle event types published on day transitions.
const (
	EventDayRolledOver   = "day.rolled_over"
	EventAuctionOpened   = "auction.opened"
	EventAuctionResolved = "auction.resolved"
)

// LifecycleEvent is published after a day transition commits, so downstream
// consumers (feeds, notifications, analytics) can react without polling.
type LifecycleEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	Day       string `json:"day"`
	TargetDay string `json:"target_day,omitempty"`
	WinnerID  string `json:"winner_id,omitempty"`
	TopBid    int64  `json:"top_bid,omitempty"`
	BidCount  int    `json:"bid_count,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLifecycleEvent publishes a day-transition event for async consumers.
	PublishLifecycleEvent(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
