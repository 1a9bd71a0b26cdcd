package usecase

import "context"

// LifecycleUsecase advances the daily rotation. All three transitions are
// invoked by the external clock with at-least-once delivery, so each one is
// idempotent: re-running a transition that already happened is a logged
// no-op, never a reset of live counters or bids.
type LifecycleUsecase interface {
	// RolloverDay provisions today's profile plus its metric shards and
	// atomically repoints the current-profile pointer.
	RolloverDay(ctx context.Context) error

	// OpenAuction creates today's auction (target = tomorrow) and repoints
	// the current-auction pointer.
	OpenAuction(ctx context.Context) error

	// CloseAuction closes the current auction and resolves its winner: the
	// last bid-log entry, which strict increase guarantees is the unique
	// highest bid. With zero bids the auction ends unresolved and no
	// permission is granted.
	CloseAuction(ctx context.Context) error
}

// UserUsecase mirrors identity-provider account events.
type UserUsecase interface {
	// OnUserCreated provisions the local account record for a new UID.
	OnUserCreated(ctx context.Context, userID string) error

	// OnUserDeleted removes the account and its participation records.
	OnUserDeleted(ctx context.Context, userID string) error
}
