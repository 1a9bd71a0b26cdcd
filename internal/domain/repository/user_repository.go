package repository

import (
	"context"

	"spotlight/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEntryNotFound is returned when a user has no participation record
	// for a given auction day.
	ErrEntryNotFound = errors.New("auction entry not found")
)

// UserRepository defines the interface for user-related database operations,
// including per-day auction participation records.
type UserRepository interface {
	// CreateUser persists a new identity-provider account. Creating an
	// existing ID is idempotent (signup hooks are at-least-once).
	CreateUser(ctx context.Context, user *entity.User) error

	// DeleteUser removes an account and its participation records.
	DeleteUser(ctx context.Context, userID string) error

	// FindUser retrieves a user by ID.
	FindUser(ctx context.Context, userID string) (*entity.User, error)

	// UpsertEntry writes the user's participation record for one auction
	// day, overwriting any previous latest bid.
	UpsertEntry(ctx context.Context, entry *entity.AuctionEntry) error

	// FindEntry retrieves a user's participation record for one auction day.
	// Returns ErrEntryNotFound if the user never bid that day.
	FindEntry(ctx context.Context, userID string, day entity.DayKey) (*entity.AuctionEntry, error)

	// MarkWinner flips IsWinner on the user's record for the day, granting
	// the one-time content-edit permission. Returns ErrEntryNotFound if no
	// record exists.
	MarkWinner(ctx context.Context, userID string, day entity.DayKey) error
}
