package repository

import (
	"context"

	"spotlight/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrStateNotSeeded is returned before the first rollover has ever run,
// when the singleton pointer row does not exist yet.
var ErrStateNotSeeded = errors.New("current state not seeded")

// StateRepository manages the singleton pointer record naming the current
// profile day and the current auction day.
type StateRepository interface {
	// Current retrieves the pointer record.
	// Returns ErrStateNotSeeded if no rollover has ever run.
	Current(ctx context.Context) (*entity.CurrentState, error)

	// SetProfileDay atomically points the live profile at a new day.
	SetProfileDay(ctx context.Context, day entity.DayKey) error

	// SetAuctionDay atomically points the live auction at a new day.
	SetAuctionDay(ctx context.Context, day entity.DayKey) error
}
