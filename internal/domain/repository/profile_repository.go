// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"spotlight/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile exists for a day key.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateProfile is returned when trying to provision a day that is
	// already provisioned; rollover treats it as "already done".
	ErrDuplicateProfile = errors.New("profile already exists")
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// Find retrieves the profile for a day key.
	// Returns ErrProfileNotFound if the day was never provisioned.
	Find(ctx context.Context, day entity.DayKey) (*entity.Profile, error)

	// Create persists a freshly provisioned profile with zero totals and
	// default content. Returns ErrDuplicateProfile if the day already exists.
	Create(ctx context.Context, profile *entity.Profile) error

	// UpdateTotals overwrites the canonical engagement totals for a day.
	// Totals are only ever written from shard sums (last write wins).
	UpdateTotals(ctx context.Context, day entity.DayKey, totals entity.EngagementTotals) error

	// UpdateContent overwrites the editable content fields and marks the
	// profile as set. Returns ErrProfileNotFound if the day does not exist.
	UpdateContent(ctx context.Context, day entity.DayKey, content entity.ProfileContent) error
}
