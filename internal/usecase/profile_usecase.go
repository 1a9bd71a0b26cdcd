package usecase

import (
	"context"

	"spotlight/internal/domain/entity"
)

// SetContentInput carries the winner's replacement content.
type SetContentInput struct {
	Title    string                `json:"title" validate:"required,max=120"`
	MediaURL string                `json:"mediaUrl" validate:"omitempty,url"`
	Links    []entity.FeaturedLink `json:"links" validate:"max=3,dive"`
}

// ProfileUsecase exposes the daily profile.
type ProfileUsecase interface {
	// CurrentProfile returns the live profile with its latest aggregated
	// totals.
	CurrentProfile(ctx context.Context) (*entity.Profile, error)

	// SetContent overwrites the current profile's editable fields. Only the
	// resolved winner of the auction targeting the current day may call it;
	// anyone else gets a forbidden reason code.
	SetContent(ctx context.Context, userID string, input *SetContentInput) (*entity.Profile, error)
}
