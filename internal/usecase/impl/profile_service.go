package impl

import (
	"context"
	"log/slog"

	"spotlight/internal/domain/entity"
	domainerrors "spotlight/internal/domain/errors"
	"spotlight/internal/domain/repository"
	"spotlight/internal/errors"
	"spotlight/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	stateRepo   repository.StateRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	profileRepo repository.ProfileRepository,
	stateRepo repository.StateRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:   txManager,
		profileRepo: profileRepo,
		stateRepo:   stateRepo,
		logger:      logger,
	}
}

// CurrentProfile returns the profile the pointer record names.
func (srv *profileService) CurrentProfile(ctx context.Context) (*entity.Profile, error) {
	state, err := srv.stateRepo.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotSeeded) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve current profile day")
	}

	profile, err := srv.profileRepo.Find(ctx, state.ProfileDay)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}

// SetContent overwrites the live profile's editable fields. The edit
// permission belongs to the resolved winner of the auction that targeted the
// current day; everyone else is turned away with the same forbidden reason,
// whether they lost, never bid, or the auction ended without bids.
func (srv *profileService) SetContent(ctx context.Context, userID string, input *usecase.SetContentInput) (*entity.Profile, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if len(input.Links) > entity.MaxFeaturedLinks {
		return nil, domainerrors.ErrValidationFailed
	}

	var updated *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stateRepo := repoFactory.NewStateRepository()
		profileRepo := repoFactory.NewProfileRepository()
		auctionRepo := repoFactory.NewAuctionRepository()
		userRepo := repoFactory.NewUserRepository()

		state, err := stateRepo.Current(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrStateNotSeeded) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to resolve current profile day")
		}

		auction, err := auctionRepo.FindByTarget(ctx, state.ProfileDay)
		if err != nil {
			// No auction ever targeted today, so nobody holds the permission.
			if errors.Is(err, repository.ErrAuctionNotFound) {
				return domainerrors.ErrNotAuctionWinner
			}

			return errors.Wrap(err, "failed to load targeting auction")
		}
		if auction.Resolution != entity.AuctionResolved {
			return domainerrors.ErrNotAuctionWinner
		}

		entry, err := userRepo.FindEntry(ctx, userID, auction.Day)
		if err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return domainerrors.ErrNotAuctionWinner
			}

			return errors.Wrap(err, "failed to load auction entry")
		}
		if !entry.IsWinner {
			return domainerrors.ErrNotAuctionWinner
		}

		content := entity.ProfileContent{
			Title:    input.Title,
			MediaURL: input.MediaURL,
			Links:    input.Links,
		}
		if err := profileRepo.UpdateContent(ctx, state.ProfileDay, content); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to update profile content")
		}

		updated, err = profileRepo.Find(ctx, state.ProfileDay)
		if err != nil {
			return errors.Wrap(err, "failed to reload profile")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Profile content set by auction winner",
		slog.String("day", updated.Day.String()),
		slog.String("userID", userID),
	)

	return updated, nil
}
