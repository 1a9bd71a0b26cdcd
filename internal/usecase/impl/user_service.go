package impl

import (
	"context"
	"log/slog"

	"spotlight/internal/domain/entity"
	"spotlight/internal/domain/repository"
	"spotlight/internal/errors"
	"spotlight/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// OnUserCreated mirrors an identity-provider signup. Hooks are delivered
// at-least-once, so creating an existing ID is a no-op in the repository.
func (srv *userService) OnUserCreated(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}

	if err := srv.userRepo.CreateUser(ctx, &entity.User{ID: userID}); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User provisioned", slog.String("userID", userID))

	return nil
}

// OnUserDeleted mirrors an identity-provider account deletion. Hooks are
// delivered at-least-once, so a user that is already gone is a logged skip,
// not a retryable failure.
func (srv *userService) OnUserDeleted(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}

	if err := srv.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Info("Deletion re-delivered, user already removed",
				slog.String("userID", userID),
			)

			return nil
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.logger.Info("User removed", slog.String("userID", userID))

	return nil
}
