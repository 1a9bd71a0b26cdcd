package postgres

import (
	"context"

	"spotlight/internal/domain/entity"
	domainerrors "spotlight/internal/domain/errors"
	"spotlight/internal/domain/repository"
	"spotlight/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new identity-provider account. Signup hooks are
// delivered at least once, so an existing ID is not an error.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := &model.UserModel{ID: user.ID}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(userM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// DeleteUser removes an account; participation records cascade.
func (repo *userRepository) DeleteUser(ctx context.Context, userID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// FindUser retrieves a user by ID.
func (repo *userRepository) FindUser(ctx context.Context, userID string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return &entity.User{
		ID:        userM.ID,
		CreatedAt: userM.CreatedAt,
		UpdatedAt: userM.UpdatedAt,
	}, nil
}

// UpsertEntry writes the user's participation record for one auction day.
func (repo *userRepository) UpsertEntry(ctx context.Context, entry *entity.AuctionEntry) error {
	entryM := &model.AuctionEntryModel{
		UserID:    entry.UserID,
		Day:       entry.Day.String(),
		LatestBid: entry.LatestBid,
		IsWinner:  entry.IsWinner,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"latest_bid", "is_winner", "updated_at"}),
		}).
		Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert auction entry")
	}

	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindEntry retrieves a user's participation record for one auction day.
func (repo *userRepository) FindEntry(ctx context.Context, userID string, day entity.DayKey) (*entity.AuctionEntry, error) {
	var entryM model.AuctionEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day.String()).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find auction entry")
	}

	entryDay, err := entity.ParseDayKey(entryM.Day)
	if err != nil {
		return nil, err
	}

	return &entity.AuctionEntry{
		UserID:    entryM.UserID,
		Day:       entryDay,
		LatestBid: entryM.LatestBid,
		IsWinner:  entryM.IsWinner,
		UpdatedAt: entryM.UpdatedAt,
	}, nil
}

// MarkWinner flips the winner flag on the user's record for the day.
func (repo *userRepository) MarkWinner(ctx context.Context, userID string, day entity.DayKey) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AuctionEntryModel{}).
		Where("user_id = ? AND day = ?", userID, day.String()).
		Update("is_winner", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark winner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}
