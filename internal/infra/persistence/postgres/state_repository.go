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

// stateRepository implements the repository.StateRepository interface over
// the singleton pointer row.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository is the constructor for stateRepository.
func NewStateRepository(db *gorm.DB) repository.StateRepository {
	return &stateRepository{
		db: db,
	}
}

// Current retrieves the pointer record.
func (repo *stateRepository) Current(ctx context.Context) (*entity.CurrentState, error) {
	var stateM model.CurrentStateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", model.CurrentStateID).
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStateNotSeeded
		}

		return nil, errors.Wrap(err, "failed to read current state")
	}

	state := &entity.CurrentState{UpdatedAt: stateM.UpdatedAt}

	if stateM.ProfileDay != "" {
		day, err := entity.ParseDayKey(stateM.ProfileDay)
		if err != nil {
			return nil, err
		}
		state.ProfileDay = day
	}
	if stateM.AuctionDay != "" {
		day, err := entity.ParseDayKey(stateM.AuctionDay)
		if err != nil {
			return nil, err
		}
		state.AuctionDay = day
	}

	return state, nil
}

// SetProfileDay points the live profile at a new day. The upsert seeds the
// singleton row on the very first rollover.
func (repo *stateRepository) SetProfileDay(ctx context.Context, day entity.DayKey) error {
	stateM := &model.CurrentStateModel{
		ID:         model.CurrentStateID,
		ProfileDay: day.String(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"profile_day", "updated_at"}),
		}).
		Create(stateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set profile day")
	}

	return nil
}

// SetAuctionDay points the live auction at a new day.
func (repo *stateRepository) SetAuctionDay(ctx context.Context, day entity.DayKey) error {
	stateM := &model.CurrentStateModel{
		ID:         model.CurrentStateID,
		AuctionDay: day.String(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"auction_day", "updated_at"}),
		}).
		Create(stateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set auction day")
	}

	return nil
}
