package postgres

import (
	"context"
	"encoding/json"

	"spotlight/internal/domain/entity"
	domainerrors "spotlight/internal/domain/errors"
	"spotlight/internal/domain/repository"
	"spotlight/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Find retrieves the profile for a day key.
func (repo *profileRepository) Find(ctx context.Context, day entity.DayKey) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("day = ?", day.String()).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM)
}

// Create persists a freshly provisioned profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateTotals overwrites the canonical totals for a day. Last write wins;
// the aggregator's cadence makes any racing overwrite self-healing.
func (repo *profileRepository) UpdateTotals(ctx context.Context, day entity.DayKey, totals entity.EngagementTotals) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("day = ?", day.String()).
		Updates(map[string]any{
			"view_count":  totals.Views,
			"heart_count": totals.Hearts,
			"cross_count": totals.Crosses,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update totals")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateContent overwrites the editable fields and marks the profile set.
func (repo *profileRepository) UpdateContent(ctx context.Context, day entity.DayKey, content entity.ProfileContent) error {
	linksJSON, err := json.Marshal(content.Links)
	if err != nil {
		return errors.Wrap(err, "failed to encode links")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("day = ?", day.String()).
		Updates(map[string]any{
			"is_set":     true,
			"title":      content.Title,
			"media_url":  content.MediaURL,
			"links_json": linksJSON,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update content")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) (*entity.Profile, error) {
	day, err := entity.ParseDayKey(data.Day)
	if err != nil {
		return nil, err
	}

	var links []entity.FeaturedLink
	if len(data.LinksJSON) > 0 {
		if err := json.Unmarshal(data.LinksJSON, &links); err != nil {
			return nil, errors.Wrapf(err, "corrupt links document for day %s", data.Day)
		}
	}

	return &entity.Profile{
		Day:   day,
		IsSet: data.IsSet,
		Content: entity.ProfileContent{
			Title:    data.Title,
			MediaURL: data.MediaURL,
			Links:    links,
		},
		Totals: entity.EngagementTotals{
			Views:   data.ViewCount,
			Hearts:  data.HeartCount,
			Crosses: data.CrossCount,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) (*model.ProfileModel, error) {
	linksJSON, err := json.Marshal(data.Content.Links)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode links")
	}

	return &model.ProfileModel{
		Day:        data.Day.String(),
		IsSet:      data.IsSet,
		Title:      data.Content.Title,
		MediaURL:   data.Content.MediaURL,
		LinksJSON:  linksJSON,
		ViewCount:  data.Totals.Views,
		HeartCount: data.Totals.Hearts,
		CrossCount: data.Totals.Crosses,
	}, nil
}
