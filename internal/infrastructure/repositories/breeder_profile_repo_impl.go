package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/infrastructure/models"
)

// BreederProfileRepository implements breeder profile operations
type BreederProfileRepository struct {
	db *gorm.DB
}

// NewBreederProfileRepository creates a new breeder profile repository
func NewBreederProfileRepository(db *gorm.DB) *BreederProfileRepository {
	return &BreederProfileRepository{db: db}
}

// Create persists a new profile and its breed links
func (r *BreederProfileRepository) Create(ctx context.Context, profile *entities.BreederProfile) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	m := &models.BreederProfile{
		ID:           profile.ID,
		UserID:       profile.UserID,
		Slug:         profile.Slug,
		BusinessName: profile.BusinessName,
		CityID:       profile.CityID,
		Bio:          profile.Bio.String,
		LogoURL:      profile.LogoURL.String,
		CoverURL:     profile.CoverURL.String,
		Verified:     profile.Verified,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}

	if err := db.Create(m).Error; err != nil {
		return err
	}

	for _, breedID := range profile.BreedIDs {
		link := &models.ProfileBreed{ProfileID: profile.ID, BreedID: breedID}
		if err := db.Create(link).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID gets a profile by ID
func (r *BreederProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BreederProfile, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByUserID gets the profile owned by a user
func (r *BreederProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.BreederProfile, error) {
	return r.getOne(ctx, "user_id = ?", userID)
}

// GetBySlug gets a profile by its public slug
func (r *BreederProfileRepository) GetBySlug(ctx context.Context, slug string) (*entities.BreederProfile, error) {
	return r.getOne(ctx, "slug = ?", slug)
}

// SlugExists reports whether a slug is already taken
func (r *BreederProfileRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.BreederProfile{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// UpdateMedia updates bio and media URLs
func (r *BreederProfileRepository) UpdateMedia(ctx context.Context, id uuid.UUID, input *entities.UpdateProfileMediaInput) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if input.Bio != "" {
		updates["bio"] = input.Bio
	}
	if input.LogoURL != "" {
		updates["logo_url"] = input.LogoURL
	}
	if input.CoverURL != "" {
		updates["cover_url"] = input.CoverURL
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.BreederProfile{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IncrementViewCount bumps the denormalized view counter. Eventually
// consistent; callers never read the result back in the same request.
func (r *BreederProfileRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.BreederProfile{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *BreederProfileRepository) getOne(ctx context.Context, query string, arg interface{}) (*entities.BreederProfile, error) {
	var m models.BreederProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	profile := profileToEntity(&m)

	var links []models.ProfileBreed
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("profile_id = ?", m.ID).Find(&links).Error; err != nil {
		return nil, err
	}
	for _, l := range links {
		profile.BreedIDs = append(profile.BreedIDs, l.BreedID)
	}
	return profile, nil
}

func profileToEntity(m *models.BreederProfile) *entities.BreederProfile {
	return &entities.BreederProfile{
		ID:           m.ID,
		UserID:       m.UserID,
		Slug:         m.Slug,
		BusinessName: m.BusinessName,
		CityID:       m.CityID,
		Bio:          null.NewString(m.Bio, m.Bio != ""),
		LogoURL:      null.NewString(m.LogoURL, m.LogoURL != ""),
		CoverURL:     null.NewString(m.CoverURL, m.CoverURL != ""),
		Verified:     m.Verified,
		ViewCount:    m.ViewCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
