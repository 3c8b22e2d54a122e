package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/infrastructure/models"
)

// BreederListingRepository implements commercial listing operations
type BreederListingRepository struct {
	db *gorm.DB
}

// NewBreederListingRepository creates a new breeder listing repository
func NewBreederListingRepository(db *gorm.DB) *BreederListingRepository {
	return &BreederListingRepository{db: db}
}

// Create creates a new listing
func (r *BreederListingRepository) Create(ctx context.Context, listing *entities.BreederListing) error {
	m := &models.BreederListing{
		ID:             listing.ID,
		ProfileID:      listing.ProfileID,
		PetID:          listing.PetID,
		Price:          listing.Price,
		Negotiable:     listing.Negotiable,
		AvailableCount: listing.AvailableCount,
		FeeTier:        listing.FeeTier,
		Featured:       listing.Featured,
		Status:         string(listing.Status),
		CreatedAt:      listing.CreatedAt,
		UpdatedAt:      listing.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a listing by ID
func (r *BreederListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BreederListing, error) {
	var m models.BreederListing
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return breederListingToEntity(&m), nil
}

// ListByProfileID lists all listings owned by a profile, newest first
func (r *BreederListingRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entities.BreederListing, error) {
	var listingModels []models.BreederListing
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&listingModels).Error
	if err != nil {
		return nil, err
	}

	listings := make([]*entities.BreederListing, 0, len(listingModels))
	for i := range listingModels {
		listings = append(listings, breederListingToEntity(&listingModels[i]))
	}
	return listings, nil
}

// Update updates commercial fields
func (r *BreederListingRepository) Update(ctx context.Context, listing *entities.BreederListing) error {
	updates := map[string]interface{}{
		"price":           listing.Price,
		"negotiable":      listing.Negotiable,
		"available_count": listing.AvailableCount,
		"updated_at":      time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.BreederListing{}).
		Where("id = ?", listing.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus transitions listing status
func (r *BreederListingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ListingStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.BreederListing{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SoftDelete soft deletes a listing
func (r *BreederListingRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.BreederListing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Search filters active listings by pet type, breed, city and price range.
// Results are ordered featured first, then newest first.
func (r *BreederListingRepository) Search(ctx context.Context, filter *entities.ListingFilter) ([]*entities.BreederListing, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.BreederListing{}).
		Joins("JOIN pets ON pets.id = breeder_listings.pet_id").
		Where("breeder_listings.status = ?", string(entities.ListingStatusActive))

	if filter.PetType != "" {
		db = db.Where("LOWER(pets.pet_type) = LOWER(?)", filter.PetType)
	}
	if filter.BreedID != nil {
		db = db.Where("pets.breed_id = ?", *filter.BreedID)
	}
	if filter.CityID != nil {
		db = db.Joins("JOIN breeder_profiles ON breeder_profiles.id = breeder_listings.profile_id").
			Where("breeder_profiles.city_id = ?", *filter.CityID)
	}
	if filter.MinPrice != nil {
		db = db.Where("breeder_listings.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		db = db.Where("breeder_listings.price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order("breeder_listings.featured DESC, breeder_listings.created_at DESC")
	if filter.Take > 0 {
		db = db.Limit(filter.Take).Offset(filter.Skip)
	}

	var listingModels []models.BreederListing
	if err := db.Find(&listingModels).Error; err != nil {
		return nil, 0, err
	}

	listings := make([]*entities.BreederListing, 0, len(listingModels))
	for i := range listingModels {
		listings = append(listings, breederListingToEntity(&listingModels[i]))
	}
	return listings, total, nil
}

// IncrementViewCount bumps the denormalized view counter
func (r *BreederListingRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.BreederListing{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func breederListingToEntity(m *models.BreederListing) *entities.BreederListing {
	return &entities.BreederListing{
		ID:             m.ID,
		ProfileID:      m.ProfileID,
		PetID:          m.PetID,
		Price:          m.Price,
		Negotiable:     m.Negotiable,
		AvailableCount: m.AvailableCount,
		FeeTier:        m.FeeTier,
		Featured:       m.Featured,
		Status:         entities.ListingStatus(m.Status),
		ViewCount:      m.ViewCount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
