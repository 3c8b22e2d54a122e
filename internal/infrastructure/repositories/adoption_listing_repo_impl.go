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

// AdoptionListingRepository implements rehoming listing operations
type AdoptionListingRepository struct {
	db *gorm.DB
}

// NewAdoptionListingRepository creates a new adoption listing repository
func NewAdoptionListingRepository(db *gorm.DB) *AdoptionListingRepository {
	return &AdoptionListingRepository{db: db}
}

// Create creates a new adoption listing
func (r *AdoptionListingRepository) Create(ctx context.Context, listing *entities.AdoptionListing) error {
	m := &models.AdoptionListing{
		ID:           listing.ID,
		UserID:       listing.UserID,
		PetID:        listing.PetID,
		CityID:       listing.CityID,
		AdoptionFee:  listing.AdoptionFee,
		Reason:       listing.Reason.String,
		ContactPhone: listing.ContactPhone,
		Status:       string(listing.Status),
		CreatedAt:    listing.CreatedAt,
		UpdatedAt:    listing.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets an adoption listing by ID
func (r *AdoptionListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AdoptionListing, error) {
	var m models.AdoptionListing
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return adoptionListingToEntity(&m), nil
}

// ListByUserID lists a user's own adoption listings, newest first
func (r *AdoptionListingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.AdoptionListing, error) {
	var listingModels []models.AdoptionListing
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&listingModels).Error
	if err != nil {
		return nil, err
	}

	listings := make([]*entities.AdoptionListing, 0, len(listingModels))
	for i := range listingModels {
		listings = append(listings, adoptionListingToEntity(&listingModels[i]))
	}
	return listings, nil
}

// List returns active adoption listings with optional city and pet type filter
func (r *AdoptionListingRepository) List(ctx context.Context, cityID *uuid.UUID, petType string, limit, offset int) ([]*entities.AdoptionListing, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.AdoptionListing{}).
		Where("adoption_listings.status = ?", string(entities.ListingStatusActive))

	if cityID != nil {
		db = db.Where("adoption_listings.city_id = ?", *cityID)
	}
	if petType != "" {
		db = db.Joins("JOIN pets ON pets.id = adoption_listings.pet_id").
			Where("LOWER(pets.pet_type) = LOWER(?)", petType)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order("adoption_listings.created_at DESC")
	if limit > 0 {
		db = db.Limit(limit).Offset(offset)
	}

	var listingModels []models.AdoptionListing
	if err := db.Find(&listingModels).Error; err != nil {
		return nil, 0, err
	}

	listings := make([]*entities.AdoptionListing, 0, len(listingModels))
	for i := range listingModels {
		listings = append(listings, adoptionListingToEntity(&listingModels[i]))
	}
	return listings, total, nil
}

// Update updates listing fields
func (r *AdoptionListingRepository) Update(ctx context.Context, listing *entities.AdoptionListing) error {
	updates := map[string]interface{}{
		"adoption_fee":  listing.AdoptionFee,
		"reason":        listing.Reason.String,
		"contact_phone": listing.ContactPhone,
		"updated_at":    time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.AdoptionListing{}).
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
func (r *AdoptionListingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ListingStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.AdoptionListing{}).
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

// SoftDelete soft deletes an adoption listing
func (r *AdoptionListingRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.AdoptionListing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func adoptionListingToEntity(m *models.AdoptionListing) *entities.AdoptionListing {
	return &entities.AdoptionListing{
		ID:           m.ID,
		UserID:       m.UserID,
		PetID:        m.PetID,
		CityID:       m.CityID,
		AdoptionFee:  m.AdoptionFee,
		Reason:       null.NewString(m.Reason, m.Reason != ""),
		ContactPhone: m.ContactPhone,
		Status:       entities.ListingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
