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

// PetRepository implements pet record operations
type PetRepository struct {
	db *gorm.DB
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

// Create creates a pet and its images
func (r *PetRepository) Create(ctx context.Context, pet *entities.Pet) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	m := &models.Pet{
		ID:          pet.ID,
		Name:        pet.Name,
		PetType:     pet.PetType,
		BreedID:     pet.BreedID,
		Gender:      string(pet.Gender),
		AgeMonths:   pet.AgeMonths,
		Vaccinated:  pet.Vaccinated,
		Neutered:    pet.Neutered,
		Temperament: pet.Temperament.String,
		Description: pet.Description.String,
		CreatedAt:   pet.CreatedAt,
		UpdatedAt:   pet.UpdatedAt,
	}

	if err := db.Create(m).Error; err != nil {
		return err
	}

	for i := range pet.Images {
		img := &models.PetImage{
			ID:        pet.Images[i].ID,
			PetID:     pet.ID,
			URL:       pet.Images[i].URL,
			Position:  pet.Images[i].Position,
			CreatedAt: pet.Images[i].CreatedAt,
		}
		if err := db.Create(img).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID gets a pet with its images
func (r *PetRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Pet, error) {
	var m models.Pet
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	pet := petToEntity(&m)

	var imageModels []models.PetImage
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("pet_id = ?", id).
		Order("position ASC").
		Find(&imageModels).Error
	if err != nil {
		return nil, err
	}
	for i := range imageModels {
		pet.Images = append(pet.Images, petImageToEntity(&imageModels[i]))
	}
	return pet, nil
}

// List lists pets with optional type filter, newest first
func (r *PetRepository) List(ctx context.Context, petType string, limit, offset int) ([]*entities.Pet, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Pet{})

	if petType != "" {
		db = db.Where("LOWER(pet_type) = LOWER(?)", petType)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = db.Order("created_at DESC")
	if limit > 0 {
		db = db.Limit(limit).Offset(offset)
	}

	var petModels []models.Pet
	if err := db.Find(&petModels).Error; err != nil {
		return nil, 0, err
	}

	pets := make([]*entities.Pet, 0, len(petModels))
	for i := range petModels {
		pets = append(pets, petToEntity(&petModels[i]))
	}
	return pets, total, nil
}

// Update updates pet fields
func (r *PetRepository) Update(ctx context.Context, pet *entities.Pet) error {
	updates := map[string]interface{}{
		"name":        pet.Name,
		"gender":      string(pet.Gender),
		"age_months":  pet.AgeMonths,
		"vaccinated":  pet.Vaccinated,
		"neutered":    pet.Neutered,
		"temperament": pet.Temperament.String,
		"description": pet.Description.String,
		"updated_at":  time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Pet{}).
		Where("id = ?", pet.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddImage attaches an image to a pet
func (r *PetRepository) AddImage(ctx context.Context, image *entities.PetImage) error {
	m := &models.PetImage{
		ID:        image.ID,
		PetID:     image.PetID,
		URL:       image.URL,
		Position:  image.Position,
		CreatedAt: image.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// IncrementViewCount bumps the denormalized view counter
func (r *PetRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.Pet{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func petToEntity(m *models.Pet) *entities.Pet {
	return &entities.Pet{
		ID:          m.ID,
		Name:        m.Name,
		PetType:     m.PetType,
		BreedID:     m.BreedID,
		Gender:      entities.PetGender(m.Gender),
		AgeMonths:   m.AgeMonths,
		Vaccinated:  m.Vaccinated,
		Neutered:    m.Neutered,
		Temperament: null.NewString(m.Temperament, m.Temperament != ""),
		Description: null.NewString(m.Description, m.Description != ""),
		ViewCount:   m.ViewCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func petImageToEntity(m *models.PetImage) entities.PetImage {
	return entities.PetImage{
		ID:        m.ID,
		PetID:     m.PetID,
		URL:       m.URL,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
	}
}
