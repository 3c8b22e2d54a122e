package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/infrastructure/models"
)

// BreedRepository implements breed catalog lookups
type BreedRepository struct {
	db *gorm.DB
}

// NewBreedRepository creates a new breed repository
func NewBreedRepository(db *gorm.DB) *BreedRepository {
	return &BreedRepository{db: db}
}

// GetByID gets a breed by ID
func (r *BreedRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Breed, error) {
	var m models.Breed
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Breed{ID: m.ID, Name: m.Name, PetType: m.PetType}, nil
}

// GetByIDs gets several breeds at once; missing ids surface as ErrNotFound
func (r *BreedRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Breed, error) {
	var breedModels []models.Breed
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id IN ?", ids).Find(&breedModels).Error; err != nil {
		return nil, err
	}
	if len(breedModels) != len(ids) {
		return nil, domainerrors.ErrNotFound
	}

	breeds := make([]*entities.Breed, 0, len(breedModels))
	for _, m := range breedModels {
		breeds = append(breeds, &entities.Breed{ID: m.ID, Name: m.Name, PetType: m.PetType})
	}
	return breeds, nil
}

// List lists breeds, optionally filtered by pet type
func (r *BreedRepository) List(ctx context.Context, petType string) ([]*entities.Breed, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Order("name ASC")
	if petType != "" {
		db = db.Where("LOWER(pet_type) = LOWER(?)", petType)
	}

	var breedModels []models.Breed
	if err := db.Find(&breedModels).Error; err != nil {
		return nil, err
	}

	breeds := make([]*entities.Breed, 0, len(breedModels))
	for _, m := range breedModels {
		breeds = append(breeds, &entities.Breed{ID: m.ID, Name: m.Name, PetType: m.PetType})
	}
	return breeds, nil
}

// CityRepository implements city catalog lookups
type CityRepository struct {
	db *gorm.DB
}

// NewCityRepository creates a new city repository
func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

// GetByID gets a city by ID
func (r *CityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.City, error) {
	var m models.City
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.City{ID: m.ID, Name: m.Name, State: m.State}, nil
}

// List lists all cities
func (r *CityRepository) List(ctx context.Context) ([]*entities.City, error) {
	var cityModels []models.City
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("name ASC").Find(&cityModels).Error; err != nil {
		return nil, err
	}

	cities := make([]*entities.City, 0, len(cityModels))
	for _, m := range cityModels {
		cities = append(cities, &entities.City{ID: m.ID, Name: m.Name, State: m.State})
	}
	return cities, nil
}
