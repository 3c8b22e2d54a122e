package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"pawmart.backend/internal/domain/entities"
	"pawmart.backend/internal/domain/repositories"
	"pawmart.backend/pkg/logger"
)

// CatalogUsecase serves the public reference catalog
type CatalogUsecase struct {
	breedRepo repositories.BreedRepository
	cityRepo  repositories.CityRepository
	petRepo   repositories.PetRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(
	breedRepo repositories.BreedRepository,
	cityRepo repositories.CityRepository,
	petRepo repositories.PetRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		breedRepo: breedRepo,
		cityRepo:  cityRepo,
		petRepo:   petRepo,
	}
}

// ListBreeds lists breeds, optionally filtered by pet type
func (u *CatalogUsecase) ListBreeds(ctx context.Context, petType string) ([]*entities.Breed, error) {
	return u.breedRepo.List(ctx, petType)
}

// ListCities lists all supported cities
func (u *CatalogUsecase) ListCities(ctx context.Context) ([]*entities.City, error) {
	return u.cityRepo.List(ctx)
}

// GetPet resolves a pet with images and counts the view
func (u *CatalogUsecase) GetPet(ctx context.Context, id uuid.UUID) (*entities.Pet, error) {
	pet, err := u.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.petRepo.IncrementViewCount(ctx, id); err != nil {
		logger.Warn(ctx, "failed to count pet view", zap.String("pet_id", id.String()), zap.Error(err))
	}
	return pet, nil
}

// ListPets lists pets with optional type filter
func (u *CatalogUsecase) ListPets(ctx context.Context, petType string, limit, offset int) ([]*entities.Pet, int64, error) {
	return u.petRepo.List(ctx, petType, limit, offset)
}
