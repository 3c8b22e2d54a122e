package repositories

import (
	"context"

	"github.com/google/uuid"
	"pawmart.backend/internal/domain/entities"
)

// PetRepository defines pet record operations
type PetRepository interface {
	Create(ctx context.Context, pet *entities.Pet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Pet, error)
	List(ctx context.Context, petType string, limit, offset int) ([]*entities.Pet, int64, error)
	Update(ctx context.Context, pet *entities.Pet) error
	AddImage(ctx context.Context, image *entities.PetImage) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

// BreedRepository defines breed catalog lookups
type BreedRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Breed, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Breed, error)
	List(ctx context.Context, petType string) ([]*entities.Breed, error)
}

// CityRepository defines city catalog lookups
type CityRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.City, error)
	List(ctx context.Context) ([]*entities.City, error)
}
