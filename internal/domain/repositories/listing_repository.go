package repositories

import (
	"context"

	"github.com/google/uuid"
	"pawmart.backend/internal/domain/entities"
)

// BreederListingRepository defines commercial listing operations
type BreederListingRepository interface {
	Create(ctx context.Context, listing *entities.BreederListing) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BreederListing, error)
	ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entities.BreederListing, error)
	Update(ctx context.Context, listing *entities.BreederListing) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ListingStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, filter *entities.ListingFilter) ([]*entities.BreederListing, int64, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

// AdoptionListingRepository defines rehoming listing operations
type AdoptionListingRepository interface {
	Create(ctx context.Context, listing *entities.AdoptionListing) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AdoptionListing, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.AdoptionListing, error)
	List(ctx context.Context, cityID *uuid.UUID, petType string, limit, offset int) ([]*entities.AdoptionListing, int64, error)
	Update(ctx context.Context, listing *entities.AdoptionListing) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ListingStatus) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
