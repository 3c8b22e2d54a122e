package repositories

import (
	"context"

	"github.com/google/uuid"
	"pawmart.backend/internal/domain/entities"
)

// BreederApplicationRepository defines application queue operations
type BreederApplicationRepository interface {
	Create(ctx context.Context, app *entities.BreederApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BreederApplication, error)
	// GetLatestByUserID returns the most recent non-superseded application.
	GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.BreederApplication, error)
	ListPending(ctx context.Context) ([]*entities.BreederApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus, reviewerID uuid.UUID, notes string) error
	MarkSuperseded(ctx context.Context, id uuid.UUID) error
}

// BreederProfileRepository defines breeder profile operations
type BreederProfileRepository interface {
	Create(ctx context.Context, profile *entities.BreederProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BreederProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.BreederProfile, error)
	GetBySlug(ctx context.Context, slug string) (*entities.BreederProfile, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UpdateMedia(ctx context.Context, id uuid.UUID, input *entities.UpdateProfileMediaInput) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}
