package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/domain/repositories"
	"pawmart.backend/pkg/logger"
)

// AdminStats is the back-office dashboard summary
type AdminStats struct {
	TotalUsers             int64 `json:"totalUsers"`
	PendingApplications    int   `json:"pendingApplications"`
	ActiveBreederListings  int64 `json:"activeBreederListings"`
	ActiveAdoptionListings int64 `json:"activeAdoptionListings"`
}

// AdminUsecase handles back-office operations
type AdminUsecase struct {
	userRepo            repositories.UserRepository
	appRepo             repositories.BreederApplicationRepository
	breederListingRepo  repositories.BreederListingRepository
	adoptionListingRepo repositories.AdoptionListingRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	appRepo repositories.BreederApplicationRepository,
	breederListingRepo repositories.BreederListingRepository,
	adoptionListingRepo repositories.AdoptionListingRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:            userRepo,
		appRepo:             appRepo,
		breederListingRepo:  breederListingRepo,
		adoptionListingRepo: adoptionListingRepo,
	}
}

// ListUsers pages through the user directory with optional search
func (u *AdminUsecase) ListUsers(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error) {
	return u.userRepo.List(ctx, search, limit, offset)
}

// SetUserStatus suspends, bans or reinstates an account. Admins cannot change
// their own status.
func (u *AdminUsecase) SetUserStatus(ctx context.Context, adminID, userID uuid.UUID, status entities.UserStatus) error {
	if adminID == userID {
		return domainerrors.BadRequest("cannot change your own account status")
	}

	switch status {
	case entities.UserStatusActive, entities.UserStatusSuspended, entities.UserStatusBanned:
	default:
		return domainerrors.BadRequest("unknown account status")
	}

	if err := u.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		return err
	}

	logger.Info(ctx, "account status changed",
		zap.String("user_id", userID.String()),
		zap.String("status", string(status)),
		zap.String("changed_by", adminID.String()))
	return nil
}

// Stats assembles the dashboard summary
func (u *AdminUsecase) Stats(ctx context.Context) (*AdminStats, error) {
	_, totalUsers, err := u.userRepo.List(ctx, "", 1, 0)
	if err != nil {
		return nil, err
	}

	pending, err := u.appRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	_, activeBreeder, err := u.breederListingRepo.Search(ctx, &entities.ListingFilter{Take: 1})
	if err != nil {
		return nil, err
	}

	_, activeAdoption, err := u.adoptionListingRepo.List(ctx, nil, "", 1, 0)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		TotalUsers:             totalUsers,
		PendingApplications:    len(pending),
		ActiveBreederListings:  activeBreeder,
		ActiveAdoptionListings: activeAdoption,
	}, nil
}
