package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/usecases"
)

func newAdminUsecase() (*usecases.AdminUsecase, *MockUserRepository, *MockBreederApplicationRepository, *MockBreederListingRepository, *MockAdoptionListingRepository) {
	userRepo := new(MockUserRepository)
	appRepo := new(MockBreederApplicationRepository)
	breederListingRepo := new(MockBreederListingRepository)
	adoptionListingRepo := new(MockAdoptionListingRepository)
	uc := usecases.NewAdminUsecase(userRepo, appRepo, breederListingRepo, adoptionListingRepo)
	return uc, userRepo, appRepo, breederListingRepo, adoptionListingRepo
}

func TestAdminUsecase_SetUserStatus(t *testing.T) {
	uc, userRepo, _, _, _ := newAdminUsecase()
	adminID := uuid.New()
	userID := uuid.New()

	userRepo.On("UpdateStatus", context.Background(), userID, entities.UserStatusSuspended).Return(nil).Once()

	require.NoError(t, uc.SetUserStatus(context.Background(), adminID, userID, entities.UserStatusSuspended))
	userRepo.AssertExpectations(t)
}

func TestAdminUsecase_SetUserStatus_Guards(t *testing.T) {
	uc, userRepo, _, _, _ := newAdminUsecase()
	adminID := uuid.New()

	err := uc.SetUserStatus(context.Background(), adminID, adminID, entities.UserStatusSuspended)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	err = uc.SetUserStatus(context.Background(), adminID, uuid.New(), entities.UserStatus("frozen"))
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	userRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUsecase_Stats(t *testing.T) {
	uc, userRepo, appRepo, breederListingRepo, adoptionListingRepo := newAdminUsecase()

	userRepo.On("List", context.Background(), "", 1, 0).Return([]*entities.User{}, int64(42), nil).Once()
	appRepo.On("ListPending", context.Background()).
		Return([]*entities.BreederApplication{{ID: uuid.New()}, {ID: uuid.New()}}, nil).Once()
	breederListingRepo.On("Search", context.Background(), &entities.ListingFilter{Take: 1}).
		Return([]*entities.BreederListing{}, int64(7), nil).Once()
	adoptionListingRepo.On("List", context.Background(), (*uuid.UUID)(nil), "", 1, 0).
		Return([]*entities.AdoptionListing{}, int64(3), nil).Once()

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, 2, stats.PendingApplications)
	assert.Equal(t, int64(7), stats.ActiveBreederListings)
	assert.Equal(t, int64(3), stats.ActiveAdoptionListings)
}

func TestAdminUsecase_ListUsers(t *testing.T) {
	uc, userRepo, _, _, _ := newAdminUsecase()

	users := []*entities.User{{ID: uuid.New(), Email: "a@b.com"}}
	userRepo.On("List", context.Background(), "ravi", 20, 0).Return(users, int64(1), nil).Once()

	got, total, err := uc.ListUsers(context.Background(), "ravi", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, got, 1)
}
