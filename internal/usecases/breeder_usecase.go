package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/domain/repositories"
	"pawmart.backend/pkg/logger"
	"pawmart.backend/pkg/utils"
)

// BreederUsecase handles the breeder application workflow and profiles
type BreederUsecase struct {
	appRepo     repositories.BreederApplicationRepository
	profileRepo repositories.BreederProfileRepository
	userRepo    repositories.UserRepository
	breedRepo   repositories.BreedRepository
	cityRepo    repositories.CityRepository
	uow         repositories.UnitOfWork
}

// NewBreederUsecase creates a new breeder usecase
func NewBreederUsecase(
	appRepo repositories.BreederApplicationRepository,
	profileRepo repositories.BreederProfileRepository,
	userRepo repositories.UserRepository,
	breedRepo repositories.BreedRepository,
	cityRepo repositories.CityRepository,
	uow repositories.UnitOfWork,
) *BreederUsecase {
	return &BreederUsecase{
		appRepo:     appRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		breedRepo:   breedRepo,
		cityRepo:    cityRepo,
		uow:         uow,
	}
}

// Submit files a breeder application. A user may have at most one live
// application; resubmitting after rejection or an info request creates a new
// record and retires the old one so review history stays intact.
func (u *BreederUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.ApplicationInput) (*entities.BreederApplication, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsBreeder {
		return nil, domainerrors.InvalidState("account is already a breeder")
	}

	if _, err := u.cityRepo.GetByID(ctx, input.CityID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("unknown city")
		}
		return nil, err
	}
	if _, err := u.breedRepo.GetByIDs(ctx, input.BreedIDs); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("unknown breed")
		}
		return nil, err
	}

	previous, err := u.appRepo.GetLatestByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if previous != nil {
		switch {
		case previous.Status == entities.ApplicationStatusPending:
			return nil, domainerrors.DuplicateApplication("an application is already under review")
		case previous.Status == entities.ApplicationStatusApproved:
			return nil, domainerrors.InvalidState("application has already been approved")
		case !previous.Status.Resubmittable():
			return nil, domainerrors.InvalidState("application cannot be resubmitted")
		}
	}

	now := time.Now()
	app := &entities.BreederApplication{
		ID:           uuid.New(),
		UserID:       userID,
		BusinessName: input.BusinessName,
		Email:        input.Email,
		Phone:        input.Phone,
		CityID:       input.CityID,
		BreedIDs:     input.BreedIDs,
		Status:       entities.ApplicationStatusPending,
		SubmittedAt:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Address != "" {
		app.Address.SetValid(input.Address)
	}
	if input.Experience != "" {
		app.Experience.SetValid(input.Experience)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if previous != nil {
			if err := u.appRepo.MarkSuperseded(txCtx, previous.ID); err != nil {
				return err
			}
		}
		return u.appRepo.Create(txCtx, app)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "breeder application submitted",
		zap.String("application_id", app.ID.String()),
		zap.String("user_id", userID.String()))
	return app, nil
}

// GetMyApplication returns the caller's live application
func (u *BreederUsecase) GetMyApplication(ctx context.Context, userID uuid.UUID) (*entities.BreederApplication, error) {
	return u.appRepo.GetLatestByUserID(ctx, userID)
}

// ListPending returns the review queue, oldest first
func (u *BreederUsecase) ListPending(ctx context.Context) ([]*entities.BreederApplication, error) {
	return u.appRepo.ListPending(ctx)
}

// Approve approves a pending application. Status change, profile creation and
// the role flag flip all land in one transaction.
func (u *BreederUsecase) Approve(ctx context.Context, reviewerID, applicationID uuid.UUID) (*entities.BreederProfile, error) {
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != entities.ApplicationStatusPending {
		return nil, domainerrors.InvalidState("only pending applications can be approved")
	}

	existing, err := u.profileRepo.GetByUserID(ctx, app.UserID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.InvalidState("user already has a breeder profile")
	}

	now := time.Now()
	profile := &entities.BreederProfile{
		ID:           uuid.New(),
		UserID:       app.UserID,
		BusinessName: app.BusinessName,
		CityID:       app.CityID,
		Verified:     true,
		BreedIDs:     app.BreedIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Slug allocation happens inside the transaction so concurrent approvals
	// of same-named businesses cannot both pass the existence check and then
	// trip the unique index.
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		slug, err := u.uniqueSlug(txCtx, app.BusinessName)
		if err != nil {
			return err
		}
		profile.Slug = slug

		if err := u.appRepo.UpdateStatus(txCtx, app.ID, entities.ApplicationStatusApproved, reviewerID, ""); err != nil {
			return err
		}
		if err := u.profileRepo.Create(txCtx, profile); err != nil {
			return err
		}
		return u.userRepo.SetBreederFlag(txCtx, app.UserID, true)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "breeder application approved",
		zap.String("application_id", app.ID.String()),
		zap.String("profile_id", profile.ID.String()),
		zap.String("slug", profile.Slug))
	return profile, nil
}

// Reject rejects a pending application with reviewer notes
func (u *BreederUsecase) Reject(ctx context.Context, reviewerID, applicationID uuid.UUID, notes string) error {
	return u.review(ctx, reviewerID, applicationID, entities.ApplicationStatusRejected, notes)
}

// RequestInfo sends a pending application back to the applicant for more detail
func (u *BreederUsecase) RequestInfo(ctx context.Context, reviewerID, applicationID uuid.UUID, notes string) error {
	if notes == "" {
		return domainerrors.BadRequest("notes are required when requesting information")
	}
	return u.review(ctx, reviewerID, applicationID, entities.ApplicationStatusInfoRequested, notes)
}

func (u *BreederUsecase) review(ctx context.Context, reviewerID, applicationID uuid.UUID, status entities.ApplicationStatus, notes string) error {
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.Status != entities.ApplicationStatusPending {
		return domainerrors.InvalidState("application has already been reviewed")
	}
	return u.appRepo.UpdateStatus(ctx, applicationID, status, reviewerID, notes)
}

// GetProfileBySlug resolves a public breeder page and counts the view
func (u *BreederUsecase) GetProfileBySlug(ctx context.Context, slug string) (*entities.BreederProfile, error) {
	profile, err := u.profileRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := u.profileRepo.IncrementViewCount(ctx, profile.ID); err != nil {
		logger.Warn(ctx, "failed to count profile view",
			zap.String("profile_id", profile.ID.String()),
			zap.Error(err))
	}
	return profile, nil
}

// GetMyProfile returns the caller's breeder profile
func (u *BreederUsecase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*entities.BreederProfile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}

// UpdateProfileMedia lets a breeder edit bio and media on their own profile
func (u *BreederUsecase) UpdateProfileMedia(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileMediaInput) (*entities.BreederProfile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := u.profileRepo.UpdateMedia(ctx, profile.ID, input); err != nil {
		return nil, err
	}
	return u.profileRepo.GetByID(ctx, profile.ID)
}

// uniqueSlug derives a URL slug from the business name, suffixing -2, -3, ...
// on collision.
func (u *BreederUsecase) uniqueSlug(ctx context.Context, businessName string) (string, error) {
	base := utils.Slugify(businessName)
	if base == "" {
		base = "breeder"
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := u.profileRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
