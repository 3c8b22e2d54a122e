package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/domain/repositories"
	"pawmart.backend/pkg/logger"
)

// ListingUsecase handles breeder and adoption listings
type ListingUsecase struct {
	breederListingRepo  repositories.BreederListingRepository
	adoptionListingRepo repositories.AdoptionListingRepository
	profileRepo         repositories.BreederProfileRepository
	petRepo             repositories.PetRepository
	breedRepo           repositories.BreedRepository
	cityRepo            repositories.CityRepository
	uow                 repositories.UnitOfWork
}

// NewListingUsecase creates a new listing usecase
func NewListingUsecase(
	breederListingRepo repositories.BreederListingRepository,
	adoptionListingRepo repositories.AdoptionListingRepository,
	profileRepo repositories.BreederProfileRepository,
	petRepo repositories.PetRepository,
	breedRepo repositories.BreedRepository,
	cityRepo repositories.CityRepository,
	uow repositories.UnitOfWork,
) *ListingUsecase {
	return &ListingUsecase{
		breederListingRepo:  breederListingRepo,
		adoptionListingRepo: adoptionListingRepo,
		profileRepo:         profileRepo,
		petRepo:             petRepo,
		breedRepo:           breedRepo,
		cityRepo:            cityRepo,
		uow:                 uow,
	}
}

// CreateBreederListing creates a commercial listing. Free tier listings go
// live immediately; paid tiers wait for payment.
func (u *ListingUsecase) CreateBreederListing(ctx context.Context, userID uuid.UUID, input *entities.BreederListingInput) (*entities.BreederListing, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotAuthorized("only approved breeders can create listings")
		}
		return nil, err
	}

	amount, ok := FeeTierAmount(input.FeeTier)
	if !ok {
		return nil, domainerrors.BadRequest("unknown fee tier")
	}

	status := entities.ListingStatusPendingPayment
	if amount == 0 {
		status = entities.ListingStatusActive
	}

	now := time.Now()
	listing := &entities.BreederListing{
		ID:             uuid.New(),
		ProfileID:      profile.ID,
		Price:          input.Price,
		Negotiable:     input.Negotiable,
		AvailableCount: input.AvailableCount,
		FeeTier:        input.FeeTier,
		Featured:       feeTierFeatured(input.FeeTier),
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		petID, err := u.resolvePet(txCtx, input.PetID, input.Pet)
		if err != nil {
			return err
		}
		listing.PetID = petID
		return u.breederListingRepo.Create(txCtx, listing)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "breeder listing created",
		zap.String("listing_id", listing.ID.String()),
		zap.String("fee_tier", listing.FeeTier),
		zap.String("status", string(listing.Status)))
	return listing, nil
}

// GetBreederListing resolves a listing with its pet and counts the view
func (u *ListingUsecase) GetBreederListing(ctx context.Context, id uuid.UUID) (*entities.BreederListing, error) {
	listing, err := u.breederListingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pet, err := u.petRepo.GetByID(ctx, listing.PetID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	listing.Pet = pet

	if err := u.breederListingRepo.IncrementViewCount(ctx, id); err != nil {
		logger.Warn(ctx, "failed to count listing view", zap.String("listing_id", id.String()), zap.Error(err))
	}
	return listing, nil
}

// MyBreederListings lists the caller's own listings including unpaid drafts
func (u *ListingUsecase) MyBreederListings(ctx context.Context, userID uuid.UUID) ([]*entities.BreederListing, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.breederListingRepo.ListByProfileID(ctx, profile.ID)
}

// UpdateBreederListing edits commercial fields and the pet record
func (u *ListingUsecase) UpdateBreederListing(ctx context.Context, userID, listingID uuid.UUID, input *entities.BreederListingInput) (*entities.BreederListing, error) {
	listing, err := u.ownedBreederListing(ctx, userID, listingID)
	if err != nil {
		return nil, err
	}

	listing.Price = input.Price
	listing.Negotiable = input.Negotiable
	listing.AvailableCount = input.AvailableCount
	if err := u.breederListingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return u.breederListingRepo.GetByID(ctx, listingID)
}

// SetBreederListingStatus lets the owner pause or resume an active listing.
// Listings still waiting for payment cannot be activated by hand.
func (u *ListingUsecase) SetBreederListingStatus(ctx context.Context, userID, listingID uuid.UUID, status entities.ListingStatus) error {
	if status != entities.ListingStatusActive && status != entities.ListingStatusInactive {
		return domainerrors.BadRequest("status must be active or inactive")
	}

	listing, err := u.ownedBreederListing(ctx, userID, listingID)
	if err != nil {
		return err
	}
	if listing.Status != entities.ListingStatusActive && listing.Status != entities.ListingStatusInactive {
		return domainerrors.InvalidState("listing cannot be toggled in its current state")
	}
	return u.breederListingRepo.UpdateStatus(ctx, listingID, status)
}

// DeleteBreederListing soft deletes an owned listing
func (u *ListingUsecase) DeleteBreederListing(ctx context.Context, userID, listingID uuid.UUID) error {
	if _, err := u.ownedBreederListing(ctx, userID, listingID); err != nil {
		return err
	}
	return u.breederListingRepo.SoftDelete(ctx, listingID)
}

// Search finds active breeder listings and attaches their pets
func (u *ListingUsecase) Search(ctx context.Context, filter *entities.ListingFilter) ([]*entities.BreederListing, int64, error) {
	listings, total, err := u.breederListingRepo.Search(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	for _, listing := range listings {
		pet, err := u.petRepo.GetByID(ctx, listing.PetID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			return nil, 0, err
		}
		listing.Pet = pet
	}
	return listings, total, nil
}

// CreateAdoptionListing creates a rehoming listing; these are free and go
// live immediately.
func (u *ListingUsecase) CreateAdoptionListing(ctx context.Context, userID uuid.UUID, input *entities.AdoptionListingInput) (*entities.AdoptionListing, error) {
	if _, err := u.cityRepo.GetByID(ctx, input.CityID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.BadRequest("unknown city")
		}
		return nil, err
	}

	now := time.Now()
	listing := &entities.AdoptionListing{
		ID:           uuid.New(),
		UserID:       userID,
		CityID:       input.CityID,
		AdoptionFee:  input.AdoptionFee,
		ContactPhone: input.ContactPhone,
		Status:       entities.ListingStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.Reason != "" {
		listing.Reason.SetValid(input.Reason)
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		petID, err := u.resolvePet(txCtx, input.PetID, input.Pet)
		if err != nil {
			return err
		}
		listing.PetID = petID
		return u.adoptionListingRepo.Create(txCtx, listing)
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// GetAdoptionListing resolves a rehoming listing with its pet
func (u *ListingUsecase) GetAdoptionListing(ctx context.Context, id uuid.UUID) (*entities.AdoptionListing, error) {
	listing, err := u.adoptionListingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pet, err := u.petRepo.GetByID(ctx, listing.PetID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	listing.Pet = pet
	return listing, nil
}

// ListAdoptionListings lists active rehoming listings with optional filters
func (u *ListingUsecase) ListAdoptionListings(ctx context.Context, cityID *uuid.UUID, petType string, limit, offset int) ([]*entities.AdoptionListing, int64, error) {
	listings, total, err := u.adoptionListingRepo.List(ctx, cityID, petType, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	for _, listing := range listings {
		pet, err := u.petRepo.GetByID(ctx, listing.PetID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			return nil, 0, err
		}
		listing.Pet = pet
	}
	return listings, total, nil
}

// MyAdoptionListings lists the caller's own rehoming listings
func (u *ListingUsecase) MyAdoptionListings(ctx context.Context, userID uuid.UUID) ([]*entities.AdoptionListing, error) {
	return u.adoptionListingRepo.ListByUserID(ctx, userID)
}

// UpdateAdoptionListing edits an owned rehoming listing
func (u *ListingUsecase) UpdateAdoptionListing(ctx context.Context, userID, listingID uuid.UUID, input *entities.AdoptionListingInput) (*entities.AdoptionListing, error) {
	listing, err := u.ownedAdoptionListing(ctx, userID, listingID)
	if err != nil {
		return nil, err
	}

	listing.AdoptionFee = input.AdoptionFee
	listing.ContactPhone = input.ContactPhone
	if input.Reason != "" {
		listing.Reason.SetValid(input.Reason)
	}
	if err := u.adoptionListingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return u.adoptionListingRepo.GetByID(ctx, listingID)
}

// DeleteAdoptionListing soft deletes an owned rehoming listing
func (u *ListingUsecase) DeleteAdoptionListing(ctx context.Context, userID, listingID uuid.UUID) error {
	if _, err := u.ownedAdoptionListing(ctx, userID, listingID); err != nil {
		return err
	}
	return u.adoptionListingRepo.SoftDelete(ctx, listingID)
}

// resolvePet returns the pet to attach: exactly one of an existing pet id or
// an inline pet definition must be supplied.
func (u *ListingUsecase) resolvePet(ctx context.Context, petID *uuid.UUID, input *entities.PetInput) (uuid.UUID, error) {
	switch {
	case petID != nil && input != nil:
		return uuid.Nil, domainerrors.BadRequest("supply either petId or pet, not both")
	case petID != nil:
		if _, err := u.petRepo.GetByID(ctx, *petID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return uuid.Nil, domainerrors.BadRequest("unknown pet")
			}
			return uuid.Nil, err
		}
		return *petID, nil
	case input != nil:
		return u.createPet(ctx, input)
	default:
		return uuid.Nil, domainerrors.BadRequest("either petId or pet is required")
	}
}

func (u *ListingUsecase) createPet(ctx context.Context, input *entities.PetInput) (uuid.UUID, error) {
	breed, err := u.breedRepo.GetByID(ctx, input.BreedID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return uuid.Nil, domainerrors.BadRequest("unknown breed")
		}
		return uuid.Nil, err
	}
	if breed.PetType != input.PetType {
		return uuid.Nil, domainerrors.BadRequest("breed does not match pet type")
	}

	now := time.Now()
	pet := &entities.Pet{
		ID:         uuid.New(),
		Name:       input.Name,
		PetType:    input.PetType,
		BreedID:    input.BreedID,
		Gender:     input.Gender,
		AgeMonths:  input.AgeMonths,
		Vaccinated: input.Vaccinated,
		Neutered:   input.Neutered,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.Temperament != "" {
		pet.Temperament.SetValid(input.Temperament)
	}
	if input.Description != "" {
		pet.Description.SetValid(input.Description)
	}
	for i, url := range input.ImageURLs {
		pet.Images = append(pet.Images, entities.PetImage{
			ID:        uuid.New(),
			PetID:     pet.ID,
			URL:       url,
			Position:  i,
			CreatedAt: now,
		})
	}

	if err := u.petRepo.Create(ctx, pet); err != nil {
		return uuid.Nil, err
	}
	return pet.ID, nil
}

func (u *ListingUsecase) ownedBreederListing(ctx context.Context, userID, listingID uuid.UUID) (*entities.BreederListing, error) {
	listing, err := u.breederListingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByID(ctx, listing.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != userID {
		return nil, domainerrors.NotAuthorized("listing belongs to another breeder")
	}
	return listing, nil
}

func (u *ListingUsecase) ownedAdoptionListing(ctx context.Context, userID, listingID uuid.UUID) (*entities.AdoptionListing, error) {
	listing, err := u.adoptionListingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.UserID != userID {
		return nil, domainerrors.NotAuthorized("listing belongs to another user")
	}
	return listing, nil
}
