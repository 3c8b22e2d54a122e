package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
)

func newBreederListing(profileID, petID uuid.UUID, price float64, status entities.ListingStatus) *entities.BreederListing {
	return &entities.BreederListing{
		ID:             uuid.New(),
		ProfileID:      profileID,
		PetID:          petID,
		Price:          price,
		AvailableCount: 1,
		FeeTier:        "free",
		Status:         status,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func seedSearchPet(t *testing.T, repo *PetRepository, petType string, breedID uuid.UUID) uuid.UUID {
	t.Helper()
	pet := newPet(petType)
	pet.BreedID = breedID
	require.NoError(t, repo.Create(context.Background(), pet))
	return pet.ID
}

func TestBreederListingRepository_CreateGetUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	createListingTables(t, db)
	repo := NewBreederListingRepository(db)
	ctx := context.Background()

	l := newBreederListing(uuid.New(), uuid.New(), 15000, entities.ListingStatusActive)
	require.NoError(t, repo.Create(ctx, l))

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, l.Price, got.Price)

	l.Price = 12000
	l.Negotiable = true
	require.NoError(t, repo.Update(ctx, l))

	require.NoError(t, repo.UpdateStatus(ctx, l.ID, entities.ListingStatusInactive))
	got, err = repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, float64(12000), got.Price)
	require.True(t, got.Negotiable)
	require.Equal(t, entities.ListingStatusInactive, got.Status)

	mine, err := repo.ListByProfileID(ctx, l.ProfileID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, repo.SoftDelete(ctx, l.ID))
	_, err = repo.GetByID(ctx, l.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBreederListingRepository_SearchFilters(t *testing.T) {
	db := newTestDB(t)
	createListingTables(t, db)
	createPetTables(t, db)
	createBreederProfileTables(t, db)
	repo := NewBreederListingRepository(db)
	petRepo := NewPetRepository(db)
	profileRepo := NewBreederProfileRepository(db)
	ctx := context.Background()

	labID := uuid.New()
	persianID := uuid.New()

	profile := newProfile(uuid.New(), "search-kennel")
	require.NoError(t, profileRepo.Create(ctx, profile))

	dogPet := seedSearchPet(t, petRepo, "dog", labID)
	catPet := seedSearchPet(t, petRepo, "cat", persianID)

	cheapDog := newBreederListing(profile.ID, dogPet, 5000, entities.ListingStatusActive)
	pricyDog := newBreederListing(profile.ID, dogPet, 25000, entities.ListingStatusActive)
	cat := newBreederListing(profile.ID, catPet, 8000, entities.ListingStatusActive)
	draft := newBreederListing(profile.ID, dogPet, 100, entities.ListingStatusDraft)
	require.NoError(t, repo.Create(ctx, cheapDog))
	require.NoError(t, repo.Create(ctx, pricyDog))
	require.NoError(t, repo.Create(ctx, cat))
	require.NoError(t, repo.Create(ctx, draft))

	// only active listings are searchable
	all, total, err := repo.Search(ctx, &entities.ListingFilter{Take: 10})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, all, 3)

	// case-insensitive pet type
	dogs, total, err := repo.Search(ctx, &entities.ListingFilter{PetType: "Dog", Take: 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, dogs, 2)

	// breed filter
	cats, total, err := repo.Search(ctx, &entities.ListingFilter{BreedID: &persianID, Take: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, cat.ID, cats[0].ID)

	// inclusive price bounds
	min := float64(5000)
	max := float64(8000)
	inRange, total, err := repo.Search(ctx, &entities.ListingFilter{MinPrice: &min, MaxPrice: &max, Take: 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, inRange, 2)

	// city filter goes through the owning profile
	byCity, total, err := repo.Search(ctx, &entities.ListingFilter{CityID: &profile.CityID, Take: 10})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, byCity, 3)

	otherCity := uuid.New()
	none, total, err := repo.Search(ctx, &entities.ListingFilter{CityID: &otherCity, Take: 10})
	require.NoError(t, err)
	require.Equal(t, int64(0), total)
	require.Empty(t, none)
}

func TestBreederListingRepository_SearchFeaturedFirst(t *testing.T) {
	db := newTestDB(t)
	createListingTables(t, db)
	createPetTables(t, db)
	repo := NewBreederListingRepository(db)
	petRepo := NewPetRepository(db)
	ctx := context.Background()

	petID := seedSearchPet(t, petRepo, "dog", uuid.New())

	plain := newBreederListing(uuid.New(), petID, 5000, entities.ListingStatusActive)
	plain.CreatedAt = time.Now()
	featured := newBreederListing(uuid.New(), petID, 5000, entities.ListingStatusActive)
	featured.Featured = true
	featured.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, plain))
	require.NoError(t, repo.Create(ctx, featured))

	results, _, err := repo.Search(ctx, &entities.ListingFilter{Take: 10})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, featured.ID, results[0].ID, "featured listings rank above newer plain ones")
}

func TestBreederListingRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createListingTables(t, db)
	repo := NewBreederListingRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	err = repo.Update(ctx, newBreederListing(uuid.New(), uuid.New(), 1, entities.ListingStatusActive))
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	err = repo.UpdateStatus(ctx, id, entities.ListingStatusActive)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	err = repo.SoftDelete(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBreederListingRepository_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	// intentionally skip table creation
	repo := NewBreederListingRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.Error(t, err)
	_, err = repo.ListByProfileID(ctx, uuid.New())
	require.Error(t, err)
	_, _, err = repo.Search(ctx, &entities.ListingFilter{Take: 10})
	require.Error(t, err)
	err = repo.Create(ctx, newBreederListing(uuid.New(), uuid.New(), 1, entities.ListingStatusActive))
	require.Error(t, err)
}
