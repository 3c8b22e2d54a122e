package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"pawmart.backend/internal/domain/entities"
	"pawmart.backend/internal/domain/gateway"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) SetBreederFlag(ctx context.Context, id uuid.UUID, isBreeder bool) error {
	args := m.Called(ctx, id, isBreeder)
	return args.Error(0)
}

func (m *MockUserRepository) RecordLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

// Mock BreederApplicationRepository
type MockBreederApplicationRepository struct {
	mock.Mock
}

func (m *MockBreederApplicationRepository) Create(ctx context.Context, app *entities.BreederApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockBreederApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BreederApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BreederApplication), args.Error(1)
}

func (m *MockBreederApplicationRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.BreederApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BreederApplication), args.Error(1)
}

func (m *MockBreederApplicationRepository) ListPending(ctx context.Context) ([]*entities.BreederApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BreederApplication), args.Error(1)
}

func (m *MockBreederApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus, reviewerID uuid.UUID, notes string) error {
	args := m.Called(ctx, id, status, reviewerID, notes)
	return args.Error(0)
}

func (m *MockBreederApplicationRepository) MarkSuperseded(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock BreederProfileRepository
type MockBreederProfileRepository struct {
	mock.Mock
}

func (m *MockBreederProfileRepository) Create(ctx context.Context, profile *entities.BreederProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockBreederProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BreederProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BreederProfile), args.Error(1)
}

func (m *MockBreederProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.BreederProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BreederProfile), args.Error(1)
}

func (m *MockBreederProfileRepository) GetBySlug(ctx context.Context, slug string) (*entities.BreederProfile, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BreederProfile), args.Error(1)
}

func (m *MockBreederProfileRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockBreederProfileRepository) UpdateMedia(ctx context.Context, id uuid.UUID, input *entities.UpdateProfileMediaInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockBreederProfileRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock BreederListingRepository
type MockBreederListingRepository struct {
	mock.Mock
}

func (m *MockBreederListingRepository) Create(ctx context.Context, listing *entities.BreederListing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockBreederListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BreederListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BreederListing), args.Error(1)
}

func (m *MockBreederListingRepository) ListByProfileID(ctx context.Context, profileID uuid.UUID) ([]*entities.BreederListing, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BreederListing), args.Error(1)
}

func (m *MockBreederListingRepository) Update(ctx context.Context, listing *entities.BreederListing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockBreederListingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ListingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBreederListingRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBreederListingRepository) Search(ctx context.Context, filter *entities.ListingFilter) ([]*entities.BreederListing, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.BreederListing), args.Get(1).(int64), args.Error(2)
}

func (m *MockBreederListingRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock AdoptionListingRepository
type MockAdoptionListingRepository struct {
	mock.Mock
}

func (m *MockAdoptionListingRepository) Create(ctx context.Context, listing *entities.AdoptionListing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockAdoptionListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AdoptionListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AdoptionListing), args.Error(1)
}

func (m *MockAdoptionListingRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.AdoptionListing, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AdoptionListing), args.Error(1)
}

func (m *MockAdoptionListingRepository) List(ctx context.Context, cityID *uuid.UUID, petType string, limit, offset int) ([]*entities.AdoptionListing, int64, error) {
	args := m.Called(ctx, cityID, petType, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.AdoptionListing), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdoptionListingRepository) Update(ctx context.Context, listing *entities.AdoptionListing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockAdoptionListingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ListingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAdoptionListingRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock PetRepository
type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(ctx context.Context, pet *entities.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Pet), args.Error(1)
}

func (m *MockPetRepository) List(ctx context.Context, petType string, limit, offset int) ([]*entities.Pet, int64, error) {
	args := m.Called(ctx, petType, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Pet), args.Get(1).(int64), args.Error(2)
}

func (m *MockPetRepository) Update(ctx context.Context, pet *entities.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *MockPetRepository) AddImage(ctx context.Context, image *entities.PetImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockPetRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock BreedRepository
type MockBreedRepository struct {
	mock.Mock
}

func (m *MockBreedRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Breed, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Breed), args.Error(1)
}

func (m *MockBreedRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Breed, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Breed), args.Error(1)
}

func (m *MockBreedRepository) List(ctx context.Context, petType string) ([]*entities.Breed, error) {
	args := m.Called(ctx, petType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Breed), args.Error(1)
}

// Mock CityRepository
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.City), args.Error(1)
}

func (m *MockCityRepository) List(ctx context.Context) ([]*entities.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.City), args.Error(1)
}

// Mock PaymentOrderRepository
type MockPaymentOrderRepository struct {
	mock.Mock
}

func (m *MockPaymentOrderRepository) Create(ctx context.Context, order *entities.PaymentOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPaymentOrderRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entities.PaymentOrder, error) {
	args := m.Called(ctx, gatewayOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentOrder), args.Error(1)
}

func (m *MockPaymentOrderRepository) GetPendingByListingID(ctx context.Context, listingID uuid.UUID) (*entities.PaymentOrder, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentOrder), args.Error(1)
}

func (m *MockPaymentOrderRepository) MarkPaid(ctx context.Context, id uuid.UUID, paymentID string) error {
	args := m.Called(ctx, id, paymentID)
	return args.Error(0)
}

func (m *MockPaymentOrderRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentOrderRepository) GetStaleCreated(ctx context.Context, olderThan time.Time, limit int) ([]*entities.PaymentOrder, error) {
	args := m.Called(ctx, olderThan, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaymentOrder), args.Error(1)
}

func (m *MockPaymentOrderRepository) ExpireOrders(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// Mock PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string, notes map[string]string) (*gateway.Order, error) {
	args := m.Called(ctx, amount, currency, receipt, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Order), args.Error(1)
}

func (m *MockPaymentGateway) VerifySignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

func (m *MockPaymentGateway) KeyID() string {
	args := m.Called()
	return args.String(0)
}

// Mock TokenDenylist
type MockTokenDenylist struct {
	mock.Mock
}

func (m *MockTokenDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	args := m.Called(ctx, token, ttl)
	return args.Error(0)
}

func (m *MockTokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
