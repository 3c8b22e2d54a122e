package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/domain/gateway"
	"pawmart.backend/internal/usecases"
)

type paymentMocks struct {
	orderRepo          *MockPaymentOrderRepository
	breederListingRepo *MockBreederListingRepository
	profileRepo        *MockBreederProfileRepository
	gateway            *MockPaymentGateway
	uow                *MockUnitOfWork
}

func newPaymentUsecase() (*usecases.PaymentUsecase, *paymentMocks) {
	m := &paymentMocks{
		orderRepo:          new(MockPaymentOrderRepository),
		breederListingRepo: new(MockBreederListingRepository),
		profileRepo:        new(MockBreederProfileRepository),
		gateway:            new(MockPaymentGateway),
		uow:                new(MockUnitOfWork),
	}
	uc := usecases.NewPaymentUsecase(m.orderRepo, m.breederListingRepo, m.profileRepo, m.gateway, m.uow)
	return uc, m
}

func unpaidListing(userID uuid.UUID, profileID uuid.UUID) *entities.BreederListing {
	return &entities.BreederListing{
		ID:        uuid.New(),
		ProfileID: profileID,
		FeeTier:   usecases.FeeTierStandard,
		Status:    entities.ListingStatusPendingPayment,
	}
}

func TestPaymentUsecase_Initiate(t *testing.T) {
	uc, m := newPaymentUsecase()
	userID := uuid.New()
	profile := &entities.BreederProfile{ID: uuid.New(), UserID: userID}
	listing := unpaidListing(userID, profile.ID)

	m.breederListingRepo.On("GetByID", context.Background(), listing.ID).Return(listing, nil).Once()
	m.profileRepo.On("GetByID", context.Background(), profile.ID).Return(profile, nil).Once()
	m.orderRepo.On("GetPendingByListingID", context.Background(), listing.ID).Return(nil, domainerrors.ErrNotFound).Once()
	m.gateway.On("CreateOrder", context.Background(), float64(199), "INR", listing.ID.String(), mock.Anything).
		Return(&gateway.Order{ID: "order_ABC123", Amount: 19900, Currency: "INR"}, nil).Once()
	m.orderRepo.On("Create", context.Background(), mock.MatchedBy(func(o *entities.PaymentOrder) bool {
		return o.GatewayOrderID == "order_ABC123" &&
			o.Amount == 19900 &&
			o.Status == entities.PaymentOrderStatusCreated &&
			o.ListingID == listing.ID
	})).Return(nil).Once()
	m.gateway.On("KeyID").Return("rzp_test_key").Once()

	resp, err := uc.Initiate(context.Background(), userID, &entities.InitiatePaymentInput{
		ListingID:   listing.ID,
		ListingType: entities.ListingTypeBreeder,
	})
	require.NoError(t, err)
	assert.Equal(t, "order_ABC123", resp.OrderID)
	assert.Equal(t, "rzp_test_key", resp.KeyID)
	assert.Equal(t, int64(19900), resp.Amount)
	m.orderRepo.AssertExpectations(t)
	m.gateway.AssertExpectations(t)
}

func TestPaymentUsecase_Initiate_ReturnsOpenOrder(t *testing.T) {
	uc, m := newPaymentUsecase()
	userID := uuid.New()
	profile := &entities.BreederProfile{ID: uuid.New(), UserID: userID}
	listing := unpaidListing(userID, profile.ID)
	open := &entities.PaymentOrder{
		ID:             uuid.New(),
		GatewayOrderID: "order_OPEN1",
		ListingID:      listing.ID,
		Amount:         19900,
		Currency:       "INR",
		Status:         entities.PaymentOrderStatusCreated,
	}

	m.breederListingRepo.On("GetByID", context.Background(), listing.ID).Return(listing, nil).Once()
	m.profileRepo.On("GetByID", context.Background(), profile.ID).Return(profile, nil).Once()
	m.orderRepo.On("GetPendingByListingID", context.Background(), listing.ID).Return(open, nil).Once()
	m.gateway.On("KeyID").Return("rzp_test_key").Once()

	resp, err := uc.Initiate(context.Background(), userID, &entities.InitiatePaymentInput{
		ListingID:   listing.ID,
		ListingType: entities.ListingTypeBreeder,
	})
	require.NoError(t, err)
	assert.Equal(t, "order_OPEN1", resp.OrderID)
	m.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentUsecase_Initiate_GatewayFailure(t *testing.T) {
	uc, m := newPaymentUsecase()
	userID := uuid.New()
	profile := &entities.BreederProfile{ID: uuid.New(), UserID: userID}
	listing := unpaidListing(userID, profile.ID)

	m.breederListingRepo.On("GetByID", context.Background(), listing.ID).Return(listing, nil).Once()
	m.profileRepo.On("GetByID", context.Background(), profile.ID).Return(profile, nil).Once()
	m.orderRepo.On("GetPendingByListingID", context.Background(), listing.ID).Return(nil, domainerrors.ErrNotFound).Once()
	m.gateway.On("CreateOrder", context.Background(), float64(199), "INR", listing.ID.String(), mock.Anything).
		Return(nil, assert.AnError).Once()

	_, err := uc.Initiate(context.Background(), userID, &entities.InitiatePaymentInput{
		ListingID:   listing.ID,
		ListingType: entities.ListingTypeBreeder,
	})
	assert.ErrorIs(t, err, domainerrors.ErrGateway)
	m.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentUsecase_Initiate_Guards(t *testing.T) {
	t.Run("adoption listings carry no fee", func(t *testing.T) {
		uc, _ := newPaymentUsecase()
		_, err := uc.Initiate(context.Background(), uuid.New(), &entities.InitiatePaymentInput{
			ListingID:   uuid.New(),
			ListingType: entities.ListingTypeAdoption,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	})

	t.Run("not the owner", func(t *testing.T) {
		uc, m := newPaymentUsecase()
		profile := &entities.BreederProfile{ID: uuid.New(), UserID: uuid.New()}
		listing := unpaidListing(profile.UserID, profile.ID)

		m.breederListingRepo.On("GetByID", context.Background(), listing.ID).Return(listing, nil).Once()
		m.profileRepo.On("GetByID", context.Background(), profile.ID).Return(profile, nil).Once()

		_, err := uc.Initiate(context.Background(), uuid.New(), &entities.InitiatePaymentInput{
			ListingID:   listing.ID,
			ListingType: entities.ListingTypeBreeder,
		})
		assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
	})

	t.Run("listing already active", func(t *testing.T) {
		uc, m := newPaymentUsecase()
		userID := uuid.New()
		profile := &entities.BreederProfile{ID: uuid.New(), UserID: userID}
		listing := unpaidListing(userID, profile.ID)
		listing.Status = entities.ListingStatusActive

		m.breederListingRepo.On("GetByID", context.Background(), listing.ID).Return(listing, nil).Once()
		m.profileRepo.On("GetByID", context.Background(), profile.ID).Return(profile, nil).Once()

		_, err := uc.Initiate(context.Background(), userID, &entities.InitiatePaymentInput{
			ListingID:   listing.ID,
			ListingType: entities.ListingTypeBreeder,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
	})
}

func paidOrderFixture(userID uuid.UUID) *entities.PaymentOrder {
	return &entities.PaymentOrder{
		ID:             uuid.New(),
		GatewayOrderID: "order_ABC123",
		UserID:         userID,
		ListingID:      uuid.New(),
		Status:         entities.PaymentOrderStatusCreated,
	}
}

func TestPaymentUsecase_Verify(t *testing.T) {
	uc, m := newPaymentUsecase()
	userID := uuid.New()
	order := paidOrderFixture(userID)

	m.orderRepo.On("GetByGatewayOrderID", context.Background(), order.GatewayOrderID).Return(order, nil).Once()
	m.gateway.On("VerifySignature", order.GatewayOrderID, "pay_XYZ", "valid-sig").Return(true).Once()
	m.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	m.orderRepo.On("MarkPaid", context.Background(), order.ID, "pay_XYZ").Return(nil).Once()
	m.breederListingRepo.On("UpdateStatus", context.Background(), order.ListingID, entities.ListingStatusActive).Return(nil).Once()

	err := uc.Verify(context.Background(), userID, &entities.VerifyPaymentInput{
		OrderID:   order.GatewayOrderID,
		PaymentID: "pay_XYZ",
		Signature: "valid-sig",
	})
	require.NoError(t, err)
	m.orderRepo.AssertExpectations(t)
	m.breederListingRepo.AssertExpectations(t)
}

func TestPaymentUsecase_Verify_BadSignature(t *testing.T) {
	uc, m := newPaymentUsecase()
	userID := uuid.New()
	order := paidOrderFixture(userID)

	m.orderRepo.On("GetByGatewayOrderID", context.Background(), order.GatewayOrderID).Return(order, nil).Once()
	m.gateway.On("VerifySignature", order.GatewayOrderID, "pay_XYZ", "tampered").Return(false).Once()
	m.orderRepo.On("MarkFailed", context.Background(), order.ID).Return(nil).Once()

	err := uc.Verify(context.Background(), userID, &entities.VerifyPaymentInput{
		OrderID:   order.GatewayOrderID,
		PaymentID: "pay_XYZ",
		Signature: "tampered",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	m.orderRepo.AssertExpectations(t)
	m.breederListingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentUsecase_Verify_RepeatWithSamePaymentIDIsNoop(t *testing.T) {
	uc, m := newPaymentUsecase()
	userID := uuid.New()
	order := paidOrderFixture(userID)
	order.Status = entities.PaymentOrderStatusPaid
	order.PaymentID = null.StringFrom("pay_XYZ")

	m.orderRepo.On("GetByGatewayOrderID", context.Background(), order.GatewayOrderID).Return(order, nil).Once()

	err := uc.Verify(context.Background(), userID, &entities.VerifyPaymentInput{
		OrderID:   order.GatewayOrderID,
		PaymentID: "pay_XYZ",
		Signature: "valid-sig",
	})
	assert.NoError(t, err)
	m.gateway.AssertNotCalled(t, "VerifySignature", mock.Anything, mock.Anything, mock.Anything)
	m.orderRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentUsecase_Verify_PaidWithDifferentPaymentID(t *testing.T) {
	uc, m := newPaymentUsecase()
	userID := uuid.New()
	order := paidOrderFixture(userID)
	order.Status = entities.PaymentOrderStatusPaid
	order.PaymentID = null.StringFrom("pay_OLD")

	m.orderRepo.On("GetByGatewayOrderID", context.Background(), order.GatewayOrderID).Return(order, nil).Once()

	err := uc.Verify(context.Background(), userID, &entities.VerifyPaymentInput{
		OrderID:   order.GatewayOrderID,
		PaymentID: "pay_NEW",
		Signature: "valid-sig",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
}

func TestPaymentUsecase_Verify_TerminalStates(t *testing.T) {
	for _, status := range []entities.PaymentOrderStatus{
		entities.PaymentOrderStatusFailed,
		entities.PaymentOrderStatusExpired,
	} {
		t.Run(string(status), func(t *testing.T) {
			uc, m := newPaymentUsecase()
			userID := uuid.New()
			order := paidOrderFixture(userID)
			order.Status = status

			m.orderRepo.On("GetByGatewayOrderID", context.Background(), order.GatewayOrderID).Return(order, nil).Once()

			err := uc.Verify(context.Background(), userID, &entities.VerifyPaymentInput{
				OrderID:   order.GatewayOrderID,
				PaymentID: "pay_XYZ",
				Signature: "valid-sig",
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
		})
	}
}

func TestPaymentUsecase_Verify_NotOwner(t *testing.T) {
	uc, m := newPaymentUsecase()
	order := paidOrderFixture(uuid.New())

	m.orderRepo.On("GetByGatewayOrderID", context.Background(), order.GatewayOrderID).Return(order, nil).Once()

	err := uc.Verify(context.Background(), uuid.New(), &entities.VerifyPaymentInput{
		OrderID:   order.GatewayOrderID,
		PaymentID: "pay_XYZ",
		Signature: "valid-sig",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}
