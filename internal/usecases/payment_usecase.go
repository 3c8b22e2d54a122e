package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/domain/gateway"
	"pawmart.backend/internal/domain/repositories"
	"pawmart.backend/pkg/logger"
)

// PaymentUsecase drives the listing fee payment flow against the gateway
type PaymentUsecase struct {
	orderRepo          repositories.PaymentOrderRepository
	breederListingRepo repositories.BreederListingRepository
	profileRepo        repositories.BreederProfileRepository
	gateway            gateway.PaymentGateway
	uow                repositories.UnitOfWork
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	orderRepo repositories.PaymentOrderRepository,
	breederListingRepo repositories.BreederListingRepository,
	profileRepo repositories.BreederProfileRepository,
	gw gateway.PaymentGateway,
	uow repositories.UnitOfWork,
) *PaymentUsecase {
	return &PaymentUsecase{
		orderRepo:          orderRepo,
		breederListingRepo: breederListingRepo,
		profileRepo:        profileRepo,
		gateway:            gw,
		uow:                uow,
	}
}

// Initiate opens a gateway order for an unpaid listing. Re-initiating while
// an order is still open returns the open order instead of creating another.
func (u *PaymentUsecase) Initiate(ctx context.Context, userID uuid.UUID, input *entities.InitiatePaymentInput) (*entities.InitiatePaymentResponse, error) {
	if input.ListingType != entities.ListingTypeBreeder {
		return nil, domainerrors.BadRequest("only breeder listings carry a fee")
	}

	listing, err := u.breederListingRepo.GetByID(ctx, input.ListingID)
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

	if listing.Status != entities.ListingStatusPendingPayment {
		return nil, domainerrors.InvalidState("listing is not awaiting payment")
	}

	amount, ok := FeeTierAmount(listing.FeeTier)
	if !ok || amount == 0 {
		return nil, domainerrors.InvalidState("listing tier carries no fee")
	}

	if open, err := u.orderRepo.GetPendingByListingID(ctx, listing.ID); err == nil {
		return &entities.InitiatePaymentResponse{
			OrderID:  open.GatewayOrderID,
			KeyID:    u.gateway.KeyID(),
			Amount:   open.Amount,
			Currency: open.Currency,
		}, nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	gwOrder, err := u.gateway.CreateOrder(ctx, amount, PaymentCurrency, listing.ID.String(), map[string]string{
		"listingId": listing.ID.String(),
		"tier":      listing.FeeTier,
	})
	if err != nil {
		return nil, domainerrors.GatewayError("failed to create payment order", err)
	}

	now := time.Now()
	order := &entities.PaymentOrder{
		ID:             uuid.New(),
		GatewayOrderID: gwOrder.ID,
		UserID:         userID,
		ListingID:      listing.ID,
		ListingType:    entities.ListingTypeBreeder,
		Tier:           listing.FeeTier,
		Amount:         gwOrder.Amount,
		Currency:       gwOrder.Currency,
		Status:         entities.PaymentOrderStatusCreated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info(ctx, "payment order created",
		zap.String("order_id", gwOrder.ID),
		zap.String("listing_id", listing.ID.String()),
		zap.Int64("amount", gwOrder.Amount))

	return &entities.InitiatePaymentResponse{
		OrderID:  gwOrder.ID,
		KeyID:    u.gateway.KeyID(),
		Amount:   gwOrder.Amount,
		Currency: gwOrder.Currency,
	}, nil
}

// Verify finishes checkout. The signature is recomputed server side; on a
// match the order and the listing flip together in one transaction. Verifying
// an already-paid order with the same payment id is a no-op.
func (u *PaymentUsecase) Verify(ctx context.Context, userID uuid.UUID, input *entities.VerifyPaymentInput) error {
	order, err := u.orderRepo.GetByGatewayOrderID(ctx, input.OrderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return domainerrors.NotAuthorized("order belongs to another user")
	}

	if order.Status == entities.PaymentOrderStatusPaid {
		if order.PaymentID.String == input.PaymentID {
			return nil
		}
		return domainerrors.InvalidState("order is already paid")
	}
	if order.Status != entities.PaymentOrderStatusCreated {
		return domainerrors.InvalidState("order is no longer payable")
	}

	if !u.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		if err := u.orderRepo.MarkFailed(ctx, order.ID); err != nil {
			logger.Error(ctx, "failed to mark order failed",
				zap.String("order_id", input.OrderID), zap.Error(err))
		}
		logger.Warn(ctx, "payment signature mismatch", zap.String("order_id", input.OrderID))
		return domainerrors.BadRequest("payment signature verification failed")
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.MarkPaid(txCtx, order.ID, input.PaymentID); err != nil {
			return err
		}
		return u.breederListingRepo.UpdateStatus(txCtx, order.ListingID, entities.ListingStatusActive)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "payment verified",
		zap.String("order_id", input.OrderID),
		zap.String("payment_id", input.PaymentID),
		zap.String("listing_id", order.ListingID.String()))
	return nil
}
