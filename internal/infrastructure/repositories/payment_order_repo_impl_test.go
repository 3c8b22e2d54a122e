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

func newPaymentOrder(gatewayOrderID string) *entities.PaymentOrder {
	return &entities.PaymentOrder{
		ID:             uuid.New(),
		GatewayOrderID: gatewayOrderID,
		UserID:         uuid.New(),
		ListingID:      uuid.New(),
		ListingType:    entities.ListingTypeBreeder,
		Tier:           "standard",
		Amount:         19900,
		Currency:       "INR",
		Status:         entities.PaymentOrderStatusCreated,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func TestPaymentOrderRepository_CreateGetMarkPaid(t *testing.T) {
	db := newTestDB(t)
	createPaymentOrderTable(t, db)
	repo := NewPaymentOrderRepository(db)
	ctx := context.Background()

	o := newPaymentOrder("order_abc123")
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.GetByGatewayOrderID(ctx, "order_abc123")
	require.NoError(t, err)
	require.Equal(t, o.ID, got.ID)
	require.Equal(t, int64(19900), got.Amount)
	require.Equal(t, entities.PaymentOrderStatusCreated, got.Status)

	pending, err := repo.GetPendingByListingID(ctx, o.ListingID)
	require.NoError(t, err)
	require.Equal(t, o.ID, pending.ID)

	require.NoError(t, repo.MarkPaid(ctx, o.ID, "pay_xyz789"))

	got, err = repo.GetByGatewayOrderID(ctx, "order_abc123")
	require.NoError(t, err)
	require.Equal(t, entities.PaymentOrderStatusPaid, got.Status)
	require.Equal(t, "pay_xyz789", got.PaymentID.String)
	require.True(t, got.VerifiedAt.Valid)

	// terminal status cannot be flipped again
	err = repo.MarkPaid(ctx, o.ID, "pay_other")
	require.ErrorIs(t, err, domainerrors.ErrInvalidState)
	err = repo.MarkFailed(ctx, o.ID)
	require.ErrorIs(t, err, domainerrors.ErrInvalidState)

	_, err = repo.GetPendingByListingID(ctx, o.ListingID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPaymentOrderRepository_MarkFailed(t *testing.T) {
	db := newTestDB(t)
	createPaymentOrderTable(t, db)
	repo := NewPaymentOrderRepository(db)
	ctx := context.Background()

	o := newPaymentOrder("order_fail1")
	require.NoError(t, repo.Create(ctx, o))
	require.NoError(t, repo.MarkFailed(ctx, o.ID))

	got, err := repo.GetByGatewayOrderID(ctx, "order_fail1")
	require.NoError(t, err)
	require.Equal(t, entities.PaymentOrderStatusFailed, got.Status)
	require.False(t, got.PaymentID.Valid)
}

func TestPaymentOrderRepository_StaleAndExpire(t *testing.T) {
	db := newTestDB(t)
	createPaymentOrderTable(t, db)
	repo := NewPaymentOrderRepository(db)
	ctx := context.Background()

	stale := newPaymentOrder("order_stale")
	stale.CreatedAt = time.Now().Add(-2 * time.Hour)
	fresh := newPaymentOrder("order_fresh")
	paidStale := newPaymentOrder("order_paidstale")
	paidStale.CreatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, fresh))
	require.NoError(t, repo.Create(ctx, paidStale))
	require.NoError(t, repo.MarkPaid(ctx, paidStale.ID, "pay_1"))

	cutoff := time.Now().Add(-time.Hour)
	found, err := repo.GetStaleCreated(ctx, cutoff, 100)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, stale.ID, found[0].ID)

	require.NoError(t, repo.ExpireOrders(ctx, []uuid.UUID{stale.ID}))
	got, err := repo.GetByGatewayOrderID(ctx, "order_stale")
	require.NoError(t, err)
	require.Equal(t, entities.PaymentOrderStatusExpired, got.Status)

	// no-op on empty slice
	require.NoError(t, repo.ExpireOrders(ctx, nil))
}

func TestPaymentOrderRepository_NotFoundAndErrorBranches(t *testing.T) {
	db := newTestDB(t)
	createPaymentOrderTable(t, db)
	repo := NewPaymentOrderRepository(db)
	ctx := context.Background()

	_, err := repo.GetByGatewayOrderID(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = repo.GetPendingByListingID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	err = repo.MarkPaid(ctx, uuid.New(), "pay_x")
	require.ErrorIs(t, err, domainerrors.ErrInvalidState)

	broken := newTestDB(t)
	// intentionally skip table creation
	brokenRepo := NewPaymentOrderRepository(broken)
	_, err = brokenRepo.GetByGatewayOrderID(ctx, "x")
	require.Error(t, err)
	_, err = brokenRepo.GetStaleCreated(ctx, time.Now(), 10)
	require.Error(t, err)
	err = brokenRepo.Create(ctx, newPaymentOrder("x"))
	require.Error(t, err)
}
