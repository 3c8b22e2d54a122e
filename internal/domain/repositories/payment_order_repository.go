package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"pawmart.backend/internal/domain/entities"
)

// PaymentOrderRepository defines local payment order tracking
type PaymentOrderRepository interface {
	Create(ctx context.Context, order *entities.PaymentOrder) error
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entities.PaymentOrder, error)
	GetPendingByListingID(ctx context.Context, listingID uuid.UUID) (*entities.PaymentOrder, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paymentID string) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	GetStaleCreated(ctx context.Context, olderThan time.Time, limit int) ([]*entities.PaymentOrder, error)
	ExpireOrders(ctx context.Context, ids []uuid.UUID) error
}
