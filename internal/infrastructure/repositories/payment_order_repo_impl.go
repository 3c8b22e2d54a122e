package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"pawmart.backend/internal/domain/entities"
	domainerrors "pawmart.backend/internal/domain/errors"
	"pawmart.backend/internal/infrastructure/models"
)

// PaymentOrderRepository implements local payment order tracking
type PaymentOrderRepository struct {
	db *gorm.DB
}

// NewPaymentOrderRepository creates a new payment order repository
func NewPaymentOrderRepository(db *gorm.DB) *PaymentOrderRepository {
	return &PaymentOrderRepository{db: db}
}

// Create creates a new payment order
func (r *PaymentOrderRepository) Create(ctx context.Context, order *entities.PaymentOrder) error {
	m := &models.PaymentOrder{
		ID:             order.ID,
		GatewayOrderID: order.GatewayOrderID,
		UserID:         order.UserID,
		ListingID:      order.ListingID,
		ListingType:    string(order.ListingType),
		Tier:           order.Tier,
		Amount:         order.Amount,
		Currency:       order.Currency,
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByGatewayOrderID gets an order by the gateway-side order id
func (r *PaymentOrderRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entities.PaymentOrder, error) {
	var m models.PaymentOrder
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("gateway_order_id = ?", gatewayOrderID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return paymentOrderToEntity(&m), nil
}

// GetPendingByListingID returns the newest unfinished order for a listing
func (r *PaymentOrderRepository) GetPendingByListingID(ctx context.Context, listingID uuid.UUID) (*entities.PaymentOrder, error) {
	var m models.PaymentOrder
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("listing_id = ? AND status = ?", listingID, string(entities.PaymentOrderStatusCreated)).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return paymentOrderToEntity(&m), nil
}

// MarkPaid finalizes an order after signature verification
func (r *PaymentOrderRepository) MarkPaid(ctx context.Context, id uuid.UUID, paymentID string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.PaymentOrder{}).
		Where("id = ? AND status = ?", id, string(entities.PaymentOrderStatusCreated)).
		Updates(map[string]interface{}{
			"status":      string(entities.PaymentOrderStatusPaid),
			"payment_id":  paymentID,
			"verified_at": time.Now(),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidState
	}
	return nil
}

// MarkFailed records a failed verification attempt
func (r *PaymentOrderRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.PaymentOrder{}).
		Where("id = ? AND status = ?", id, string(entities.PaymentOrderStatusCreated)).
		Updates(map[string]interface{}{
			"status":     string(entities.PaymentOrderStatusFailed),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidState
	}
	return nil
}

// GetStaleCreated returns unfinished orders older than the cutoff
func (r *PaymentOrderRepository) GetStaleCreated(ctx context.Context, olderThan time.Time, limit int) ([]*entities.PaymentOrder, error) {
	var orderModels []models.PaymentOrder
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entities.PaymentOrderStatusCreated), olderThan).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*entities.PaymentOrder, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, paymentOrderToEntity(&orderModels[i]))
	}
	return orders, nil
}

// ExpireOrders marks the given orders expired
func (r *PaymentOrderRepository) ExpireOrders(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).WithContext(ctx).Model(&models.PaymentOrder{}).
		Where("id IN ? AND status = ?", ids, string(entities.PaymentOrderStatusCreated)).
		Updates(map[string]interface{}{
			"status":     string(entities.PaymentOrderStatusExpired),
			"updated_at": time.Now(),
		}).Error
}

func paymentOrderToEntity(m *models.PaymentOrder) *entities.PaymentOrder {
	return &entities.PaymentOrder{
		ID:             m.ID,
		GatewayOrderID: m.GatewayOrderID,
		UserID:         m.UserID,
		ListingID:      m.ListingID,
		ListingType:    entities.ListingType(m.ListingType),
		Tier:           m.Tier,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Status:         entities.PaymentOrderStatus(m.Status),
		PaymentID:      null.NewString(m.PaymentID, m.PaymentID != ""),
		VerifiedAt:     null.TimeFromPtr(m.VerifiedAt),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
