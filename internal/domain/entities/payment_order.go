package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentOrderStatus represents payment order lifecycle status
type PaymentOrderStatus string

const (
	PaymentOrderStatusCreated PaymentOrderStatus = "created"
	PaymentOrderStatusPaid    PaymentOrderStatus = "paid"
	PaymentOrderStatusFailed  PaymentOrderStatus = "failed"
	PaymentOrderStatusExpired PaymentOrderStatus = "expired"
)

// PaymentOrder tracks one payment attempt against the gateway. After
// verification the record is only ever flipped to its terminal status.
type PaymentOrder struct {
	ID             uuid.UUID          `json:"id"`
	GatewayOrderID string             `json:"gatewayOrderId"`
	UserID         uuid.UUID          `json:"userId"`
	ListingID      uuid.UUID          `json:"listingId"`
	ListingType    ListingType        `json:"listingType"`
	Tier           string             `json:"tier"`
	Amount         int64              `json:"amount"` // minor units (paise)
	Currency       string             `json:"currency"`
	Status         PaymentOrderStatus `json:"status"`
	PaymentID      null.String        `json:"paymentId,omitempty"`
	VerifiedAt     null.Time          `json:"verifiedAt,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// InitiatePaymentInput represents input for starting a payment
type InitiatePaymentInput struct {
	ListingID   uuid.UUID   `json:"listingId" binding:"required"`
	ListingType ListingType `json:"listingType" binding:"required,oneof=breeder adoption"`
}

// VerifyPaymentInput is the client-side checkout completion payload
type VerifyPaymentInput struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// InitiatePaymentResponse is returned to the frontend to open checkout
type InitiatePaymentResponse struct {
	OrderID  string `json:"orderId"`
	KeyID    string `json:"keyId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
