package gateway

import "context"

// Order is the gateway-side order handle returned on creation
type Order struct {
	ID       string
	Amount   int64 // minor units
	Currency string
}

// PaymentGateway abstracts order creation and signature verification so the
// workflow never depends on a specific processor.
type PaymentGateway interface {
	// CreateOrder converts amount to the processor's minor-unit representation
	// and submits an auto-capture order.
	CreateOrder(ctx context.Context, amount float64, currency, receipt string, notes map[string]string) (*Order, error)
	// VerifySignature recomputes the checkout signature and compares it in
	// constant time. A mismatch returns false, never an error.
	VerifySignature(orderID, paymentID, signature string) bool
	// KeyID returns the public key the frontend needs to open checkout.
	KeyID() string
}
