package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"pawmart.backend/internal/domain/entities"
)

type paymentOrderStore interface {
	GetStaleCreated(ctx context.Context, olderThan time.Time, limit int) ([]*entities.PaymentOrder, error)
	ExpireOrders(ctx context.Context, ids []uuid.UUID) error
}

// PaymentOrderExpiryJob retires orders the payer abandoned at checkout.
// Once an order is expired the listing has no open order, so the owner can
// initiate payment again.
type PaymentOrderExpiryJob struct {
	repo     paymentOrderStore
	interval time.Duration
	maxAge   time.Duration
	stop     chan struct{}
}

func NewPaymentOrderExpiryJob(repo paymentOrderStore) *PaymentOrderExpiryJob {
	return &PaymentOrderExpiryJob{
		repo:     repo,
		interval: time.Minute,
		maxAge:   30 * time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *PaymentOrderExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting payment order expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Payment order expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Payment order expiry job stopped")
			return
		case <-ticker.C:
			j.processStaleOrders(ctx)
		}
	}
}

func (j *PaymentOrderExpiryJob) Stop() {
	close(j.stop)
}

func (j *PaymentOrderExpiryJob) processStaleOrders(ctx context.Context) {
	cutoff := time.Now().Add(-j.maxAge)

	stale, err := j.repo.GetStaleCreated(ctx, cutoff, 100)
	if err != nil {
		log.Printf("❌ Error fetching stale payment orders: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	var ids []uuid.UUID
	for _, order := range stale {
		ids = append(ids, order.ID)
	}

	if err := j.repo.ExpireOrders(ctx, ids); err != nil {
		log.Printf("❌ Error expiring payment orders: %v", err)
		return
	}

	log.Printf("✅ Expired %d abandoned payment orders", len(ids))
}
