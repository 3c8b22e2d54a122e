package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentOrder struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	GatewayOrderID string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ListingID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ListingType    string    `gorm:"type:varchar(20);not null"`
	Tier           string    `gorm:"type:varchar(20);not null"`
	Amount         int64     `gorm:"not null"`
	Currency       string    `gorm:"type:varchar(10);not null"`
	Status         string    `gorm:"type:varchar(20);not null;index"`
	PaymentID      string    `gorm:"type:varchar(100)"`
	VerifiedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
