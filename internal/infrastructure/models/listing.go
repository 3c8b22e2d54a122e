package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BreederListing struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProfileID      uuid.UUID `gorm:"type:uuid;not null;index"`
	PetID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Price          float64   `gorm:"type:decimal(12,2);not null"`
	Negotiable     bool      `gorm:"not null;default:false"`
	AvailableCount int       `gorm:"not null;default:1"`
	FeeTier        string    `gorm:"type:varchar(20);not null"`
	Featured       bool      `gorm:"not null;default:false;index"`
	Status         string    `gorm:"type:varchar(20);not null;index"`
	ViewCount      int64     `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type AdoptionListing struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	PetID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CityID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AdoptionFee  float64   `gorm:"type:decimal(12,2);not null;default:0"`
	Reason       string    `gorm:"type:text"`
	ContactPhone string    `gorm:"type:varchar(30);not null"`
	Status       string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
