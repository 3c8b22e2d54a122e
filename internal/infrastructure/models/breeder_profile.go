package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BreederProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Slug         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	CityID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Bio          string    `gorm:"type:text"`
	LogoURL      string    `gorm:"type:varchar(500)"`
	CoverURL     string    `gorm:"type:varchar(500)"`
	Verified     bool      `gorm:"not null;default:false"`
	ViewCount    int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// ProfileBreed links a breeder profile to the breeds it covers
type ProfileBreed struct {
	ProfileID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BreedID   uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (ProfileBreed) TableName() string {
	return "profile_breeds"
}
