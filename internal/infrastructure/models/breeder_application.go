package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BreederApplication struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(30);not null"`
	CityID       uuid.UUID `gorm:"type:uuid;not null"`
	Address      string    `gorm:"type:text"`
	Experience   string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewNotes  string    `gorm:"type:text"`
	ReviewedBy   string    `gorm:"type:varchar(36)"`
	Superseded   bool      `gorm:"not null;default:false;index"`
	SubmittedAt  time.Time `gorm:"not null"`
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// ApplicationBreed links an application to the breeds it covers
type ApplicationBreed struct {
	ApplicationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BreedID       uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (ApplicationBreed) TableName() string {
	return "application_breeds"
}
