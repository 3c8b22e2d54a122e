package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pet struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	PetType     string    `gorm:"type:varchar(50);not null;index"`
	BreedID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Gender      string    `gorm:"type:varchar(10);not null"`
	AgeMonths   int       `gorm:"not null;default:0"`
	Vaccinated  bool      `gorm:"not null;default:false"`
	Neutered    bool      `gorm:"not null;default:false"`
	Temperament string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	ViewCount   int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

type PetImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PetID     uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}
