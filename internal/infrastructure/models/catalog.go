package models

import "github.com/google/uuid"

type Breed struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name    string    `gorm:"type:varchar(100);not null"`
	PetType string    `gorm:"type:varchar(50);not null;index"`
}

type City struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name  string    `gorm:"type:varchar(100);not null"`
	State string    `gorm:"type:varchar(100);not null"`
}

func (City) TableName() string {
	return "cities"
}
