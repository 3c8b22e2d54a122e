package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PetGender represents pet gender
type PetGender string

const (
	PetGenderMale    PetGender = "male"
	PetGenderFemale  PetGender = "female"
	PetGenderUnknown PetGender = "unknown"
)

// Pet represents an animal record, owned by the listing that references it
type Pet struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	PetType     string      `json:"petType"`
	BreedID     uuid.UUID   `json:"breedId"`
	Gender      PetGender   `json:"gender"`
	AgeMonths   int         `json:"ageMonths"`
	Vaccinated  bool        `json:"vaccinated"`
	Neutered    bool        `json:"neutered"`
	Temperament null.String `json:"temperament,omitempty"`
	Description null.String `json:"description,omitempty"`
	Images      []PetImage  `json:"images"`
	ViewCount   int64       `json:"viewCount"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// PetImage is an owned sub-entity of Pet
type PetImage struct {
	ID        uuid.UUID `json:"id"`
	PetID     uuid.UUID `json:"petId"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// PetInput represents input for creating a pet inline with a listing
type PetInput struct {
	Name        string    `json:"name" binding:"required,min=1,max=100"`
	PetType     string    `json:"petType" binding:"required"`
	BreedID     uuid.UUID `json:"breedId" binding:"required"`
	Gender      PetGender `json:"gender" binding:"required,oneof=male female unknown"`
	AgeMonths   int       `json:"ageMonths" binding:"gte=0"`
	Vaccinated  bool      `json:"vaccinated"`
	Neutered    bool      `json:"neutered"`
	Temperament string    `json:"temperament,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURLs   []string  `json:"imageUrls,omitempty"`
}

// Breed is a catalog reference record
type Breed struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	PetType string    `json:"petType"`
}

// City is a catalog reference record
type City struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	State string    `json:"state"`
}
