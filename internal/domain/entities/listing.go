package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ListingStatus represents listing lifecycle status
type ListingStatus string

const (
	ListingStatusDraft          ListingStatus = "draft"
	ListingStatusPendingPayment ListingStatus = "pending_payment"
	ListingStatusActive         ListingStatus = "active"
	ListingStatusInactive       ListingStatus = "inactive"
	ListingStatusRejected       ListingStatus = "rejected"
)

// ListingType distinguishes the two listing kinds on payment orders
type ListingType string

const (
	ListingTypeBreeder  ListingType = "breeder"
	ListingTypeAdoption ListingType = "adoption"
)

// BreederListing is a commercial litter listing owned by a breeder profile
type BreederListing struct {
	ID             uuid.UUID     `json:"id"`
	ProfileID      uuid.UUID     `json:"profileId"`
	PetID          uuid.UUID     `json:"petId"`
	Pet            *Pet          `json:"pet,omitempty"`
	Price          float64       `json:"price"`
	Negotiable     bool          `json:"negotiable"`
	AvailableCount int           `json:"availableCount"`
	FeeTier        string        `json:"feeTier"`
	Featured       bool          `json:"featured"`
	Status         ListingStatus `json:"status"`
	ViewCount      int64         `json:"viewCount"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// BreederListingInput represents input for creating or updating a breeder
// listing. Exactly one of PetID or Pet must be supplied on create.
type BreederListingInput struct {
	PetID          *uuid.UUID `json:"petId,omitempty"`
	Pet            *PetInput  `json:"pet,omitempty"`
	Price          float64    `json:"price" binding:"gte=0"`
	Negotiable     bool       `json:"negotiable"`
	AvailableCount int        `json:"availableCount" binding:"gte=1"`
	FeeTier        string     `json:"feeTier" binding:"required"`
}

// ListingFilter holds search parameters for breeder listings
type ListingFilter struct {
	PetType  string     `form:"petType"`
	BreedID  *uuid.UUID `form:"breedId"`
	CityID   *uuid.UUID `form:"cityId"`
	MinPrice *float64   `form:"minPrice"`
	MaxPrice *float64   `form:"maxPrice"`
	Skip     int        `form:"skip"`
	Take     int        `form:"take"`
}

// AdoptionListing is a non-commercial rehoming listing
type AdoptionListing struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"userId"`
	PetID         uuid.UUID     `json:"petId"`
	Pet           *Pet          `json:"pet,omitempty"`
	CityID        uuid.UUID     `json:"cityId"`
	AdoptionFee   float64       `json:"adoptionFee"`
	Reason        null.String   `json:"reason,omitempty"`
	ContactPhone  string        `json:"contactPhone"`
	Status        ListingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// AdoptionListingInput represents input for creating an adoption listing
type AdoptionListingInput struct {
	PetID        *uuid.UUID `json:"petId,omitempty"`
	Pet          *PetInput  `json:"pet,omitempty"`
	CityID       uuid.UUID  `json:"cityId" binding:"required"`
	AdoptionFee  float64    `json:"adoptionFee" binding:"gte=0"`
	Reason       string     `json:"reason,omitempty"`
	ContactPhone string     `json:"contactPhone" binding:"required"`
}
