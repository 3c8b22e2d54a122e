package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApplicationStatus represents breeder application review status
type ApplicationStatus string

const (
	ApplicationStatusDraft         ApplicationStatus = "draft"
	ApplicationStatusPending       ApplicationStatus = "pending"
	ApplicationStatusApproved      ApplicationStatus = "approved"
	ApplicationStatusRejected      ApplicationStatus = "rejected"
	ApplicationStatusInfoRequested ApplicationStatus = "info_requested"
)

// Resubmittable reports whether a new application may supersede this one
func (s ApplicationStatus) Resubmittable() bool {
	return s == ApplicationStatusRejected || s == ApplicationStatusInfoRequested || s == ApplicationStatusDraft
}

// BreederApplication represents one submission in the breeder review queue.
// Resubmission creates a new record; the previous one is marked superseded so
// review history stays intact.
type BreederApplication struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"userId"`
	BusinessName string            `json:"businessName"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	CityID       uuid.UUID         `json:"cityId"`
	Address      null.String       `json:"address,omitempty"`
	Experience   null.String       `json:"experience,omitempty"`
	BreedIDs     []uuid.UUID       `json:"breedIds"`
	Status       ApplicationStatus `json:"status"`
	ReviewNotes  null.String       `json:"reviewNotes,omitempty"`
	ReviewedBy   null.String       `json:"reviewedBy,omitempty"`
	Superseded   bool              `json:"superseded"`
	SubmittedAt  time.Time         `json:"submittedAt"`
	ReviewedAt   null.Time         `json:"reviewedAt,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// ApplicationInput represents input for submitting a breeder application
type ApplicationInput struct {
	BusinessName string      `json:"businessName" binding:"required,min=2,max=255"`
	Email        string      `json:"email" binding:"required,email"`
	Phone        string      `json:"phone" binding:"required"`
	CityID       uuid.UUID   `json:"cityId" binding:"required"`
	Address      string      `json:"address,omitempty"`
	Experience   string      `json:"experience,omitempty"`
	BreedIDs     []uuid.UUID `json:"breedIds" binding:"required,min=1"`
}

// BreederProfile is created exactly once when an application is approved
type BreederProfile struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	Slug         string      `json:"slug"`
	BusinessName string      `json:"businessName"`
	CityID       uuid.UUID   `json:"cityId"`
	Bio          null.String `json:"bio,omitempty"`
	LogoURL      null.String `json:"logoUrl,omitempty"`
	CoverURL     null.String `json:"coverUrl,omitempty"`
	Verified     bool        `json:"verified"`
	ViewCount    int64       `json:"viewCount"`
	BreedIDs     []uuid.UUID `json:"breedIds"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// UpdateProfileMediaInput represents media edits on a breeder profile
type UpdateProfileMediaInput struct {
	Bio      string `json:"bio,omitempty"`
	LogoURL  string `json:"logoUrl,omitempty"`
	CoverURL string `json:"coverUrl,omitempty"`
}
