package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserStatus represents account lifecycle status
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)

// Blocked reports whether the account may not use authenticated endpoints
func (s UserStatus) Blocked() bool {
	return s == UserStatusSuspended || s == UserStatusBanned
}

// User represents an account in the user directory
type User struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	ExternalID   null.String `json:"externalId,omitempty"`
	Name         string      `json:"name"`
	Phone        null.String `json:"phone,omitempty"`
	Address      null.String `json:"address,omitempty"`
	PasswordHash string      `json:"-"`
	IsBreeder    bool        `json:"isBreeder"`
	IsAdmin      bool        `json:"isAdmin"`
	Status       UserStatus  `json:"status"`
	LastLoginAt  null.Time   `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// RegisterInput represents input for creating an account
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileInput represents input for profile edits
type UpdateProfileInput struct {
	Name    string `json:"name" binding:"omitempty,min=2,max=100"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}
