package models

import (
	"time"
)

// Supported gender values
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64      `json:"id" db:"id"`                       // Primary key
	Username     string     `json:"username" db:"username"`           // Unique username
	Email        string     `json:"email" db:"email"`                 // Unique email
	PasswordHash string     `json:"-" db:"password_hash"`             // Bcrypt hash
	Name         string     `json:"name" db:"name"`                   // Display name, defaults to username
	FirstName    *string    `json:"first_name" db:"first_name"`       // Optional first name
	LastName     *string    `json:"last_name" db:"last_name"`         // Optional last name
	PhoneNumber  *string    `json:"phone_number" db:"phone_number"`   // Optional phone number, digits only
	DateOfBirth  *time.Time `json:"date_of_birth" db:"date_of_birth"` // Optional date of birth
	Gender       *string    `json:"gender" db:"gender"`               // male or female
	Country      *string    `json:"country" db:"country"`             // ISO 3166-1 alpha-2 code
	Location     *string    `json:"location" db:"location"`           // Free-form location
	Site         *string    `json:"site" db:"site"`                   // Personal site URL
	Avatar       *string    `json:"avatar" db:"avatar"`               // Avatar image reference
	Header       *string    `json:"header" db:"header"`               // Header image reference
	Description  *string    `json:"description" db:"description"`     // Short bio
	IsActive     bool       `json:"-" db:"is_active"`                 // Inactive users are hidden
	IsStaff      bool       `json:"-" db:"is_staff"`                  // Staff may edit any profile
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`       // Last update timestamp
}

// Principal is the authenticated identity making a request.
type Principal struct {
	UserID    int64
	IsStaff   bool
	TokenID   string
	ExpiresAt time.Time
}
