package domain

import "time" // Timestamps

// User Model
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`                   // Primary key
	Username       string    `gorm:"not null" json:"username"`               // Display name
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`      // Unique email, enforced by the store
	Password       string    `gorm:"not null" json:"-"`                      // Bcrypt hash, never serialized
	IsVendor       bool      `gorm:"not null;default:false" json:"isVendor"` // Vendor role flag
	IsAdmin        bool      `gorm:"not null;default:false" json:"isAdmin"`  // Admin role flag
	ProfilePicture string    `json:"profilePicture"`                         // Avatar URL, set for OAuth-created accounts
	CreatedAt      time.Time `json:"createdAt"`                              // Timestamp of creation
	UpdatedAt      time.Time `json:"updatedAt"`                              // Timestamp of last update
}
