package models

import (
	"time"

	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// User represents the user entity
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"` // Unique login name
	Email    string `gorm:"uniqueIndex;not null" json:"email"`    // Unique email for the user
	Name     string `json:"name"`                                 // Display name, not unique
	Password string `json:"-"`                                    // Password is hashed and not returned in responses
	IsActive bool   `gorm:"default:true" json:"isActive"`
	IsStaff  bool   `gorm:"default:false" json:"isStaff"`
}

/** -------------------- DTOs -------------------- */
// Request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required,min=6"`
}

// TokenRequest represents the credentials exchanged for a token
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Response
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenResponse represents a successful token issuance
type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
