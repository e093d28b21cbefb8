package models

import (
	"time"

	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// Channel represents a named conversation space owned by its creator
type Channel struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	CreatorID   uint   `gorm:"not null" json:"creatorId"` // Immutable after creation

	Creator     User         `gorm:"foreignKey:CreatorID" json:"-"`
	Memberships []Membership `gorm:"foreignKey:ChannelID" json:"-"`
}

/** -------------------- DTOs -------------------- */

type CreateChannelRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
}

// UpdateChannelRequest carries a partial update. Absent fields are left
// untouched; a creator field in the payload is ignored entirely.
type UpdateChannelRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}

type ChannelResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatorID   uint      `json:"creatorId"`
	CreatedAt   time.Time `json:"createdAt"`
}
