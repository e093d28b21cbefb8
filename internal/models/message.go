package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxMessageLength bounds the text body of a message, in characters.
const MaxMessageLength = 1024

/** --------------------ENTITIES-------------------- */
// Message represents a single text post inside a channel
type Message struct {
	gorm.Model
	SenderID  *uint     `json:"senderId"` // nullable so messages survive sender removal
	ChannelID uint      `gorm:"not null" json:"channelId"`
	Text      string    `gorm:"type:varchar(1024);not null" json:"text"`
	SentDate  time.Time `json:"sentDate"`

	Sender  *User   `gorm:"foreignKey:SenderID;constraint:OnDelete:SET NULL" json:"-"`
	Channel Channel `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE" json:"-"`
}

/** -------------------- DTOs -------------------- */

// PostMessageRequest and EditMessageRequest carry only the text body.
// Any sender/channel/sentDate keys a client sends are dropped during
// binding rather than rejected.
type PostMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type EditMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type MessageResponse struct {
	ID        uint      `json:"id"`
	ChannelID uint      `json:"channelId"`
	SenderID  *uint     `json:"senderId"`
	Text      string    `json:"text"`
	SentDate  time.Time `json:"sentDate"`
}
