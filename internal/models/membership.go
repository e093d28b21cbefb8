package models

import (
	"time"

	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// Membership grants a member a permission tier inside a channel and
// records who invited them. One row per (member, channel) pair.
type Membership struct {
	gorm.Model
	MemberID   uint       `gorm:"not null;uniqueIndex:idx_memberships_member_channel" json:"memberId"`
	ChannelID  uint       `gorm:"not null;uniqueIndex:idx_memberships_member_channel" json:"channelId"`
	InviterID  uint       `gorm:"not null" json:"inviterId"`
	Permission Permission `gorm:"not null;default:1" json:"permission"`
	JoinDate   time.Time  `json:"joinDate"`

	Member  User    `gorm:"foreignKey:MemberID" json:"-"`
	Inviter User    `gorm:"foreignKey:InviterID" json:"-"`
	Channel Channel `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE" json:"-"`
}

/** -------------------- DTOs -------------------- */

type InviteMemberRequest struct {
	UserID     uint   `json:"userId" binding:"required"`
	Permission string `json:"permission" binding:"omitempty,oneof=read write admin"`
}

type MembershipResponse struct {
	ID         uint      `json:"id"`
	ChannelID  uint      `json:"channelId"`
	MemberID   uint      `json:"memberId"`
	InviterID  uint      `json:"inviterId"`
	Permission string    `json:"permission"`
	JoinDate   time.Time `json:"joinDate"`
}
