package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"messaging-service/internal/models"
	apperrors "messaging-service/pkg/errors"
)

type ChannelRepository struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// CreateWithMembership persists a channel together with its creator's
// membership in a single transaction. A crash between the two inserts
// must never leave a channel with zero members.
func (r *ChannelRepository) CreateWithMembership(channel *models.Channel, membership *models.Membership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Channel
		if err := tx.Where("name = ?", channel.Name).First(&existing).Error; err == nil {
			return apperrors.ErrChannelNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check channel name: %w", err)
		}

		if err := tx.Create(channel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrChannelNameTaken
			}
			return fmt.Errorf("failed to create channel: %w", err)
		}

		membership.ChannelID = channel.ID
		if err := tx.Create(membership).Error; err != nil {
			return fmt.Errorf("failed to create creator membership: %w", err)
		}
		return nil
	})
}

func (r *ChannelRepository) GetByID(channelID uint) (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.First(&channel, channelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, err
	}
	return &channel, nil
}

// ListByMember returns the channels the user holds a membership in,
// most recently created first.
func (r *ChannelRepository) ListByMember(userID uint) ([]models.Channel, error) {
	var channels []models.Channel
	err := r.db.
		Joins("JOIN memberships ON memberships.channel_id = channels.id AND memberships.deleted_at IS NULL").
		Where("memberships.member_id = ?", userID).
		Order("channels.id DESC").
		Find(&channels).Error
	return channels, err
}

func (r *ChannelRepository) Update(channel *models.Channel) error {
	if err := r.db.Save(channel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrChannelNameTaken
		}
		return err
	}
	return nil
}

// Delete removes the channel and cascades its memberships and messages
// in one transaction. The deletes are unscoped: a soft-deleted row would
// keep occupying the unique name index and block the name forever.
func (r *ChannelRepository) Delete(channelID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("channel_id = ?", channelID).Delete(&models.Message{}).Error; err != nil {
			return fmt.Errorf("failed to delete channel messages: %w", err)
		}
		if err := tx.Unscoped().Where("channel_id = ?", channelID).Delete(&models.Membership{}).Error; err != nil {
			return fmt.Errorf("failed to delete channel memberships: %w", err)
		}
		if err := tx.Unscoped().Delete(&models.Channel{}, channelID).Error; err != nil {
			return fmt.Errorf("failed to delete channel: %w", err)
		}
		return nil
	})
}
