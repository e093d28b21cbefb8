package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"messaging-service/internal/models"
	apperrors "messaging-service/pkg/errors"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Membership
		err := tx.Where("member_id = ? AND channel_id = ?", membership.MemberID, membership.ChannelID).
			First(&existing).Error
		if err == nil {
			return apperrors.ErrAlreadyMember
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing membership: %w", err)
		}

		if err := tx.Create(membership).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrAlreadyMember
			}
			return fmt.Errorf("failed to create membership: %w", err)
		}
		return nil
	})
}

// FindByMemberAndChannel returns (nil, nil) when no membership exists.
// Absence is a normal outcome for the permission evaluator, not an error.
func (r *MembershipRepository) FindByMemberAndChannel(memberID, channelID uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.Where("member_id = ? AND channel_id = ?", memberID, channelID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepository) ListByChannel(channelID uint) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Where("channel_id = ?", channelID).Order("memberships.id ASC").Find(&memberships).Error
	return memberships, err
}
