package services

import (
	"errors"

	"messaging-service/internal/models"
	"messaging-service/internal/repositories/postgres"
	apperrors "messaging-service/pkg/errors"
)

// PermissionService decides whether a (user, channel, action) triple is
// authorized. It only reads membership and message rows; absence of a
// membership is a normal "not allowed" result, never an error.
type PermissionService struct {
	memberships *postgres.MembershipRepository
	messages    *postgres.MessageRepository
}

func NewPermissionService(memberships *postgres.MembershipRepository, messages *postgres.MessageRepository) *PermissionService {
	return &PermissionService{memberships: memberships, messages: messages}
}

// Evaluate reports whether the user's membership in the channel meets
// the required tier.
func (s *PermissionService) Evaluate(userID, channelID uint, required models.Permission) (bool, error) {
	membership, err := s.memberships.FindByMemberAndChannel(userID, channelID)
	if err != nil {
		return false, err
	}
	if membership == nil {
		return false, nil
	}
	return membership.Permission.Meets(required), nil
}

func (s *PermissionService) CanRead(userID, channelID uint) (bool, error) {
	return s.Evaluate(userID, channelID, models.PermissionRead)
}

func (s *PermissionService) CanWrite(userID, channelID uint) (bool, error) {
	return s.Evaluate(userID, channelID, models.PermissionWrite)
}

// IsMessageOwner reports whether the user may edit the message: they
// hold at least Read in the channel, the message belongs to the channel,
// and they are its sender. Membership tier beyond Read grants nothing
// here; even Admins cannot edit somebody else's message.
func (s *PermissionService) IsMessageOwner(userID, channelID, messageID uint) (bool, error) {
	ok, err := s.Evaluate(userID, channelID, models.PermissionRead)
	if err != nil || !ok {
		return false, err
	}

	message, err := s.messages.GetByID(messageID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMessageNotFound) {
			return false, nil
		}
		return false, err
	}
	if message.ChannelID != channelID {
		return false, nil
	}
	return message.SenderID != nil && *message.SenderID == userID, nil
}
