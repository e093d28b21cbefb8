package services

import (
	"time"
	"unicode/utf8"

	"messaging-service/internal/models"
	"messaging-service/internal/repositories/postgres"
	apperrors "messaging-service/pkg/errors"
)

type MessageService struct {
	repo  *postgres.MessageRepository
	perms *PermissionService
}

func NewMessageService(repo *postgres.MessageRepository, perms *PermissionService) *MessageService {
	return &MessageService{repo: repo, perms: perms}
}

// ListMessages returns every message in the channel in insertion order.
// Requires at least Read membership.
func (s *MessageService) ListMessages(userID, channelID uint) ([]models.MessageResponse, error) {
	ok, err := s.perms.CanRead(userID, channelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotChannelMember
	}

	messages, err := s.repo.ListByChannel(channelID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, toMessageResponse(&messages[i]))
	}
	return responses, nil
}

// PostMessage creates a message in the channel on behalf of the user.
// Requires at least Write membership; Read-only members are rejected.
func (s *MessageService) PostMessage(userID, channelID uint, req *models.PostMessageRequest) (*models.MessageResponse, error) {
	ok, err := s.perms.CanWrite(userID, channelID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrWriteForbidden
	}

	if err := validateText(req.Text); err != nil {
		return nil, err
	}

	senderID := userID
	message := models.Message{
		SenderID:  &senderID,
		ChannelID: channelID,
		Text:      req.Text,
		SentDate:  time.Now(),
	}
	if err := s.repo.Create(&message); err != nil {
		return nil, err
	}

	resp := toMessageResponse(&message)
	return &resp, nil
}

// EditMessage replaces the text of a message. Only the sender may edit,
// regardless of membership tier; sender, channel and sent date are
// untouchable whatever the payload contained.
func (s *MessageService) EditMessage(userID, channelID, messageID uint, req *models.EditMessageRequest) (*models.MessageResponse, error) {
	ok, err := s.perms.IsMessageOwner(userID, channelID, messageID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotMessageOwner
	}

	if err := validateText(req.Text); err != nil {
		return nil, err
	}

	message, err := s.repo.GetByID(messageID)
	if err != nil {
		return nil, err
	}

	message.Text = req.Text
	if err := s.repo.Update(message); err != nil {
		return nil, err
	}

	resp := toMessageResponse(message)
	return &resp, nil
}

func validateText(text string) error {
	if text == "" {
		return apperrors.ErrMessageEmpty
	}
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		return apperrors.ErrMessageTooLong
	}
	return nil
}

func toMessageResponse(message *models.Message) models.MessageResponse {
	return models.MessageResponse{
		ID:        message.ID,
		ChannelID: message.ChannelID,
		SenderID:  message.SenderID,
		Text:      message.Text,
		SentDate:  message.SentDate,
	}
}
