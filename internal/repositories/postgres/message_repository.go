package postgres

import (
	"errors"

	"gorm.io/gorm"

	"messaging-service/internal/models"
	apperrors "messaging-service/pkg/errors"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepository) GetByID(messageID uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepository) Update(message *models.Message) error {
	return r.db.Save(message).Error
}

// ListByChannel returns every message in the channel in insertion order.
func (r *MessageRepository) ListByChannel(channelID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("channel_id = ?", channelID).Order("id ASC").Find(&messages).Error
	return messages, err
}
