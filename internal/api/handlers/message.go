package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"messaging-service/internal/models"
	"messaging-service/internal/services"
	"messaging-service/pkg/response"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// ListMessages godoc
// @Summary List messages in a channel
// @Description Get all messages for a channel in insertion order; requires Read membership
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel ID"
// @Success 200 {array} models.MessageResponse "Messages in the channel"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 403 {object} response.ErrorResponse "Not a member of the channel"
// @Router /channels/{id}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	messages, err := h.messageService.ListMessages(userID, channelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// PostMessage godoc
// @Summary Post a message
// @Description Create a message in the channel; requires Write membership
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel ID"
// @Param request body models.PostMessageRequest true "Message body"
// @Success 201 {object} models.MessageResponse "Message created"
// @Failure 400 {object} response.ErrorResponse "Bad request - empty or oversized text"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 403 {object} response.ErrorResponse "Write membership required"
// @Router /channels/{id}/messages [post]
func (h *MessageHandler) PostMessage(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.messageService.PostMessage(userID, channelID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// EditMessage godoc
// @Summary Edit a message
// @Description Replace the text of a message; only its sender may edit, and only the text changes
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel ID"
// @Param message_id path int true "Message ID"
// @Param request body models.EditMessageRequest true "New message text"
// @Success 200 {object} models.MessageResponse "Message updated"
// @Failure 400 {object} response.ErrorResponse "Bad request - empty or oversized text"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 403 {object} response.ErrorResponse "Not the owner of the message"
// @Router /channels/{id}/messages/{message_id} [patch]
func (h *MessageHandler) EditMessage(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	messageID, ok := parseIDParam(c, "message_id")
	if !ok {
		return
	}

	var req models.EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.messageService.EditMessage(userID, channelID, messageID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}
