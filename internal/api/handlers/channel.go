package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"messaging-service/internal/models"
	"messaging-service/internal/services"
	"messaging-service/pkg/response"
)

type ChannelHandler struct {
	channelService *services.ChannelService
}

func NewChannelHandler(channelService *services.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// ListChannels godoc
// @Summary List the caller's channels
// @Description Get all channels the current user is a member of, newest first
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ChannelResponse "List of user's channels"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Router /channels [get]
func (h *ChannelHandler) ListChannels(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	channels, err := h.channelService.ListChannels(userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, channels)
}

// CreateChannel godoc
// @Summary Create a new channel
// @Description Create a channel; the caller becomes its creator and first admin member
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateChannelRequest true "Channel creation data"
// @Success 201 {object} models.ChannelResponse "Channel created successfully"
// @Failure 400 {object} response.ErrorResponse "Bad request - invalid input data"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 409 {object} response.ErrorResponse "Channel name already taken"
// @Router /channels [post]
func (h *ChannelHandler) CreateChannel(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	var req models.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	channel, err := h.channelService.CreateChannel(userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, channel)
}

// GetChannel godoc
// @Summary Get one channel
// @Description Get a channel the caller is a member of; non-members get 404
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel ID"
// @Success 200 {object} models.ChannelResponse "Channel details"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 404 {object} response.ErrorResponse "Channel not found"
// @Router /channels/{id} [get]
func (h *ChannelHandler) GetChannel(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	channel, err := h.channelService.GetChannel(userID, channelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

// UpdateChannel godoc
// @Summary Update a channel
// @Description Update name and description; the creator field is immutable and ignored if supplied
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel ID"
// @Param request body models.UpdateChannelRequest true "Channel update data"
// @Success 200 {object} models.ChannelResponse "Channel updated successfully"
// @Failure 400 {object} response.ErrorResponse "Bad request - invalid input data"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 404 {object} response.ErrorResponse "Channel not found"
// @Failure 409 {object} response.ErrorResponse "Channel name already taken"
// @Router /channels/{id} [patch]
func (h *ChannelHandler) UpdateChannel(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	channel, err := h.channelService.UpdateChannel(userID, channelID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

// DeleteChannel godoc
// @Summary Delete a channel
// @Description Delete a channel with its memberships and messages; only the creator may delete, others get 404
// @Tags channels
// @Security BearerAuth
// @Param id path int true "Channel ID"
// @Success 204 "Channel deleted"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 404 {object} response.ErrorResponse "Channel not found"
// @Router /channels/{id} [delete]
func (h *ChannelHandler) DeleteChannel(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.channelService.DeleteChannel(userID, channelID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// InviteMember godoc
// @Summary Invite a user into a channel
// @Description Grant another user a membership with a permission tier; requires Admin membership
// @Tags channels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel ID"
// @Param request body models.InviteMemberRequest true "Invite data"
// @Success 201 {object} models.MembershipResponse "Membership created"
// @Failure 400 {object} response.ErrorResponse "Bad request - invalid input data"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 403 {object} response.ErrorResponse "Admin membership required"
// @Failure 404 {object} response.ErrorResponse "Channel not found"
// @Failure 409 {object} response.ErrorResponse "User is already a member"
// @Router /channels/{id}/members [post]
func (h *ChannelHandler) InviteMember(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	membership, err := h.channelService.InviteMember(userID, channelID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, membership)
}

// ListMembers godoc
// @Summary List channel members
// @Description Get all memberships of a channel in join order; any member may look, non-members get 404
// @Tags channels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Channel ID"
// @Success 200 {array} models.MembershipResponse "Memberships of the channel"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Failure 404 {object} response.ErrorResponse "Channel not found"
// @Router /channels/{id}/members [get]
func (h *ChannelHandler) ListMembers(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	channelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	memberships, err := h.channelService.ListMembers(userID, channelID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, memberships)
}

// parseIDParam reads a numeric path parameter, writing a 400 itself
// when the value is not a number.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
