package services

import (
	"time"

	"messaging-service/internal/models"
	"messaging-service/internal/repositories/postgres"
	apperrors "messaging-service/pkg/errors"
)

type ChannelService struct {
	repo        *postgres.ChannelRepository
	memberships *postgres.MembershipRepository
	userRepo    *postgres.UserRepository
}

func NewChannelService(
	repo *postgres.ChannelRepository,
	memberships *postgres.MembershipRepository,
	userRepo *postgres.UserRepository,
) *ChannelService {
	return &ChannelService{
		repo:        repo,
		memberships: memberships,
		userRepo:    userRepo,
	}
}

// CreateChannel creates a channel owned by the creator and grants them
// an Admin membership in the same transaction, so the channel is never
// observable without its first member.
func (s *ChannelService) CreateChannel(creatorID uint, req *models.CreateChannelRequest) (*models.ChannelResponse, error) {
	channel := models.Channel{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   creatorID,
	}
	membership := models.Membership{
		MemberID:   creatorID,
		InviterID:  creatorID,
		Permission: models.PermissionAdmin,
		JoinDate:   time.Now(),
	}

	if err := s.repo.CreateWithMembership(&channel, &membership); err != nil {
		return nil, err
	}

	resp := toChannelResponse(&channel)
	return &resp, nil
}

// ListChannels returns only channels the user is a member of, most
// recently created first. Channels without a membership stay invisible.
func (s *ChannelService) ListChannels(userID uint) ([]models.ChannelResponse, error) {
	channels, err := s.repo.ListByMember(userID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.ChannelResponse, 0, len(channels))
	for i := range channels {
		responses = append(responses, toChannelResponse(&channels[i]))
	}
	return responses, nil
}

// GetChannel applies the same visibility rule as ListChannels: a
// non-member gets "not found" whether or not the channel exists.
func (s *ChannelService) GetChannel(userID, channelID uint) (*models.ChannelResponse, error) {
	membership, err := s.memberships.FindByMemberAndChannel(userID, channelID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, apperrors.ErrChannelNotFound
	}

	channel, err := s.repo.GetByID(channelID)
	if err != nil {
		return nil, err
	}
	resp := toChannelResponse(channel)
	return &resp, nil
}

// UpdateChannel applies a partial update to name and description. The
// creator reference is immutable; callers sending one are not errored,
// the field simply never reaches this layer.
func (s *ChannelService) UpdateChannel(userID, channelID uint, req *models.UpdateChannelRequest) (*models.ChannelResponse, error) {
	membership, err := s.memberships.FindByMemberAndChannel(userID, channelID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, apperrors.ErrChannelNotFound
	}

	channel, err := s.repo.GetByID(channelID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		channel.Name = *req.Name
	}
	if req.Description != nil {
		channel.Description = *req.Description
	}

	if err := s.repo.Update(channel); err != nil {
		return nil, err
	}
	resp := toChannelResponse(channel)
	return &resp, nil
}

// DeleteChannel removes the channel and everything in it. Only the
// creator may delete; anyone else gets "not found" so existence is not
// leaked to non-owners.
func (s *ChannelService) DeleteChannel(actorID, channelID uint) error {
	channel, err := s.repo.GetByID(channelID)
	if err != nil {
		return err
	}
	if channel.CreatorID != actorID {
		return apperrors.ErrChannelNotFound
	}
	return s.repo.Delete(channelID)
}

// InviteMember grants another user a membership in the channel. The
// actor needs an Admin membership; a non-member actor gets "not found"
// like every other invisible-channel access.
func (s *ChannelService) InviteMember(actorID, channelID uint, req *models.InviteMemberRequest) (*models.MembershipResponse, error) {
	actorMembership, err := s.memberships.FindByMemberAndChannel(actorID, channelID)
	if err != nil {
		return nil, err
	}
	if actorMembership == nil {
		return nil, apperrors.ErrChannelNotFound
	}
	if !actorMembership.Permission.Meets(models.PermissionAdmin) {
		return nil, apperrors.ErrAdminRequired
	}

	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		return nil, apperrors.ErrInviteeNotFound
	}

	permission := models.PermissionRead
	if req.Permission != "" {
		parsed, ok := models.ParsePermission(req.Permission)
		if !ok {
			return nil, apperrors.ErrInvalidTier
		}
		permission = parsed
	}

	membership := models.Membership{
		MemberID:   req.UserID,
		ChannelID:  channelID,
		InviterID:  actorID,
		Permission: permission,
		JoinDate:   time.Now(),
	}
	if err := s.memberships.Create(&membership); err != nil {
		return nil, err
	}

	return &models.MembershipResponse{
		ID:         membership.ID,
		ChannelID:  membership.ChannelID,
		MemberID:   membership.MemberID,
		InviterID:  membership.InviterID,
		Permission: membership.Permission.String(),
		JoinDate:   membership.JoinDate,
	}, nil
}

// ListMembers returns the channel's memberships in join order. Any
// member may look at the roster; non-members get "not found".
func (s *ChannelService) ListMembers(userID, channelID uint) ([]models.MembershipResponse, error) {
	membership, err := s.memberships.FindByMemberAndChannel(userID, channelID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, apperrors.ErrChannelNotFound
	}

	memberships, err := s.memberships.ListByChannel(channelID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.MembershipResponse, 0, len(memberships))
	for i := range memberships {
		m := &memberships[i]
		responses = append(responses, models.MembershipResponse{
			ID:         m.ID,
			ChannelID:  m.ChannelID,
			MemberID:   m.MemberID,
			InviterID:  m.InviterID,
			Permission: m.Permission.String(),
			JoinDate:   m.JoinDate,
		})
	}
	return responses, nil
}

func toChannelResponse(channel *models.Channel) models.ChannelResponse {
	return models.ChannelResponse{
		ID:          channel.ID,
		Name:        channel.Name,
		Description: channel.Description,
		CreatorID:   channel.CreatorID,
		CreatedAt:   channel.CreatedAt,
	}
}
