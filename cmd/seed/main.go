package main

import (
	"errors"
	"log"
	"log/slog"

	"messaging-service/internal/config"
	"messaging-service/internal/database"
	"messaging-service/internal/models"
	"messaging-service/internal/repositories/postgres"
	"messaging-service/internal/services"
	apperrors "messaging-service/pkg/errors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting database seeding...")

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	slog.Info("Database connection established")

	userRepo := postgres.NewUserRepository(db)
	channelRepo := postgres.NewChannelRepository(db)
	membershipRepo := postgres.NewMembershipRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	permissionService := services.NewPermissionService(membershipRepo, messageRepo)
	userService := services.NewUserService(userRepo, cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	channelService := services.NewChannelService(channelRepo, membershipRepo, userRepo)
	messageService := services.NewMessageService(messageRepo, permissionService)

	slog.Info("Creating initial users...")

	seedUsers := []models.RegisterRequest{
		{Username: "alice", Email: "alice@example.com", Name: "Alice", Password: "123456"},
		{Username: "bob", Email: "bob@example.com", Name: "Bob", Password: "123456"},
		{Username: "charlie", Email: "charlie@example.com", Name: "Charlie", Password: "123456"},
	}

	userIDs := make(map[string]uint)
	for _, req := range seedUsers {
		user, err := userService.Register(&req)
		if err != nil {
			if errors.Is(err, apperrors.ErrUsernameTaken) || errors.Is(err, apperrors.ErrEmailTaken) {
				slog.Warn("User already exists, skipping", "username", req.Username)
				existing, findErr := userRepo.FindByUsername(req.Username)
				if findErr != nil {
					log.Fatal("Failed to look up existing user:", findErr)
				}
				userIDs[req.Username] = existing.ID
				continue
			}
			log.Fatal("Failed to create user:", err)
		}
		userIDs[req.Username] = user.ID
		slog.Info("Created user", "id", user.ID, "username", user.Username)
	}

	slog.Info("Creating sample channel...")

	channel, err := channelService.CreateChannel(userIDs["alice"], &models.CreateChannelRequest{
		Name:        "general",
		Description: "General discussion",
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrChannelNameTaken) {
			slog.Warn("Channel already exists, seeding finished early")
			return
		}
		log.Fatal("Failed to create channel:", err)
	}
	slog.Info("Created channel", "id", channel.ID, "name", channel.Name)

	// Alice invites the others: Bob can post, Charlie can only read.
	invites := []models.InviteMemberRequest{
		{UserID: userIDs["bob"], Permission: "write"},
		{UserID: userIDs["charlie"], Permission: "read"},
	}
	for _, invite := range invites {
		if _, err := channelService.InviteMember(userIDs["alice"], channel.ID, &invite); err != nil {
			log.Fatal("Failed to invite member:", err)
		}
	}

	seedMessages := []struct {
		sender uint
		text   string
	}{
		{userIDs["alice"], "Welcome to #general!"},
		{userIDs["bob"], "Thanks for the invite."},
	}
	for _, m := range seedMessages {
		if _, err := messageService.PostMessage(m.sender, channel.ID, &models.PostMessageRequest{Text: m.text}); err != nil {
			log.Fatal("Failed to post message:", err)
		}
	}

	slog.Info("Database seeding completed successfully!")
}
