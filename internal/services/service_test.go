package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"messaging-service/internal/database"
	"messaging-service/internal/models"
	"messaging-service/internal/repositories/postgres"
)

// testEnv wires the full service stack against an in-memory sqlite
// database, one database per test.
type testEnv struct {
	db       *gorm.DB
	users    *UserService
	channels *ChannelService
	messages *MessageService
	perms    *PermissionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// A named in-memory database with a shared cache so every pooled
	// connection sees the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := postgres.NewUserRepository(db)
	channelRepo := postgres.NewChannelRepository(db)
	membershipRepo := postgres.NewMembershipRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	perms := NewPermissionService(membershipRepo, messageRepo)
	return &testEnv{
		db:       db,
		users:    NewUserService(userRepo, "test-secret", time.Hour),
		channels: NewChannelService(channelRepo, membershipRepo, userRepo),
		messages: NewMessageService(messageRepo, perms),
		perms:    perms,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) uint {
	t.Helper()
	user, err := e.users.Register(&models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Name:     username,
		Password: "pass123",
	})
	require.NoError(t, err)
	return user.ID
}

func (e *testEnv) createChannel(t *testing.T, creatorID uint, name string) uint {
	t.Helper()
	channel, err := e.channels.CreateChannel(creatorID, &models.CreateChannelRequest{
		Name:        name,
		Description: "test channel",
	})
	require.NoError(t, err)
	return channel.ID
}

func (e *testEnv) invite(t *testing.T, actorID, channelID, userID uint, tier string) {
	t.Helper()
	_, err := e.channels.InviteMember(actorID, channelID, &models.InviteMemberRequest{
		UserID:     userID,
		Permission: tier,
	})
	require.NoError(t, err)
}
