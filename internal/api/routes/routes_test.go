package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"messaging-service/internal/database"
	"messaging-service/internal/models"
)

func setupRouter(t *testing.T) *Router {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	router := NewRouter(db, Config{JWTSecret: "test-secret", JWTExpiry: time.Hour})
	router.SetupRoutes()
	return router
}

func doJSON(t *testing.T, router *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, router *Router, username string) (uint, string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/users", "", models.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Name:     username,
		Password: "pass123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/token", "", models.TokenRequest{
		Username: username,
		Password: "pass123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tokenResp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokenResp))
	require.NotEmpty(t, tokenResp.Token)
	return tokenResp.User.ID, tokenResp.Token
}

func createChannel(t *testing.T, router *Router, token, name string) models.ChannelResponse {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/channels", token, models.CreateChannelRequest{
		Name:        name,
		Description: "a channel",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var channel models.ChannelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &channel))
	return channel
}

func TestAuthRequired(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{"/api/v1/channels", "/api/v1/channels/1/messages"} {
		rec := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "GET %s without token", path)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/v1/channels", "not-a-valid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthcheck(t *testing.T) {
	router := setupRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := setupRouter(t)

	// Missing email fails binding.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/users", "", map[string]string{
		"username": "alice",
		"password": "pass123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Duplicate username conflicts.
	registerAndLogin(t, router, "alice")
	rec = doJSON(t, router, http.MethodPost, "/api/v1/users", "", models.RegisterRequest{
		Username: "alice",
		Email:    "alice2@example.com",
		Password: "pass123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTokenBadCredentials(t *testing.T) {
	router := setupRouter(t)
	registerAndLogin(t, router, "alice")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/token", "", models.TokenRequest{
		Username: "alice",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChannelLifecycleOverHTTP(t *testing.T) {
	router := setupRouter(t)
	aliceID, aliceToken := registerAndLogin(t, router, "alice")
	_, bobToken := registerAndLogin(t, router, "bob")

	channel := createChannel(t, router, aliceToken, "general")
	assert.Equal(t, aliceID, channel.CreatorID)

	// Duplicate name conflicts.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/channels", bobToken, models.CreateChannelRequest{Name: "general"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Visible to the creator, hidden from non-members.
	channelPath := fmt.Sprintf("/api/v1/channels/%d", channel.ID)
	rec = doJSON(t, router, http.MethodGet, channelPath, aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodGet, channelPath, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A patch carrying a creator field updates the rest and leaves the
	// creator untouched.
	rec = doJSON(t, router, http.MethodPatch, channelPath, aliceToken, map[string]any{
		"name":      "renamed",
		"creatorId": 9999,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.ChannelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, aliceID, updated.CreatorID)

	// Non-creator deletion reads as "not found" and changes nothing.
	rec = doJSON(t, router, http.MethodDelete, channelPath, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(t, router, http.MethodGet, channelPath, aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Creator deletion succeeds.
	rec = doJSON(t, router, http.MethodDelete, channelPath, aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, router, http.MethodGet, channelPath, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChannelListVisibility(t *testing.T) {
	router := setupRouter(t)
	_, aliceToken := registerAndLogin(t, router, "alice")
	_, bobToken := registerAndLogin(t, router, "bob")

	createChannel(t, router, aliceToken, "alice-channel")
	createChannel(t, router, bobToken, "bob-channel")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/channels", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var channels []models.ChannelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &channels))
	require.Len(t, channels, 1)
	assert.Equal(t, "alice-channel", channels[0].Name)
}

func TestMessageFlowOverHTTP(t *testing.T) {
	router := setupRouter(t)
	_, aliceToken := registerAndLogin(t, router, "alice")
	bobID, bobToken := registerAndLogin(t, router, "bob")
	carolID, carolToken := registerAndLogin(t, router, "carol")

	channel := createChannel(t, router, aliceToken, "general")
	messagesPath := fmt.Sprintf("/api/v1/channels/%d/messages", channel.ID)

	// Alice invites Bob (write) and Carol (read).
	membersPath := fmt.Sprintf("/api/v1/channels/%d/members", channel.ID)
	rec := doJSON(t, router, http.MethodPost, membersPath, aliceToken, models.InviteMemberRequest{UserID: bobID, Permission: "write"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = doJSON(t, router, http.MethodPost, membersPath, aliceToken, models.InviteMemberRequest{UserID: carolID, Permission: "read"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Bob posts, Carol cannot.
	rec = doJSON(t, router, http.MethodPost, messagesPath, bobToken, models.PostMessageRequest{Text: "hello"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var posted models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posted))

	rec = doJSON(t, router, http.MethodPost, messagesPath, carolToken, models.PostMessageRequest{Text: "hi"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Carol can read.
	rec = doJSON(t, router, http.MethodGet, messagesPath, carolToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, posted.ID, listed[0].ID)

	// Editing: sender/channel fields in the payload are ignored, only
	// the sender may edit, and admins get 403 like everyone else.
	editPath := fmt.Sprintf("%s/%d", messagesPath, posted.ID)
	rec = doJSON(t, router, http.MethodPatch, editPath, bobToken, map[string]any{
		"text":      "edited",
		"senderId":  9999,
		"channelId": 9999,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var edited models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &edited))
	assert.Equal(t, "edited", edited.Text)
	require.NotNil(t, edited.SenderID)
	assert.Equal(t, bobID, *edited.SenderID)
	assert.Equal(t, channel.ID, edited.ChannelID)

	rec = doJSON(t, router, http.MethodPatch, editPath, aliceToken, models.EditMessageRequest{Text: "hijacked"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCurrentUserProfile(t *testing.T) {
	router := setupRouter(t)
	aliceID, aliceToken := registerAndLogin(t, router, "alice")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/me", aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var user models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, aliceID, user.ID)
	assert.Equal(t, "alice", user.Username)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMemberRosterOverHTTP(t *testing.T) {
	router := setupRouter(t)
	aliceID, aliceToken := registerAndLogin(t, router, "alice")
	bobID, bobToken := registerAndLogin(t, router, "bob")
	_, carolToken := registerAndLogin(t, router, "carol")

	channel := createChannel(t, router, aliceToken, "general")
	membersPath := fmt.Sprintf("/api/v1/channels/%d/members", channel.ID)

	rec := doJSON(t, router, http.MethodPost, membersPath, aliceToken, models.InviteMemberRequest{UserID: bobID, Permission: "read"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Any member may read the roster.
	rec = doJSON(t, router, http.MethodGet, membersPath, bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var members []models.MembershipResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &members))
	require.Len(t, members, 2)
	assert.Equal(t, aliceID, members[0].MemberID)
	assert.Equal(t, "admin", members[0].Permission)

	// Non-members cannot see the channel exists.
	rec = doJSON(t, router, http.MethodGet, membersPath, carolToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInviteOverHTTP(t *testing.T) {
	router := setupRouter(t)
	_, aliceToken := registerAndLogin(t, router, "alice")
	bobID, bobToken := registerAndLogin(t, router, "bob")
	carolID, _ := registerAndLogin(t, router, "carol")

	channel := createChannel(t, router, aliceToken, "general")
	membersPath := fmt.Sprintf("/api/v1/channels/%d/members", channel.ID)

	// Non-member inviter sees no channel at all.
	rec := doJSON(t, router, http.MethodPost, membersPath, bobToken, models.InviteMemberRequest{UserID: carolID})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, membersPath, aliceToken, models.InviteMemberRequest{UserID: bobID, Permission: "read"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Read member is not an admin.
	rec = doJSON(t, router, http.MethodPost, membersPath, bobToken, models.InviteMemberRequest{UserID: carolID})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Duplicate invite conflicts.
	rec = doJSON(t, router, http.MethodPost, membersPath, aliceToken, models.InviteMemberRequest{UserID: bobID})
	assert.Equal(t, http.StatusConflict, rec.Code)
}
