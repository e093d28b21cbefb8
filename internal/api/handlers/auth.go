package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"messaging-service/internal/models"
	"messaging-service/internal/services"
	"messaging-service/pkg/response"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register godoc
// @Summary Create a new user account
// @Description Register a new user with username, email, display name and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "User registration data"
// @Success 201 {object} models.UserResponse "User created successfully"
// @Failure 400 {object} response.ErrorResponse "Bad request - invalid input data"
// @Failure 409 {object} response.ErrorResponse "Username or email already taken"
// @Router /users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Token godoc
// @Summary Issue a bearer token
// @Description Exchange a valid username and password for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.TokenRequest true "User credentials"
// @Success 200 {object} models.TokenResponse "Token issued - returns JWT and user data"
// @Failure 400 {object} response.ErrorResponse "Bad request - invalid input data"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid credentials"
// @Router /token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tokenResponse, err := h.userService.IssueToken(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse)
}

// Me godoc
// @Summary Get the current user
// @Description Return the profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse "Current user profile"
// @Failure 401 {object} response.ErrorResponse "Unauthorized - invalid or missing token"
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	user, err := h.userService.GetProfile(userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
