package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"messaging-service/internal/api/handlers"
	"messaging-service/internal/api/middleware"
	"messaging-service/internal/repositories/postgres"
	"messaging-service/internal/services"
)

type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	channelHandler *handlers.ChannelHandler
	messageHandler *handlers.MessageHandler
	authMW         *middleware.AuthMiddleware
}

type Config struct {
	JWTSecret string
	JWTExpiry time.Duration
}

func NewRouter(db *gorm.DB, cfg Config) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Add middlewares
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS())
	engine.Use(middleware.LogApi())

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	channelRepo := postgres.NewChannelRepository(db)
	membershipRepo := postgres.NewMembershipRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	// Initialize services
	permissionService := services.NewPermissionService(membershipRepo, messageRepo)
	userService := services.NewUserService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	channelService := services.NewChannelService(channelRepo, membershipRepo, userRepo)
	messageService := services.NewMessageService(messageRepo, permissionService)

	return &Router{
		engine:         engine,
		authHandler:    handlers.NewAuthHandler(userService),
		channelHandler: handlers.NewChannelHandler(channelService),
		messageHandler: handlers.NewMessageHandler(messageService),
		authMW:         middleware.NewAuthMiddleware(cfg.JWTSecret),
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")

	// Public routes (no authentication required)
	api.POST("/users", r.authHandler.Register)
	api.POST("/token", r.authHandler.Token)

	// Authenticated routes
	auth := api.Group("/")
	auth.Use(r.authMW.RequireAuth())
	{
		auth.GET("/users/me", r.authHandler.Me)

		channels := auth.Group("/channels")
		{
			channels.GET("", r.channelHandler.ListChannels)
			channels.POST("", r.channelHandler.CreateChannel)
			// Individual channel routes with :id parameter
			channels.GET("/:id", r.channelHandler.GetChannel)
			channels.PATCH("/:id", r.channelHandler.UpdateChannel)
			channels.PUT("/:id", r.channelHandler.UpdateChannel)
			channels.DELETE("/:id", r.channelHandler.DeleteChannel)
			// membership and message sub-resources
			channels.GET("/:id/members", r.channelHandler.ListMembers)
			channels.POST("/:id/members", r.channelHandler.InviteMember)
			channels.GET("/:id/messages", r.messageHandler.ListMessages)
			channels.POST("/:id/messages", r.messageHandler.PostMessage)
			channels.PATCH("/:id/messages/:message_id", r.messageHandler.EditMessage)
		}
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
