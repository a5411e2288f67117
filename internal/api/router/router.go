package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ultraai/internal/api/handlers"
	"ultraai/internal/api/middleware"
	"ultraai/internal/auth"
	"ultraai/internal/config"
	"ultraai/internal/relay"
	"ultraai/internal/repository"
	"ultraai/internal/storage"
)

func NewRouter(cfg *config.Config, repos *repository.Repositories, authManager *auth.Manager, dispatcher *relay.Dispatcher, avatars *storage.AvatarStore) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	m := middleware.New()
	router.Use(m.Logger())
	router.Use(m.Recovery())
	router.Use(m.CORS())
	router.Use(m.RequestID())
	router.Use(m.Security())

	authHandler := handlers.NewAuthHandler(authManager)
	webhookHandler := handlers.NewWebhookHandler(repos.Webhook)
	chatHandler := handlers.NewChatHandler(repos.Webhook, dispatcher)
	userHandler := handlers.NewUserHandler(repos.User, authManager, avatars)

	router.GET("/health", handlers.HealthCheck)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.SignUp)
		authGroup.POST("/signin", authHandler.SignIn)
		authGroup.POST("/signout", middleware.AuthMiddleware(authManager), authHandler.SignOut)
	}

	webhooks := router.Group("/webhooks", middleware.AuthMiddleware(authManager))
	{
		webhooks.GET("/list", webhookHandler.ListWebhooks)
		webhooks.POST("/add", webhookHandler.AddWebhook)
		webhooks.GET("/:webhookID/info", webhookHandler.GetWebhookInfo)
		webhooks.PUT("/:webhookID/update", webhookHandler.UpdateWebhook)
		webhooks.DELETE("/:webhookID/delete", webhookHandler.DeleteWebhook)
	}

	// O relay espera o webhook externo de forma síncrona; o timeout da rota
	// cobre a chamada inteira com folga sobre o timeout do dispatcher.
	chat := router.Group("/chat", middleware.AuthMiddleware(authManager), m.Timeout(cfg.Relay.Timeout+5*time.Second))
	{
		chat.POST("/relay", chatHandler.Relay)
	}

	profile := router.Group("/profile", middleware.AuthMiddleware(authManager))
	{
		profile.GET("/me", userHandler.Me)
		profile.POST("/avatar", userHandler.UpdateAvatar)
	}

	return router
}
