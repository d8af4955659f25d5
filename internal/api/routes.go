package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"prepplan/internal/api/middleware"
	"prepplan/internal/auth"
	"prepplan/internal/config"
	"prepplan/internal/payment"
	"prepplan/internal/storage"
)

// RegisterRoutes wires the handlers under /v1. Plan generation and the
// payment webhook stay public; everything touching saved state requires
// an access token.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	asynqClient *asynq.Client,
	authService *auth.AuthService,
	redisClient redis.UniversalClient,
	gateway payment.Gateway,
	storageClient *storage.Client,
	logger *slog.Logger,
) {
	authHandler := NewAuthHandler(db, authService, redisClient, logger,
		cfg.Auth.LoginRateLimitPerHour, cfg.Auth.LoginLockThreshold, cfg.Auth.LoginLockTTL(), cfg.Auth.CookieDomain)
	planHandler := NewPlanHandler(db, asynqClient, storageClient, cfg.MinIO.PresignTTL(), logger)
	paymentHandler := NewPaymentHandler(db, gateway, cfg.Payment, logger)
	wsHandler := NewWsHandler(redisClient, authService, logger, cfg.API.AllowedWSOrigins)
	authMiddleware := middleware.AuthMiddleware(authService)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
		}

		// Anyone can generate a plan; saving it is what needs an account.
		v1.POST("/plans/generate", planHandler.Generate)

		planGroup := v1.Group("/plans")
		planGroup.Use(authMiddleware)
		{
			planGroup.POST("", planHandler.Save)
			planGroup.GET("", planHandler.List)
			planGroup.GET("/:id", planHandler.Get)
			planGroup.DELETE("/:id", planHandler.Delete)
			planGroup.POST("/:id/export", planHandler.Export)
			planGroup.GET("/:id/export-link", planHandler.GetExportLink)
			planGroup.POST("/:id/premium", planHandler.UnlockPremium)
		}

		paymentGroup := v1.Group("/payments")
		{
			paymentGroup.POST("/checkout", authMiddleware, paymentHandler.Checkout)
			paymentGroup.POST("/webhook", paymentHandler.Webhook)
		}
	}
}
