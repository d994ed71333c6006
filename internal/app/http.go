package app

import (
	"context"

	"user-service/internal/config"
	"user-service/internal/directory"
	"user-service/internal/handler"
	"user-service/internal/logger"
	"user-service/internal/middleware"
	"user-service/internal/redis"
	"user-service/internal/session"
	"user-service/internal/token"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore, cleanup, err := setupSessionStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	tokenService := token.NewService(cfg.TokenSecret, cfg.TokenTTL)
	userDirectory := directory.New()

	loginHandler := handler.NewLoginHandler(sessionStore, tokenService)
	userHandler := handler.NewUserHandler(userDirectory)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore, tokenService)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())
	router.Use(middleware.ResolveSession(session.CookieOptions{}))

	// ----------------------------
	// Public Routes
	// ----------------------------

	loginHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Routes
	// ----------------------------

	users := router.Group("/user")
	users.Use(authMiddleware.RequireAuth())

	userHandler.RegisterRoutes(users)

	return router, cleanup, nil
}

// setupSessionStore picks the session backend: Redis when configured,
// the in-memory store otherwise.
func setupSessionStore(ctx context.Context, cfg config.Config) (session.Store, func() error, error) {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory session store", nil)
		return session.NewMemoryStore(cfg.SessionTTL), nil, nil
	}

	client, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("redis session store ready", map[string]any{
		"addr": cfg.RedisAddr,
	})

	return session.NewRedisStore(client.Client, cfg.SessionTTL), client.Close, nil
}
