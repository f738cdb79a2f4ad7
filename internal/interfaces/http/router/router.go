// Package router assembles the gin engine from middleware and
// route registrars.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ledgerline/backend/internal/infrastructure/auth"
	"github.com/ledgerline/backend/internal/infrastructure/config"
	"github.com/ledgerline/backend/internal/infrastructure/logger"
	"github.com/ledgerline/backend/internal/interfaces/http/handler"
	"github.com/ledgerline/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar mounts a handler's routes on a router group.
type RouteRegistrar interface {
	RegisterRoutes(group *gin.RouterGroup)
}

type Options struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	Users      middleware.UserLoader
	System     *handler.SystemHandler
	Registrars []RouteRegistrar
}

// New builds the engine with the full middleware chain and mounts
// every registrar under /api/v1.
func New(opts Options) *gin.Engine {
	if opts.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinRecovery(opts.Logger))
	engine.Use(logger.GinMiddleware(opts.Logger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.CORSConfig{AllowOrigins: opts.Config.HTTP.CORSOrigins}))
	engine.Use(middleware.BodyLimit(opts.Config.HTTP.BodyLimitBytes))

	if opts.Config.HTTP.RateLimitPerMin > 0 {
		limiter := middleware.NewRateLimiter(opts.Config.HTTP.RateLimitPerMin)
		engine.Use(middleware.RateLimit(limiter))
	}

	engine.GET("/health", opts.System.Health)

	api := engine.Group("/api/v1")
	api.Use(middleware.JWT(opts.JWTService, opts.Blacklist, opts.Logger, middleware.JWTConfig{
		SkipPaths: []string{
			"/api/v1/ping",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
	}))
	api.Use(middleware.ResolvePrincipal(opts.Users, opts.Logger))

	opts.System.RegisterRoutes(api)
	for _, r := range opts.Registrars {
		r.RegisterRoutes(api)
	}

	return engine
}
