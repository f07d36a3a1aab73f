package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clockline/timetrack-api/internal/api/handler"
	"github.com/clockline/timetrack-api/internal/api/middleware"
	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/service"
	"github.com/clockline/timetrack-api/internal/infrastructure/config"
	mongodb "github.com/clockline/timetrack-api/internal/infrastructure/db/mongo"
	redisdb "github.com/clockline/timetrack-api/internal/infrastructure/db/redis"
	"github.com/clockline/timetrack-api/internal/infrastructure/http/handlers"
	"github.com/clockline/timetrack-api/internal/infrastructure/pdf"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("timetrack"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	timeRepo := mongodb.NewTimeEntryRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	renderer := pdf.NewRenderer()

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	accountService := service.NewAccountService(userRepo, tokens, limiter, log)
	userService := service.NewUserService(userRepo, timeRepo, renderer, log)
	timeService := service.NewTimeService(timeRepo, userRepo, renderer, log)

	accountHandler := handler.NewAccountHandler(accountService)
	userHandler := handler.NewUserHandler(userService)
	timeHandler := handler.NewTimeHandler(timeService)

	authRequired := middleware.Auth(tokens, userRepo)

	// --- Account routes ---
	account := e.Group("/v1/account")
	account.POST("/register", accountHandler.Register)
	account.POST("/login", accountHandler.Login)

	me := account.Group("/me", authRequired)
	me.GET("", accountHandler.Profile)
	me.PATCH("", accountHandler.UpdateProfile)
	me.PATCH("/password", accountHandler.UpdatePassword)

	// --- User management routes ---
	users := e.Group("/v1/users", authRequired,
		middleware.RBAC(domain.RoleSuperadmin, domain.RoleAdmin, domain.RoleUserManager))
	users.GET("", userHandler.List)
	users.GET("/export", userHandler.Export)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.PATCH("/:id/password", userHandler.UpdatePassword)
	users.DELETE("/:id", userHandler.Delete)

	// --- Time entry routes ---
	// Cross-user listing and export are reserved for the admin ranks; user
	// managers manage accounts, not other people's hours.
	adminTime := middleware.RBAC(domain.RoleSuperadmin, domain.RoleAdmin)
	ownTime := middleware.RBAC(domain.RoleSuperadmin, domain.RoleAdmin, domain.RoleUser)

	timeGroup := e.Group("/v1/time", authRequired)
	timeGroup.GET("", timeHandler.List, adminTime)
	timeGroup.GET("/export", timeHandler.Export, adminTime)
	timeGroup.GET("/me", timeHandler.ListMine, ownTime)
	timeGroup.GET("/me/export", timeHandler.ExportMine, ownTime)
	timeGroup.POST("", timeHandler.Create, ownTime)
	timeGroup.GET("/:id", timeHandler.Get, ownTime)
	timeGroup.PATCH("/:id", timeHandler.Update, ownTime)
	timeGroup.DELETE("/:id", timeHandler.Delete, ownTime)

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
