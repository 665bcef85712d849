package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/washline/laundry-system/docs"
	"github.com/washline/laundry-system/internal/api/handler"
	"github.com/washline/laundry-system/internal/api/middleware"
	"github.com/washline/laundry-system/internal/core/service"
	"github.com/washline/laundry-system/internal/infrastructure/config"
	mongodb "github.com/washline/laundry-system/internal/infrastructure/db/mongo"
	redisdb "github.com/washline/laundry-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// events is the audit queue the order service enqueues into; its worker
// lifecycle is owned by the caller.
func NewRouter(db *mongo.Database, rdb *redis.Client, events service.EventQueue, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
	}))
	e.Use(echoprometheus.NewMiddleware("laundry"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, 24*time.Hour, log)
	orderService := service.NewOrderService(orderRepo, events, log)

	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService)

	// --- API routes ---
	g := e.Group("/api")
	g.POST("/register", authHandler.Register)
	g.POST("/login", authHandler.Login)
	g.GET("/me", authHandler.Me, middleware.Auth(cfg.JWTSecret))

	// Dashboard listings are intentionally unauthenticated: roles only pick
	// the client-side view and are not enforced here.
	g.POST("/orders", orderHandler.Create)
	g.GET("/orders", orderHandler.ListAll)
	g.GET("/orders/user/:userId", orderHandler.ListByUser)
	g.GET("/orders/status/:status", orderHandler.ListByStatus)
	g.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	g.PUT("/orders/:id/rider", orderHandler.AssignRider)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
