// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"holocron/internal/cache"
	"holocron/internal/config"
	"holocron/internal/database"
	"holocron/internal/middleware"
	"holocron/internal/repository"
	"holocron/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo      repository.UserRepository
	planetRepo    repository.PlanetRepository
	characterRepo repository.CharacterRepository
	vehicleRepo   repository.VehicleRepository
	favoriteRepo  repository.FavoriteRepository

	userService     *service.UserService
	catalogService  *service.CatalogService
	favoriteService *service.FavoriteService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("holocron-api"),
		userRepo:       userRepo,
		planetRepo:     planetRepo,
		characterRepo:  characterRepo,
		vehicleRepo:    vehicleRepo,
		favoriteRepo:   favoriteRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.catalogService = service.NewCatalogService(planetRepo, characterRepo, vehicleRepo)
	s.favoriteService = service.NewFavoriteService(favoriteRepo, userRepo, planetRepo, characterRepo, vehicleRepo)

	return s
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into the request context
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Holocron Metrics Dashboard",
	}))

	// Users
	app.Get("/users", s.GetAllUsers)
	app.Post("/users", s.CreateUser)
	app.Post("/users/with-profile", s.CreateUserWithProfile)
	app.Get("/users/:id", s.GetUser)
	app.Put("/users/:id", s.UpdateUser)
	app.Delete("/users/:id", s.DeleteUser)
	app.Get("/users/:id/orders", s.GetUserOrders)
	app.Get("/users/:id/favorites", s.GetUserFavorites)

	// Catalog
	app.Get("/planets", s.GetAllPlanets)
	app.Post("/planets", s.CreatePlanet)
	app.Get("/planets/:id", s.GetPlanet)
	app.Delete("/planets/:id", s.DeletePlanet)

	app.Get("/characters", s.GetAllCharacters)
	app.Post("/characters", s.CreateCharacter)
	app.Get("/characters/:id", s.GetCharacter)
	app.Delete("/characters/:id", s.DeleteCharacter)

	app.Get("/vehicles", s.GetAllVehicles)
	app.Post("/vehicles", s.CreateVehicle)
	app.Get("/vehicles/:id", s.GetVehicle)
	app.Delete("/vehicles/:id", s.DeleteVehicle)

	// Favorite edges
	app.Post("/favorite/character/:id", s.AddFavoriteCharacter)
	app.Post("/favorite/vehicle/:id", s.AddFavoriteVehicle)
	app.Post("/favorite/planet/:id", s.AddFavoritePlanet)
}

// LivenessCheck handles GET /health/live
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck handles GET /health/ready. Ready means the store answers.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, s.db); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
