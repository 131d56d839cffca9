package main // Entry point package

import (
	"context" // Context for startup deadlines
	"log"     // Logging library
	"time"    // Timeouts for startup steps

	"github.com/joho/godotenv"             // Loads .env files in development
	"github.com/labstack/echo/v4"          // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo built-in middleware

	"github.com/iliyamo/hotel-room-booking/internal/catalog"    // Room inventory seeding plan
	"github.com/iliyamo/hotel-room-booking/internal/config"     // Internal config loader
	"github.com/iliyamo/hotel-room-booking/internal/database"   // MySQL pool and schema
	"github.com/iliyamo/hotel-room-booking/internal/handler"    // HTTP handlers
	"github.com/iliyamo/hotel-room-booking/internal/middleware" // Rate limit and cache middleware
	"github.com/iliyamo/hotel-room-booking/internal/queue"      // Booking event consumer
	"github.com/iliyamo/hotel-room-booking/internal/repository" // Data access layer
	"github.com/iliyamo/hotel-room-booking/internal/router"     // Route registration
	"github.com/iliyamo/hotel-room-booking/internal/validate"   // Request validator bridge
)

func main() {
	// .env is optional; in production the environment is set by the deployment.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema creation failed: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	// Seed the room inventory once, on first boot against an empty catalog.
	if n, err := roomRepo.CountAll(ctx); err != nil {
		log.Fatalf("room count failed: %v", err)
	} else if n == 0 {
		rooms := catalog.Plan(cfg)
		if err := roomRepo.SeedBulk(ctx, rooms); err != nil {
			log.Fatalf("room seeding failed: %v", err)
		}
		log.Printf("seeded %d rooms", len(rooms))
	}

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()

	// Background consumer writing the booking audit log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()              // Create Echo instance
	e.HideBanner = true          // Keep startup logs clean
	e.Validator = validate.New() // Bind request validation
	e.Use(echomw.Recover())      // Convert panics into 500s

	authHandler := handler.NewAuthHandler(cfg, userRepo, bookingRepo)
	bookingHandler := handler.NewBookingHandler(roomRepo, bookingRepo)
	suggestionHandler := handler.NewSuggestionHandler(roomRepo, bookingRepo)

	rateLimit := middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)                           // Health check
	router.RegisterAuth(e, authHandler, rateLimit)     // Register and login
	router.RegisterPublic(e, suggestionHandler, cache) // Availability search
	router.RegisterBooking(e, bookingHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
