package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/openmesh/meshnet-backend/internal/config"
	"github.com/openmesh/meshnet-backend/internal/database"
	"github.com/openmesh/meshnet-backend/internal/handlers"
	"github.com/openmesh/meshnet-backend/internal/middleware"
	"github.com/openmesh/meshnet-backend/internal/routes"
	"github.com/openmesh/meshnet-backend/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Connect to Redis unless the rate limiter is turned off
	if !cfg.RateLimitDisabled {
		log.Printf("Connecting to Redis...")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer database.DisconnectRedis()
	} else {
		log.Println("⚠️  Rate limiting disabled (RATE_LIMIT_DISABLED)")
	}

	// Ensure MongoDB indexes for user and friendship lookups
	st := store.NewMongo(database.DB)
	if err := st.EnsureIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure MongoDB indexes: %v", err)
	} else {
		log.Println("✅ MongoDB indexes ensured")
	}

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.APIKeyHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !cfg.RateLimitDisabled {
		r.Use(middleware.RateLimit)
	}

	h := handlers.New(st, cfg.StrictPagination)
	routes.SetupRoutes(r, h, st)

	log.Println("📋 Registered routes:")
	log.Println("  GET   /ping")
	log.Println("  GET   /user")
	log.Println("  GET   /user/search")
	log.Println("  GET   /user/settings")
	log.Println("  PATCH /user/settings")
	log.Println("  GET   /users")
	log.Println("  GET   /friend")
	log.Println("  GET   /friend/request")
	log.Println("  POST  /friend/request")
	log.Println("  POST  /friend/request/accept")

	log.Printf("🚀 meshnet backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
