package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"aurum-admin-core/internal/application"
	"aurum-admin-core/internal/infrastructure/api"
	"aurum-admin-core/internal/infrastructure/catalog"
	"aurum-admin-core/internal/infrastructure/images"
	"aurum-admin-core/internal/infrastructure/rates"
	"aurum-admin-core/internal/infrastructure/repository"
	"aurum-admin-core/internal/infrastructure/session"
	"aurum-admin-core/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	appmiddleware "aurum-admin-core/internal/infrastructure/middleware"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("No .env file found")
	}

	// The panel's own store: first variable present wins
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = os.Getenv("DATABASE_URL")
	}
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "aurum_admin"
	}

	// Connect to the directory store
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)

	// Initialize repositories and adapters
	repo := repository.NewMongoDirectoryRepository(db)
	catalogStore := catalog.NewMongoCatalog(logger)

	var sessions ports.SessionStore
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		sessions, err = session.NewRedisStore(redisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialize Redis session store")
		}
		logger.Info().Msg("Using Redis session store")
	} else {
		sessions = session.NewMemoryStore()
		logger.Info().Msg("Using in-memory session store; sessions will not survive restarts")
	}

	ratesURL := os.Getenv("RATES_URL")
	if ratesURL == "" {
		ratesURL = rates.DefaultSourceURL
	}
	rateSource := rates.NewScraper(ratesURL, nil, logger)

	var imageStore ports.ImageStore
	if cloudinaryURL := os.Getenv("CLOUDINARY_URL"); cloudinaryURL != "" {
		imageStore, err = images.NewCloudinaryStore(cloudinaryURL, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialize Cloudinary")
		}
	} else {
		logger.Warn().Msg("CLOUDINARY_URL not set; image uploads disabled")
	}

	// Initialize application services
	authService := application.NewAuthService(repo, sessions, logger)
	shopService := application.NewShopService(repo, logger)
	catalogService := application.NewCatalogService(repo, catalogStore, logger)
	analyticsService := application.NewAnalyticsService(repo, catalogStore, logger)
	ratesService := application.NewRatesService(rateSource, logger)

	handler := api.NewHandler(
		authService,
		shopService,
		catalogService,
		analyticsService,
		ratesService,
		imageStore,
		logger,
	)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Health check - must be public for monitoring
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus metrics - public
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation - public
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	// Application routes
	r.Mount("/", handler.Routes(appmiddleware.RequireSession(sessions, logger)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("port", port).Msg("Starting API server")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
