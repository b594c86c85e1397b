package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/roamly/roamly-backend/internal/config"
	"github.com/roamly/roamly-backend/internal/database"
	"github.com/roamly/roamly-backend/internal/handlers"
	"github.com/roamly/roamly-backend/internal/middleware"
	"github.com/roamly/roamly-backend/internal/routes"
	"github.com/roamly/roamly-backend/internal/store"
)

func main() {
	// Missing .env is fine; production reads the process environment.
	_ = godotenv.Load()

	cfg := config.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if !cfg.IsProduction() {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	log.Info().Msg("connecting to MongoDB...")
	db, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer db.Disconnect()
	log.Info().Msg("connected to MongoDB")

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer indexCancel()
	if err := db.EnsureIndexes(indexCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure MongoDB indexes")
	}

	users := store.NewMongoUserStore(db.DB)
	destinations := store.NewMongoDestinationStore(db.DB)

	authHandler := handlers.NewAuthHandler(users, log)
	destinationHandler := handlers.NewDestinationHandler(destinations, users, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))
	r.Use(middleware.SecurityHeaders)

	routes.SetupRoutes(r, authHandler, destinationHandler)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server is running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
