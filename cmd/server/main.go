package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"certquiz/internal/config"
	"certquiz/internal/database"
	"certquiz/internal/handlers"
	"certquiz/internal/quiz"
	"certquiz/internal/repository"
	"certquiz/internal/repository/memstore"
	"certquiz/internal/seed"
	"certquiz/internal/service"
)

func main() {
	cfg := config.Load()

	stores, cleanup, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	if cfg.SeedOnStart {
		count, err := seed.Load(stores.Questions)
		if err != nil {
			log.Fatalf("Failed to seed question bank: %v", err)
		}
		log.Printf("Seeded %d questions", count)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	attemptService := service.NewAttemptService(stores, rng)
	summaryService := service.NewSummaryService(stores)

	router := handlers.NewRouter(handlers.RouterConfig{
		Stores:       stores,
		Attempts:     attemptService,
		Summary:      summaryService,
		DeviceSecret: []byte(cfg.DeviceSecret),
		DeviceTTL:    cfg.DeviceTokenTTL,
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// buildStores picks the storage backend: SQL (sqlite, postgres or mysql)
// with migrations, or the in-memory store for throwaway runs.
func buildStores(cfg *config.Config) (quiz.Stores, func(), error) {
	if cfg.DatabaseType == "memory" {
		log.Println("Using in-memory storage")
		return memstore.New().Stores(), func() {}, nil
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return quiz.Stores{}, nil, err
	}
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		db.Close()
		return quiz.Stores{}, nil, err
	}
	return repository.NewStores(db), func() { db.Close() }, nil
}
