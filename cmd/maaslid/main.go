package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/config"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/api"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/auth"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/db"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/feed"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/kv"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/stats"
	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "maasli-dashboard ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appStore := store.New(kv.New(gormDB), gormDB)
	logger.Println("data store initialized")

	if cfg.Seed.Enabled {
		if err := appStore.EnsureSampleData(ctx); err != nil {
			logger.Fatalf("failed to seed sample data: %v", err)
		}
		logger.Println("sample data in place")
	}

	sessions := auth.NewManager(cfg.Auth.Username, cfg.Auth.Password,
		time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute, appStore)

	// The count feed and its notification workers run in the background for
	// the lifetime of the process.
	feedSvc := feed.NewService(cfg, appStore)
	go feedSvc.Run(ctx)

	generator := stats.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

	handler := api.NewHandler(appStore, sessions, generator, feedSvc, cfg.Push.PublicKey)
	router := api.NewRouter(cfg, handler)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
