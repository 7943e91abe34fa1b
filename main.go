package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocery/internal/config"
	"grocery/internal/logger"
	"grocery/internal/repositories"
	"grocery/internal/server"
	"grocery/internal/services"
	"grocery/pkg/rabbitmq"

	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// --- Database ---
	db, err := repositories.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, log)
	if err != nil {
		log.Fatal("failed to open database", zap.String("driver", cfg.DatabaseDriver), zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	userRepo := repositories.NewGORMUserRepository(db)
	profileRepo := repositories.NewGORMProfileRepository(db)
	itemRepo := repositories.NewGORMItemRepository(db)
	listRepo := repositories.NewGORMShoppingListRepository(db)

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			log.Warn("RabbitMQ unavailable, shopping list events disabled", zap.Error(err))
		} else {
			defer mqClient.Close()
			publisher = mqClient
			if err := mqClient.ConsumeEvents(rabbitmq.LogEvents(log.Named("activity"))); err != nil {
				log.Warn("failed to start RabbitMQ consumer", zap.Error(err))
			}
		}
	}

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userService := services.NewUserService(userRepo, cfg.ProfileCascadeDelete)
	profileService := services.NewProfileService(profileRepo, userRepo)
	itemService := services.NewItemService(itemRepo)
	listService := services.NewShoppingListService(listRepo, publisher, log)

	if cfg.SeedData {
		if err := seedData(userService, profileService, listService, log); err != nil {
			log.Fatal("failed to seed data", zap.Error(err))
		}
	}

	app := server.New(server.Deps{
		Log:           log,
		CORSOrigins:   cfg.CORSOrigins,
		Auth:          authService,
		Users:         userService,
		Profiles:      profileService,
		Items:         itemService,
		ShoppingLists: listService,
	})

	// --- Start HTTP Server ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server", zap.String("addr", cfg.Port), zap.String("env", cfg.Env))
		if err := app.Listen(cfg.Port); err != nil {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}
