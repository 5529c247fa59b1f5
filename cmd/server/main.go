package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lazaroperez207/agro-en-casa/config"
	"github.com/lazaroperez207/agro-en-casa/internal/api"
	"github.com/lazaroperez207/agro-en-casa/internal/auth"
	"github.com/lazaroperez207/agro-en-casa/internal/broker"
	"github.com/lazaroperez207/agro-en-casa/internal/redisclient"
	"github.com/lazaroperez207/agro-en-casa/internal/service"
	"github.com/lazaroperez207/agro-en-casa/internal/store"
	"github.com/lazaroperez207/agro-en-casa/internal/util"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting agro-en-casa storefront")

	tp, err := util.InitTracer("agro-en-casa", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	db := store.NewStore()
	log.Println("In-memory store seeded")

	// Only the logo and social links blobs survive restarts; Redis being
	// down degrades them to memory-only.
	redisClient, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("Redis unavailable, settings will not persist: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis connected")
	}

	var eventPublisher *broker.EventPublisher
	if cfg.Kafka.Enabled() {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrder)
		defer producer.Close()
		eventPublisher = broker.NewEventPublisher(producer)
		log.Println("Kafka producer initialized")
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHour)*time.Hour)

	accountService := service.NewAccountService(db, tokens)
	catalogService := service.NewCatalogService(db)
	cartService := service.NewCartService(db)
	orderService := service.NewOrderService(db, eventPublisher)
	notificationService := service.NewNotificationService(db)
	settingsService := service.NewSettingsService(db, redisClient)
	recipeClient := service.NewRecipeClient(cfg.Gemini.APIKey, cfg.Gemini.Model)

	ctx := context.Background()
	if err := settingsService.LoadPersisted(ctx); err != nil {
		log.Printf("Failed to load persisted settings: %v", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handler := api.NewHandler(
		accountService,
		catalogService,
		cartService,
		orderService,
		notificationService,
		settingsService,
		recipeClient,
		tokens,
	)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
