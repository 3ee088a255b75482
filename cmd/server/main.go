package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/adapter/events"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/adapter/gateway"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/adapter/handler"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/adapter/storage"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/internal/core/service"
	"github.com/CheersEngineers/MobileFoodDeliveryApp/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL (restaurant menu source)
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("failed to connect mysql", zap.Error(err))
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("failed to ping mysql", zap.Error(err))
	}
	logger.Info("connected to mysql")

	// Initialize Redis (menu cache)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	logger.Info("connected to redis")

	// Initialize adapters
	menuRepo := storage.NewMySQLMenuRepository(db)
	menuCache := storage.NewRedisMenuCache(rdb, cfg.MenuCacheTTL)
	menu := storage.NewCachedMenuRepository(menuRepo, menuCache, logger)

	paymentGateway := gateway.NewHTTPGateway(cfg.PaymentGatewayURL, logger)
	producer := events.NewKafkaProducer(cfg.KafkaBrokers, logger)
	defer producer.Close()

	processing := service.NewPaymentProcessing(paymentGateway, logger)

	// Setup HTTP server
	orderHandler := handler.NewOrderHandler(menu, paymentGateway, processing, producer, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestID())
	router.Use(handler.Logger(logger))
	orderHandler.Register(router)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	logger.Info("HTTP server stopped")

	rdb.Close()
	db.Close()
	logger.Info("connections closed")
}
