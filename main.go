package main

import (
	"context"
	"log"
	"time"

	"qr-dish-reality/internal/analytics"
	httpapi "qr-dish-reality/internal/api/http"
	"qr-dish-reality/internal/cart"
	"qr-dish-reality/internal/config"
	"qr-dish-reality/internal/service"
	"qr-dish-reality/internal/storage"
)

const (
	ordersTopic   = "orders"
	consumerGroup = "qr-menu-analytics"
	cartIdleTTL   = 2 * time.Hour
	statsCacheTTL = 5 * time.Minute
)

func main() {
	cfg := config.FromEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	writer := config.NewKafkaWriter(ordersTopic)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	statsCache := storage.NewRedisCache(rdb, statsCacheTTL)
	qrGen := service.DefaultQRGenerator{BaseURL: cfg.BaseURL}

	authSvc := service.NewAuthService(repo, cfg.JWTSecret)
	catalogSvc := service.NewCatalogService(repo, repo)
	restSvc := service.NewRestaurantService(repo, qrGen)
	dishSvc := service.NewDishService(repo)
	orderSvc := service.NewOrderService(repo, repo)
	checkoutSvc := service.NewCheckoutService(repo, publisher)
	adminSvc := service.NewAdminService(repo, statsCache)

	carts := cart.NewStore()
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			carts.PruneIdle(cartIdleTTL)
		}
	}()

	reader := config.NewKafkaReader(ordersTopic, consumerGroup)
	defer reader.Close()
	consumer := analytics.NewConsumer(reader, analytics.NewStore(rdb))
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(authSvc, catalogSvc, restSvc, dishSvc, orderSvc,
		checkoutSvc, adminSvc, carts, cfg.JWTSecret)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler))
}
