package main

import (
	"context"
	"log"
	"os"
	"time"

	"resto-backend/config"
	httpapi "resto-backend/internal/api/http"
	"resto-backend/internal/service"
	"resto-backend/internal/storage"
)

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("reviews")
	defer kafkaWriter.Close()

	kafkaReader := config.NewKafkaReader("reviews", "rating-aggregator")
	defer kafkaReader.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	ratingCache := storage.NewRatingCache(rdb, 24*time.Hour)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost"
	}
	qr := service.DefaultQRGenerator{BaseURL: baseURL}

	catalogSvc := service.NewCatalogService(repo)
	cartSvc := service.NewCartService(repo)
	orderSvc := service.NewOrderService(repo, repo, repo, qr)
	reviewSvc := service.NewReviewService(repo, repo, ratingCache, publisher)
	accountSvc := service.NewAccountService(repo)
	promoSvc := service.NewPromoService(repo)

	consumer := service.NewRatingConsumer(kafkaReader, repo, ratingCache)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(catalogSvc, cartSvc, orderSvc, reviewSvc, accountSvc, promoSvc)
	router := httpapi.NewRouter(handler)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	httpapi.StartServer(addr, router)
}
