package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adisantoso/toko-bangunan/internal/alert"
	"github.com/adisantoso/toko-bangunan/internal/auth"
	"github.com/adisantoso/toko-bangunan/internal/config"
	"github.com/adisantoso/toko-bangunan/internal/db"
	"github.com/adisantoso/toko-bangunan/internal/events"
	api "github.com/adisantoso/toko-bangunan/internal/http"
	"github.com/adisantoso/toko-bangunan/internal/http/handlers"
	rl "github.com/adisantoso/toko-bangunan/internal/http/rate_limiter"
	"github.com/adisantoso/toko-bangunan/internal/metrics"
	"github.com/adisantoso/toko-bangunan/internal/repo"
	"github.com/adisantoso/toko-bangunan/internal/seed"
	"github.com/adisantoso/toko-bangunan/internal/shop"
)

var ctx = context.Background()

// @title Toko Bangunan API
// @version 1.0
// @description Storefront and admin dashboard API for a construction-materials retailer.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Could not load configuration:", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	rl.Configure(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	var verifier auth.PasswordVerifier = auth.StaticVerifier{Password: cfg.AdminPassword}
	if cfg.AdminPasswordBcrypt != "" {
		verifier = auth.BcryptVerifier{Hash: cfg.AdminPasswordBcrypt}
	}
	handlers.SetPasswordVerifier(verifier)

	var (
		productRepo     repo.ProductRepository
		transactionRepo repo.TransactionRepository
		analyticsRepo   repo.AnalyticsRepository
	)
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Could not connect to database:", err)
		}
		defer database.Close()

		productRepo = repo.NewPostgresProductRepository(database)
		transactionRepo = repo.NewPostgresTransactionRepository(database)
		analyticsRepo = repo.NewPostgresAnalyticsRepository(database, cfg.LowStockThreshold)
	} else {
		products := repo.NewInMemoryProductRepository()
		transactions := repo.NewInMemoryTransactionRepository()
		analytics := repo.NewInMemoryAnalyticsRepository(cfg.LowStockThreshold)
		analytics.SetRepositories(products, transactions)
		productRepo, transactionRepo, analyticsRepo = products, transactions, analytics
	}

	alerter := alert.New(alert.SMTPConfig{
		From:         cfg.AlertFrom,
		To:           cfg.AlertTo,
		Server:       cfg.SMTPServer,
		Port:         cfg.SMTPPort,
		User:         cfg.SMTPUser,
		Password:     cfg.SMTPPassword,
		AuthDisabled: cfg.SMTPAuthDisabled,
	})

	var cartRepo repo.CartRepository = repo.NewInMemoryCartRepository()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()

		cartRepo = repo.NewRedisCartRepository(rdb, cfg.CartTTL)
		alerter.SetRedis(rdb)
	}
	go alerter.StartDailySummary(time.Hour * 24)

	shopService := shop.NewService(productRepo, transactionRepo, cartRepo, cfg.LowStockThreshold)
	shopService.SetNotifier(alerter)
	if cfg.KafkaBrokers != "" {
		publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer publisher.Close()
		shopService.SetPublisher(publisher)
	}

	if err := seed.Load(productRepo, transactionRepo, cfg.SeedDemoData); err != nil {
		log.Fatal("❌ Could not seed catalog:", err)
	}

	serverMetrics := metrics.NewServerMetrics()
	api.SetServerMetrics(serverMetrics)
	handlers.SetServerMetrics(serverMetrics)

	handlers.SetShopService(shopService)
	handlers.SetProductRepo(productRepo)
	handlers.SetTransactionRepo(transactionRepo)
	handlers.SetAnalyticsRepo(analyticsRepo)
	handlers.SetLowStockThreshold(cfg.LowStockThreshold)

	r := api.NewRouter()
	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
