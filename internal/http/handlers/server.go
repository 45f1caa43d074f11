package handlers

import (
	"github.com/adisantoso/toko-bangunan/internal/auth"
	"github.com/adisantoso/toko-bangunan/internal/metrics"
	repo "github.com/adisantoso/toko-bangunan/internal/repo"
	"github.com/adisantoso/toko-bangunan/internal/shop"
)

var (
	shopService     *shop.Service
	productRepo     repo.ProductRepository
	transactionRepo repo.TransactionRepository
	analyticsRepo   repo.AnalyticsRepository

	passwordVerifier auth.PasswordVerifier
	serverMetrics    *metrics.ServerMetrics

	lowStockThreshold = 10
)

func SetShopService(s *shop.Service) {
	shopService = s
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetTransactionRepo(r repo.TransactionRepository) {
	transactionRepo = r
}

func SetAnalyticsRepo(r repo.AnalyticsRepository) {
	analyticsRepo = r
}

func SetPasswordVerifier(v auth.PasswordVerifier) {
	passwordVerifier = v
}

func SetServerMetrics(m *metrics.ServerMetrics) {
	serverMetrics = m
}

func SetLowStockThreshold(threshold int) {
	lowStockThreshold = threshold
}
