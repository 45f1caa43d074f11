package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/adisantoso/toko-bangunan/internal/http/handlers"
	"github.com/adisantoso/toko-bangunan/internal/metrics"
)

var serverMetrics *metrics.ServerMetrics

func SetServerMetrics(m *metrics.ServerMetrics) {
	serverMetrics = m
}

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)
	if serverMetrics != nil {
		r.Use(serverMetrics.Middleware)
	}

	// Storefront, no auth.
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Post("/carts", handlers.CreateCartHandler)
	r.Get("/carts/{cartId}", handlers.GetCartHandler)
	r.Post("/carts/{cartId}/items", handlers.AddCartItemHandler)
	r.Patch("/carts/{cartId}/items/{productId}", handlers.ChangeCartItemHandler)
	r.Delete("/carts/{cartId}/items/{productId}", handlers.RemoveCartItemHandler)
	r.Post("/carts/{cartId}/checkout", handlers.CheckoutHandler)

	r.Post("/login", handlers.LoginHandler)

	// Admin dashboard.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/products", handlers.CreateProductHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)
		r.Post("/products/{id}/restock", handlers.RestockProductHandler)
		r.Get("/transactions", handlers.GetTransactionsHandler)
		r.Get("/transactions/export", handlers.ExportTransactionsHandler)
		r.Get("/analytics/dashboard", handlers.GetDashboardHandler)
	})

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
