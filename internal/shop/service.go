// Package shop holds the storefront's mutation entry points: cart operations,
// checkout, and restock. All catalog and ledger writes in the process go
// through a single Service guarded by one mutex, so checkout and restock are
// atomic from any caller's point of view.
package shop

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adisantoso/toko-bangunan/internal/events"
	"github.com/adisantoso/toko-bangunan/internal/models"
	"github.com/adisantoso/toko-bangunan/internal/repo"
)

var (
	// ErrInsufficientStock is returned when a cart change or checkout would
	// exceed a product's current stock. Nothing is mutated.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptyCart is returned when checkout is invoked on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidAmount is returned for non-positive restock amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Notifier receives low-stock alerts when a mutation leaves a product below
// the replenishment threshold.
type Notifier interface {
	LowStock(p models.Product)
}

type Service struct {
	mu sync.Mutex

	products repo.ProductRepository
	ledger   repo.TransactionRepository
	carts    repo.CartRepository

	publisher events.Publisher
	alerts    Notifier

	lowStockThreshold int
	now               func() time.Time
}

func NewService(
	products repo.ProductRepository,
	ledger repo.TransactionRepository,
	carts repo.CartRepository,
	lowStockThreshold int,
) *Service {
	return &Service{
		products:          products,
		ledger:            ledger,
		carts:             carts,
		publisher:         events.NoopPublisher{},
		lowStockThreshold: lowStockThreshold,
		now:               time.Now,
	}
}

// SetPublisher replaces the no-op event publisher.
func (s *Service) SetPublisher(p events.Publisher) {
	s.publisher = p
}

// SetNotifier enables low-stock alerting.
func (s *Service) SetNotifier(n Notifier) {
	s.alerts = n
}

func newTransactionID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func (s *Service) checkLowStock(p models.Product) {
	if s.alerts != nil && p.Stock < s.lowStockThreshold {
		s.alerts.LowStock(p)
	}
}
