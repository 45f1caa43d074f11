package shop

import (
	"github.com/adisantoso/toko-bangunan/internal/events"
	"github.com/adisantoso/toko-bangunan/internal/models"
)

// Checkout converts the cart into OUT ledger entries and deducts stock, as
// one atomic operation. Every line is re-validated against current stock
// first; any shortfall fails the whole checkout and nothing is mutated. On
// success the cart is cleared and the created transactions are returned as
// the receipt.
func (s *Service) Checkout(cartID string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Re-validate against the catalog before touching anything, so a stale
	// cart cannot leave a partially applied checkout behind.
	catalog := make(map[string]models.Product, len(cart.Items))
	for _, item := range cart.Items {
		product, err := s.products.GetByID(item.Product.ID)
		if err != nil {
			return nil, err
		}
		if item.Quantity > product.Stock {
			return nil, ErrInsufficientStock
		}
		catalog[product.ID] = product
	}

	now := s.now()
	receipt := make([]models.Transaction, 0, len(cart.Items))
	for _, item := range cart.Items {
		product := catalog[item.Product.ID]
		t := models.Transaction{
			ID:          newTransactionID("TRX"),
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        models.TransactionOut,
			Quantity:    item.Quantity,
			TotalPrice:  product.Price * int64(item.Quantity),
			Timestamp:   now,
		}
		if err := s.ledger.Append(t); err != nil {
			return nil, err
		}
		updated, err := s.products.AdjustStock(product.ID, -item.Quantity)
		if err != nil {
			return nil, err
		}
		receipt = append(receipt, t)

		s.checkLowStock(updated)
		s.publisher.Publish(events.Event{
			Type:      events.EventStockSold,
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Stock:     updated.Stock,
			At:        now,
		})
	}

	if _, err := s.clearCart(cartID); err != nil {
		return nil, err
	}
	return receipt, nil
}
