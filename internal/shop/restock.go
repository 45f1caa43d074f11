package shop

import (
	"github.com/adisantoso/toko-bangunan/internal/events"
	"github.com/adisantoso/toko-bangunan/internal/models"
)

// Restock increases the product's stock by amount and records one IN ledger
// entry. The recorded cost is 70% of the retail price, stored negative.
// Integer arithmetic keeps the rupiah amounts exact.
func (s *Service) Restock(productID string, amount int) (models.Product, models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		return models.Product{}, models.Transaction{}, ErrInvalidAmount
	}

	product, err := s.products.GetByID(productID)
	if err != nil {
		return models.Product{}, models.Transaction{}, err
	}

	updated, err := s.products.AdjustStock(productID, amount)
	if err != nil {
		return models.Product{}, models.Transaction{}, err
	}

	now := s.now()
	t := models.Transaction{
		ID:          newTransactionID("RESTOCK"),
		ProductID:   product.ID,
		ProductName: product.Name,
		Type:        models.TransactionIn,
		Quantity:    amount,
		TotalPrice:  -(product.Price * 7 * int64(amount)) / 10,
		Timestamp:   now,
	}
	if err := s.ledger.Append(t); err != nil {
		return models.Product{}, models.Transaction{}, err
	}

	s.publisher.Publish(events.Event{
		Type:      events.EventStockRestocked,
		ProductID: product.ID,
		Quantity:  amount,
		Stock:     updated.Stock,
		At:        now,
	})

	return updated, t, nil
}
