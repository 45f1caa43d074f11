package repo

import (
	"sync"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

// InMemoryTransactionRepository is an in-memory, append-only ledger, safe
// for concurrent handlers.
type InMemoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions []models.Transaction
}

func NewInMemoryTransactionRepository() *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{
		transactions: []models.Transaction{},
	}
}

// Append adds a new entry to the ledger.
func (r *InMemoryTransactionRepository) Append(t models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append(r.transactions, t)
	return nil
}

// GetAll returns every ledger entry in insertion order.
func (r *InMemoryTransactionRepository) GetAll() ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transactions := make([]models.Transaction, len(r.transactions))
	copy(transactions, r.transactions)
	return transactions, nil
}

// Filter returns matching entries, optionally paginated, plus the total
// match count before pagination.
func (r *InMemoryTransactionRepository) Filter(tf TransactionFilter) ([]models.Transaction, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []models.Transaction
	for _, t := range r.transactions {
		if matchesTransaction(t, tf) {
			filtered = append(filtered, t)
		}
	}

	if tf.Offset != nil && *tf.Offset > len(filtered) {
		return []models.Transaction{}, len(filtered), nil
	}

	start := 0
	if tf.Offset != nil {
		start = clamp(*tf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if tf.Limit != nil && *tf.Limit > 0 {
		end = clamp(start+*tf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

func (r *InMemoryTransactionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = []models.Transaction{}
}
