package repo

import (
	"github.com/adisantoso/toko-bangunan/internal/models"
)

// TransactionRepository is the append-only ledger of stock movements.
// There are no update or delete operations; entries are immutable once appended.
type TransactionRepository interface {
	Append(t models.Transaction) error
	GetAll() ([]models.Transaction, error)
	Filter(tf TransactionFilter) ([]models.Transaction, int, error)
}
