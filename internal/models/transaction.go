package models

import "time"

// TransactionType distinguishes sales from restocks.
type TransactionType string

const (
	// TransactionOut is a sale: stock decreases, TotalPrice is positive revenue.
	TransactionOut TransactionType = "OUT"
	// TransactionIn is a restock: stock increases, TotalPrice is the negative
	// acquisition cost.
	TransactionIn TransactionType = "IN"
)

// Transaction is one immutable ledger entry. ProductName is denormalized on
// purpose: the ledger records the name at transaction time, not a live join.
type Transaction struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Type        TransactionType `json:"type"`
	Quantity    int             `json:"quantity"`
	TotalPrice  int64           `json:"total_price"`
	Timestamp   time.Time       `json:"timestamp"`
}
