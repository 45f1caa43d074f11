package repo

import (
	"time"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

type TransactionFilter struct {
	ProductID string
	Type      models.TransactionType
	Since     *time.Time
	Until     *time.Time
	Offset    *int
	Limit     *int
}

func matchesTransaction(t models.Transaction, tf TransactionFilter) bool {
	if tf.ProductID != "" && t.ProductID != tf.ProductID {
		return false
	}
	if tf.Type != "" && t.Type != tf.Type {
		return false
	}
	if tf.Since != nil && t.Timestamp.Before(*tf.Since) {
		return false
	}
	if tf.Until != nil && t.Timestamp.After(*tf.Until) {
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
