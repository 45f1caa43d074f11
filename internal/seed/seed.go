// Package seed loads the fixed starting catalog and, optionally, a synthetic
// transaction history so the dashboard has something to show on first run.
package seed

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/adisantoso/toko-bangunan/internal/models"
	"github.com/adisantoso/toko-bangunan/internal/repo"
)

// InitialProducts returns the fixed starting catalog.
func InitialProducts() []models.Product {
	return []models.Product{
		{
			ID:       "P001",
			Name:     "Semen Tiga Roda 50kg",
			Category: models.CategorySemen,
			Price:    65000,
			Stock:    150,
			Unit:     "sak",
			WeightKg: 50,
			Image:    "https://picsum.photos/id/201/300/300",
		},
		{
			ID:       "P002",
			Name:     "Cat Tembok Dulux 25kg",
			Category: models.CategoryCat,
			Price:    1250000,
			Stock:    8, // low stock on purpose
			Unit:     "pail",
			WeightKg: 25,
			Image:    "https://picsum.photos/id/202/300/300",
		},
		{
			ID:       "P003",
			Name:     "Besi Beton 10mm Full",
			Category: models.CategoryBesi,
			Price:    78000,
			Stock:    500,
			Unit:     "btg",
			WeightKg: 7.4,
			Image:    "https://picsum.photos/id/203/300/300",
		},
		{
			ID:       "P004",
			Name:     "Bata Merah Jumbo",
			Category: models.CategoryBata,
			Price:    850,
			Stock:    5000,
			Unit:     "pcs",
			WeightKg: 1.5,
			Image:    "https://picsum.photos/id/204/300/300",
		},
		{
			ID:       "P005",
			Name:     "Pasir Muntilan 1 Rit",
			Category: models.CategoryLainnya,
			Price:    1800000,
			Stock:    5,
			Unit:     "rit",
			WeightKg: 1500,
			Image:    "https://picsum.photos/id/206/300/300",
		},
		{
			ID:       "P006",
			Name:     "Keramik Lantai 40x40 Putih",
			Category: models.CategoryLainnya,
			Price:    65000,
			Stock:    200,
			Unit:     "dus",
			WeightKg: 15,
			Image:    "https://picsum.photos/id/208/300/300",
		},
	}
}

// DemoTransactions generates n transactions spread over the previous days
// window: random product, quantity in [1,10], a sale with probability 0.7 and
// a restock otherwise, sorted ascending by timestamp.
func DemoTransactions(products []models.Product, n, days int) []models.Transaction {
	transactions := make([]models.Transaction, 0, n)
	now := time.Now()

	for range n {
		daysAgo := rand.Intn(days)
		timestamp := now.AddDate(0, 0, -daysAgo)

		product := products[rand.Intn(len(products))]
		qty := rand.Intn(10) + 1

		t := models.Transaction{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    qty,
			Timestamp:   timestamp,
		}
		if rand.Float64() > 0.3 {
			t.ID = "TRX-" + uuid.NewString()
			t.Type = models.TransactionOut
			t.TotalPrice = product.Price * int64(qty)
		} else {
			t.ID = "RESTOCK-" + uuid.NewString()
			t.Type = models.TransactionIn
			t.TotalPrice = -(product.Price * 7 * int64(qty)) / 10
		}
		transactions = append(transactions, t)
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.Before(transactions[j].Timestamp)
	})
	return transactions
}

// Load seeds the catalog and, if withDemoData, the ledger. Products that
// already exist (a restarted Postgres deployment) are left untouched.
func Load(products repo.ProductRepository, ledger repo.TransactionRepository, withDemoData bool) error {
	existing, err := products.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	catalog := InitialProducts()
	for _, p := range catalog {
		if _, err := products.Create(p); err != nil {
			return err
		}
	}

	if withDemoData {
		for _, t := range DemoTransactions(catalog, 50, 30) {
			if err := ledger.Append(t); err != nil {
				return err
			}
		}
	}
	return nil
}
