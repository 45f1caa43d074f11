package seed

import (
	"strings"
	"testing"
	"time"

	"github.com/adisantoso/toko-bangunan/internal/models"
	"github.com/adisantoso/toko-bangunan/internal/repo"
)

func TestInitialProducts(t *testing.T) {
	catalog := InitialProducts()

	if len(catalog) != 6 {
		t.Fatalf("expected 6 products, got %d", len(catalog))
	}
	ids := map[string]bool{}
	for _, p := range catalog {
		if ids[p.ID] {
			t.Errorf("duplicate id %s", p.ID)
		}
		ids[p.ID] = true
		if !models.ValidCategory(p.Category) {
			t.Errorf("product %s has invalid category %s", p.ID, p.Category)
		}
		if p.Price <= 0 || p.Stock < 0 || p.WeightKg <= 0 {
			t.Errorf("product %s has implausible fields: %+v", p.ID, p)
		}
	}
	if first := catalog[0]; first.ID != "P001" || first.Price != 65000 || first.Stock != 150 {
		t.Errorf("unexpected first product %+v", first)
	}
}

func TestDemoTransactions(t *testing.T) {
	catalog := InitialProducts()
	byID := map[string]models.Product{}
	for _, p := range catalog {
		byID[p.ID] = p
	}

	transactions := DemoTransactions(catalog, 50, 30)
	if len(transactions) != 50 {
		t.Fatalf("expected 50 transactions, got %d", len(transactions))
	}

	earliest := time.Now().AddDate(0, 0, -30)
	for i, tx := range transactions {
		p, ok := byID[tx.ProductID]
		if !ok {
			t.Fatalf("transaction %d references unknown product %s", i, tx.ProductID)
		}
		if tx.Quantity < 1 || tx.Quantity > 10 {
			t.Errorf("transaction %d has quantity %d outside [1,10]", i, tx.Quantity)
		}
		if tx.Timestamp.Before(earliest) || tx.Timestamp.After(time.Now()) {
			t.Errorf("transaction %d timestamp %v outside the 30-day window", i, tx.Timestamp)
		}
		if i > 0 && tx.Timestamp.Before(transactions[i-1].Timestamp) {
			t.Errorf("transactions not sorted ascending at index %d", i)
		}

		switch tx.Type {
		case models.TransactionOut:
			if !strings.HasPrefix(tx.ID, "TRX-") {
				t.Errorf("sale %d has id %s without TRX- prefix", i, tx.ID)
			}
			if want := p.Price * int64(tx.Quantity); tx.TotalPrice != want {
				t.Errorf("sale %d: expected total %d, got %d", i, want, tx.TotalPrice)
			}
		case models.TransactionIn:
			if !strings.HasPrefix(tx.ID, "RESTOCK-") {
				t.Errorf("restock %d has id %s without RESTOCK- prefix", i, tx.ID)
			}
			if want := -(p.Price * 7 * int64(tx.Quantity)) / 10; tx.TotalPrice != want {
				t.Errorf("restock %d: expected total %d, got %d", i, want, tx.TotalPrice)
			}
		default:
			t.Errorf("transaction %d has unknown type %s", i, tx.Type)
		}
	}
}

func TestLoad(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	ledger := repo.NewInMemoryTransactionRepository()

	if err := Load(products, ledger, true); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	catalog, _ := products.GetAll()
	if len(catalog) != 6 {
		t.Errorf("expected 6 seeded products, got %d", len(catalog))
	}
	history, _ := ledger.GetAll()
	if len(history) != 50 {
		t.Errorf("expected 50 demo transactions, got %d", len(history))
	}
}

func TestLoadSkipsSeededCatalog(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	ledger := repo.NewInMemoryTransactionRepository()
	products.Create(models.Product{ID: "P100", Name: "Existing"})

	if err := Load(products, ledger, true); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	catalog, _ := products.GetAll()
	if len(catalog) != 1 {
		t.Errorf("expected catalog untouched, got %d products", len(catalog))
	}
	history, _ := ledger.GetAll()
	if len(history) != 0 {
		t.Errorf("expected no demo transactions, got %d", len(history))
	}
}

func TestLoadWithoutDemoData(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	ledger := repo.NewInMemoryTransactionRepository()

	if err := Load(products, ledger, false); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	history, _ := ledger.GetAll()
	if len(history) != 0 {
		t.Errorf("expected empty ledger, got %d entries", len(history))
	}
}
