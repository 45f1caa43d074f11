package repo

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

func seedLedger(t *testing.T) *InMemoryTransactionRepository {
	t.Helper()

	ledger := NewInMemoryTransactionRepository()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local)
	entries := []models.Transaction{
		{ID: "TRX-1", ProductID: "P001", Type: models.TransactionOut, Quantity: 3, TotalPrice: 195000, Timestamp: base},
		{ID: "TRX-2", ProductID: "P004", Type: models.TransactionOut, Quantity: 100, TotalPrice: 85000, Timestamp: base.AddDate(0, 0, 1)},
		{ID: "RESTOCK-1", ProductID: "P001", Type: models.TransactionIn, Quantity: 10, TotalPrice: -455000, Timestamp: base.AddDate(0, 0, 2)},
		{ID: "TRX-3", ProductID: "P001", Type: models.TransactionOut, Quantity: 1, TotalPrice: 65000, Timestamp: base.AddDate(0, 0, 3)},
	}
	for _, e := range entries {
		if err := ledger.Append(e); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	return ledger
}

func TestTransactionFilter_ByProductAndType(t *testing.T) {
	ledger := seedLedger(t)

	got, total, err := ledger.Filter(TransactionFilter{ProductID: "P001", Type: models.TransactionOut})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d (total %d)", len(got), total)
	}
	if got[0].ID != "TRX-1" || got[1].ID != "TRX-3" {
		t.Errorf("expected insertion order TRX-1, TRX-3, got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestTransactionFilter_TimeWindowIsInclusive(t *testing.T) {
	ledger := seedLedger(t)

	since := time.Date(2026, 8, 2, 9, 0, 0, 0, time.Local)
	until := time.Date(2026, 8, 3, 9, 0, 0, 0, time.Local)
	got, total, err := ledger.Filter(TransactionFilter{Since: &since, Until: &until})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 entries in window, got %d", total)
	}
	if got[0].ID != "TRX-2" || got[1].ID != "RESTOCK-1" {
		t.Errorf("unexpected entries %s, %s", got[0].ID, got[1].ID)
	}
}

func TestTransactionFilter_Pagination(t *testing.T) {
	ledger := seedLedger(t)

	offset, limit := 1, 2
	got, total, err := ledger.Filter(TransactionFilter{Offset: &offset, Limit: &limit})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if total != 4 {
		t.Errorf("expected total 4 before pagination, got %d", total)
	}
	if len(got) != 2 {
		t.Fatalf("expected page of 2, got %d", len(got))
	}
	if got[0].ID != "TRX-2" || got[1].ID != "RESTOCK-1" {
		t.Errorf("unexpected page %s, %s", got[0].ID, got[1].ID)
	}
}

func TestTransactionFilter_OffsetBeyondEnd(t *testing.T) {
	ledger := seedLedger(t)

	offset := 10
	got, total, err := ledger.Filter(TransactionFilter{Offset: &offset})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty page, got %d entries", len(got))
	}
	if total != 4 {
		t.Errorf("expected total 4, got %d", total)
	}
}

func TestTransactionRepositoryConcurrentAccess(t *testing.T) {
	ledger := NewInMemoryTransactionRepository()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			ledger.Append(models.Transaction{ID: fmt.Sprintf("TRX-%d", i), Type: models.TransactionOut})
		}(i)
		go func() {
			defer wg.Done()
			ledger.Filter(TransactionFilter{Type: models.TransactionOut})
		}()
	}
	wg.Wait()

	all, err := ledger.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 50 {
		t.Errorf("expected 50 entries after concurrent appends, got %d", len(all))
	}
}

func TestCartRepositoryConcurrentAccess(t *testing.T) {
	carts := NewInMemoryCartRepository()
	carts.Save(models.Cart{ID: "c1", Items: []models.CartItem{}})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cart, err := carts.Get("c1")
			if err == nil {
				cart.Items = append(cart.Items, models.CartItem{Quantity: 1})
				carts.Save(cart)
			}
		}()
		go func() {
			defer wg.Done()
			carts.Get("c1")
		}()
	}
	wg.Wait()

	if _, err := carts.Get("c1"); err != nil {
		t.Errorf("expected cart to survive concurrent access: %v", err)
	}
}

func TestTransactionFilter_NoMatch(t *testing.T) {
	ledger := seedLedger(t)

	got, total, err := ledger.Filter(TransactionFilter{ProductID: "P999"})
	if err != nil {
		t.Fatalf("Filter failed: %v", err)
	}
	if len(got) != 0 || total != 0 {
		t.Errorf("expected no matches, got %d (total %d)", len(got), total)
	}
}
