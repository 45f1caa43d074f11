package repo

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

func TestProductCreateAndGet(t *testing.T) {
	products := NewInMemoryProductRepository()

	created, err := products.Create(models.Product{ID: "P001", Name: "Semen Tiga Roda 50kg", Price: 65000, Stock: 150})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != "P001" {
		t.Errorf("expected id P001, got %s", created.ID)
	}

	got, err := products.GetByID("P001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Semen Tiga Roda 50kg" {
		t.Errorf("unexpected product %+v", got)
	}
}

func TestProductCreateDuplicate(t *testing.T) {
	products := NewInMemoryProductRepository()
	products.Create(models.Product{ID: "P001"})

	if _, err := products.Create(models.Product{ID: "P001"}); !errors.Is(err, ErrDuplicateProduct) {
		t.Errorf("expected ErrDuplicateProduct, got %v", err)
	}
}

func TestProductGetByIDNotFound(t *testing.T) {
	products := NewInMemoryProductRepository()

	if _, err := products.GetByID("P999"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAdjustStock(t *testing.T) {
	products := NewInMemoryProductRepository()
	products.Create(models.Product{ID: "P001", Stock: 150})

	updated, err := products.AdjustStock("P001", -3)
	if err != nil {
		t.Fatalf("AdjustStock failed: %v", err)
	}
	if updated.Stock != 147 {
		t.Errorf("expected stock 147, got %d", updated.Stock)
	}

	updated, _ = products.AdjustStock("P001", 10)
	if updated.Stock != 157 {
		t.Errorf("expected stock 157, got %d", updated.Stock)
	}
}

func TestAdjustStockFloorsAtZero(t *testing.T) {
	products := NewInMemoryProductRepository()
	products.Create(models.Product{ID: "P002", Stock: 8})

	updated, err := products.AdjustStock("P002", -20)
	if err != nil {
		t.Fatalf("AdjustStock failed: %v", err)
	}
	if updated.Stock != 0 {
		t.Errorf("expected stock floored at 0, got %d", updated.Stock)
	}
}

func TestAdjustStockUnknownProduct(t *testing.T) {
	products := NewInMemoryProductRepository()

	if _, err := products.AdjustStock("P999", 1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepositoryConcurrentAccess(t *testing.T) {
	products := NewInMemoryProductRepository()
	products.Create(models.Product{ID: "P000", Stock: 1000})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			products.Create(models.Product{ID: fmt.Sprintf("P%03d", i+1)})
		}(i)
		go func() {
			defer wg.Done()
			products.GetAll()
		}()
		go func() {
			defer wg.Done()
			products.AdjustStock("P000", -1)
		}()
	}
	wg.Wait()

	all, err := products.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 51 {
		t.Errorf("expected 51 products after concurrent creates, got %d", len(all))
	}
	p, _ := products.GetByID("P000")
	if p.Stock != 950 {
		t.Errorf("expected stock 950 after 50 concurrent decrements, got %d", p.Stock)
	}
}
