package repo

import (
	"sync"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, safe for concurrent handlers.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

// Create adds a new product to the catalog.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == product.ID {
			return models.Product{}, ErrDuplicateProduct
		}
	}
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products from the catalog.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// AdjustStock applies delta to the product's stock, flooring at zero.
func (r *InMemoryProductRepository) AdjustStock(id string, delta int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			p.Stock += delta
			if p.Stock < 0 {
				p.Stock = 0
			}
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
