package repo

import (
	"sync"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

// InMemoryCartRepository keeps carts in a process-local map, safe for
// concurrent handlers. Carts are stored and returned by value so callers
// never share line slices with the store.
type InMemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{
		carts: map[string]models.Cart{},
	}
}

func (r *InMemoryCartRepository) Get(id string) (models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return models.Cart{}, ErrCartNotFound
	}
	return copyCart(cart), nil
}

func (r *InMemoryCartRepository) Save(cart models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.ID] = copyCart(cart)
	return nil
}

func (r *InMemoryCartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, id)
	return nil
}

func (r *InMemoryCartRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts = map[string]models.Cart{}
}

func copyCart(cart models.Cart) models.Cart {
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return cart
}
