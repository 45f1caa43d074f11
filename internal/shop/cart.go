package shop

import (
	"github.com/google/uuid"

	"github.com/adisantoso/toko-bangunan/internal/models"
	"github.com/adisantoso/toko-bangunan/internal/repo"
)

// CreateCart starts a new empty cart and returns it.
func (s *Service) CreateCart() (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := models.Cart{ID: uuid.NewString(), Items: []models.CartItem{}}
	if err := s.carts.Save(cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// GetCart returns the cart as stored.
func (s *Service) GetCart(cartID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts.Get(cartID)
}

// AddItem puts one unit of the product into the cart. A product that is
// already in the cart is incremented by one, but never past its current
// stock; a product with zero stock is rejected outright.
func (s *Service) AddItem(cartID, productID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.carts.Get(cartID)
	if err != nil {
		return models.Cart{}, err
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return models.Cart{}, err
	}

	if i := cart.Find(productID); i >= 0 {
		if cart.Items[i].Quantity+1 > product.Stock {
			return models.Cart{}, ErrInsufficientStock
		}
		cart.Items[i].Quantity++
	} else {
		if product.Stock < 1 {
			return models.Cart{}, ErrInsufficientStock
		}
		cart.Items = append(cart.Items, models.CartItem{Product: product, Quantity: 1})
	}

	if err := s.carts.Save(cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// UpdateQuantity applies delta to the line holding productID. An increase
// past the product's current stock is rejected with no change. A result of
// zero or less removes the line.
func (s *Service) UpdateQuantity(cartID, productID string, delta int) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.carts.Get(cartID)
	if err != nil {
		return models.Cart{}, err
	}
	i := cart.Find(productID)
	if i < 0 {
		return models.Cart{}, repo.ErrProductNotFound
	}

	newQty := cart.Items[i].Quantity + delta
	if delta > 0 {
		product, err := s.products.GetByID(productID)
		if err != nil {
			return models.Cart{}, err
		}
		if newQty > product.Stock {
			return models.Cart{}, ErrInsufficientStock
		}
	}

	if newQty <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	} else {
		cart.Items[i].Quantity = newQty
	}

	if err := s.carts.Save(cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// RemoveItem deletes the line holding productID unconditionally. Removing a
// product that is not in the cart is a no-op.
func (s *Service) RemoveItem(cartID, productID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.carts.Get(cartID)
	if err != nil {
		return models.Cart{}, err
	}
	if i := cart.Find(productID); i >= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		if err := s.carts.Save(cart); err != nil {
			return models.Cart{}, err
		}
	}
	return cart, nil
}

// ClearCart empties the cart but keeps it usable.
func (s *Service) ClearCart(cartID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearCart(cartID)
}

func (s *Service) clearCart(cartID string) (models.Cart, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return models.Cart{}, err
	}
	cart.Items = []models.CartItem{}
	if err := s.carts.Save(cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}
