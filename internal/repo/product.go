package repo

import (
	"errors"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

// ProductRepository defines the interface for catalog data operations.
// Products are never deleted during a session; stock changes go through
// AdjustStock so the zero floor is enforced in one place.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	AdjustStock(id string, delta int) (models.Product, error)
}

// ErrProductNotFound is returned when a product is not found in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateProduct is returned when creating a product whose id already exists.
var ErrDuplicateProduct = errors.New("product id already exists")
