package repo

import (
	"errors"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

// CartRepository stores session-scoped carts keyed by cart id.
type CartRepository interface {
	Get(id string) (models.Cart, error)
	Save(cart models.Cart) error
	Delete(id string) error
}

// ErrCartNotFound is returned when no cart exists for the given id.
var ErrCartNotFound = errors.New("cart not found")
