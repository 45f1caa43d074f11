package handlers

import (
	"strings"

	"github.com/adisantoso/toko-bangunan/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Id) == "" {
		errs = append(errs, ProductValidationError{Field: "Id", Description: "Id is required"})
	}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if !models.ValidCategory(models.Category(p.Category)) {
		errs = append(errs, ProductValidationError{Field: "Category", Description: "Category must be one of Semen, Besi, Cat, Bata, Kayu, Lainnya"})
	}
	if p.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.Stock < 0 {
		errs = append(errs, ProductValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	if p.WeightKg < 0 {
		errs = append(errs, ProductValidationError{Field: "WeightKg", Description: "Weight cannot be negative"})
	}
	return errs
}
