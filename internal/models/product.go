package models

// Category is the fixed set of product categories carried by the store.
type Category string

const (
	CategorySemen   Category = "Semen"
	CategoryBesi    Category = "Besi"
	CategoryCat     Category = "Cat"
	CategoryBata    Category = "Bata"
	CategoryKayu    Category = "Kayu"
	CategoryLainnya Category = "Lainnya"
)

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategorySemen, CategoryBesi, CategoryCat, CategoryBata, CategoryKayu, CategoryLainnya:
		return true
	}
	return false
}

// Product represents a catalog entry. Price is in rupiah (smallest currency
// unit, no decimals). Stock never goes negative.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    int64    `json:"price"`
	Stock    int      `json:"stock"`
	Unit     string   `json:"unit"`
	WeightKg float64  `json:"weight_kg"`
	Image    string   `json:"image"`
}
