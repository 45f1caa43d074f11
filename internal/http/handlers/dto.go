package handlers

import (
	"github.com/adisantoso/toko-bangunan/internal/models"
)

type ProductRequest struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    int64   `json:"price"`
	Stock    int     `json:"stock"`
	Unit     string  `json:"unit"`
	WeightKg float64 `json:"weight_kg"`
	Image    string  `json:"image,omitempty"`
}

type ProductResponse struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    int64   `json:"price"`
	Stock    int     `json:"stock"`
	Unit     string  `json:"unit"`
	WeightKg float64 `json:"weight_kg"`
	Image    string  `json:"image,omitempty"`
	LowStock bool    `json:"low_stock,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type TransactionResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	TotalPrice  int64  `json:"total_price"`
	Timestamp   string `json:"timestamp"`
}

type TransactionsSearchResult struct {
	Data []TransactionResponse `json:"data"`
	Meta Meta                  `json:"meta,omitempty"`
}

type CartItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     int64   `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  int64   `json:"subtotal"`
	WeightKg  float64 `json:"weight_kg"`
}

type CartResponse struct {
	ID            string             `json:"id"`
	Items         []CartItemResponse `json:"items"`
	TotalItems    int                `json:"total_items"`
	TotalPrice    int64              `json:"total_price"`
	TotalWeightKg float64            `json:"total_weight_kg"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
}

type QuantityChangeRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type RestockRequest struct {
	Amount int `json:"amount"`
}

type RestockResult struct {
	Product     ProductResponse     `json:"product"`
	Transaction TransactionResponse `json:"transaction"`
}

type CheckoutResult struct {
	Receipt    []TransactionResponse `json:"receipt"`
	TotalPrice int64                 `json:"total_price"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}

func toProductResponse(p models.Product, lowStockThreshold int) ProductResponse {
	return ProductResponse{
		Id:       p.ID,
		Name:     p.Name,
		Category: string(p.Category),
		Price:    p.Price,
		Stock:    p.Stock,
		Unit:     p.Unit,
		WeightKg: p.WeightKg,
		Image:    p.Image,
		LowStock: p.Stock < lowStockThreshold,
	}
}

func toTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		ProductID:   t.ProductID,
		ProductName: t.ProductName,
		Type:        string(t.Type),
		Quantity:    t.Quantity,
		TotalPrice:  t.TotalPrice,
		Timestamp:   t.Timestamp.Format(timeFormat),
	}
}

func toCartResponse(c models.Cart) CartResponse {
	items := make([]CartItemResponse, len(c.Items))
	for i, item := range c.Items {
		items[i] = CartItemResponse{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Price * int64(item.Quantity),
			WeightKg:  item.WeightKg * float64(item.Quantity),
		}
	}
	return CartResponse{
		ID:            c.ID,
		Items:         items,
		TotalItems:    c.TotalItems(),
		TotalPrice:    c.TotalPrice(),
		TotalWeightKg: c.TotalWeightKg(),
	}
}
